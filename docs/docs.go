// Package docs регистрирует описание API для /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/token": {
            "post": {
                "tags": ["auth"],
                "summary": "Получить пару access/refresh токенов",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/login.Request"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/login.Response"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/token/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Обновить access токен",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Профиль текущего пользователя",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/admin/clientes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Список клиентов (только суперпользователь)",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/categorias": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["categorias"],
                "summary": "Категории клиента",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["categorias"],
                "summary": "Создать категорию",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/pagamentos": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["pagamentos"],
                "summary": "Список платежей с фильтрами, сортировкой и итогами",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query", "enum": ["Pago", "Pendente", "Atrasado"]},
                    {"type": "integer", "name": "categoria", "in": "query"},
                    {"type": "string", "name": "data_competencia_inicio", "in": "query", "format": "date"},
                    {"type": "string", "name": "data_competencia_fim", "in": "query", "format": "date"},
                    {"type": "string", "name": "descricao", "in": "query"},
                    {"type": "string", "name": "ordering", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["pagamentos"],
                "summary": "Создать платеж",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/pagamentos/exportar": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["pagamentos"],
                "summary": "Выгрузка платежей в xlsx или pdf",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "application/pdf"],
                "parameters": [{"type": "string", "name": "formato", "in": "query", "enum": ["excel", "pdf"]}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "login.Request": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "login.Response": {
            "type": "object",
            "properties": {"access": {"type": "string"}, "refresh": {"type": "string"}}
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo содержит экспортируемую информацию Swagger, чтобы клиенты могли ее изменять.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Payments Tracker API",
	Description:      "API учета платежей клиентов",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
