// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов с ошибками и отображения доменных ошибок в HTTP-статусы.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// StatusError - значение статуса для ответа с ошибкой.
const StatusError = "Error"

// Сообщения об ошибках, которые видит пользователь.
const (
	MsgInvalidBody   = "JSON inválido."
	MsgValidation    = "Dados inválidos."
	MsgNotFound      = "Não encontrado."
	MsgInvalidPage   = "Página inválida."
	MsgNoTenant      = "Nenhuma empresa associada ao usuário."
	MsgForbidden     = "Você não tem permissão para executar essa ação."
	MsgNotAuthorized = "As credenciais de autenticação não foram fornecidas."
	MsgInvalidToken  = "O token informado não é válido para qualquer tipo de token."
	MsgCredentials   = "Usuário e/ou senha incorreto(s)."
	MsgTooMany       = "Muitas requisições. Tente novamente mais tarde."
	MsgInternal      = "Erro interno do servidor."
)

// ErrorResponse - тело ответа с ошибкой. Fields заполняется при ошибке валидации.
type ErrorResponse struct {
	Status string            `json:"status" example:"Error"`
	Error  string            `json:"error" example:"Dados inválidos."`
	Fields map[string]string `json:"fields,omitempty"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError возвращает ErrorResponse с сообщениями по полям.
func ValidationError(ve *models.ValidationError) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  MsgValidation,
		Fields: ve.Fields,
	}
}

// Write отправляет ответ с ошибкой и статусом code.
func Write(w http.ResponseWriter, r *http.Request, code int, resp ErrorResponse) {
	render.Status(r, code)
	render.JSON(w, r, resp)
}

// StatusFor отображает ошибку сервиса в HTTP-статус и тело ответа.
func StatusFor(err error) (int, ErrorResponse) {
	if ve, ok := models.AsValidationError(err); ok {
		return http.StatusBadRequest, ValidationError(ve)
	}
	switch {
	case errors.Is(err, models.ErrInvalidBody):
		return http.StatusBadRequest, Error(MsgInvalidBody)
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, Error(MsgNotFound)
	case errors.Is(err, models.ErrInvalidPage):
		return http.StatusNotFound, Error(MsgInvalidPage)
	case errors.Is(err, models.ErrNoTenant):
		return http.StatusForbidden, Error(MsgNoTenant)
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, Error(MsgCredentials)
	case errors.Is(err, models.ErrInvalidToken):
		return http.StatusUnauthorized, Error(MsgInvalidToken)
	default:
		return http.StatusInternalServerError, Error(MsgInternal)
	}
}

// Fail пишет ответ для ошибки сервиса. Внутренние ошибки логируются как ERROR,
// ожидаемые отказы как INFO; текст внутренней ошибки клиенту не уходит.
func Fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, msg string, err error) {
	code, resp := StatusFor(err)
	if code == http.StatusInternalServerError {
		log.Error(msg, sl.Err(err))
	} else {
		log.Info(msg, sl.Err(err), slog.Int("status", code))
	}
	Write(w, r, code, resp)
}
