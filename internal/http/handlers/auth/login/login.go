// Package login реализует HTTP-обработчик выдачи пары JWT-токенов.
//
// Handler принимает имя пользователя и пароль, проверяет их через сервис
// аутентификации и возвращает access- и refresh-токены.
package login

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-tracker/internal/http/request"
	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/validate"
)

// Request - учетные данные пользователя.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response - пара токенов.
type Response struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, username, password string) (access, refresh string, err error)
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получение токенов
// @Description Аутентифицирует пользователя по имени и паролю. Возвращает access- и refresh-токены.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := request.Decode(r, &req); err != nil {
		response.Fail(w, r, log, "failed to decode request body", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Fail(w, r, log, "validation failed", err)
		return
	}

	access, refresh, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Fail(w, r, log, "login failed", err)
		return
	}

	log.Info("login success", slog.String("username", req.Username))
	render.JSON(w, r, Response{Access: access, Refresh: refresh})
}
