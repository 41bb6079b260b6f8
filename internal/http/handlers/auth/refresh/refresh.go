// Package refresh реализует HTTP-обработчик обновления access-токена.
package refresh

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

// Request содержит refresh-токен.
type Request struct {
	Refresh string `json:"refresh" validate:"required"`
}

// Response содержит новый access-токен.
type Response struct {
	Access string `json:"access"`
}

// Service выдает новый access-токен по refresh-токену.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// Handler обрабатывает запросы обновления токена.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Обновление access-токена
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Refresh-токен"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /token/refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

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

	access, err := h.service.Refresh(r.Context(), req.Refresh)
	if err != nil {
		response.Fail(w, r, log, "refresh failed", err)
		return
	}
	render.JSON(w, r, Response{Access: access})
}
