// Package profile реализует HTTP-обработчик профиля текущего пользователя.
package profile

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
)

// Response - профиль пользователя. TenantID равен null, если клиент не назначен.
type Response struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
	TenantID    *int64 `json:"cliente_id"`
}

// Handler отдает профиль из контекста запроса.
type Handler struct {
	log *slog.Logger
}

// New создает Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile"

	principal, ok := middlewarectx.PrincipalFrom(r.Context())
	if !ok {
		h.log.Error("principal missing in context",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		response.Write(w, r, http.StatusUnauthorized, response.Error(response.MsgNotAuthorized))
		return
	}

	render.JSON(w, r, Response{
		ID:          principal.UserID,
		Username:    principal.Username,
		Email:       principal.Email,
		IsSuperuser: principal.IsSuperuser,
		TenantID:    principal.TenantID,
	})
}
