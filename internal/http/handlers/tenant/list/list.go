// Package list реализует HTTP-обработчик списка клиентов для суперпользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Service возвращает всех клиентов, упорядоченных по названию.
type Service interface {
	List(ctx context.Context) ([]*models.Tenant, error)
}

// Handler обрабатывает запрос списка клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список клиентов
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.Tenant
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/clientes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tenant.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tenants, err := h.service.List(r.Context())
	if err != nil {
		response.Fail(w, r, log, "failed to list tenants", err)
		return
	}
	if tenants == nil {
		tenants = []*models.Tenant{}
	}
	render.JSON(w, r, tenants)
}
