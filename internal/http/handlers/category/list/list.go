// Package list реализует HTTP-обработчик списка категорий клиента.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Service возвращает категории клиента по названию.
type Service interface {
	List(ctx context.Context, tenant *models.Tenant) ([]*models.Category, error)
}

// Handler обрабатывает запрос списка категорий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список категорий
// @Tags Categorias
// @Produce  json
// @Security BearerAuth
// @Param X-Cliente-Gerenciado-Id header int false "Клиент, которым управляет суперпользователь"
// @Success 200 {array} models.Category
// @Router /categorias [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.List(r.Context(), middlewarectx.TenantFrom(r.Context()))
	if err != nil {
		response.Fail(w, r, log, "failed to list categories", err)
		return
	}
	if items == nil {
		items = []*models.Category{}
	}
	render.JSON(w, r, items)
}
