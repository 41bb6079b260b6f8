// Package read реализует HTTP-обработчик получения категории по ID.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payments-tracker/internal/http/request"
	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Service возвращает категорию клиента.
type Service interface {
	Get(ctx context.Context, tenant *models.Tenant, id int64) (*models.Category, error)
}

// Handler обрабатывает запрос категории по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Категория по ID
// @Tags Categorias
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID категории"
// @Success 200 {object} models.Category
// @Failure 404 {object} response.ErrorResponse
// @Router /categorias/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := request.ID(r)
	if err != nil {
		response.Fail(w, r, log, "failed to decode id from url", err)
		return
	}

	c, err := h.service.Get(r.Context(), middlewarectx.TenantFrom(r.Context()), id)
	if err != nil {
		response.Fail(w, r, log, "failed to read category", err)
		return
	}
	render.JSON(w, r, c)
}
