// Package remove реализует HTTP-обработчик удаления категории.
// Платежи удаленной категории остаются, ссылка на категорию у них обнуляется.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payments-tracker/internal/http/request"
	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Service удаляет категорию клиента.
type Service interface {
	Delete(ctx context.Context, tenant *models.Tenant, id int64) error
}

// Handler обрабатывает удаление категории.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удаление категории
// @Tags Categorias
// @Security BearerAuth
// @Param id path int true "ID категории"
// @Success 204
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /categorias/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := request.ID(r)
	if err != nil {
		response.Fail(w, r, log, "failed to decode id from url", err)
		return
	}

	if err := h.service.Delete(r.Context(), middlewarectx.TenantFrom(r.Context()), id); err != nil {
		response.Fail(w, r, log, "failed to remove category", err)
		return
	}

	log.Info("category removed", slog.Int64("id", id))
	w.WriteHeader(http.StatusNoContent)
}
