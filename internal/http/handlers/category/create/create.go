// Package create реализует HTTP-обработчик создания категории.
//
// Категория всегда создается у клиента текущего запроса; клиент из тела не принимается.
package create

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

// Service создает категорию клиента.
type Service interface {
	Create(ctx context.Context, tenant *models.Tenant, req models.CategoryRequest) (*models.Category, error)
}

// Handler обрабатывает запросы на создание категории.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Создание категории
// @Tags Categorias
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param X-Cliente-Gerenciado-Id header int false "Клиент, которым управляет суперпользователь"
// @Param request body models.CategoryRequest true "Категория"
// @Success 201 {object} models.Category
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /categorias [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CategoryRequest
	if err := request.Decode(r, &req); err != nil {
		response.Fail(w, r, log, "failed to decode request body", err)
		return
	}

	created, err := h.service.Create(r.Context(), middlewarectx.TenantFrom(r.Context()), req)
	if err != nil {
		response.Fail(w, r, log, "failed to create category", err)
		return
	}

	log.Info("category created", slog.Int64("id", created.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}
