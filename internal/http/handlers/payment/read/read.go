// Package read реализует HTTP-обработчик получения платежа по ID.
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

// Service возвращает платеж клиента.
type Service interface {
	Get(ctx context.Context, tenant *models.Tenant, id int64) (*models.Payment, error)
	Today() models.Date
}

// Handler обрабатывает запрос платежа по ID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Платеж по ID
// @Tags Pagamentos
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID платежа"
// @Success 200 {object} models.PaymentView
// @Failure 404 {object} response.ErrorResponse
// @Router /pagamentos/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := request.ID(r)
	if err != nil {
		response.Fail(w, r, log, "failed to decode id from url", err)
		return
	}

	p, err := h.service.Get(r.Context(), middlewarectx.TenantFrom(r.Context()), id)
	if err != nil {
		response.Fail(w, r, log, "failed to read payment", err)
		return
	}
	render.JSON(w, r, models.NewPaymentView(p, h.service.Today()))
}
