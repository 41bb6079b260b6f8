// Package update реализует HTTP-обработчик изменения платежа.
//
// PUT заменяет изменяемые поля целиком, PATCH накладывает переданные поля на
// сохраненный платеж. Правила статуса применяются к итоговому состоянию.
package update

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

// Service изменяет платеж клиента.
type Service interface {
	Update(ctx context.Context, tenant *models.Tenant, id int64, req models.PaymentRequest) (*models.Payment, error)
	Patch(ctx context.Context, tenant *models.Tenant, id int64, apply func(*models.PaymentRequest) error) (*models.Payment, error)
	Today() models.Date
}

// Handler обрабатывает PUT и PATCH платежа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Изменение платежа
// @Tags Pagamentos
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID платежа"
// @Param request body models.PaymentRequest true "Платеж"
// @Success 200 {object} models.PaymentView
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /pagamentos/{id} [put]
// @Router /pagamentos/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := request.ID(r)
	if err != nil {
		response.Fail(w, r, log, "failed to decode id from url", err)
		return
	}
	body, err := request.Body(r)
	if err != nil {
		response.Fail(w, r, log, "failed to read request body", err)
		return
	}

	tenant := middlewarectx.TenantFrom(r.Context())
	var updated *models.Payment
	if r.Method == http.MethodPatch {
		updated, err = h.service.Patch(r.Context(), tenant, id, func(req *models.PaymentRequest) error {
			return request.Unmarshal(body, req)
		})
	} else {
		var req models.PaymentRequest
		if err := request.Unmarshal(body, &req); err != nil {
			response.Fail(w, r, log, "failed to decode request body", err)
			return
		}
		updated, err = h.service.Update(r.Context(), tenant, id, req)
	}
	if err != nil {
		response.Fail(w, r, log, "failed to update payment", err)
		return
	}

	log.Info("payment updated", slog.Int64("id", id))
	render.JSON(w, r, models.NewPaymentView(updated, h.service.Today()))
}
