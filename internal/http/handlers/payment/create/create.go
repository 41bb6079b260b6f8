// Package create реализует HTTP-обработчик создания платежа.
//
// Клиент платежа берется из запроса, статус по умолчанию Pendente;
// правила статуса и принадлежность категории проверяет сервис.
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

// Service создает платеж клиента.
type Service interface {
	Create(ctx context.Context, tenant *models.Tenant, req models.PaymentRequest) (*models.Payment, error)
	Today() models.Date
}

// Handler обрабатывает запросы на создание платежа.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Создание платежа
// @Tags Pagamentos
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param X-Cliente-Gerenciado-Id header int false "Клиент, которым управляет суперпользователь"
// @Param request body models.PaymentRequest true "Платеж"
// @Success 201 {object} models.PaymentView
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /pagamentos [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.PaymentRequest
	if err := request.Decode(r, &req); err != nil {
		response.Fail(w, r, log, "failed to decode request body", err)
		return
	}

	created, err := h.service.Create(r.Context(), middlewarectx.TenantFrom(r.Context()), req)
	if err != nil {
		response.Fail(w, r, log, "failed to create payment", err)
		return
	}

	log.Info("payment created", slog.Int64("id", created.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, models.NewPaymentView(created, h.service.Today()))
}
