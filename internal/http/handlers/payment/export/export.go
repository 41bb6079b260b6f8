// Package export реализует HTTP-обработчик выгрузки платежей в xlsx или pdf.
//
// Выгрузка принимает те же фильтры, что и список, но игнорирует страницы и
// сортировку: платежи всегда идут по возрастанию даты компетенции.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/metrics"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
	exporter "github.com/magabrotheeeer/payments-tracker/internal/services/export"
	"github.com/magabrotheeeer/payments-tracker/internal/services/payment"
)

// Service возвращает платежи выборки для выгрузки.
type Service interface {
	Export(ctx context.Context, tenant *models.Tenant, f models.PaymentFilter) ([]*models.Payment, error)
	Today() models.Date
}

// Handler обрабатывает запрос выгрузки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Выгрузка платежей
// @Tags Pagamentos
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  application/pdf
// @Security BearerAuth
// @Param formato query string false "excel (по умолчанию) или pdf"
// @Param data_competencia_inicio query string false "Компетенция с (YYYY-MM-DD)"
// @Param data_competencia_fim query string false "Компетенция по (YYYY-MM-DD)"
// @Param descricao query string false "Подстрока описания"
// @Param categoria query int false "ID категории"
// @Param status query string false "Pago, Pendente или Atrasado"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorResponse
// @Router /pagamentos/exportar [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.export"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	values := r.URL.Query()
	format := exporter.ParseFormat(values.Get("formato"))
	for _, key := range []string{"formato", "page", "page_size", "ordering"} {
		values.Del(key)
	}
	q, err := payment.ParseQuery(values)
	if err != nil {
		response.Fail(w, r, log, "invalid query", err)
		return
	}

	tenant := middlewarectx.TenantFrom(r.Context())
	items, err := h.service.Export(r.Context(), tenant, q.Filter)
	if err != nil {
		response.Fail(w, r, log, "failed to load payments", err)
		return
	}

	tenantName := ""
	if tenant != nil {
		tenantName = tenant.Name
	}
	file, err := exporter.Render(format, tenantName, items, h.service.Today())
	if err != nil {
		response.Fail(w, r, log, "failed to render export", err)
		return
	}

	metrics.ExportsTotal.WithLabelValues(string(format)).Inc()
	log.Info("payments exported", slog.String("format", string(format)), slog.Int("count", len(items)))

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		log.Warn("failed to write export", sl.Err(err))
	}
}
