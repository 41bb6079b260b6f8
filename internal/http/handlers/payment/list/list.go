// Package list реализует HTTP-обработчик списка платежей клиента.
//
// Ответ содержит страницу платежей, ссылки на соседние страницы и суммы
// по вычисляемым статусам для всей отфильтрованной выборки.
package list

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
	"github.com/magabrotheeeer/payments-tracker/internal/services/payment"
)

// Service возвращает страницу платежей с итогами.
type Service interface {
	List(ctx context.Context, tenant *models.Tenant, q payment.Query) (*models.Page, error)
	Today() models.Date
}

// Totals - суммы по статусам Pago, Pendente и Atrasado.
type Totals struct {
	Paid    json.Number `json:"pago" swaggertype:"number" example:"1000.00"`
	Pending json.Number `json:"pendente" swaggertype:"number" example:"120.00"`
	Overdue json.Number `json:"atrasado" swaggertype:"number" example:"150.00"`
}

// Response - страница списка платежей.
type Response struct {
	Count    int                  `json:"count"`
	Next     *string              `json:"next"`
	Previous *string              `json:"previous"`
	Totals   Totals               `json:"totais"`
	Results  []models.PaymentView `json:"results"`
}

// Handler обрабатывает запрос списка платежей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список платежей
// @Description Фильтры: период компетенции, подстрока описания, категория, вычисляемый статус.
// @Tags Pagamentos
// @Produce  json
// @Security BearerAuth
// @Param X-Cliente-Gerenciado-Id header int false "Клиент, которым управляет суперпользователь"
// @Param data_competencia_inicio query string false "Компетенция с (YYYY-MM-DD)"
// @Param data_competencia_fim query string false "Компетенция по (YYYY-MM-DD)"
// @Param descricao query string false "Подстрока описания"
// @Param categoria query int false "ID категории"
// @Param status query string false "Pago, Pendente или Atrasado"
// @Param ordering query string false "Например -valor,descricao"
// @Param page query int false "Номер страницы"
// @Param page_size query int false "Размер страницы (не больше 1000)"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Страница вне выборки"
// @Router /pagamentos [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q, err := payment.ParseQuery(r.URL.Query())
	if err != nil {
		response.Fail(w, r, log, "invalid query", err)
		return
	}

	page, err := h.service.List(r.Context(), middlewarectx.TenantFrom(r.Context()), q)
	if err != nil {
		response.Fail(w, r, log, "failed to list payments", err)
		return
	}

	resp := Response{
		Count: page.Count,
		Totals: Totals{
			Paid:    json.Number(page.Totals.Paid.StringFixed(2)),
			Pending: json.Number(page.Totals.Pending.StringFixed(2)),
			Overdue: json.Number(page.Totals.Overdue.StringFixed(2)),
		},
		Results: models.NewPaymentViews(page.Items, h.service.Today()),
	}
	if page.HasNext() {
		next := pageURL(r, page.Page+1)
		resp.Next = &next
	}
	if page.HasPrevious() {
		prev := pageURL(r, page.Page-1)
		resp.Previous = &prev
	}

	log.Debug("payments listed", slog.Int("count", page.Count), slog.Int("page", page.Page))
	render.JSON(w, r, resp)
}

// pageURL строит абсолютную ссылку на страницу page с теми же параметрами.
// Для первой страницы параметр page опускается.
func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}

	values := r.URL.Query()
	if page <= 1 {
		values.Del("page")
	} else {
		values.Set("page", strconv.Itoa(page))
	}

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: values.Encode()}
	return u.String()
}
