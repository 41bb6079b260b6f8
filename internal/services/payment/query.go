package payment

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Параметры постраничного вывода.
const (
	DefaultPageSize = 50
	MaxPageSize     = 1000
)

// Query - разобранные параметры списка платежей.
type Query struct {
	Filter   models.PaymentFilter
	Page     int
	PageSize int
}

// ParseQuery разбирает параметры фильтра, сортировки и страницы.
// Неизвестное значение status фильтр не применяет; неизвестный ключ
// ordering - ошибка валидации; некорректный page - models.ErrInvalidPage.
func ParseQuery(values url.Values) (Query, error) {
	q := Query{Page: 1, PageSize: DefaultPageSize}
	fields := map[string]string{}

	parseDate := func(key string) *models.Date {
		raw := strings.TrimSpace(values.Get(key))
		if raw == "" {
			return nil
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			fields[key] = "Informe uma data válida no formato AAAA-MM-DD."
			return nil
		}
		return &d
	}
	q.Filter.CompetenceFrom = parseDate("data_competencia_inicio")
	q.Filter.CompetenceTo = parseDate("data_competencia_fim")
	q.Filter.DescriptionContains = strings.TrimSpace(values.Get("descricao"))

	if raw := strings.TrimSpace(values.Get("categoria")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fields["categoria"] = "Informe um número válido."
		} else {
			q.Filter.CategoryID = &id
		}
	}

	if status, ok := models.ParseComputedStatus(strings.TrimSpace(values.Get("status"))); ok {
		q.Filter.Status = status
	}

	ordering, ok := parseOrdering(values.Get("ordering"))
	if !ok {
		fields["ordering"] = "Campo de ordenação inválido."
	}
	q.Filter.Ordering = ordering

	if len(fields) > 0 {
		return q, &models.ValidationError{Fields: fields}
	}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, models.ErrInvalidPage
		}
		q.Page = page
	}
	if raw := strings.TrimSpace(values.Get("page_size")); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			q.PageSize = min(size, MaxPageSize)
		}
	}
	return q, nil
}

var sortKeys = map[models.SortKey]struct{}{
	models.SortCompetence:  {},
	models.SortDue:         {},
	models.SortAmount:      {},
	models.SortDescription: {},
	models.SortCategory:    {},
}

func parseOrdering(raw string) ([]models.Ordering, bool) {
	var out []models.Ordering
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		o := models.Ordering{}
		if strings.HasPrefix(part, "-") {
			o.Desc = true
			part = part[1:]
		}
		o.Key = models.SortKey(part)
		if _, ok := sortKeys[o.Key]; !ok {
			return nil, false
		}
		out = append(out, o)
	}
	return out, true
}
