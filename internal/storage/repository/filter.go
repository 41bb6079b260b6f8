package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Предикаты вычисляемого статуса. Разбиение совпадает с models.ResolveStatus:
// Pago - хранимый статус Pago; Atrasado - Pendente со сроком строго раньше
// сегодняшнего дня; Pendente - все остальные Pendente.
const (
	predicatePaid    = `p.status = 'Pago'`
	predicatePending = `(p.status = 'Pendente' AND (p.data_vencimento IS NULL OR p.data_vencimento >= %[1]s))`
	predicateOverdue = `(p.status = 'Pendente' AND p.data_vencimento < %[1]s)`
)

// statusPredicate возвращает SQL-условие для статуса; todayParam - плейсхолдер даты.
func statusPredicate(status models.ComputedStatus, todayParam string) string {
	switch status {
	case models.ComputedPaid:
		return predicatePaid
	case models.ComputedPending:
		return fmt.Sprintf(predicatePending, todayParam)
	case models.ComputedOverdue:
		return fmt.Sprintf(predicateOverdue, todayParam)
	}
	return ""
}

var sortColumns = map[models.SortKey]string{
	models.SortCompetence:  "p.data_competencia",
	models.SortDue:         "p.data_vencimento",
	models.SortAmount:      "p.valor",
	models.SortDescription: "p.descricao",
	models.SortCategory:    "c.nome",
}

// queryBuilder накапливает условия WHERE и аргументы с нумерацией $n.
type queryBuilder struct {
	conds []string
	args  []any
}

func (b *queryBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *queryBuilder) where() string {
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// escapeLike экранирует спецсимволы шаблона LIKE.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// paymentWhere строит условия выборки платежей. Условие по клиенту есть всегда.
func paymentWhere(f models.PaymentFilter, today models.Date) *queryBuilder {
	b := &queryBuilder{}
	b.conds = append(b.conds, "p.cliente_id = "+b.arg(f.TenantID))

	if f.CompetenceFrom != nil {
		b.conds = append(b.conds, "p.data_competencia >= "+b.arg(f.CompetenceFrom.String()))
	}
	if f.CompetenceTo != nil {
		b.conds = append(b.conds, "p.data_competencia <= "+b.arg(f.CompetenceTo.String()))
	}
	if f.DescriptionContains != "" {
		b.conds = append(b.conds, "p.descricao ILIKE "+b.arg("%"+escapeLike(f.DescriptionContains)+"%"))
	}
	if f.CategoryID != nil {
		b.conds = append(b.conds, "p.categoria_id = "+b.arg(*f.CategoryID))
	}
	switch f.Status {
	case models.ComputedPaid:
		b.conds = append(b.conds, statusPredicate(f.Status, ""))
	case models.ComputedPending, models.ComputedOverdue:
		b.conds = append(b.conds, statusPredicate(f.Status, b.arg(today.String())))
	}
	return b
}

// orderBy строит ORDER BY; id всегда последний ключ, чтобы порядок был детерминирован.
func orderBy(ordering []models.Ordering) (string, error) {
	parts := make([]string, 0, len(ordering)+1)
	for _, o := range ordering {
		col, ok := sortColumns[o.Key]
		if !ok {
			return "", fmt.Errorf("unknown ordering key %q", o.Key)
		}
		if o.Desc {
			parts = append(parts, col+" DESC")
		} else {
			parts = append(parts, col+" ASC")
		}
	}
	parts = append(parts, "p.id ASC")
	return "ORDER BY " + strings.Join(parts, ", "), nil
}
