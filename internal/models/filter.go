package models

import "github.com/shopspring/decimal"

// SortKey - поле, по которому разрешена сортировка списка платежей.
type SortKey string

const (
	SortCompetence  SortKey = "data_competencia"
	SortDue         SortKey = "data_vencimento"
	SortAmount      SortKey = "valor"
	SortDescription SortKey = "descricao"
	SortCategory    SortKey = "categoria"
)

// Ordering - один элемент сортировки.
type Ordering struct {
	Key  SortKey
	Desc bool
}

// PaymentFilter описывает выборку платежей одного клиента.
// Нулевые поля означают отсутствие соответствующего условия.
type PaymentFilter struct {
	TenantID            int64
	CompetenceFrom      *Date
	CompetenceTo        *Date
	DescriptionContains string
	CategoryID          *int64
	Status              ComputedStatus
	Ordering            []Ordering
}

// Totals - суммы по вычисляемым статусам для всей отфильтрованной выборки.
type Totals struct {
	Paid    decimal.Decimal
	Pending decimal.Decimal
	Overdue decimal.Decimal
}

// Page - страница списка платежей с общим количеством и суммами.
type Page struct {
	Count    int
	Page     int
	PageSize int
	Totals   Totals
	Items    []*Payment
}

// HasNext сообщает, есть ли следующая страница.
func (p Page) HasNext() bool {
	return p.Page*p.PageSize < p.Count
}

// HasPrevious сообщает, есть ли предыдущая страница.
func (p Page) HasPrevious() bool {
	return p.Page > 1
}
