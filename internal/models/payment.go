package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment - запись о платеже клиента в том виде, в каком она хранится.
type Payment struct {
	ID            int64
	TenantID      int64
	Description   string
	Amount        decimal.Decimal
	CompetenceOn  Date
	DueOn         *Date
	PaidOn        *Date
	Status        StoredStatus
	InvoiceNumber *string
	CategoryID    *int64
	CategoryName  *string // заполняется только при чтении
	CreatedAt     time.Time
}

// ComputedStatus возвращает статус платежа на дату today.
func (p *Payment) ComputedStatus(today Date) ComputedStatus {
	return ResolveStatus(p.Status, p.DueOn, today)
}

// PaymentRequest - тело запроса на создание или изменение платежа.
// Статус по умолчанию - Pendente.
type PaymentRequest struct {
	Description   string           `json:"descricao" validate:"required,max=255"`
	Amount        *decimal.Decimal `json:"valor" validate:"required"`
	CompetenceOn  *Date            `json:"data_competencia" validate:"required"`
	DueOn         *Date            `json:"data_vencimento"`
	PaidOn        *Date            `json:"data_pagamento"`
	Status        StoredStatus     `json:"status" validate:"omitempty,oneof=Pendente Pago"`
	InvoiceNumber *string          `json:"numero_nota_fiscal" validate:"omitempty,max=50"`
	CategoryID    *int64           `json:"categoria"`
}

// RequestFromPayment строит запрос из сохраненного платежа; нужен для PATCH,
// когда тело запроса накладывается поверх текущего состояния.
func RequestFromPayment(p *Payment) PaymentRequest {
	competence := p.CompetenceOn
	amount := p.Amount
	return PaymentRequest{
		Description:   p.Description,
		Amount:        &amount,
		CompetenceOn:  &competence,
		DueOn:         p.DueOn,
		PaidOn:        p.PaidOn,
		Status:        p.Status,
		InvoiceNumber: p.InvoiceNumber,
		CategoryID:    p.CategoryID,
	}
}
