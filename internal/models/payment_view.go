package models

import "time"

// PaymentView - представление платежа в ответах API.
// StatusDisplay вычисляется на момент ответа.
type PaymentView struct {
	ID            int64          `json:"id"`
	Description   string         `json:"descricao"`
	Amount        string         `json:"valor" example:"150.00"`
	CompetenceOn  Date           `json:"data_competencia" swaggertype:"string" example:"2024-01-01"`
	DueOn         *Date          `json:"data_vencimento" swaggertype:"string" example:"2024-01-10"`
	PaidOn        *Date          `json:"data_pagamento" swaggertype:"string"`
	Status        StoredStatus   `json:"status" example:"Pendente"`
	StatusDisplay ComputedStatus `json:"status_display" example:"Atrasado"`
	InvoiceNumber *string        `json:"numero_nota_fiscal"`
	CategoryID    *int64         `json:"categoria"`
	CategoryName  *string        `json:"categoria_nome"`
	CreatedAt     time.Time      `json:"data_criacao"`
}

// NewPaymentView строит представление платежа на дату today.
func NewPaymentView(p *Payment, today Date) PaymentView {
	return PaymentView{
		ID:            p.ID,
		Description:   p.Description,
		Amount:        p.Amount.StringFixed(2),
		CompetenceOn:  p.CompetenceOn,
		DueOn:         p.DueOn,
		PaidOn:        p.PaidOn,
		Status:        p.Status,
		StatusDisplay: p.ComputedStatus(today),
		InvoiceNumber: p.InvoiceNumber,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		CreatedAt:     p.CreatedAt,
	}
}

// NewPaymentViews строит представления для списка платежей.
func NewPaymentViews(items []*Payment, today Date) []PaymentView {
	out := make([]PaymentView, 0, len(items))
	for _, p := range items {
		out = append(out, NewPaymentView(p, today))
	}
	return out
}
