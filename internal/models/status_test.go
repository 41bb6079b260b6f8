package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func datePtr(d Date) *Date { return &d }

func TestResolveStatus(t *testing.T) {
	today := NewDate(2024, time.February, 1)

	tests := []struct {
		name   string
		stored StoredStatus
		due    *Date
		want   ComputedStatus
	}{
		{
			name:   "paid ignores past due date",
			stored: StatusPaid,
			due:    datePtr(NewDate(2023, time.January, 1)),
			want:   ComputedPaid,
		},
		{
			name:   "paid without due date",
			stored: StatusPaid,
			want:   ComputedPaid,
		},
		{
			name:   "pending with due date before today is overdue",
			stored: StatusPending,
			due:    datePtr(NewDate(2024, time.January, 10)),
			want:   ComputedOverdue,
		},
		{
			name:   "pending due yesterday is overdue",
			stored: StatusPending,
			due:    datePtr(NewDate(2024, time.January, 31)),
			want:   ComputedOverdue,
		},
		{
			name:   "pending due today is still pending",
			stored: StatusPending,
			due:    datePtr(today),
			want:   ComputedPending,
		},
		{
			name:   "pending due in the future",
			stored: StatusPending,
			due:    datePtr(NewDate(2024, time.March, 1)),
			want:   ComputedPending,
		},
		{
			name:   "pending without due date",
			stored: StatusPending,
			want:   ComputedPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(tt.stored, tt.due, today))
		})
	}
}

func TestPayment_ComputedStatusChangesWithToday(t *testing.T) {
	p := &Payment{Status: StatusPending, DueOn: datePtr(NewDate(2024, time.January, 10))}

	assert.Equal(t, ComputedPending, p.ComputedStatus(NewDate(2024, time.January, 10)))
	assert.Equal(t, ComputedOverdue, p.ComputedStatus(NewDate(2024, time.January, 11)))
}

func TestParseComputedStatus(t *testing.T) {
	for _, s := range []string{"Pago", "Pendente", "Atrasado"} {
		got, ok := ParseComputedStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, ComputedStatus(s), got)
	}

	_, ok := ParseComputedStatus("pago")
	assert.False(t, ok)
	_, ok = ParseComputedStatus("")
	assert.False(t, ok)
}

func TestNewPaymentView(t *testing.T) {
	due := NewDate(2024, time.January, 10)
	p := &Payment{
		ID:           1,
		Description:  "Conta de luz",
		Amount:       decimal.RequireFromString("150"),
		CompetenceOn: NewDate(2024, time.January, 1),
		DueOn:        &due,
		Status:       StatusPending,
	}

	v := NewPaymentView(p, NewDate(2024, time.February, 1))
	assert.Equal(t, "150.00", v.Amount)
	assert.Equal(t, ComputedOverdue, v.StatusDisplay)
	assert.Equal(t, StatusPending, v.Status)

	views := NewPaymentViews([]*Payment{p}, NewDate(2024, time.January, 10))
	assert.Len(t, views, 1)
	assert.Equal(t, ComputedPending, views[0].StatusDisplay)
}
