package payment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/payments-tracker/internal/events"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CategoryBelongs(ctx context.Context, tenantID, id int64) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockRepository) GetPayment(ctx context.Context, tenantID, id int64) (*models.Payment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockRepository) UpdatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockRepository) DeletePayment(ctx context.Context, tenantID, id int64) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *MockRepository) ListPayments(ctx context.Context, f models.PaymentFilter, today models.Date, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, f, today, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockRepository) AggregatePayments(ctx context.Context, f models.PaymentFilter, today models.Date) (int, models.Totals, error) {
	args := m.Called(ctx, f, today)
	return args.Int(0), args.Get(1).(models.Totals), args.Error(2)
}

func (m *MockRepository) ExportPayments(ctx context.Context, f models.PaymentFilter, today models.Date) ([]*models.Payment, error) {
	args := m.Called(ctx, f, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.Event) {
	p.events = append(p.events, ev)
}
