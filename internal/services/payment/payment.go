// Package payment реализует бизнес-правила платежей: проверку и нормализацию
// при записи, постраничную выборку с итогами по статусам и выборку для выгрузки.
package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/payments-tracker/internal/events"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/validate"
	"github.com/magabrotheeeer/payments-tracker/internal/metrics"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Repository определяет методы хранилища платежей. Все методы ограничены клиентом.
type Repository interface {
	CategoryBelongs(ctx context.Context, tenantID, id int64) (bool, error)
	CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error)
	GetPayment(ctx context.Context, tenantID, id int64) (*models.Payment, error)
	UpdatePayment(ctx context.Context, p models.Payment) (*models.Payment, error)
	DeletePayment(ctx context.Context, tenantID, id int64) error
	ListPayments(ctx context.Context, f models.PaymentFilter, today models.Date, limit, offset int) ([]*models.Payment, error)
	AggregatePayments(ctx context.Context, f models.PaymentFilter, today models.Date) (int, models.Totals, error)
	ExportPayments(ctx context.Context, f models.PaymentFilter, today models.Date) ([]*models.Payment, error)
}

// Сообщения бизнес-правил.
const (
	msgDueRequired     = "A data de vencimento é obrigatória para pagamentos pendentes."
	msgForeignCategory = "Você só pode usar categorias da sua própria empresa."
	msgDecimalPlaces   = "Certifique-se de que não haja mais de 2 casas decimais."
	msgMaxDigits       = "Certifique-se de que não haja mais de 10 dígitos no total."
)

var maxAmount = decimal.New(1, 8)

// Service реализует работу с платежами клиента.
type Service struct {
	repo   Repository
	events events.Publisher
	today  func() models.Date
	log    *slog.Logger
}

// NewService создает Service. today возвращает текущую дату в часовом поясе сервиса.
func NewService(repo Repository, publisher events.Publisher, today func() models.Date, log *slog.Logger) *Service {
	return &Service{repo: repo, events: publisher, today: today, log: log}
}

// Today возвращает дату, относительно которой вычисляется статус.
func (s *Service) Today() models.Date {
	return s.today()
}

// List возвращает страницу платежей и итоги по всей отфильтрованной выборке.
// Без клиента выборка пуста. Страница за пределами выборки - models.ErrInvalidPage.
func (s *Service) List(ctx context.Context, tenant *models.Tenant, q Query) (*models.Page, error) {
	const op = "services.payment.List"

	page := &models.Page{Page: q.Page, PageSize: q.PageSize, Items: []*models.Payment{}}
	if tenant == nil {
		if q.Page > 1 {
			return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidPage)
		}
		return page, nil
	}

	today := s.today()
	f := q.Filter
	f.TenantID = tenant.ID

	count, totals, err := s.repo.AggregatePayments(ctx, f, today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	page.Count = count
	page.Totals = totals

	// Сравнение без умножения: (page-1)*page_size переполняет int на больших page.
	if q.Page > 1 && q.Page-1 > (count-1)/q.PageSize {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidPage)
	}
	offset := (q.Page - 1) * q.PageSize
	if count == 0 {
		return page, nil
	}

	items, err := s.repo.ListPayments(ctx, f, today, q.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	page.Items = items
	return page, nil
}

// Export возвращает все платежи выборки по возрастанию даты компетенции.
func (s *Service) Export(ctx context.Context, tenant *models.Tenant, f models.PaymentFilter) ([]*models.Payment, error) {
	const op = "services.payment.Export"
	if tenant == nil {
		return []*models.Payment{}, nil
	}
	f.TenantID = tenant.ID
	f.Ordering = nil
	items, err := s.repo.ExportPayments(ctx, f, s.today())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Get возвращает платеж клиента.
func (s *Service) Get(ctx context.Context, tenant *models.Tenant, id int64) (*models.Payment, error) {
	const op = "services.payment.Get"
	if tenant == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	p, err := s.repo.GetPayment(ctx, tenant.ID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Create проверяет запрос, применяет правила статуса и сохраняет платеж клиента.
func (s *Service) Create(ctx context.Context, tenant *models.Tenant, req models.PaymentRequest) (*models.Payment, error) {
	const op = "services.payment.Create"
	if tenant == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoTenant)
	}
	p, err := s.build(ctx, tenant, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	created, err := s.repo.CreatePayment(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.PaymentsWrittenTotal.WithLabelValues("create").Inc()
	s.events.Publish(ctx, events.Event{Type: events.PaymentCreated, TenantID: tenant.ID, EntityID: created.ID})
	return created, nil
}

// Update полностью заменяет изменяемые поля платежа.
// Статус, не переданный в запросе, остается сохраненным.
func (s *Service) Update(ctx context.Context, tenant *models.Tenant, id int64, req models.PaymentRequest) (*models.Payment, error) {
	const op = "services.payment.Update"
	if tenant == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoTenant)
	}
	current, err := s.repo.GetPayment(ctx, tenant.ID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if req.Status == "" {
		req.Status = current.Status
	}
	return s.save(ctx, op, tenant, id, req)
}

// Patch накладывает apply на текущее состояние платежа; результат проходит
// те же проверки, что и при полной замене.
func (s *Service) Patch(ctx context.Context, tenant *models.Tenant, id int64, apply func(*models.PaymentRequest) error) (*models.Payment, error) {
	const op = "services.payment.Patch"
	if tenant == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoTenant)
	}
	current, err := s.repo.GetPayment(ctx, tenant.ID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req := models.RequestFromPayment(current)
	if err := apply(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.save(ctx, op, tenant, id, req)
}

func (s *Service) save(ctx context.Context, op string, tenant *models.Tenant, id int64, req models.PaymentRequest) (*models.Payment, error) {
	p, err := s.build(ctx, tenant, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.ID = id
	updated, err := s.repo.UpdatePayment(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.PaymentsWrittenTotal.WithLabelValues("update").Inc()
	s.events.Publish(ctx, events.Event{Type: events.PaymentUpdated, TenantID: tenant.ID, EntityID: id})
	return updated, nil
}

// Delete удаляет платеж клиента.
func (s *Service) Delete(ctx context.Context, tenant *models.Tenant, id int64) error {
	const op = "services.payment.Delete"
	if tenant == nil {
		return fmt.Errorf("%s: %w", op, models.ErrNoTenant)
	}
	if err := s.repo.DeletePayment(ctx, tenant.ID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.PaymentsWrittenTotal.WithLabelValues("delete").Inc()
	s.events.Publish(ctx, events.Event{Type: events.PaymentRemoved, TenantID: tenant.ID, EntityID: id})
	return nil
}

// build проверяет запрос и строит запись для сохранения:
//   - Pendente требует срок оплаты, дата оплаты всегда сбрасывается;
//   - Pago без даты оплаты получает сегодняшнюю дату;
//   - категория должна принадлежать клиенту.
func (s *Service) build(ctx context.Context, tenant *models.Tenant, req models.PaymentRequest) (models.Payment, error) {
	fields := map[string]string{}
	if err := validate.Struct(req); err != nil {
		ve, ok := models.AsValidationError(err)
		if !ok {
			return models.Payment{}, err
		}
		for k, v := range ve.Fields {
			fields[k] = v
		}
	}

	if req.Amount != nil {
		switch {
		case !req.Amount.Equal(req.Amount.Round(2)):
			fields["valor"] = msgDecimalPlaces
		case req.Amount.Abs().GreaterThanOrEqual(maxAmount):
			fields["valor"] = msgMaxDigits
		}
	}

	if req.Status == "" {
		req.Status = models.StatusPending
	}
	switch req.Status {
	case models.StatusPending:
		if req.DueOn == nil {
			fields["data_vencimento"] = msgDueRequired
		}
		req.PaidOn = nil
	case models.StatusPaid:
		if req.PaidOn == nil {
			today := s.today()
			req.PaidOn = &today
		}
	}

	if req.CategoryID != nil {
		ok, err := s.repo.CategoryBelongs(ctx, tenant.ID, *req.CategoryID)
		if err != nil {
			return models.Payment{}, err
		}
		if !ok {
			fields["categoria"] = msgForeignCategory
		}
	}

	if len(fields) > 0 {
		return models.Payment{}, &models.ValidationError{Fields: fields}
	}

	return models.Payment{
		TenantID:      tenant.ID,
		Description:   req.Description,
		Amount:        *req.Amount,
		CompetenceOn:  *req.CompetenceOn,
		DueOn:         req.DueOn,
		PaidOn:        req.PaidOn,
		Status:        req.Status,
		InvoiceNumber: req.InvoiceNumber,
		CategoryID:    req.CategoryID,
	}, nil
}
