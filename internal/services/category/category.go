// Package category реализует работу с категориями платежей клиента.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/payments-tracker/internal/events"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/validate"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Repository определяет методы хранилища категорий. Все методы ограничены клиентом.
type Repository interface {
	ListCategories(ctx context.Context, tenantID int64) ([]*models.Category, error)
	GetCategory(ctx context.Context, tenantID, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, c models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, c models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, tenantID, id int64) error
}

// Service реализует CRUD категорий в рамках клиента запроса.
type Service struct {
	repo   Repository
	events events.Publisher
	log    *slog.Logger
}

// NewService создает Service.
func NewService(repo Repository, publisher events.Publisher, log *slog.Logger) *Service {
	return &Service{repo: repo, events: publisher, log: log}
}

// List возвращает категории клиента. Без клиента список пуст.
func (s *Service) List(ctx context.Context, tenant *models.Tenant) ([]*models.Category, error) {
	const op = "services.category.List"
	if tenant == nil {
		return []*models.Category{}, nil
	}
	items, err := s.repo.ListCategories(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Get возвращает категорию клиента.
func (s *Service) Get(ctx context.Context, tenant *models.Tenant, id int64) (*models.Category, error) {
	const op = "services.category.Get"
	if tenant == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	c, err := s.repo.GetCategory(ctx, tenant.ID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Create создает категорию; владельцем становится клиент запроса.
func (s *Service) Create(ctx context.Context, tenant *models.Tenant, req models.CategoryRequest) (*models.Category, error) {
	const op = "services.category.Create"
	if tenant == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoTenant)
	}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.repo.CreateCategory(ctx, models.Category{
		TenantID:    tenant.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.events.Publish(ctx, events.Event{Type: events.CategoryCreated, TenantID: tenant.ID, EntityID: c.ID, Data: c})
	return c, nil
}

// Update полностью заменяет поля категории.
func (s *Service) Update(ctx context.Context, tenant *models.Tenant, id int64, req models.CategoryRequest) (*models.Category, error) {
	const op = "services.category.Update"
	if tenant == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoTenant)
	}
	if _, err := s.repo.GetCategory(ctx, tenant.ID, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.save(ctx, op, tenant, id, req)
}

// Patch накладывает apply на текущее состояние категории и сохраняет результат.
func (s *Service) Patch(ctx context.Context, tenant *models.Tenant, id int64, apply func(*models.CategoryRequest) error) (*models.Category, error) {
	const op = "services.category.Patch"
	if tenant == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoTenant)
	}
	current, err := s.repo.GetCategory(ctx, tenant.ID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req := models.CategoryRequest{Name: current.Name, Description: current.Description}
	if err := apply(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.save(ctx, op, tenant, id, req)
}

func (s *Service) save(ctx context.Context, op string, tenant *models.Tenant, id int64, req models.CategoryRequest) (*models.Category, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c, err := s.repo.UpdateCategory(ctx, models.Category{
		ID:          id,
		TenantID:    tenant.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.events.Publish(ctx, events.Event{Type: events.CategoryUpdated, TenantID: tenant.ID, EntityID: c.ID, Data: c})
	return c, nil
}

// Delete удаляет категорию клиента.
func (s *Service) Delete(ctx context.Context, tenant *models.Tenant, id int64) error {
	const op = "services.category.Delete"
	if tenant == nil {
		return fmt.Errorf("%s: %w", op, models.ErrNoTenant)
	}
	if err := s.repo.DeleteCategory(ctx, tenant.ID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.events.Publish(ctx, events.Event{Type: events.CategoryRemoved, TenantID: tenant.ID, EntityID: id})
	return nil
}
