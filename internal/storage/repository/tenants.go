package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// ListTenants возвращает всех клиентов, упорядоченных по названию.
func (s *Storage) ListTenants(ctx context.Context) ([]*models.Tenant, error) {
	const op = "storage.ListTenants"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, nome_empresa, data_criacao FROM clientes ORDER BY nome_empresa, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]*models.Tenant, 0)
	for rows.Next() {
		var t models.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetTenant возвращает клиента по id.
func (s *Storage) GetTenant(ctx context.Context, id int64) (*models.Tenant, error) {
	const op = "storage.GetTenant"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	var t models.Tenant
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, nome_empresa, data_criacao FROM clientes WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		return nil, notFound(op, err)
	}
	return &t, nil
}
