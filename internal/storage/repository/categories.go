package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// ListCategories возвращает категории клиента, упорядоченные по названию.
func (s *Storage) ListCategories(ctx context.Context, tenantID int64) ([]*models.Category, error) {
	const op = "storage.ListCategories"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, cliente_id, nome, descricao FROM categorias
		 WHERE cliente_id = $1
		 ORDER BY nome, id`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]*models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetCategory возвращает категорию клиента по id.
func (s *Storage) GetCategory(ctx context.Context, tenantID, id int64) (*models.Category, error) {
	const op = "storage.GetCategory"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	var c models.Category
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, cliente_id, nome, descricao FROM categorias
		 WHERE id = $1 AND cliente_id = $2`, id, tenantID).
		Scan(&c.ID, &c.TenantID, &c.Name, &c.Description)
	if err != nil {
		return nil, notFound(op, err)
	}
	return &c, nil
}

// CategoryBelongs сообщает, принадлежит ли категория клиенту.
func (s *Storage) CategoryBelongs(ctx context.Context, tenantID, id int64) (bool, error) {
	const op = "storage.CategoryBelongs"
	if err := checkCtx(ctx, op); err != nil {
		return false, err
	}

	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categorias WHERE id = $1 AND cliente_id = $2)`, id, tenantID).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// CreateCategory вставляет категорию и возвращает ее с присвоенным id.
func (s *Storage) CreateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	const op = "storage.CreateCategory"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO categorias (cliente_id, nome, descricao) VALUES ($1, $2, $3) RETURNING id`,
		c.TenantID, c.Name, nullableString(c.Description)).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// UpdateCategory перезаписывает категорию клиента.
func (s *Storage) UpdateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	const op = "storage.UpdateCategory"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE categorias SET nome = $1, descricao = $2 WHERE id = $3 AND cliente_id = $4`,
		c.Name, nullableString(c.Description), c.ID, c.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := expectAffected(op, res); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCategory удаляет категорию клиента. У платежей ссылка обнуляется.
func (s *Storage) DeleteCategory(ctx context.Context, tenantID, id int64) error {
	const op = "storage.DeleteCategory"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM categorias WHERE id = $1 AND cliente_id = $2`, id, tenantID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return expectAffected(op, res)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func expectAffected(op string, res rowsAffecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}
