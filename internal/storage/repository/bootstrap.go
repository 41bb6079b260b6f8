package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Bootstrap в одной транзакции создает клиента (или берет существующего
// с тем же названием), суперпользователя и его профиль.
// Если пользователь с таким именем уже есть, ничего не меняет и возвращает false.
func (s *Storage) Bootstrap(ctx context.Context, p models.BootstrapParams) (bool, error) {
	const op = "storage.Bootstrap"
	if err := checkCtx(ctx, op); err != nil {
		return false, err
	}

	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, p.Username).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return false, nil
	}

	var tenantID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO clientes (nome_empresa) VALUES ($1)
		 ON CONFLICT (nome_empresa) DO UPDATE SET nome_empresa = EXCLUDED.nome_empresa
		 RETURNING id`, p.TenantName).Scan(&tenantID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var userID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash, is_superuser, is_active)
		 VALUES ($1, $2, $3, TRUE, TRUE)
		 RETURNING id`, p.Username, p.Email, p.PasswordHash).Scan(&userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO perfis_usuario (user_id, cliente_id) VALUES ($1, $2)`, userID, tenantID); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}
