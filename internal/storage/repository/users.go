package repository

import (
	"context"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

const userColumns = `id, username, email, password_hash, is_superuser, is_active, date_joined`

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	u := &models.User{}
	err := s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.IsActive, &u.DateJoined)
	if err != nil {
		return nil, notFound(op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по id.
func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	u := &models.User{}
	err := s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.IsActive, &u.DateJoined)
	if err != nil {
		return nil, notFound(op, err)
	}
	return u, nil
}

// GetProfile возвращает привязку пользователя к клиенту.
// Если профиля нет, возвращает models.ErrNotFound.
func (s *Storage) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	const op = "storage.GetProfile"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	p := &models.Profile{}
	err := s.DB.QueryRowContext(ctx,
		`SELECT user_id, cliente_id FROM perfis_usuario WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.TenantID)
	if err != nil {
		return nil, notFound(op, err)
	}
	return p, nil
}
