// Package bootstrap создает администратора и клиента по умолчанию.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/payments-tracker/internal/lib/password"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Repository выполняет первичную настройку одной транзакцией.
type Repository interface {
	Bootstrap(ctx context.Context, p models.BootstrapParams) (bool, error)
}

// Params - данные администратора и клиента.
type Params struct {
	Username   string
	Password   string
	Email      string
	TenantName string
}

// Run создает клиента, суперпользователя и его профиль.
// Если пользователь уже существует, ничего не меняет и возвращает false.
func Run(ctx context.Context, repo Repository, log *slog.Logger, p Params) (bool, error) {
	const op = "services.bootstrap.Run"
	log = log.With(slog.String("op", op), slog.String("username", p.Username))

	if strings.TrimSpace(p.Username) == "" || p.Password == "" || strings.TrimSpace(p.TenantName) == "" {
		return false, fmt.Errorf("%s: username, password and tenant name are required", op)
	}

	hash, err := password.GetHash(p.Password)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	created, err := repo.Bootstrap(ctx, models.BootstrapParams{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: hash,
		TenantName:   p.TenantName,
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if !created {
		log.Info("user already exists, bootstrap skipped")
		return false, nil
	}
	log.Info("admin user and tenant created", slog.String("tenant", p.TenantName))
	return true, nil
}
