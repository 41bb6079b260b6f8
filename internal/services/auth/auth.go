// Package auth содержит логику аутентификации: выдачу пары JWT по логину
// и паролю, обновление access токена и проверку токена запроса.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/payments-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/password"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// UserRepository описывает контракт для чтения пользователей.
type UserRepository interface {
	// GetUserByUsername возвращает пользователя по имени или models.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUser возвращает пользователя по id или models.ErrNotFound.
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// Service отвечает за выдачу и проверку JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Login проверяет пароль пользователя и выдает access и refresh токены.
// Неизвестный пользователь, неверный пароль и неактивная учетная запись
// неразличимы для клиента: все дают models.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (access, refresh string, err error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if !user.IsActive {
		s.log.Info("inactive user tried to log in", slog.Int64("user_id", user.ID))
		return "", "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	access, refresh, err = s.jwtMaker.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return access, refresh, nil
}

// Refresh выдает новый access токен по refresh токену.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	const op = "services.auth.Refresh"

	user, err := s.userFromToken(ctx, refreshToken, jwt.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	access, err := s.jwtMaker.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return access, nil
}

// Authenticate проверяет access токен и возвращает активного пользователя.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	const op = "services.auth.Authenticate"

	user, err := s.userFromToken(ctx, accessToken, jwt.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func (s *Service) userFromToken(ctx context.Context, token string, want jwt.TokenType) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token, want)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidToken, err)
	}
	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, models.ErrInvalidToken
	}
	return user, nil
}
