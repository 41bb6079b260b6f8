// Package tenant определяет клиента, в рамках которого выполняется запрос,
// и дает администратору доступ к списку клиентов.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/metrics"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Repository описывает чтение профилей и клиентов.
type Repository interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
	GetTenant(ctx context.Context, id int64) (*models.Tenant, error)
	ListTenants(ctx context.Context) ([]*models.Tenant, error)
}

// ProfileCache хранит привязку пользователя к клиенту.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, bool, error)
	SetProfile(ctx context.Context, p *models.Profile) error
}

// Scoper определяет клиента текущего запроса.
type Scoper struct {
	repo  Repository
	cache ProfileCache
	log   *slog.Logger
}

// NewScoper создает Scoper.
func NewScoper(repo Repository, cache ProfileCache, log *slog.Logger) *Scoper {
	return &Scoper{repo: repo, cache: cache, log: log}
}

// Principal собирает данные аутентифицированного пользователя вместе с его клиентом.
// Если профиля нет, TenantID остается nil.
func (s *Scoper) Principal(ctx context.Context, user *models.User) (*models.Principal, error) {
	const op = "services.tenant.Principal"

	p := &models.Principal{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
	}
	profile, err := s.profile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if profile != nil {
		tenantID := profile.TenantID
		p.TenantID = &tenantID
	}
	return p, nil
}

func (s *Scoper) profile(ctx context.Context, userID int64) (*models.Profile, error) {
	if cached, found, err := s.cache.GetProfile(ctx, userID); err != nil {
		s.log.Warn("profile cache read failed", slog.Int64("user_id", userID), sl.Err(err))
	} else if found {
		return cached, nil
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetProfile(ctx, profile); err != nil {
		s.log.Warn("profile cache write failed", slog.Int64("user_id", userID), sl.Err(err))
	}
	return profile, nil
}

// Resolve возвращает клиента запроса:
//   - без привязки к клиенту - nil, заголовок override не рассматривается;
//   - суперпользователь с непустым override - клиент с этим id, если он существует,
//     иначе собственный клиент администратора (без ошибки);
//   - в остальных случаях - клиент из профиля.
func (s *Scoper) Resolve(ctx context.Context, principal *models.Principal, override string) (*models.Tenant, error) {
	const op = "services.tenant.Resolve"

	if principal.TenantID == nil {
		return nil, nil
	}

	override = strings.TrimSpace(override)
	if principal.IsSuperuser && override != "" {
		t, err := s.lookupOverride(ctx, override)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if t != nil {
			return t, nil
		}
		metrics.TenantOverrideFallbacksTotal.Inc()
		s.log.Warn("managed tenant override not found, using own tenant",
			slog.Int64("user_id", principal.UserID),
			slog.String("override", override),
		)
	}

	t, err := s.repo.GetTenant(ctx, *principal.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

func (s *Scoper) lookupOverride(ctx context.Context, override string) (*models.Tenant, error) {
	id, err := strconv.ParseInt(override, 10, 64)
	if err != nil {
		return nil, nil
	}
	t, err := s.repo.GetTenant(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return t, err
}

// List возвращает всех клиентов по названию.
func (s *Scoper) List(ctx context.Context) ([]*models.Tenant, error) {
	const op = "services.tenant.List"
	tenants, err := s.repo.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tenants, nil
}

// Get возвращает клиента по id.
func (s *Scoper) Get(ctx context.Context, id int64) (*models.Tenant, error) {
	const op = "services.tenant.Get"
	t, err := s.repo.GetTenant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}
