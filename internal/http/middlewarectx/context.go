package middlewarectx

import (
	"context"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// PrincipalKey - ключ аутентифицированного пользователя в контексте.
	PrincipalKey Key = "principal"
	// TenantKey - ключ клиента текущего запроса в контексте.
	TenantKey Key = "tenant"
)

// WithPrincipal кладет пользователя в контекст.
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFrom достает пользователя из контекста.
func PrincipalFrom(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(*models.Principal)
	return p, ok && p != nil
}

// WithTenant кладет клиента текущего запроса в контекст. nil допустим.
func WithTenant(ctx context.Context, t *models.Tenant) context.Context {
	return context.WithValue(ctx, TenantKey, t)
}

// TenantFrom возвращает клиента текущего запроса или nil, если его нет.
func TenantFrom(ctx context.Context) *models.Tenant {
	t, _ := ctx.Value(TenantKey).(*models.Tenant)
	return t
}
