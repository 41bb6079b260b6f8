// Package middlewarectx содержит HTTP middleware: проверку JWT, определение
// клиента запроса, доступ только для суперпользователя, ограничение частоты
// запросов и сбор метрик.
//
// JWTMiddleware проверяет токен в заголовке Authorization, загружает профиль
// пользователя и кладет его в контекст. TenantMiddleware определяет клиента,
// в пределах которого выполняется запрос.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/payments-tracker/internal/http/response"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// ManagedTenantHeader - заголовок, которым суперпользователь выбирает клиента.
const ManagedTenantHeader = "X-Cliente-Gerenciado-Id"

// Authenticator проверяет access-токен и возвращает активного пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// Scoper строит профиль пользователя и определяет клиента запроса.
type Scoper interface {
	Principal(ctx context.Context, user *models.User) (*models.Principal, error)
	Resolve(ctx context.Context, principal *models.Principal, override string) (*models.Tenant, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден и пользователь активен, кладет его профиль в контекст запроса,
// иначе возвращает 401 Unauthorized.
func JWTMiddleware(auth Authenticator, scoper Scoper, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Info("missing or invalid authorization header")
				response.Write(w, r, http.StatusUnauthorized, response.Error(response.MsgNotAuthorized))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := auth.Authenticate(r.Context(), tokenStr)
			if err != nil {
				response.Fail(w, r, log, "invalid or expired token", err)
				return
			}

			principal, err := scoper.Principal(r.Context(), user)
			if err != nil {
				response.Fail(w, r, log, "failed to load user profile", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// TenantMiddleware определяет клиента запроса: свой клиент пользователя или,
// для суперпользователя, клиент из заголовка X-Cliente-Gerenciado-Id.
// Отсутствие клиента не ошибка: чтение вернет пустой результат, запись будет отклонена.
func TenantMiddleware(scoper Scoper, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.TenantMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			principal, ok := PrincipalFrom(r.Context())
			if !ok {
				log.Error("principal missing in context")
				response.Write(w, r, http.StatusUnauthorized, response.Error(response.MsgNotAuthorized))
				return
			}

			tenant, err := scoper.Resolve(r.Context(), principal, r.Header.Get(ManagedTenantHeader))
			if err != nil {
				log.Error("failed to resolve tenant", sl.Err(err))
				response.Write(w, r, http.StatusInternalServerError, response.Error(response.MsgInternal))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenant)))
		})
	}
}

// SuperuserOnly пропускает только суперпользователей, остальным отвечает 403.
func SuperuserOnly(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFrom(r.Context())
			if !ok || !principal.IsSuperuser {
				log.Info("superuser required",
					slog.String("op", "middlewarectx.SuperuserOnly"),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				response.Write(w, r, http.StatusForbidden, response.Error(response.MsgForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
