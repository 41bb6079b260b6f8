// Package paymentstracker собирает и запускает HTTP API учета платежей.
package paymentstracker

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/payments-tracker/docs"
	"github.com/magabrotheeeer/payments-tracker/internal/config"
	"github.com/magabrotheeeer/payments-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/payments-tracker/internal/http/handlers/auth/refresh"
	categorycreate "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/category/create"
	categorylist "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/category/list"
	categoryread "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/category/read"
	categoryremove "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/category/remove"
	categoryupdate "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/category/update"
	"github.com/magabrotheeeer/payments-tracker/internal/http/handlers/health"
	paymentcreate "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/payment/create"
	paymentexport "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/payment/export"
	paymentlist "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/payment/list"
	paymentread "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/payment/read"
	paymentremove "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/payment/remove"
	paymentupdate "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/payment/update"
	"github.com/magabrotheeeer/payments-tracker/internal/http/handlers/profile"
	tenantlist "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/tenant/list"
	tenantread "github.com/magabrotheeeer/payments-tracker/internal/http/handlers/tenant/read"
	"github.com/magabrotheeeer/payments-tracker/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/payments-tracker/internal/services/auth"
	categoryservice "github.com/magabrotheeeer/payments-tracker/internal/services/category"
	paymentservice "github.com/magabrotheeeer/payments-tracker/internal/services/payment"
	tenantservice "github.com/magabrotheeeer/payments-tracker/internal/services/tenant"
)

// Services - зависимости обработчиков.
type Services struct {
	Auth       *authservice.Service
	Scoper     *tenantservice.Scoper
	Categories *categoryservice.Service
	Payments   *paymentservice.Service
	DB         health.Pinger
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, svc Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.StripSlashes,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewarectx.ManagedTenantHeader},
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middlewarectx.MetricsMiddleware,
	)

	r.Get("/healthz", health.New(logger, svc.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst))

		// Открытые конечные точки
		r.Post("/token", login.New(logger, svc.Auth).ServeHTTP)
		r.Post("/token/refresh", refresh.New(logger, svc.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, svc.Scoper, logger))

			r.Get("/profile", profile.New(logger).ServeHTTP)

			r.Route("/admin/clientes", func(r chi.Router) {
				r.Use(middlewarectx.SuperuserOnly(logger))
				r.Get("/", tenantlist.New(logger, svc.Scoper).ServeHTTP)
				r.Get("/{id}", tenantread.New(logger, svc.Scoper).ServeHTTP)
			})

			// Все остальное выполняется в пределах клиента запроса
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.TenantMiddleware(svc.Scoper, logger))

				r.Route("/categorias", func(r chi.Router) {
					update := categoryupdate.New(logger, svc.Categories)
					r.Get("/", categorylist.New(logger, svc.Categories).ServeHTTP)
					r.Post("/", categorycreate.New(logger, svc.Categories).ServeHTTP)
					r.Get("/{id}", categoryread.New(logger, svc.Categories).ServeHTTP)
					r.Put("/{id}", update.ServeHTTP)
					r.Patch("/{id}", update.ServeHTTP)
					r.Delete("/{id}", categoryremove.New(logger, svc.Categories).ServeHTTP)
				})

				r.Route("/pagamentos", func(r chi.Router) {
					update := paymentupdate.New(logger, svc.Payments)
					r.Get("/", paymentlist.New(logger, svc.Payments).ServeHTTP)
					r.Post("/", paymentcreate.New(logger, svc.Payments).ServeHTTP)
					r.Get("/exportar", paymentexport.New(logger, svc.Payments).ServeHTTP)
					r.Get("/{id}", paymentread.New(logger, svc.Payments).ServeHTTP)
					r.Put("/{id}", update.ServeHTTP)
					r.Patch("/{id}", update.ServeHTTP)
					r.Delete("/{id}", paymentremove.New(logger, svc.Payments).ServeHTTP)
				})
			})
		})
	})
}
