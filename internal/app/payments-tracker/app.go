package paymentstracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/magabrotheeeer/payments-tracker/internal/cache"
	"github.com/magabrotheeeer/payments-tracker/internal/config"
	"github.com/magabrotheeeer/payments-tracker/internal/events"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/migrations"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
	authservice "github.com/magabrotheeeer/payments-tracker/internal/services/auth"
	"github.com/magabrotheeeer/payments-tracker/internal/services/bootstrap"
	categoryservice "github.com/magabrotheeeer/payments-tracker/internal/services/category"
	paymentservice "github.com/magabrotheeeer/payments-tracker/internal/services/payment"
	tenantservice "github.com/magabrotheeeer/payments-tracker/internal/services/tenant"
	"github.com/magabrotheeeer/payments-tracker/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// App - HTTP API и, если задан адрес, gRPC health-сервер.
type App struct {
	server  *http.Server
	grpc    *grpc.Server
	health  *health.Server
	grpcLis net.Listener
	logger  *slog.Logger
	db      *repository.Storage
	closers []func() error
}

// New подключает хранилище, применяет миграции, при необходимости выполняет
// первичную настройку и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.New"

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("%s: timezone: %w", op, err)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a := &App{logger: logger, db: db}

	if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := repository.CheckDatabaseReady(ctx, db); err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Bootstrap.Enabled {
		if _, err := bootstrap.Run(ctx, db, logger, bootstrap.Params{
			Username:   cfg.Bootstrap.Username,
			Password:   cfg.Bootstrap.Password,
			Email:      cfg.Bootstrap.Email,
			TenantName: cfg.Bootstrap.TenantName,
		}); err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	var profiles tenantservice.ProfileCache = cache.Noop{}
	if cfg.AddressRedis != "" {
		c, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		profiles = c
		a.closers = append(a.closers, c.Close)
		logger.Info("profile cache enabled", slog.String("address", cfg.AddressRedis))
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewAMQP(logger, cfg.RabbitMQURL, cfg.Exchange, cfg.Retries, cfg.RetryDelay)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		publisher = p
		a.closers = append(a.closers, p.Close)
		logger.Info("domain events enabled", slog.String("exchange", cfg.Exchange))
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	today := func() models.Date { return models.Today(loc) }

	services := Services{
		Auth:       authservice.NewService(db, jwtMaker, logger),
		Scoper:     tenantservice.NewScoper(db, profiles, logger),
		Categories: categoryservice.NewService(db, publisher, logger),
		Payments:   paymentservice.NewService(db, publisher, today, logger),
		DB:         db,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, services)

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	if cfg.GRPCAddress != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.grpcLis = lis
		a.grpc = grpc.NewServer()
		a.health = health.NewServer()
		healthpb.RegisterHealthServer(a.grpc, a.health)
		a.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	}

	return a, nil
}

// Run запускает серверы и блокируется до отмены ctx или ошибки одного из них.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if a.grpc != nil {
		g.Go(func() error {
			a.logger.Info("gRPC health service listening on", slog.String("address", a.grpcLis.Addr().String()))
			return a.grpc.Serve(a.grpcLis)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down gracefully")

		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if a.grpc != nil {
			a.health.Shutdown()
			a.grpc.GracefulStop()
		}
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	})

	return g.Wait()
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to close dependency", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
