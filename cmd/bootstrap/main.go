// Команда bootstrap применяет миграции и создает администратора с клиентом.
// Повторный запуск ничего не меняет.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/magabrotheeeer/payments-tracker/internal/config"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/logger"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/payments-tracker/internal/migrations"
	"github.com/magabrotheeeer/payments-tracker/internal/services/bootstrap"
	"github.com/magabrotheeeer/payments-tracker/internal/storage/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("bootstrap failed", sl.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", sl.Err(err))
		}
	}()

	if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return err
	}

	created, err := bootstrap.Run(ctx, db, log, bootstrap.Params{
		Username:   cfg.Bootstrap.Username,
		Password:   cfg.Bootstrap.Password,
		Email:      cfg.Bootstrap.Email,
		TenantName: cfg.Bootstrap.TenantName,
	})
	if err != nil {
		return err
	}
	log.Info("bootstrap finished", slog.Bool("created", created))
	return nil
}
