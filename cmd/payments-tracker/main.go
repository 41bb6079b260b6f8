// Package main Payments Tracker API
//
// @title           Payments Tracker API
// @version         1.0
// @description     API учета платежей клиентов
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	paymentstracker "github.com/magabrotheeeer/payments-tracker/internal/app/payments-tracker"
	"github.com/magabrotheeeer/payments-tracker/internal/config"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/logger"
	"github.com/magabrotheeeer/payments-tracker/internal/lib/sl"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	log.Info("starting payments-tracker", slog.String("env", cfg.Env))
	log.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := paymentstracker.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("payments-tracker stopped gracefully")
}
