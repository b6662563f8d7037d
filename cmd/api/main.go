package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"candora.shop/api/internal/config"
	apphttp "candora.shop/api/internal/http"
	"candora.shop/api/internal/modules/payments"
	"candora.shop/api/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load(os.Getenv)

	gw := payments.NewStripe(payments.StripeConfig{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
	})

	// Uploads answer 503 until storage is configured; the rest of the
	// API stays up.
	store, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		logger.Warn("storage not configured, uploads disabled", "err", err)
		store = nil
	}

	r := apphttp.NewRouter(logger, cfg, gw, store)

	logger.Info("listening", "addr", cfg.Addr, "storage_driver", cfg.Storage.Driver)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
