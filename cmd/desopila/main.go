package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucasribeirorsousa/desopila-api/internal/checkout"
	"github.com/lucasribeirorsousa/desopila-api/internal/config"
	"github.com/lucasribeirorsousa/desopila-api/internal/deps"
	"github.com/lucasribeirorsousa/desopila-api/internal/gateway"
	"github.com/lucasribeirorsousa/desopila-api/internal/notify"
	"github.com/lucasribeirorsousa/desopila-api/internal/server"
	"github.com/lucasribeirorsousa/desopila-api/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.NewConfig()
	deps := deps.NewDependencies(cfg.Key)
	logger := deps.Logger

	store, err := storage.NewPostgresStorage(ctx, cfg.DatabaseURI)
	if err != nil {
		logger.Fatal(err)
	}
	defer store.Close()

	gw, err := gateway.New(cfg.Gateway, gateway.Config{
		Token:   cfg.GatewayToken,
		BaseURL: cfg.GatewayBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		logger.Fatal(err)
	}

	notifier := notify.NewEmailNotifier(cfg.SMTPAddress, cfg.SMTPFrom, logger)
	checkoutService := checkout.NewService(store, gw, notifier, logger)

	srv := server.NewServer(store, cfg, deps, checkoutService)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal(err)
	}
}
