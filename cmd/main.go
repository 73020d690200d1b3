package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"crowdfund/internal/adapter/amqp"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/port"
)

// main is the entry point of the crowdfund escrow service. It loads
// configuration, builds the ledger selected by LEDGER_BACKEND, wires the
// escrow use case to the HTTP adapter and serves until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		slog.Error("crowdfund exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ledger, closeLedger, err := newLedger(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLedger()

	publisher, closePublisher := newPublisher(cfg.AMQP, logger)
	defer closePublisher()

	svc := usecase.NewEscrowUseCase(ledger, publisher, logger)

	auth := httpadapter.NewAuthenticator(cfg.Auth)
	if auth.Insecure() {
		logger.Warn("AUTH_JWT_SECRET is empty; trusting " + httpadapter.AccountHeader + " header")
	}
	handler := httpadapter.NewHandler(svc, auth, logger, cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("ledger", cfg.Ledger.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

// newPublisher connects to the broker when configured and otherwise, or on
// dial failure, falls back to dropping events.
func newPublisher(cfg configs.AMQP, logger *slog.Logger) (port.EventPublisher, func()) {
	fallback := amqp.Fallback{Logger: logger}
	if cfg.URL == "" {
		return fallback, func() {}
	}
	p, err := amqp.NewPublisher(cfg.URL, cfg.Exchange, logger)
	if err != nil {
		logger.Warn("amqp unavailable, escrow events will be dropped", slog.Any("error", err))
		return fallback, func() {}
	}
	return p, p.Close
}
