package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"

	"fioapi/internal/config"
	"fioapi/internal/database"
	"fioapi/internal/repositories"
	"fioapi/internal/server"
	"fioapi/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("mock server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	db, err := database.Initialize(&cfg.MockServer)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewLedgerRepository(db.DB)
	seeder := services.NewLedgerSeeder(repo, services.NewLedgerGenerator(uint64(time.Now().UnixNano())), logger)
	if err := seeder.Seed(cfg.MockServer.Tokens, cfg.MockServer.SeedDays, civil.DateOf(time.Now())); err != nil {
		return err
	}

	e := server.New(&cfg.MockServer, db, seeder, prometheus.DefaultGatherer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mock bank listening", "address", cfg.MockServer.Address(), "prefix", server.APIPrefix)
		if err := e.Start(cfg.MockServer.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("mock bank shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
