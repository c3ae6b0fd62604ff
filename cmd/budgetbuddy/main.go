package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/events"
	apphttp "budgetbuddy/internal/http"
	"budgetbuddy/internal/log"
	"budgetbuddy/internal/services"
	"budgetbuddy/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	storageLog := logger.WithComponent(log.ComponentStorage)
	kv, cleanup, err := storage.OpenKeyValue(storage.BackendType(cfg.DataBackend), cfg.SQLiteDBPath)
	if err != nil {
		storageLog.Error("Failed to open storage backend", log.FieldError, err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer cleanup()
	storageLog.Info("Storage backend ready", "backend", cfg.DataBackend)

	store := storage.NewStore(kv)

	// AMQP change events are optional; a nil client disables publishing.
	eventsLog := logger.WithComponent(log.ComponentEvents)
	var eventsClient *events.Client
	if cfg.EventsEnabled() {
		eventsClient, err = events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			eventsLog.Error("Failed to connect to AMQP broker", log.FieldError, err)
			os.Exit(1)
		}
		defer eventsClient.Close()
		eventsLog.Info("Change events enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		eventsLog.Info("Change events disabled - no AMQP_URL provided")
	}

	srv := apphttp.NewServer(":"+cfg.Port,
		services.NewIncomeService(store, eventsClient),
		services.NewExpenseService(store, eventsClient),
		services.NewBudgetService(store, eventsClient),
		services.NewDashboardService(store),
		store.Ping)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	httpLog := logger.WithComponent(log.ComponentHTTP)
	g.Go(func() error {
		httpLog.Info("Starting budgetbuddy server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
