package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"finconnect/internal/amqp"
	"finconnect/internal/config"
	"finconnect/internal/export"
	gsheet "finconnect/internal/export/google"
	mem "finconnect/internal/export/memory"
	"finconnect/internal/log"
	"finconnect/internal/storage"
	"finconnect/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.Config{Component: log.ComponentWorker})
	slog.SetDefault(logger.Logger)

	logger.Info("Starting finconnect-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	// The worker shares the SQLite file with the server and owns the export log.
	sqliteRepo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", log.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer sqliteRepo.Close()

	// Choose the export destination. Without a spreadsheet the worker still
	// consumes and logs, appending into an in-process sink.
	var appender export.EntryAppender
	if cfg.GoogleSpreadsheetID != "" {
		sheetsClient, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", log.FieldError, err)
			os.Exit(1)
		}
		appender = sheetsClient
		logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		appender = mem.New()
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided, using in-memory sink")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	syncWorker := worker.NewSyncWorker(sqliteRepo, appender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		handlers := amqp.Handlers{
			OnSync: func(msg *amqp.EntrySyncMessage) error {
				return syncWorker.HandleSyncMessage(ctx, msg)
			},
			OnDelete: func(msg *amqp.EntryDeleteMessage) error {
				return syncWorker.HandleDeleteMessage(ctx, msg)
			},
		}
		if err := amqpClient.ConsumeEntrySync(ctx, handlers); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error("Message consumption failed", log.FieldError, err)
			}
			cancel()
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down worker...")
	cancel()

	// Give in-flight handlers a moment to finish before the deferred closes run.
	time.Sleep(2 * time.Second)
	logger.Info("Worker shutdown complete")
}
