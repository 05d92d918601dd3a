package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/seyi-ajayi/examscan/internal/async"
	"github.com/seyi-ajayi/examscan/internal/common"
	"github.com/seyi-ajayi/examscan/internal/pipeline"
	"github.com/seyi-ajayi/examscan/internal/provider"
	"github.com/seyi-ajayi/examscan/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	queue, err := async.NewStreamQueue(ctx, cfg.Queue, logger)
	if err != nil {
		logger.Error("connect queue", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	registry := provider.NewRegistry(cfg.Providers, provider.RetryPolicy{
		MaxRetries: cfg.Pipeline.MaxRetries,
		RetryDelay: cfg.Pipeline.RetryDelay,
		Timeout:    cfg.Pipeline.RequestTimeout,
	}, cfg.Pipeline.MaxConcurrentCalls, logger)

	jobs := repository.NewJobRepository(entc, logger)
	pages := repository.NewPageRepository(entc, logger)
	extracted := repository.NewExtractedRepository(entc, logger)

	orch := pipeline.NewOrchestrator(jobs, pages, extracted, registry, nil, cfg.Pipeline, logger)

	workers := async.NewWorkerPool(queue, orch, cfg.Queue, logger)
	workers.Start(ctx)
	logger.Info("examscan-worker started",
		"workers", cfg.Queue.Workers, "stream", cfg.Queue.Stream, "consumer", cfg.Queue.Consumer)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	workers.Shutdown(shutdownCtx)
}
