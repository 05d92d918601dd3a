// runjob processes one already-created extraction job inline, without a
// worker. Useful for local debugging of the pipeline.
package main

import (
	"context"
	"os"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

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

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runjob <job-id-uuid>")
		os.Exit(2)
	}
	jobID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid job id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	registry := provider.NewRegistry(cfg.Providers, provider.RetryPolicy{
		MaxRetries: cfg.Pipeline.MaxRetries,
		RetryDelay: cfg.Pipeline.RetryDelay,
		Timeout:    cfg.Pipeline.RequestTimeout,
	}, cfg.Pipeline.MaxConcurrentCalls, logger)

	jobs := repository.NewJobRepository(entc, logger)
	pages := repository.NewPageRepository(entc, logger)
	extracted := repository.NewExtractedRepository(entc, logger)

	orch := pipeline.NewOrchestrator(jobs, pages, extracted, registry, nil, cfg.Pipeline, logger)

	start := time.Now()
	if err := orch.ProcessJob(ctx, jobID); err != nil {
		logger.Error("job failed", "job_id", jobID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	job, err := jobs.Get(ctx, jobID)
	if err != nil {
		logger.Error("reload job", "job_id", jobID, "error", err)
		os.Exit(1)
	}
	logger.Info("job done",
		"job_id", jobID,
		"status", job.Status,
		"processed_pages", job.ProcessedPages,
		"question_pages", job.QuestionPages,
		"extracted_questions", job.ExtractedQuestions,
		"actual_cost_cents", job.ActualCostCents,
		"elapsed_ms", time.Since(start).Milliseconds())
}
