package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	examscanv1 "github.com/seyi-ajayi/examscan/gen/examscan/v1"
	"github.com/seyi-ajayi/examscan/internal/async"
	"github.com/seyi-ajayi/examscan/internal/common"
	"github.com/seyi-ajayi/examscan/internal/export"
	"github.com/seyi-ajayi/examscan/internal/importer"
	"github.com/seyi-ajayi/examscan/internal/repository"
	"github.com/seyi-ajayi/examscan/internal/server"
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

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("db health check failed", "error", err)
		os.Exit(1)
	}

	queue, err := async.NewStreamQueue(ctx, cfg.Queue, logger)
	if err != nil {
		logger.Error("connect queue", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	jobs := repository.NewJobRepository(entc, logger)
	pages := repository.NewPageRepository(entc, logger)
	extracted := repository.NewExtractedRepository(entc, logger)
	testbank := repository.NewTestbankRepository(entc, logger)

	svc := server.NewExtractionService(
		jobs, pages, extracted, testbank,
		importer.NewService(jobs, extracted, testbank, logger),
		export.NewService(jobs, extracted, logger),
		queue, cfg, logger,
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	examscanv1.RegisterExtractionServiceServer(grpcServer, svc)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("examscand listening", "addr", cfg.Server.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}
