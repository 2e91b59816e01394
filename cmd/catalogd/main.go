package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/catalogkit/extractor/gen/proto/catalog/v1"
	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/consolidate"
	"github.com/catalogkit/extractor/internal/export"
	"github.com/catalogkit/extractor/internal/extract"
	"github.com/catalogkit/extractor/internal/extract/hybrid"
	"github.com/catalogkit/extractor/internal/extract/ocrtext"
	"github.com/catalogkit/extractor/internal/extract/pdftext"
	"github.com/catalogkit/extractor/internal/extract/vision"
	"github.com/catalogkit/extractor/internal/ingest"
	"github.com/catalogkit/extractor/internal/passes"
	repo "github.com/catalogkit/extractor/internal/repository"
	svc "github.com/catalogkit/extractor/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	passRepo := repo.NewPassRepository(entc, logger)
	itemRepo := repo.NewItemRepository(entc, logger)
	consolidatedRepo := repo.NewConsolidatedItemRepository(entc, logger)

	engine := consolidate.NewEngine(itemRepo, consolidatedRepo, logger)

	presets, err := extract.LoadPresets(cfg.Extraction.PresetsFile)
	if err != nil {
		logger.Error("failed to load method presets", "path", cfg.Extraction.PresetsFile, "error", err)
		os.Exit(1)
	}

	registry, err := buildRegistry(logger)
	if err != nil {
		logger.Error("failed to build adapter registry", "error", err)
		os.Exit(1)
	}
	logger.Info("extraction methods available", "methods", registry.Methods())

	queue := passes.NewQueue(logger,
		passes.WithWorkers(cfg.Extraction.Workers),
		passes.WithQueueSize(cfg.Extraction.QueueSize),
		passes.WithPassTimeout(cfg.Extraction.PassTimeout),
	)

	manager := passes.NewManager(docsRepo, passRepo, itemRepo, registry, presets, engine, queue, cfg.Extraction.DefaultDPI, logger)
	queue.Start(manager)

	ingestor := ingest.NewService(docsRepo, cfg.Storage.UploadDir, logger)
	exporter := export.NewService(consolidatedRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	catalogService := svc.NewCatalogService(ingestor, docsRepo, manager, engine, exporter, logger)
	v1.RegisterCatalogServiceServer(grpcServer, catalogService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("catalogd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// buildRegistry binds every runnable method to its adapter. claude_vision is
// only registered when an API key is present; creating such a pass without
// one fails validation instead of failing mid-execution.
func buildRegistry(logger *slog.Logger) (*extract.Registry, error) {
	registry := extract.NewRegistry()

	text := pdftext.New(logger)
	ocrTable := ocrtext.New(ocrtext.Config{PSM: 6, BaseConfidence: 60}, logger)
	ocrPlain := ocrtext.New(ocrtext.Config{PSM: 4, BaseConfidence: 55}, logger)
	ocrAggressive := ocrtext.New(ocrtext.Config{PSM: 11, OEM: 1, BaseConfidence: 50}, logger)

	if err := registry.Register("text_direct", text); err != nil {
		return nil, err
	}
	if err := registry.Register("ocr_table", ocrTable); err != nil {
		return nil, err
	}
	if err := registry.Register("ocr_plain", ocrPlain); err != nil {
		return nil, err
	}
	if err := registry.Register("ocr_aggressive", ocrAggressive); err != nil {
		return nil, err
	}
	if err := registry.Register("hybrid", hybrid.New(text, ocrTable, logger)); err != nil {
		return nil, err
	}

	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		client := vision.NewClient(vision.Config{}, logger)
		if err := registry.Register("claude_vision", vision.New(client, logger)); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set, claude_vision method disabled")
	}

	return registry, nil
}
