package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/proto/insolvency/v1"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/dedup"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/detect"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/export"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/ingest"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/notice"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/ocr"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/pipeline"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
	repo "github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/repository"
	svc "github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// optional .env for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env", "error", err)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		AppName:          "insolvencyd",
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
	defer db.Close()

	if err := db.Ping(ctx, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	docRepo := repo.NewDocumentRepository(db.Ent, logger)
	txRepo := repo.NewTransactionRepository(db.Ent, logger)
	noticeRepo := repo.NewNoticeRepository(db.Ent, logger)

	profiles := profile.NewRegistry(logger)
	if err := profiles.LoadDir(cfg.Pipeline.ProfileDir); err != nil {
		logger.Error("failed to load mapping profiles", "dir", cfg.Pipeline.ProfileDir, "error", err)
		os.Exit(1)
	}
	logger.Info("mapping profiles loaded", "dir", cfg.Pipeline.ProfileDir, "profiles", profiles.Names())

	detector := detect.New(cfg.Pipeline.ProbePages, logger)
	deduper := dedup.New(txRepo, logger)
	processor := pipeline.NewProcessor(docRepo, detector, profiles, deduper, logger)

	queue := pipeline.NewQueue(processor, logger,
		pipeline.WithWorkers(cfg.Pipeline.Workers),
		pipeline.WithQueueSize(512),
		pipeline.WithJobTimeout(5*time.Minute),
	)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)
	engine := ocr.NewEngine(docRepo, extractor, logger,
		ocr.WithOnDone(func(id uuid.UUID) {
			// the document now reads like a text PDF; re-run extraction
			if cfg.Pipeline.DefaultProfile == "" {
				return
			}
			job := pipeline.Job{DocumentID: id, Profile: cfg.Pipeline.DefaultProfile, SubmittedAt: time.Now()}
			if err := queue.Enqueue(context.Background(), job); err != nil {
				logger.Error("post-ocr enqueue failed", "document_id", id, "error", err)
			}
		}),
	)

	janitor := pipeline.NewJanitor(docRepo, cfg.OCR.StaleAfter, logger)
	if err := janitor.Start(); err != nil {
		logger.Error("failed to start janitor", "error", err)
		os.Exit(1)
	}

	generator := notice.NewGenerator(noticeRepo, txRepo, cfg.Pipeline.CaseDataDir, cfg.Pipeline.SenderName, logger)
	ingestor := ingest.NewFSIngestor(docRepo, processor, logger)
	exporter := export.NewService(txRepo, logger)

	if cfg.Pipeline.IntakeDir != "" {
		events, err := ingest.Watch(ctx, ingest.WatchConfig{
			Root:        cfg.Pipeline.IntakeDir,
			InitialScan: true,
			Debounce:    2 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("failed to start intake watcher", "dir", cfg.Pipeline.IntakeDir, "error", err)
			os.Exit(1)
		}
		go ingest.RunIntake(ctx, ingestor, cfg.Pipeline.IntakeDir, events, logger)
		logger.Info("intake watcher running", "dir", cfg.Pipeline.IntakeDir)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	v1.RegisterPipelineServiceServer(grpcServer, svc.NewPipelineService(processor, queue, engine, ingestor, exporter, profiles, txRepo, docRepo, logger))
	v1.RegisterNoticeServiceServer(grpcServer, svc.NewNoticeService(generator, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("insolvencyd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	janitor.Stop()
	queue.Shutdown(context.Background())
	engine.Wait()
	grpcServer.GracefulStop()
}
