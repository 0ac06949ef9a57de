package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/bistrodata/invoice-tracker/gen/proto/invoices/v1"
	"github.com/bistrodata/invoice-tracker/internal/async"
	"github.com/bistrodata/invoice-tracker/internal/common"
	"github.com/bistrodata/invoice-tracker/internal/export"
	"github.com/bistrodata/invoice-tracker/internal/ingest"
	"github.com/bistrodata/invoice-tracker/internal/pdf"
	"github.com/bistrodata/invoice-tracker/internal/pipeline"
	repo "github.com/bistrodata/invoice-tracker/internal/repository"
	"github.com/bistrodata/invoice-tracker/internal/sales"
	svc "github.com/bistrodata/invoice-tracker/internal/server"
	"github.com/bistrodata/invoice-tracker/internal/sheet"
	"github.com/bistrodata/invoice-tracker/internal/vision"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()
	entc := db.Client

	filesRepo := repo.NewFileRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	recordsRepo := repo.NewRecordRepository(entc, logger)
	salesRepo := repo.NewSalesRepository(entc, logger)

	pdfx := pdf.NewExtractor(pdf.Config{
		Pdftoppm:   cfg.Render.Pdftoppm,
		DPI:        cfg.Render.DPI,
		MaxPages:   cfg.Render.MaxPages,
		ScratchDir: cfg.Render.ScratchDir,
	}, logger)

	var visionClient vision.Extractor
	if client, err := vision.New(ctx, cfg.Vision, logger); err != nil {
		logger.Warn("vision unavailable, scanned documents will finish empty", "error", err)
	} else {
		visionClient = client
	}

	engine := pipeline.NewEngine(pipeline.Config{}, pdfx, sheet.NewExtractor(logger), sales.NewExtractor(logger), visionClient, logger)
	processor := pipeline.NewProcessor(logger, engine, filesRepo, jobsRepo, recordsRepo, salesRepo)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	if dirs := splitDirs(cfg.Ingest.WatchDirs); len(dirs) > 0 {
		evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       dirs,
			InitialScan: cfg.Ingest.InitialScan,
			Debounce:    cfg.Ingest.WatchDebounce,
			Logger:      logger,
		})
		if err != nil {
			logger.Error("failed to start watcher", "dirs", dirs, "error", err)
			os.Exit(1)
		}
		go watchLoop(ctx, evCh, errCh, ingestor, queue, logger)
		logger.Info("watching directories", "dirs", dirs)
	}

	grpcServer := grpc.NewServer()
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestor, queue, logger))
	v1.RegisterRecordsServiceServer(grpcServer, svc.NewRecordsService(recordsRepo, salesRepo, logger))
	exportSvc := export.NewService(recordsRepo, salesRepo, cfg.Export.ContainerGrams, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	logger.Info("invoiced listening", "addr", addr)
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

// watchLoop feeds watcher events into the extraction queue. Content already
// known by hash is skipped; editors firing multiple writes per save are
// coalesced upstream by the watcher debounce.
func watchLoop(ctx context.Context, evCh <-chan string, errCh <-chan error, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-evCh:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, path)
			if err != nil {
				logger.Warn("watch ingest failed", "path", path, "error", err)
				continue
			}
			if r.Deduplicated {
				logger.Info("watch event deduplicated", "path", path, "file_id", r.FileID)
				continue
			}
			_ = queue.Enqueue(ctx, async.Job{FileID: r.FileID, SubmittedAt: time.Now()})
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

func splitDirs(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}
