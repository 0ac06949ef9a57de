package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/bistrodata/invoice-tracker/internal/common"
	"github.com/bistrodata/invoice-tracker/internal/export"
	"github.com/bistrodata/invoice-tracker/internal/ingest"
	"github.com/bistrodata/invoice-tracker/internal/pdf"
	"github.com/bistrodata/invoice-tracker/internal/pipeline"
	repo "github.com/bistrodata/invoice-tracker/internal/repository"
	"github.com/bistrodata/invoice-tracker/internal/sales"
	"github.com/bistrodata/invoice-tracker/internal/sheet"
	"github.com/bistrodata/invoice-tracker/internal/vision"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process invoices from (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "invoices.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

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
		logger.Warn("vision not configured, scanned documents will finish empty", "error", err)
	} else {
		visionClient = client
	}

	engine := pipeline.NewEngine(pipeline.Config{}, pdfx, sheet.NewExtractor(logger), sales.NewExtractor(logger), visionClient, logger)
	processor := pipeline.NewProcessor(logger, engine, filesRepo, jobsRepo, recordsRepo, salesRepo)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	logger.Info("starting ingestion", "dir", *dir)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, result := range ingestionResults {
		if result.Err == "" {
			ingested = append(ingested, result.FileID)
		}
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	processed := 0
	failures := 0

	for _, fileID := range ingested {
		logger.Info("processing file", "file_id", fileID)
		_, err := processor.ProcessFile(ctx, fileID)
		if err != nil {
			logger.Error("failed to process file", "file_id", fileID, "error", err)
			failures++
		} else {
			processed++
		}
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(recordsRepo, salesRepo, cfg.Export.ContainerGrams, logger)

	xlsxBytes, err := exportService.ExportXLSX(ctx, from, to)
	if err != nil {
		logger.Error("failed to export report", "error", err)
		os.Exit(1)
	}

	err = os.WriteFile(*out, xlsxBytes, 0644)
	if err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files_ingested", len(ingested),
		"files_processed", processed,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files ingested: %d\n", len(ingested))
	fmt.Printf("- Files processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
