package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/bistrodata/invoice-tracker/internal/common"
	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/pdf"
	"github.com/bistrodata/invoice-tracker/internal/pipeline"
	"github.com/bistrodata/invoice-tracker/internal/sales"
	"github.com/bistrodata/invoice-tracker/internal/sheet"
	"github.com/bistrodata/invoice-tracker/internal/vision"
)

// report is the stdout shape for a single extraction run.
type report struct {
	Filename  string            `json:"filename"`
	Vendor    string            `json:"vendor,omitempty"`
	Strategy  string            `json:"strategy,omitempty"`
	IsScanned bool              `json:"is_scanned"`
	Failure   string            `json:"failure,omitempty"`
	Records   []entity.Record   `json:"records,omitempty"`
	SalesRows []entity.SalesRow `json:"sales_rows,omitempty"`
	Trace     []string          `json:"trace"`
	ElapsedMS int64             `json:"elapsed_ms"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: extract <invoice-file>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pdfx := pdf.NewExtractor(pdf.Config{
		Pdftoppm:   cfg.Render.Pdftoppm,
		DPI:        cfg.Render.DPI,
		MaxPages:   cfg.Render.MaxPages,
		ScratchDir: cfg.Render.ScratchDir,
	}, logger)

	var visionClient vision.Extractor
	if client, verr := vision.New(ctx, cfg.Vision, logger); verr == nil {
		visionClient = client
	}

	engine := pipeline.NewEngine(pipeline.Config{}, pdfx, sheet.NewExtractor(logger), sales.NewExtractor(logger), visionClient, logger)

	start := time.Now()
	session := engine.Extract(ctx, data, filepath.Base(path))

	out := report{
		Filename:  session.Filename,
		Vendor:    session.Vendor,
		Strategy:  string(session.Strategy),
		IsScanned: session.IsScanned,
		Failure:   session.Failure,
		Records:   session.Records,
		SalesRows: session.SalesRows,
		Trace:     session.Trace.Lines(),
		ElapsedMS: time.Since(start).Milliseconds(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
		os.Exit(1)
	}
	if session.Failure != "" {
		os.Exit(1)
	}
}
