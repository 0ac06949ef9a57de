package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/repository"
)

// Processor runs the engine over ingested files and persists the outcome:
// records upserted, sales rows inserted, session trace and counts copied
// onto the extract job audit row.
type Processor struct {
	Logger  *slog.Logger
	Engine  *Engine
	Files   repository.FileRepository
	Jobs    repository.JobRepository
	Records repository.RecordRepository
	Sales   repository.SalesRepository
}

func NewProcessor(
	logger *slog.Logger,
	engine *Engine,
	files repository.FileRepository,
	jobs repository.JobRepository,
	records repository.RecordRepository,
	salesRepo repository.SalesRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:  logger,
		Engine:  engine,
		Files:   files,
		Jobs:    jobs,
		Records: records,
		Sales:   salesRepo,
	}
}

// ProcessFile extracts one ingested file and persists everything it yields.
// Returns the job ID; the error reports this file's failure so a batch
// caller can log it and move on to the next document.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	row, err := p.Files.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.Jobs.Start(ctx, row.ID, string(format))
	if err != nil {
		return uuid.Nil, err
	}

	data, err := os.ReadFile(row.SourcePath)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, fmt.Sprintf("read source: %v", err), nil)
		return job.ID, fmt.Errorf("read source: %w", err)
	}

	session := p.Engine.Extract(ctx, data, row.Filename)
	if session.Failure != "" {
		_ = p.Jobs.FinishFailure(ctx, job.ID, session.Failure, session.Trace.Lines())
		return job.ID, errors.New(session.Failure)
	}

	if len(session.Records) > 0 {
		written, err := p.Records.UpsertBatch(ctx, session.Records)
		if err != nil {
			_ = p.Jobs.FinishFailure(ctx, job.ID, fmt.Sprintf("persist records: %v", err), session.Trace.Lines())
			return job.ID, fmt.Errorf("persist records: %w", err)
		}
		p.Logger.Info("processor.records.ok", "job_id", job.ID, "extracted", len(session.Records), "written", written)
	}
	if len(session.SalesRows) > 0 {
		inserted, err := p.Sales.InsertBatch(ctx, session.SalesRows)
		if err != nil {
			_ = p.Jobs.FinishFailure(ctx, job.ID, fmt.Sprintf("persist sales: %v", err), session.Trace.Lines())
			return job.ID, fmt.Errorf("persist sales: %w", err)
		}
		p.Logger.Info("processor.sales.ok", "job_id", job.ID, "extracted", len(session.SalesRows), "inserted", inserted)
	}

	outcome := repository.JobOutcome{
		Status:      constants.JobStatusExtracted,
		Strategy:    session.Strategy,
		Vendor:      session.Vendor,
		IsScanned:   session.IsScanned,
		RecordCount: len(session.Records),
		SalesCount:  len(session.SalesRows),
		Trace:       session.Trace.Lines(),
	}
	if len(session.Records) == 0 && len(session.SalesRows) == 0 {
		outcome.Status = constants.JobStatusEmpty
	}
	if err := p.Jobs.Finish(ctx, job.ID, outcome); err != nil {
		return job.ID, err
	}

	p.Logger.Info("processor.extract.ok",
		"file_id", fileID,
		"job_id", job.ID,
		"status", string(outcome.Status),
		"strategy", string(outcome.Strategy),
		"records", outcome.RecordCount,
		"sales_rows", outcome.SalesCount,
	)
	return job.ID, nil
}
