package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/gen/ent"
	entjob "github.com/bistrodata/invoice-tracker/gen/ent/extractjob"
)

// JobOutcome captures how a session ended for the audit row.
type JobOutcome struct {
	Status      constants.JobStatus
	Strategy    constants.Strategy
	Vendor      string
	IsScanned   bool
	RecordCount int
	SalesCount  int
	Trace       []string
}

type JobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error)
	Finish(ctx context.Context, jobID uuid.UUID, outcome JobOutcome) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string, trace []string) error
	ListByFile(ctx context.Context, fileID uuid.UUID) ([]*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) Finish(ctx context.Context, jobID uuid.UUID, outcome JobOutcome) error {
	update := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(outcome.Status)).
		SetIsScanned(outcome.IsScanned).
		SetRecordCount(outcome.RecordCount).
		SetSalesCount(outcome.SalesCount).
		SetTrace(outcome.Trace).
		SetFinishedAt(time.Now())
	if outcome.Strategy != "" {
		update = update.SetStrategy(string(outcome.Strategy))
	}
	if outcome.Vendor != "" {
		update = update.SetVendor(outcome.Vendor)
	}

	if _, err := update.Save(ctx); err != nil {
		r.log.Error("extract_job finish failed", "job_id", jobID, "status", string(outcome.Status), "err", err)
		return err
	}
	r.log.Info("extract_job finished",
		"job_id", jobID,
		"status", string(outcome.Status),
		"strategy", string(outcome.Strategy),
		"records", outcome.RecordCount,
		"sales_rows", outcome.SalesCount,
	)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string, trace []string) error {
	update := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message)
	if len(trace) > 0 {
		update = update.SetTrace(trace)
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) ListByFile(ctx context.Context, fileID uuid.UUID) ([]*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Query().
		Where(entjob.FileID(fileID)).
		Order(entjob.ByStartedAt()).
		All(ctx)
}
