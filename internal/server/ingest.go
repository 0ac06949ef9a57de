package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/bistrodata/invoice-tracker/gen/proto/invoices/v1"
	"github.com/bistrodata/invoice-tracker/internal/async"
	"github.com/bistrodata/invoice-tracker/internal/common"
	"github.com/bistrodata/invoice-tracker/internal/ingest"
	"github.com/bistrodata/invoice-tracker/internal/utils"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue async.Queue, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		ingestor: ing,
		queue:    queue,
		logger:   logger,
	}
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	validator := common.NewValidator().Field("path", path, common.Required)
	if err := validator.Error(); err != nil {
		s.logger.Error("ingest request rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Info("starting file ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := utils.ToPBIngestResult(r)
	resp.Queued = s.maybeEnqueue(ctx, r, req.GetProcess(), req.GetForce())
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	validator := common.NewValidator().Field("root_path", root, common.Required)
	if err := validator.Error(); err != nil {
		s.logger.Error("ingest directory request rejected", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	skipHidden := !req.GetIncludeHidden()

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}
	for _, r := range results {
		item := utils.ToPBIngestResult(r)
		if r.Err == "" {
			item.Queued = s.maybeEnqueue(ctx, r, req.GetProcess(), req.GetForce())
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

// maybeEnqueue queues extraction for a freshly ingested file. Deduplicated
// files already have a job history and are skipped unless forced.
func (s *IngestionService) maybeEnqueue(ctx context.Context, r ingest.IngestionResult, process, force bool) bool {
	if !process || s.queue == nil {
		return false
	}
	if r.Deduplicated && !force {
		return false
	}
	job := async.Job{
		FileID:      r.FileID,
		Force:       force,
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Error("enqueue failed", "file_id", r.FileID, "error", err)
		return false
	}
	return true
}
