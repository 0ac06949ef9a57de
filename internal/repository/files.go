package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bistrodata/invoice-tracker/gen/ent"
	entfile "github.com/bistrodata/invoice-tracker/gen/ent/invoicefile"
)

type FileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error)
	// UpsertByHash returns the existing row for known content, creating one
	// otherwise. The bool reports whether the content was already known.
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error)
}

type fileRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFileRepository(entc *ent.Client, logger *slog.Logger) FileRepository {
	return &fileRepository{
		ent:    entc,
		logger: logger,
	}
}

func (r *fileRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	return r.ent.InvoiceFile.Get(ctx, id)
}

func (r *fileRepository) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *fileRepository) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *fileRepository) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert invoice file by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
