package utils

import (
	"time"

	"github.com/google/uuid"

	v1 "github.com/bistrodata/invoice-tracker/gen/proto/invoices/v1"
	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/ingest"
)

func ToPBRecord(r *entity.PurchaseRecord) *v1.PurchaseRecord {
	return &v1.PurchaseRecord{
		Id:        r.ID.String(),
		Vendor:    r.Vendor,
		TxDate:    r.TxDate.Format("2006-01-02"),
		ItemName:  r.ItemName,
		Quantity:  r.Quantity,
		Unit:      r.Unit,
		UnitPrice: r.UnitPrice,
		Amount:    r.Amount,
		Category:  r.Category,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBSalesRecord(r *entity.SalesRecord) *v1.SalesRecord {
	return &v1.SalesRecord{
		Id:        r.ID.String(),
		SaleDate:  r.SaleDate.Format("2006-01-02"),
		Code:      r.Code,
		ItemName:  r.ItemName,
		Category:  r.Category,
		Quantity:  r.Qty,
		Price:     r.Price,
		NetTotal:  r.NetTotal,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBSummary(s entity.TableSummary) *v1.TableSummary {
	out := &v1.TableSummary{Rows: uint32(s.Rows)}
	if s.MinDate != nil {
		out.MinDate = s.MinDate.Format("2006-01-02")
	}
	if s.MaxDate != nil {
		out.MaxDate = s.MaxDate.Format("2006-01-02")
	}
	return out
}

func ToPBIngestResult(r ingest.IngestionResult) *v1.IngestResponse {
	out := &v1.IngestResponse{
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
	if r.FileID != uuid.Nil {
		out.FileId = r.FileID.String()
	}
	if !r.UploadedAt.IsZero() {
		out.UploadedAt = r.UploadedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
