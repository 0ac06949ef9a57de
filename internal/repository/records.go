package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/gen/ent"
	"github.com/bistrodata/invoice-tracker/gen/ent/purchaserecord"
	"github.com/bistrodata/invoice-tracker/internal/entity"
)

// upsertChunkSize bounds one multi-row upsert statement.
const upsertChunkSize = 50

// listPageSize bounds one page of a date-range load; loads loop pages so
// callers see the full result regardless of size.
const listPageSize = 1000

type RecordRepository interface {
	// UpsertBatch writes canonical records, updating rows that collide on
	// (vendor, tx_date, item_name, amount). Returns how many records were
	// written. Records with unparseable dates are skipped, not fatal.
	UpsertBatch(ctx context.Context, records []entity.Record) (int, error)
	ListByDateRange(ctx context.Context, from, to *time.Time, vendorFilter string) ([]*entity.PurchaseRecord, error)
	DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error)
	Summary(ctx context.Context) (entity.TableSummary, error)
}

type recordRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(entc *ent.Client, logger *slog.Logger) RecordRepository {
	return &recordRepository{ent: entc, logger: logger}
}

func (r *recordRepository) UpsertBatch(ctx context.Context, records []entity.Record) (int, error) {
	written := 0
	for start := 0; start < len(records); start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]

		builders := make([]*ent.PurchaseRecordCreate, 0, len(chunk))
		for _, rec := range chunk {
			b, ok := r.builder(rec)
			if !ok {
				continue
			}
			builders = append(builders, b)
		}
		if len(builders) == 0 {
			continue
		}

		err := r.ent.PurchaseRecord.CreateBulk(builders...).
			OnConflict(entsql.ConflictColumns(
				purchaserecord.FieldVendor,
				purchaserecord.FieldTxDate,
				purchaserecord.FieldItemName,
				purchaserecord.FieldAmount,
			)).
			UpdateNewValues().
			Exec(ctx)
		if err == nil {
			written += len(builders)
			continue
		}

		// Retry the chunk row by row so one bad record cannot sink the
		// other forty-nine.
		r.logger.Warn("record chunk upsert failed, retrying per row", "chunk", len(builders), "error", err)
		for _, rec := range chunk {
			b, ok := r.builder(rec)
			if !ok {
				continue
			}
			rowErr := b.
				OnConflict(entsql.ConflictColumns(
					purchaserecord.FieldVendor,
					purchaserecord.FieldTxDate,
					purchaserecord.FieldItemName,
					purchaserecord.FieldAmount,
				)).
				UpdateNewValues().
				Exec(ctx)
			if rowErr != nil {
				r.logger.Warn("record row skipped", "vendor", rec.Vendor, "item", rec.ItemName, "date", rec.Date, "error", rowErr)
				continue
			}
			written++
		}
	}

	r.logger.Info("records.upsert.ok", "attempted", len(records), "written", written)
	return written, nil
}

// builder maps one canonical record onto a create statement. Returns false
// when the record cannot be stored (bad date, empty names).
func (r *recordRepository) builder(rec entity.Record) (*ent.PurchaseRecordCreate, bool) {
	txDate, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		r.logger.Warn("record skipped, bad date", "date", rec.Date, "item", rec.ItemName)
		return nil, false
	}
	if rec.Vendor == "" || rec.ItemName == "" {
		r.logger.Warn("record skipped, missing vendor or item", "vendor", rec.Vendor, "item", rec.ItemName)
		return nil, false
	}
	return r.ent.PurchaseRecord.Create().
		SetVendor(rec.Vendor).
		SetTxDate(txDate).
		SetItemName(rec.ItemName).
		SetQuantity(rec.Quantity).
		SetUnit(rec.Unit).
		SetUnitPrice(rec.UnitPrice).
		SetAmount(rec.Amount).
		SetCategory(string(constants.CategorizeItem(rec.ItemName))), true
}

func (r *recordRepository) ListByDateRange(ctx context.Context, from, to *time.Time, vendorFilter string) ([]*entity.PurchaseRecord, error) {
	var result []*entity.PurchaseRecord
	for offset := 0; ; offset += listPageSize {
		q := r.ent.PurchaseRecord.Query()
		if from != nil {
			q = q.Where(purchaserecord.TxDateGTE(*from))
		}
		if to != nil {
			q = q.Where(purchaserecord.TxDateLTE(*to))
		}
		if vendorFilter != "" {
			q = q.Where(purchaserecord.VendorContainsFold(vendorFilter))
		}
		page, err := q.
			Order(purchaserecord.ByTxDate(), purchaserecord.ByVendor(), purchaserecord.ByItemName()).
			Offset(offset).
			Limit(listPageSize).
			All(ctx)
		if err != nil {
			r.logger.Error("failed to list purchase records", "offset", offset, "error", err)
			return nil, err
		}
		for _, row := range page {
			result = append(result, toPurchaseRecord(row))
		}
		if len(page) < listPageSize {
			break
		}
	}
	return result, nil
}

func (r *recordRepository) DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	n, err := r.ent.PurchaseRecord.Delete().
		Where(purchaserecord.TxDateGTE(from), purchaserecord.TxDateLTE(to)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete purchase records", "from", from, "to", to, "error", err)
		return 0, err
	}
	r.logger.Info("records.delete.ok", "from", from.Format("2006-01-02"), "to", to.Format("2006-01-02"), "deleted", n)
	return n, nil
}

func (r *recordRepository) Summary(ctx context.Context) (entity.TableSummary, error) {
	rows, err := r.ent.PurchaseRecord.Query().Count(ctx)
	if err != nil {
		return entity.TableSummary{}, err
	}
	s := entity.TableSummary{Rows: rows}
	if rows == 0 {
		return s, nil
	}

	first, err := r.ent.PurchaseRecord.Query().Order(purchaserecord.ByTxDate()).First(ctx)
	if err != nil {
		return s, err
	}
	last, err := r.ent.PurchaseRecord.Query().Order(purchaserecord.ByTxDate(entsql.OrderDesc())).First(ctx)
	if err != nil {
		return s, err
	}
	s.MinDate, s.MaxDate = &first.TxDate, &last.TxDate
	return s, nil
}

func toPurchaseRecord(row *ent.PurchaseRecord) *entity.PurchaseRecord {
	return &entity.PurchaseRecord{
		ID:        row.ID,
		Vendor:    row.Vendor,
		TxDate:    row.TxDate,
		ItemName:  row.ItemName,
		Quantity:  row.Quantity,
		Unit:      row.Unit,
		UnitPrice: row.UnitPrice,
		Amount:    row.Amount,
		Category:  row.Category,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
