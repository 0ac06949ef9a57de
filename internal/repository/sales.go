package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/bistrodata/invoice-tracker/gen/ent"
	"github.com/bistrodata/invoice-tracker/gen/ent/salesrecord"
	"github.com/bistrodata/invoice-tracker/internal/entity"
)

// salesChunkSize bounds one multi-row insert statement.
const salesChunkSize = 100

type SalesRepository interface {
	// InsertBatch writes sales rows, silently skipping rows whose
	// (sale_date, code, item_name, category) key already exists. Returns
	// how many rows were actually inserted.
	InsertBatch(ctx context.Context, rows []entity.SalesRow) (int, error)
	ListByDateRange(ctx context.Context, from, to *time.Time, itemFilter string) ([]*entity.SalesRecord, error)
	DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error)
	Summary(ctx context.Context) (entity.TableSummary, error)
}

type salesRepository struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSalesRepository(entc *ent.Client, logger *slog.Logger) SalesRepository {
	return &salesRepository{ent: entc, logger: logger}
}

func (r *salesRepository) InsertBatch(ctx context.Context, rows []entity.SalesRow) (int, error) {
	before, err := r.ent.SalesRecord.Query().Count(ctx)
	if err != nil {
		return 0, err
	}

	for start := 0; start < len(rows); start += salesChunkSize {
		end := start + salesChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		builders := make([]*ent.SalesRecordCreate, 0, len(chunk))
		for _, row := range chunk {
			saleDate, ok := monthStart(row.Month)
			if !ok {
				r.logger.Warn("sales row skipped, bad month", "month", row.Month, "item", row.Name)
				continue
			}
			builders = append(builders, r.ent.SalesRecord.Create().
				SetSaleDate(saleDate).
				SetCode(row.Code).
				SetItemName(row.Name).
				SetCategory(row.Category).
				SetQuantity(row.Qty).
				SetPrice(row.Price).
				SetNetTotal(row.NetTotal))
		}
		if len(builders) == 0 {
			continue
		}

		err := r.ent.SalesRecord.CreateBulk(builders...).
			OnConflict(entsql.ConflictColumns(
				salesrecord.FieldSaleDate,
				salesrecord.FieldCode,
				salesrecord.FieldItemName,
				salesrecord.FieldCategory,
			)).
			DoNothing().
			Exec(ctx)
		if err != nil {
			r.logger.Error("sales chunk insert failed", "chunk", len(builders), "error", err)
			return 0, err
		}
	}

	after, err := r.ent.SalesRecord.Query().Count(ctx)
	if err != nil {
		return 0, err
	}
	inserted := after - before
	r.logger.Info("sales.insert.ok", "attempted", len(rows), "inserted", inserted)
	return inserted, nil
}

// monthStart maps a report month (YYYY-MM) to its first day. A full date is
// also accepted.
func monthStart(month string) (time.Time, bool) {
	if t, err := time.Parse("2006-01", month); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", month); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (r *salesRepository) ListByDateRange(ctx context.Context, from, to *time.Time, itemFilter string) ([]*entity.SalesRecord, error) {
	var result []*entity.SalesRecord
	for offset := 0; ; offset += listPageSize {
		q := r.ent.SalesRecord.Query()
		if from != nil {
			q = q.Where(salesrecord.SaleDateGTE(*from))
		}
		if to != nil {
			q = q.Where(salesrecord.SaleDateLTE(*to))
		}
		if itemFilter != "" {
			q = q.Where(salesrecord.ItemNameContainsFold(itemFilter))
		}
		page, err := q.
			Order(salesrecord.BySaleDate(), salesrecord.ByCode()).
			Offset(offset).
			Limit(listPageSize).
			All(ctx)
		if err != nil {
			r.logger.Error("failed to list sales records", "offset", offset, "error", err)
			return nil, err
		}
		for _, row := range page {
			result = append(result, toSalesRecord(row))
		}
		if len(page) < listPageSize {
			break
		}
	}
	return result, nil
}

func (r *salesRepository) DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	n, err := r.ent.SalesRecord.Delete().
		Where(salesrecord.SaleDateGTE(from), salesrecord.SaleDateLTE(to)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete sales records", "from", from, "to", to, "error", err)
		return 0, err
	}
	r.logger.Info("sales.delete.ok", "from", from.Format("2006-01-02"), "to", to.Format("2006-01-02"), "deleted", n)
	return n, nil
}

func (r *salesRepository) Summary(ctx context.Context) (entity.TableSummary, error) {
	rows, err := r.ent.SalesRecord.Query().Count(ctx)
	if err != nil {
		return entity.TableSummary{}, err
	}
	s := entity.TableSummary{Rows: rows}
	if rows == 0 {
		return s, nil
	}

	first, err := r.ent.SalesRecord.Query().Order(salesrecord.BySaleDate()).First(ctx)
	if err != nil {
		return s, err
	}
	last, err := r.ent.SalesRecord.Query().Order(salesrecord.BySaleDate(entsql.OrderDesc())).First(ctx)
	if err != nil {
		return s, err
	}
	s.MinDate, s.MaxDate = &first.SaleDate, &last.SaleDate
	return s, nil
}

func toSalesRecord(row *ent.SalesRecord) *entity.SalesRecord {
	return &entity.SalesRecord{
		ID:        row.ID,
		SaleDate:  row.SaleDate,
		Code:      row.Code,
		ItemName:  row.ItemName,
		Category:  row.Category,
		Qty:       row.Quantity,
		Price:     row.Price,
		NetTotal:  row.NetTotal,
		CreatedAt: row.CreatedAt,
	}
}
