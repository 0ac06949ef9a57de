package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/repository"
	"github.com/bistrodata/invoice-tracker/internal/units"
)

const (
	purchasesSheet = "Purchases"
	salesSheet     = "Sales"
)

// Service is a tiny façade over the repositories that produces XLSX bytes
// for report exports.
type Service struct {
	records        repository.RecordRepository
	sales          repository.SalesRepository
	containerGrams float64
	logger         *slog.Logger
}

func NewService(records repository.RecordRepository, sales repository.SalesRepository, containerGrams float64, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, sales: sales, containerGrams: containerGrams, logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) with a purchases sheet and a
// sales sheet for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> everything.
func (s *Service) ExportXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)

	recs, err := s.records.ListByDateRange(ctx, fromDate, toDate, "")
	if err != nil {
		return nil, fmt.Errorf("query purchase records: %w", err)
	}
	salesRows, err := s.sales.ListByDateRange(ctx, fromDate, toDate, "")
	if err != nil {
		return nil, fmt.Errorf("query sales records: %w", err)
	}

	f := excelize.NewFile()
	if err := s.writePurchases(f, recs); err != nil {
		return nil, err
	}
	if err := s.writeSales(f, salesRows); err != nil {
		return nil, err
	}

	// excelize seeds every new workbook with Sheet1.
	_ = f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex(purchasesSheet); err == nil {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"purchase_rows", len(recs),
		"sales_rows", len(salesRows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writePurchases(f *excelize.File, recs []*entity.PurchaseRecord) error {
	if _, err := f.NewSheet(purchasesSheet); err != nil {
		return err
	}

	headers := []string{
		"Transaction Date",
		"Vendor",
		"Item",
		"Category",
		"Quantity",
		"Unit",
		"Grams",
		"Unit Price",
		"Amount",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(purchasesSheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(purchasesSheet, cell, v)
		}

		write(1, r.TxDate.Format("2006-01-02"))
		write(2, r.Vendor)
		write(3, r.ItemName)
		write(4, r.Category)
		write(5, r.Quantity)
		write(6, r.Unit)
		// Container units fall back to the configured per-container grams.
		write(7, units.ToGrams(r.Quantity, r.Unit, s.containerGrams))
		write(8, r.UnitPrice)
		write(9, r.Amount)

		row++
	}

	_ = f.SetColWidth(purchasesSheet, "A", "A", 14) // date
	_ = f.SetColWidth(purchasesSheet, "B", "B", 26) // vendor
	_ = f.SetColWidth(purchasesSheet, "C", "C", 32) // item
	_ = f.SetColWidth(purchasesSheet, "D", "D", 12) // category
	_ = f.SetColWidth(purchasesSheet, "E", "I", 12) // numbers
	return nil
}

func (s *Service) writeSales(f *excelize.File, rows []*entity.SalesRecord) error {
	if _, err := f.NewSheet(salesSheet); err != nil {
		return err
	}

	headers := []string{
		"Sale Date",
		"Code",
		"Item",
		"Category",
		"Quantity",
		"Price",
		"Net Total",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(salesSheet, cell, h)
	}

	rowNum := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(salesSheet, cell, v)
		}

		write(1, r.SaleDate.Format("2006-01-02"))
		write(2, r.Code)
		write(3, r.ItemName)
		write(4, r.Category)
		write(5, r.Qty)
		write(6, r.Price)
		write(7, r.NetTotal)

		rowNum++
	}

	_ = f.SetColWidth(salesSheet, "A", "A", 14) // date
	_ = f.SetColWidth(salesSheet, "B", "B", 10) // code
	_ = f.SetColWidth(salesSheet, "C", "C", 32) // item
	_ = f.SetColWidth(salesSheet, "D", "D", 12) // category
	_ = f.SetColWidth(salesSheet, "E", "G", 12) // numbers
	return nil
}

// normalizeWindow clamps the range to date-only UTC. A from without a to
// closes the window at today.
func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}
