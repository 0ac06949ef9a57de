// Package sheet extracts invoice records from spreadsheet workbooks without
// any model calls. A workbook either matches the known supplier export
// layout, which is read by fixed column positions, or its header row is
// scanned for keywords that reveal each column's role. Spreadsheets never
// escalate to the vision strategy; an unreadable workbook yields zero
// records.
package sheet

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bistrodata/invoice-tracker/internal/entity"
)

// Layout names which extraction path handled the workbook.
type Layout string

const (
	LayoutKnown Layout = "known"
	LayoutAuto  Layout = "auto"
)

// Extractor reads invoice workbooks.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger.With("component", "sheet")}
}

// Extract reads every sheet of the workbook. The known layout applies when
// the supplier export signature is present; otherwise column roles are
// auto-detected from the header row. fallbackDate stamps rows whose date
// cell is missing or unreadable.
func (e *Extractor) Extract(data []byte, fallbackDate string) ([]entity.Record, Layout, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	layout := LayoutAuto
	var records []entity.Record
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			e.logger.Warn("sheet.read.failed", "sheet", name, "error", err)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		if isKnownLayout(rows) {
			layout = LayoutKnown
			records = append(records, parseKnownLayout(rows, fallbackDate)...)
			continue
		}
		records = append(records, parseAutoLayout(rows, fallbackDate)...)
	}

	e.logger.Debug("sheet.extract.ok", "layout", string(layout), "records", len(records))
	return records, layout, nil
}

// cell returns the trimmed cell at idx. Trailing empty cells are trimmed
// from rows on read, so short rows are normal.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseCellNumber reads a numeric cell, tolerating currency marks and comma
// grouping left by manual edits.
func parseCellNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "¥")
	s = strings.TrimPrefix(s, "\\")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// sheetDateLayouts covers the cell formats the supplier exports and manual
// spreadsheets actually use.
var sheetDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
}

// parseSheetDate normalizes a date cell to YYYY-MM-DD. Datetime cells keep
// their date part, bare serial numbers convert through the workbook epoch,
// and anything unreadable falls back to the session date.
func parseSheetDate(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if len(s) > 10 && s[4] == '-' {
		s = s[:10]
	}
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return fallback
}
