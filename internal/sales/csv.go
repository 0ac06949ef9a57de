// Package sales reads the monthly POS report CSV. The report is not a clean
// table: banner lines, outlet subtotals, and section footers are woven
// between the item rows, and the only date in the file is the reporting
// range printed near the top.
package sales

import (
	"encoding/csv"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/bistrodata/invoice-tracker/internal/entity"
)

// Column positions in the POS item row.
const (
	colCode     = 0
	colName     = 1
	colCategory = 3
	colPrice    = 5
	colQty      = 6
	colGross    = 7
	colDiscount = 8
	colNet      = 10

	// An item row carries at least this many fields; anything shorter is a
	// section artifact.
	minItemFields = 11

	// The reporting range sits in the first few lines of the banner.
	monthSniffLines = 10
)

var reReportDate = regexp.MustCompile(`(\d{4})-(\d{2})-\d{2}`)

// skipMarkers flag subtotal and footer rows inside the data section.
var skipMarkers = []string{
	"Total:", "Sub Total:", "Outlet Total:", "Shop Total:",
	"Grand Total", "END OF REPORT", "Department:", "Outlet:", "Check Type:",
}

// Extractor parses POS report exports.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger.With("component", "sales")}
}

// Extract reads every item row of the report. Rows before the column header
// are banner material and never parsed. The report month (YYYY-MM) is
// sniffed from the first dated line and stamped on every row.
func (e *Extractor) Extract(data []byte) ([]entity.SalesRow, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	month := sniffMonth(text)

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var rows []entity.SalesRow
	inData := false
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// One mangled line does not invalidate the report.
			e.logger.Debug("sales.row.skipped", "error", err)
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		if len(fields) >= 8 && strings.Contains(fields[colCode], "Code") && strings.Contains(fields[colName], "Name") {
			inData = true
			continue
		}
		if !inData {
			continue
		}
		if containsSkipMarker(strings.Join(fields, " ")) {
			continue
		}
		if len(fields) < minItemFields {
			continue
		}

		code, name := fields[colCode], fields[colName]
		if code == "" || name == "" || code == "Code" {
			continue
		}

		row, ok := itemRow(month, fields)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	e.logger.Debug("sales.extract.ok", "rows", len(rows), "month", month)
	return rows, nil
}

func sniffMonth(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i >= monthSniffLines {
			break
		}
		if m := reReportDate.FindStringSubmatch(line); m != nil {
			return m[1] + "-" + m[2]
		}
	}
	return ""
}

func containsSkipMarker(rowText string) bool {
	for _, marker := range skipMarkers {
		if strings.Contains(rowText, marker) {
			return true
		}
	}
	return false
}

// itemRow converts one data row. A row whose numeric cells do not parse is
// dropped whole rather than half-read.
func itemRow(month string, fields []string) (entity.SalesRow, bool) {
	row := entity.SalesRow{
		Month:    month,
		Code:     fields[colCode],
		Name:     fields[colName],
		Category: fields[colCategory],
	}

	for _, cell := range []struct {
		idx int
		dst *float64
	}{
		{colPrice, &row.Price},
		{colQty, &row.Qty},
		{colGross, &row.GrossTotal},
		{colDiscount, &row.Discount},
		{colNet, &row.NetTotal},
	} {
		s := strings.ReplaceAll(fields[cell.idx], ",", "")
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return entity.SalesRow{}, false
		}
		*cell.dst = v
	}
	return row, true
}
