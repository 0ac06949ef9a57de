// Package pipeline runs documents through the extraction escalation chain:
// cheapest reliable method first, escalating when earlier strategies fail.
// PDFs go text layer, vendor regex parser, then vision; single images go
// straight to vision; spreadsheets and sales CSVs have their own terminal
// extractors and never escalate. Every transition is written to the session
// trace.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/common"
	"github.com/bistrodata/invoice-tracker/internal/parse"
	"github.com/bistrodata/invoice-tracker/internal/pdf"
	"github.com/bistrodata/invoice-tracker/internal/sales"
	"github.com/bistrodata/invoice-tracker/internal/sheet"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
	"github.com/bistrodata/invoice-tracker/internal/vision"
)

// PDFSource is the slice of the pdf extractor the engine depends on, an
// interface so sessions can be driven with canned text layers.
type PDFSource interface {
	ExtractText(data []byte) pdf.TextResult
	RenderPages(ctx context.Context, data []byte) ([][]byte, string, error)
	MaxPages() int
}

// Config holds engine behavior knobs.
type Config struct {
	// FallbackDate stamps records whose document yields no date at all,
	// YYYY-MM-DD. Empty means today.
	FallbackDate string
}

// Engine coordinates the per-format extractors for one process. Sessions are
// independent; the engine itself holds no per-document state.
type Engine struct {
	cfg    Config
	pdf    PDFSource
	sheet  *sheet.Extractor
	sales  *sales.Extractor
	vision vision.Extractor
	logger *slog.Logger
}

// NewEngine wires the per-format extractors. visionx may be nil when no
// provider credential is configured; PDF and image sessions then finish with
// zero records once the cheaper strategies are exhausted.
func NewEngine(cfg Config, pdfx PDFSource, sheetx *sheet.Extractor, salesx *sales.Extractor, visionx vision.Extractor, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:    cfg,
		pdf:    pdfx,
		sheet:  sheetx,
		sales:  salesx,
		vision: visionx,
		logger: logger.With("component", "pipeline"),
	}
}

// Extract runs one document through the chain. The caller always gets a
// session carrying a record list (possibly empty) and a trace; a malformed
// document never surfaces an error here, so one bad file cannot disrupt a
// batch.
func (e *Engine) Extract(ctx context.Context, data []byte, filename string) *Session {
	s := newSession(filename)
	ctx = common.WithSessionID(ctx, s.ID)
	log := e.logger.With("session_id", s.ID, "filename", filename)
	start := time.Now()

	s.Format = constants.FormatForPath(filename)
	s.Trace.Add("routing %q: %d bytes, format %s", filename, len(data), formatLabel(s.Format))
	log.Info("pipeline.extract.start", "format", formatLabel(s.Format), "bytes", len(data))

	switch s.Format {
	case constants.PDF:
		e.extractPDF(ctx, s, data)
	case constants.IMAGE:
		s.Trace.Add("image file, no text layer to try")
		e.runVision(ctx, s, [][]byte{data})
	case constants.SHEET:
		e.extractSheet(s, data)
	case constants.CSV:
		e.extractCSV(s, data)
	default:
		s.Failure = fmt.Sprintf("unsupported file extension %q", filepath.Ext(filename))
		s.Trace.Add("%s, nothing to do", s.Failure)
	}

	log.Info("pipeline.extract.done",
		"format", formatLabel(s.Format),
		"strategy", string(s.Strategy),
		"vendor", s.Vendor,
		"records", len(s.Records),
		"sales_rows", len(s.SalesRows),
		"scanned", s.IsScanned,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return s
}

// extractPDF reads the text layer, picks a strategy from the vendor tables,
// runs the matching regex parser when the document actually has text, and
// escalates to vision otherwise.
func (e *Engine) extractPDF(ctx context.Context, s *Session, data []byte) {
	res := e.pdf.ExtractText(data)
	s.IsScanned = res.IsScanned
	for _, w := range res.Warnings {
		s.Trace.Add("text layer: %s", w)
	}
	chars := utf8.RuneCountInString(strings.TrimSpace(res.Text))
	s.Trace.Add("text layer: %d pages, %d chars, scanned=%t", res.Pages, chars, res.IsScanned)

	name, strategy, detected := vendor.Detect(s.Filename, res.Text)
	if detected {
		s.Vendor = name
		s.Strategy = strategy
		s.Trace.Add("vendor detected: %s, strategy %s", name, strategy)
	} else {
		s.Strategy = constants.StrategyVision
		s.Trace.Add("no vendor pattern matched")
	}

	if parser, ok := parse.ForStrategy(s.Strategy); ok {
		if s.IsScanned {
			// The regex parsers read the text layer; on a scanned
			// document there is nothing for them to read.
			s.attempt(s.Strategy, "skipped, no text layer", 0)
			s.Trace.Add("%s parser skipped on scanned document, escalating to vision", s.Strategy)
		} else {
			records := parse.FillDefaults(parser(res.Text), s.Vendor, e.fallbackDate())
			if len(records) > 0 {
				s.attempt(s.Strategy, "ok", len(records))
				s.Records = records
				s.Trace.Add("%s parser extracted %d records", s.Strategy, len(records))
				return
			}
			s.attempt(s.Strategy, "empty", 0)
			s.Trace.Add("%s parser found nothing, escalating to vision", s.Strategy)
		}
	}

	images, cleanupWarn, err := e.pdf.RenderPages(ctx, data)
	if cleanupWarn != "" {
		s.Trace.Add("cleanup: %s", cleanupWarn)
	}
	if err != nil {
		s.Strategy = constants.StrategyVision
		s.attempt(constants.StrategyVision, "render failed", 0)
		s.Trace.Add("page render failed: %v, escalation exhausted", err)
		return
	}
	s.Trace.Add("rendered %d page image(s), cap %d", len(images), e.pdf.MaxPages())
	e.runVision(ctx, s, images)
}

// runVision is the end of the chain. A nil client, a failed call, or an
// unparseable reply all land as zero records; there is no retry here.
func (e *Engine) runVision(ctx context.Context, s *Session, images [][]byte) {
	s.Strategy = constants.StrategyVision
	if e.vision == nil {
		s.attempt(constants.StrategyVision, "unavailable", 0)
		s.Trace.Add("vision unavailable: no provider configured, zero records")
		return
	}

	s.Trace.Add("vision: submitting %d page image(s)", len(images))
	fields, raw, err := e.vision.ExtractInvoice(ctx, vision.ExtractRequest{Images: images, Filename: s.Filename})
	if err != nil {
		s.attempt(constants.StrategyVision, "failed", 0)
		s.Trace.Add("vision failed: %v, escalation exhausted", err)
		return
	}
	s.Trace.Add("vision reply: %d bytes, parsed at stage %s, %d items", len(raw), fields.Stage, len(fields.Items))

	if s.Vendor == "" {
		s.Vendor = vendor.CleanName(fields.VendorName)
	}
	records := parse.FillDefaults(fields.Records(), s.Vendor, e.fallbackDate())
	s.attempt(constants.StrategyVision, "ok", len(records))
	s.Records = records
	s.Trace.Add("vision produced %d usable records", len(records))
}

// extractSheet is terminal: a workbook the sheet extractor cannot read is a
// failed document, not a vision candidate. Rendering a spreadsheet to page
// images would only degrade already-structured data.
func (e *Engine) extractSheet(s *Session, data []byte) {
	s.Strategy = constants.StrategySheet
	records, layout, err := e.sheet.Extract(data, e.fallbackDate())
	if err != nil {
		s.Failure = fmt.Sprintf("unreadable workbook: %v", err)
		s.attempt(constants.StrategySheet, "failed", 0)
		s.Trace.Add("%s", s.Failure)
		return
	}

	records = parse.FillDefaults(records, "", e.fallbackDate())
	if len(records) > 0 {
		s.attempt(constants.StrategySheet, "ok", len(records))
		if records[0].Vendor != "" {
			s.Vendor = records[0].Vendor
		}
		s.Records = records
		s.Trace.Add("spreadsheet: %s layout, %d records", layout, len(records))
		return
	}
	s.attempt(constants.StrategySheet, "empty", 0)
	s.Trace.Add("spreadsheet: %s layout, no records; spreadsheets do not escalate to vision", layout)
}

// extractCSV routes POS sales exports. Also terminal.
func (e *Engine) extractCSV(s *Session, data []byte) {
	s.Strategy = constants.StrategySales
	rows, err := e.sales.Extract(data)
	if err != nil {
		s.Failure = fmt.Sprintf("unreadable sales export: %v", err)
		s.attempt(constants.StrategySales, "failed", 0)
		s.Trace.Add("%s", s.Failure)
		return
	}

	s.SalesRows = rows
	month := ""
	if len(rows) > 0 {
		month = rows[0].Month
	}
	outcome := "empty"
	if len(rows) > 0 {
		outcome = "ok"
	}
	s.attempt(constants.StrategySales, outcome, len(rows))
	s.Trace.Add("sales csv: %d rows, month %q", len(rows), month)
}

func (e *Engine) fallbackDate() string {
	if e.cfg.FallbackDate != "" {
		return e.cfg.FallbackDate
	}
	return time.Now().Format("2006-01-02")
}

func formatLabel(f constants.FileFormat) string {
	if f == "" {
		return "unknown"
	}
	return string(f)
}
