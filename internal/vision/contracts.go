// Package vision is the last-resort extractor: rendered page images go to a
// vision-capable model with a fixed instruction prompt, and the free-text
// reply is parsed through a repair ladder because no well-formed JSON is
// guaranteed. A document that defeats every repair stage yields zero
// records; there is no further fallback.
package vision

import (
	"context"
	"strconv"
	"strings"
)

// ExtractRequest carries rendered page images to the model.
type ExtractRequest struct {
	Images   [][]byte // page renders in page order, capped upstream
	Filename string   // original filename, a weak vendor hint
}

// InvoiceItem is one line item as the model reports it.
type InvoiceItem struct {
	Date      string `json:"date"`
	ItemName  string `json:"item_name"`
	Quantity  Number `json:"quantity"`
	Unit      string `json:"unit"`
	UnitPrice Number `json:"unit_price"`
	Amount    Number `json:"amount"`
}

// InvoiceFields is the normalized shape we want from the model.
type InvoiceFields struct {
	VendorName  string        `json:"vendor_name"`
	InvoiceDate string        `json:"invoice_date"` // YYYY-MM-DD
	Items       []InvoiceItem `json:"items"`

	// Stage records which repair rung produced the parse. Set by the
	// client after parsing, carried to the session trace.
	Stage RepairStage `json:"-"`
}

// Extractor is the interface the pipeline depends on. The raw reply is
// returned alongside the parsed fields for the extraction trace.
type Extractor interface {
	ExtractInvoice(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte, error)
}

// Number tolerates the model quoting numerics ("6.30", "¥12,000") instead
// of emitting JSON numbers. Null decodes to zero.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(strings.TrimPrefix(s, "¥"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Number(v)
	return nil
}
