package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is the canonical line item every extraction path converges on.
// Dates stay as YYYY-MM-DD strings at this layer because parsers assemble
// them from regex captures and model output; the repository parses them when
// persisting.
type Record struct {
	Vendor    string  `json:"vendor"`
	Date      string  `json:"date"`
	ItemName  string  `json:"item_name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

// Valid reports whether the record survives the zero-noise filter. Lines
// with a zero amount or zero quantity are credits, shipping, or misparsed
// banking text. Negative amounts pass through as legitimate credits.
func (r Record) Valid() bool {
	return r.Amount != 0 && r.Quantity != 0
}

// Key is the composite dedup key used by the storage layer, mirroring the
// upsert conflict target.
func (r Record) Key() string {
	return fmt.Sprintf("%s|%s|%s|%.2f", r.Vendor, r.Date, r.ItemName, r.Amount)
}

// PurchaseRecord represents a persisted purchase line for data transfer
// between layers.
type PurchaseRecord struct {
	ID        uuid.UUID `json:"id"`
	Vendor    string    `json:"vendor"`
	TxDate    time.Time `json:"tx_date"`
	ItemName  string    `json:"item_name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	UnitPrice float64   `json:"unit_price"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
