package entity

import (
	"time"

	"github.com/google/uuid"
)

// SalesRow is one POS sales line as extracted from the monthly CSV export.
// Month holds the report month (YYYY-MM) sniffed from the file header; rows
// rarely carry their own date.
type SalesRow struct {
	Month      string  `json:"month"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Qty        float64 `json:"qty"`
	GrossTotal float64 `json:"gross_total"`
	Discount   float64 `json:"discount"`
	NetTotal   float64 `json:"net_total"`
}

// SalesRecord represents a persisted sales line for data transfer between
// layers.
type SalesRecord struct {
	ID        uuid.UUID `json:"id"`
	SaleDate  time.Time `json:"sale_date"`
	Code      string    `json:"code"`
	ItemName  string    `json:"item_name"`
	Category  string    `json:"category"`
	Qty       float64   `json:"qty"`
	Price     float64   `json:"price"`
	NetTotal  float64   `json:"net_total"`
	CreatedAt time.Time `json:"created_at"`
}
