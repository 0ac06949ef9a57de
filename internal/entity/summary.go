package entity

import "time"

// TableSummary reports how much data one table holds and the date span it
// covers. Dates are nil on an empty table.
type TableSummary struct {
	Rows    int        `json:"rows"`
	MinDate *time.Time `json:"min_date,omitempty"`
	MaxDate *time.Time `json:"max_date,omitempty"`
}
