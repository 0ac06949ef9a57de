package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents one extraction run over a file for data transfer
// between layers. Trace carries the session's ordered diagnostic lines.
type ExtractJob struct {
	ID           uuid.UUID  `json:"id"`
	FileID       uuid.UUID  `json:"file_id"`
	Format       string     `json:"format"`
	Strategy     *string    `json:"strategy,omitempty"`
	Status       string     `json:"status"`
	Vendor       *string    `json:"vendor,omitempty"`
	IsScanned    bool       `json:"is_scanned"`
	RecordCount  int        `json:"record_count"`
	SalesCount   int        `json:"sales_count"`
	Trace        []string   `json:"trace,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
}
