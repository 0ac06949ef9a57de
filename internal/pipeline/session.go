package pipeline

import (
	"github.com/google/uuid"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/entity"
)

// Attempt is one strategy tried during a session and how it went.
type Attempt struct {
	Strategy constants.Strategy
	Outcome  string
	Records  int
}

// Session is one document's trip through the escalation chain. Created when
// the document enters the engine, filled in as strategies run, returned to
// the caller, never persisted as such; the processor copies its outcome onto
// the extract job row.
type Session struct {
	ID        string
	Filename  string
	Format    constants.FileFormat
	Vendor    string
	Strategy  constants.Strategy
	IsScanned bool
	Attempts  []Attempt
	Records   []entity.Record
	SalesRows []entity.SalesRow
	Trace     *Trace

	// Failure is set when the document could not be processed at all, as
	// opposed to every strategy coming back empty.
	Failure string
}

func newSession(filename string) *Session {
	return &Session{
		ID:       uuid.New().String(),
		Filename: filename,
		Trace:    NewTrace(),
	}
}

func (s *Session) attempt(strategy constants.Strategy, outcome string, records int) {
	s.Attempts = append(s.Attempts, Attempt{Strategy: strategy, Outcome: outcome, Records: records})
}
