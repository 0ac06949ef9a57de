package pipeline

import "fmt"

// Trace is the ordered diagnostic record of one extraction session: which
// strategy ran, why each transition happened, what the vision reply looked
// like. Owned by exactly one session and never shared between goroutines, so
// it carries no lock. The lines end up on the extract job row for later
// inspection.
type Trace struct {
	lines []string
}

func NewTrace() *Trace {
	return &Trace{}
}

// Add appends one formatted line.
func (t *Trace) Add(format string, args ...any) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the trace so far.
func (t *Trace) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Trace) Len() int {
	return len(t.lines)
}
