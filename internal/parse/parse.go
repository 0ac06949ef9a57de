// Package parse converts vendor-formatted invoice text into canonical
// records with no external calls. Each vendor parser shares the same
// contract: a document-level year/month header supplies the fallback date,
// a current-date variable carries forward across lines, item patterns build
// candidate records, and a composite key set collapses doubled lines. A
// parser that extracts zero records is not an error; it tells the session
// to escalate.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/entity"
)

// Func is the uniform parser signature: text in, raw records out.
type Func func(text string) []entity.Record

// ForStrategy returns the regex parser bound to the strategy. Sheet and
// vision strategies have no text parser and report false.
func ForStrategy(s constants.Strategy) (Func, bool) {
	switch s {
	case constants.StrategyHirayama:
		return ParseHirayama, true
	case constants.StrategyFrenchFnB:
		return ParseFrenchFnB, true
	case constants.StrategyMaruyata:
		return ParseMaruyata, true
	}
	return nil, false
}

// reHeaderYearMonth finds the document-level year/month header, e.g.
// "2025年10月" or "2025年 10月".
var reHeaderYearMonth = regexp.MustCompile(`(\d{4})年\s*(\d{1,2})月`)

// headerYearMonth extracts the invoice year and zero-padded month from the
// header, falling back to the given defaults when the header is missing or
// corrupted by OCR.
func headerYearMonth(text, defaultYear, defaultMonth string) (string, string) {
	m := reHeaderYearMonth.FindStringSubmatch(text)
	if m == nil {
		return defaultYear, defaultMonth
	}
	return m[1], pad2(m[2])
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// parseAmount reads a comma-grouped number such as "429,000".
func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}

// dedupSet collapses doubled line detections within one parse call. OCR and
// text noise commonly produce the same line twice; identical composite keys
// are accepted once. Each call builds a fresh set, so parsing the same text
// twice yields the same records both times.
type dedupSet map[string]struct{}

func newDedupSet() dedupSet {
	return make(dedupSet)
}

// seen records the key and reports whether it was already present.
func (d dedupSet) seen(key string) bool {
	if _, ok := d[key]; ok {
		return true
	}
	d[key] = struct{}{}
	return false
}

func qtyKey(date string, qty float64) string {
	return fmt.Sprintf("%s|%.2f", date, qty)
}

func lineKey(date, item string, qty, amount float64) string {
	return fmt.Sprintf("%s|%s|%.2f|%.2f", date, item, qty, amount)
}
