package parse

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
)

// Meat Shop Hirayama sells exactly one thing on these slips: wagyu tenderloin
// at a fixed contract price per kilogram. Every plausible weight on the page
// is a delivery. OCR mangles the slips badly, so the parser leans on that
// single-product assumption instead of on column positions.
const (
	hirayamaItemName     = "和牛ヒレ (Wagyu Tenderloin)"
	hirayamaUnitPriceJPY = 12000

	// Deliveries run 4 to 10 kg. Numbers outside the band are prices, tax
	// rates, or slip numbers.
	hirayamaQtyMin = 4.0
	hirayamaQtyMax = 10.0
)

var (
	// Slip dates print as YY/MM/DD, e.g. "25/10/09".
	reHirayamaDate = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{2})`)
	// Weights carry a kg suffix that OCR often reads as "ke".
	reHirayamaQty = regexp.MustCompile(`(?i)(\d+\.\d+)\s*(?:kg|ke)`)
	// Loose sweep for when OCR destroys the suffix on every line.
	reHirayamaLooseQty = regexp.MustCompile(`\d+\.\d+`)
)

// ParseHirayama extracts wagyu deliveries from a Hirayama monthly slip.
// Dates carry forward line to line, so multiple weights under one date
// header all land on that date. The same weight printed twice under one
// date is the doubled-line artifact and collapses to a single record;
// the same weight on two different dates is two deliveries.
func ParseHirayama(text string) []entity.Record {
	year, month := headerYearMonth(text, "2025", "10")
	monthStart := fmt.Sprintf("%s-%s-01", year, month)

	var records []entity.Record
	seen := newDedupSet()
	currentDate := monthStart

	lines := strings.Split(strings.ReplaceAll(text, "|", " "), "\n")
	for _, line := range lines {
		if m := reHirayamaDate.FindStringSubmatch(line); m != nil {
			currentDate = fmt.Sprintf("20%s-%s-%s", m[1], m[2], m[3])
		}
		for _, m := range reHirayamaQty.FindAllStringSubmatch(line, -1) {
			qty, err := strconv.ParseFloat(m[1], 64)
			if err != nil || qty < hirayamaQtyMin || qty > hirayamaQtyMax {
				continue
			}
			if seen.seen(qtyKey(currentDate, qty)) {
				continue
			}
			records = append(records, hirayamaRecord(currentDate, qty))
		}
	}

	if len(records) == 0 {
		// No line matched at all, so the kg suffixes are gone. Sweep the
		// whole document for in-band decimals and date them at the start of
		// the month rather than returning nothing.
		for _, m := range reHirayamaLooseQty.FindAllString(text, -1) {
			qty, err := strconv.ParseFloat(m, 64)
			if err != nil || qty < hirayamaQtyMin || qty > hirayamaQtyMax {
				continue
			}
			if seen.seen(qtyKey(monthStart, qty)) {
				continue
			}
			records = append(records, hirayamaRecord(monthStart, qty))
		}
	}

	slices.SortStableFunc(records, func(a, b entity.Record) int {
		return cmp.Compare(a.Quantity, b.Quantity)
	})
	return records
}

func hirayamaRecord(date string, qty float64) entity.Record {
	return entity.Record{
		Vendor:    vendor.DisplayHirayama,
		Date:      date,
		ItemName:  hirayamaItemName,
		Quantity:  qty,
		Unit:      string(constants.UnitKg),
		UnitPrice: hirayamaUnitPriceJPY,
		Amount:    math.Round(qty * hirayamaUnitPriceJPY),
	}
}
