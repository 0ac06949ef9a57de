package parse

import (
	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/entity"
)

// FillDefaults normalizes raw records into storable ones regardless of which
// extractor produced them. Missing vendor names and dates are filled from
// the session, units are mapped onto the canonical set, a missing unit price
// is back-computed from amount and quantity, and records that fail the
// validity check (zero amount or zero quantity) are dropped. Negative
// amounts pass through; credit lines are real data.
func FillDefaults(records []entity.Record, vendorName, fallbackDate string) []entity.Record {
	out := make([]entity.Record, 0, len(records))
	for _, r := range records {
		if r.Vendor == "" {
			r.Vendor = vendorName
		}
		if r.Date == "" {
			r.Date = fallbackDate
		}
		if r.Quantity == 0 {
			r.Quantity = 1
		}
		r.Unit = string(constants.NormalizeUnit(r.Unit))
		if r.UnitPrice == 0 && r.Quantity != 0 {
			r.UnitPrice = r.Amount / r.Quantity
		}
		if !r.Valid() {
			continue
		}
		out = append(out, r)
	}
	return out
}
