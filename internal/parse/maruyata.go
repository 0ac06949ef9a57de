package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
)

// Maruyata is the fish wholesaler. Delivery slips list one catch per line
// with the counting unit printed after the quantity, a per-unit price, and
// the line amount, e.g. "10/07 002077 のどぐろ 2 尾 3,500 7,000". Date tokens
// print as MM/DD at the start of a line and carry forward until the next one.

var (
	reMaruyataLeadDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\b\s*`)
	reMaruyataCode     = regexp.MustCompile(`^\d{4,}\s+`)
	reMaruyataItem     = regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s*((?i:kg)|尾|匹|本|枚|パック|ﾊﾟｯｸ|袋|箱|缶)\s+[¥\\]?([\d,]+)(?:\s+[¥\\]?([\d,]+))?\s*$`)
	reMaruyataNoise    = regexp.MustCompile(`^[\d\s.,%/¥\\-]*$`)

	// Subtotal, tax, and carried-balance rows are arithmetic over the item
	// lines, not purchases.
	maruyataSkipKeys = []string{"小計", "合計", "消費税", "御買上", "繰越"}
)

// ParseMaruyata extracts priced catch lines from a Maruyata delivery slip.
// Lines with a single trailing figure carry only the amount; the unit price
// is recovered by division. Identical date, item, quantity, and amount is
// the doubled-line artifact and collapses to one record.
func ParseMaruyata(text string) []entity.Record {
	year, month := headerYearMonth(text, "2025", "10")
	currentDate := fmt.Sprintf("%s-%s-01", year, month)

	var records []entity.Record
	seen := newDedupSet()

	for _, line := range strings.Split(text, "\n") {
		rest := strings.TrimSpace(line)
		if rest == "" || containsAny(rest, maruyataSkipKeys) {
			continue
		}
		if m := reMaruyataLeadDate.FindStringSubmatch(rest); m != nil {
			if d, ok := monthDay(year, m[1], m[2]); ok {
				currentDate = d
			}
			rest = strings.TrimSpace(rest[len(m[0]):])
		}
		rest = reMaruyataCode.ReplaceAllString(rest, "")

		im := reMaruyataItem.FindStringSubmatch(rest)
		if im == nil {
			continue
		}
		item := strings.TrimSpace(im[1])
		if reMaruyataNoise.MatchString(item) {
			continue
		}
		qty, err := strconv.ParseFloat(im[2], 64)
		if err != nil || qty == 0 {
			continue
		}
		first, err := parseAmount(im[4])
		if err != nil {
			continue
		}
		unitPrice, amount := 0.0, first
		if im[5] != "" {
			if second, perr := parseAmount(im[5]); perr == nil {
				unitPrice, amount = first, second
			}
		}
		if unitPrice == 0 {
			unitPrice = amount / qty
		}
		if seen.seen(lineKey(currentDate, item, qty, amount)) {
			continue
		}
		records = append(records, entity.Record{
			Vendor:    vendor.DisplayMaruyata,
			Date:      currentDate,
			ItemName:  item,
			Quantity:  qty,
			Unit:      string(constants.NormalizeUnit(im[3])),
			UnitPrice: unitPrice,
			Amount:    amount,
		})
	}
	return records
}

func monthDay(year, m, d string) (string, bool) {
	mo, err := strconv.Atoi(m)
	if err != nil || mo < 1 || mo > 12 {
		return "", false
	}
	da, err := strconv.Atoi(d)
	if err != nil || da < 1 || da > 31 {
		return "", false
	}
	return fmt.Sprintf("%s-%02d-%02d", year, mo, da), true
}
