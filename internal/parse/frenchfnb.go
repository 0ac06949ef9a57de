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

// French F&B Japan sends two layouts under one letterhead: a classic invoice
// with one priced line per product, and a monthly product summary (商品別金額表)
// where counts and amounts sit beside unit markers, sometimes wrapped onto
// the following line. The parser keys on product identity because OCR keeps
// neither columns nor row order intact.

const (
	fnbItemCaviar  = "KAVIARI キャビア クリスタル 100g"
	fnbItemButter  = "パレット バター 20g"
	fnbItemGirolle = "生 スモールジロール"
	fnbItemVinegar = "シャンパン ヴィネガー 500ml"

	// One caviar tin holds 100 g; summary counts convert to grams.
	fnbCaviarCanGrams = 100
)

var (
	// Trailing amount on an invoice line. The yen mark comes through OCR as
	// either ¥ or a bare backslash; with both unit price and amount printed,
	// the leftmost match takes the first figure.
	reFnBTrailingAmount = regexp.MustCompile(`[¥\\]?([\d,]+)\s*[¥\\]?0?\s*[¥\\]?([\d,]+)?$`)

	// Summary rows pair a count with its unit marker and the amount.
	reFnBCanAmount    = regexp.MustCompile(`(\d+)\s*缶\s*[¥\\]?([\d,]+)`)
	reFnBPCAmount     = regexp.MustCompile(`(\d+)\s*PC\s*[¥\\]?([\d,]+)`)
	reFnBKgAmount     = regexp.MustCompile(`(\d+)\s*kg\s*[¥\\]?([\d,]+)`)
	reFnBBottleAmount = regexp.MustCompile(`(\d+)\s*本\s*[¥\\]?([\d,]+)`)

	// The summary layout prints butter without the ブール alias that appears
	// on invoice lines.
	fnbButterInvoiceKeys = []string{"パレット", "ﾊﾟﾚｯﾄ", "バター", "ブール"}
	fnbButterSummaryKeys = []string{"パレット", "ﾊﾟﾚｯﾄ", "バター"}
)

// ParseFrenchFnB extracts line items from a French F&B document, routing to
// the product-summary parser when the summary header or its 取引数量 column
// label is present.
func ParseFrenchFnB(text string) []entity.Record {
	year, month := headerYearMonth(text, "2025", "01")
	if strings.Contains(text, "商品別金額表") || strings.Contains(text, "取引数量") {
		return parseFrenchFnBSummary(text, year, month)
	}
	return parseFrenchFnBInvoice(text, year, month)
}

func parseFrenchFnBInvoice(text, year, month string) []entity.Record {
	date := fmt.Sprintf("%s-%s-01", year, month)
	var records []entity.Record

	for _, line := range strings.Split(text, "\n") {
		switch {
		case vendor.ContainsItem(line, "caviar"):
			if amount, ok := trailingAmount(line); ok {
				records = append(records, fnbRecord(date, fnbItemCaviar, 1, amount, constants.UnitPiece))
			}
		case containsAny(line, fnbButterInvoiceKeys):
			if amount, ok := trailingAmount(line); ok {
				records = append(records, fnbRecord(date, fnbItemButter, 1, amount, constants.UnitPiece))
			}
		}
	}
	return records
}

func parseFrenchFnBSummary(text, year, month string) []entity.Record {
	date := fmt.Sprintf("%s-%s-01", year, month)
	var records []entity.Record
	seen := newDedupSet()

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case vendor.ContainsItem(line, "caviar") && strings.Contains(line, "缶"):
			if qty, amount, ok := countAndAmount(reFnBCanAmount, line); ok {
				r := fnbRecord(date, fnbItemCaviar, qty, amount, constants.UnitG)
				r.Quantity = float64(qty * fnbCaviarCanGrams)
				records = append(records, r)
			}
		case vendor.ContainsItem(line, "caviar") && i+1 < len(lines):
			// Count wrapped onto the following line.
			if qty, amount, ok := countAndAmount(reFnBCanAmount, lines[i+1]); ok {
				r := fnbRecord(date, fnbItemCaviar, qty, amount, constants.UnitG)
				r.Quantity = float64(qty * fnbCaviarCanGrams)
				records = append(records, r)
				i++
			}
		case containsAny(line, fnbButterSummaryKeys) && strings.Contains(line, "PC"):
			if qty, amount, ok := countAndAmount(reFnBPCAmount, line); ok {
				records = append(records, fnbRecord(date, fnbItemButter, qty, amount, constants.UnitPiece))
			}
		case containsAny(line, fnbButterSummaryKeys) && i+1 < len(lines):
			if qty, amount, ok := countAndAmount(reFnBPCAmount, lines[i+1]); ok {
				records = append(records, fnbRecord(date, fnbItemButter, qty, amount, constants.UnitPiece))
				i++
			}
		case strings.Contains(line, "ジロール"):
			qty, amount, ok := countAndAmount(reFnBKgAmount, line)
			if !ok && i+1 < len(lines) {
				qty, amount, ok = countAndAmount(reFnBKgAmount, lines[i+1])
			}
			if ok {
				records = append(records, fnbRecord(date, fnbItemGirolle, qty, amount, constants.UnitKg))
			}
		case (strings.Contains(line, "ヴィネガー") || strings.Contains(line, "ビネガー")) && strings.Contains(line, "シャンパン"):
			// シャンパン alone also names the category row, so both words are
			// required before this counts as the vinegar product line.
			qty, amount, ok := countAndAmount(reFnBBottleAmount, line)
			if !ok && i+1 < len(lines) {
				qty, amount, ok = countAndAmount(reFnBBottleAmount, lines[i+1])
			}
			if ok && !seen.seen(fmt.Sprintf("vinegar|%d|%d", qty, amount)) {
				records = append(records, fnbRecord(date, fnbItemVinegar, qty, amount, constants.UnitBottle))
			}
		}
	}
	return records
}

// fnbRecord keeps the printed figures: unit price is the integer division of
// amount by count, matching what the summary table itself shows. The caviar
// caller overwrites quantity with grams afterwards, leaving the per-can unit
// price in place.
func fnbRecord(date, item string, qty, amount int, unit constants.Unit) entity.Record {
	unitPrice := amount
	if qty > 0 {
		unitPrice = amount / qty
	}
	return entity.Record{
		Vendor:    vendor.DisplayFrenchFnB,
		Date:      date,
		ItemName:  item,
		Quantity:  float64(qty),
		Unit:      string(unit),
		UnitPrice: float64(unitPrice),
		Amount:    float64(amount),
	}
}

func trailingAmount(line string) (int, bool) {
	m := reFnBTrailingAmount.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return amount, true
}

func countAndAmount(re *regexp.Regexp, line string) (int, int, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	amount, err := strconv.Atoi(strings.ReplaceAll(m[2], ",", ""))
	if err != nil {
		return 0, 0, false
	}
	return qty, amount, true
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
