package sheet

import (
	"strings"
	"time"

	"github.com/bistrodata/invoice-tracker/internal/entity"
)

// columnRoles maps each record field to a column index, -1 when the sheet
// has no such column.
type columnRoles struct {
	item      int
	amount    int
	qty       int
	unitPrice int
	unit      int
	date      int
}

// headerScanRows bounds how deep the header search goes; real workbooks put
// the label row within the first few lines.
const headerScanRows = 5

// autoSkipItems marks arithmetic and fee rows that must not be booked as
// purchases.
var autoSkipItems = []string{"小計", "合計", "総計", "消費税", "運賃", "subtotal", "total"}

// detectRoles assigns column roles from a candidate header row. Roles claim
// columns in a fixed priority order so a label like "unit price" lands on
// the unit-price role before the unit role can take the column.
func detectRoles(header []string) (columnRoles, int) {
	roles := columnRoles{item: -1, amount: -1, qty: -1, unitPrice: -1, unit: -1, date: -1}
	bindings := []struct {
		target *int
		keys   []string
	}{
		{&roles.item, []string{"商品名", "品名", "品目", "item", "product", "description"}},
		{&roles.amount, []string{"商品金額", "金額", "合計", "amount", "total"}},
		{&roles.qty, []string{"数量", "qty", "quantity"}},
		{&roles.unitPrice, []string{"単価", "unit price", "unitprice", "price"}},
		{&roles.unit, []string{"単位", "unit"}},
		{&roles.date, []string{"伝票日付", "日付", "date"}},
	}

	taken := make(map[int]bool)
	matched := 0
	for _, b := range bindings {
		for i, raw := range header {
			if taken[i] {
				continue
			}
			label := strings.ToLower(strings.TrimSpace(raw))
			if label == "" {
				continue
			}
			for _, key := range b.keys {
				if strings.Contains(label, key) {
					*b.target = i
					taken[i] = true
					matched++
					break
				}
			}
			if taken[i] {
				break
			}
		}
	}
	return roles, matched
}

// parseAutoLayout handles workbooks outside the known export format. A
// header row is located by keyword matches and data rows are read by role;
// headerless sheets fall back to shape guessing per row. Vendor attribution
// is left empty for the session to fill.
func parseAutoLayout(rows [][]string, fallbackDate string) []entity.Record {
	headerIdx := -1
	var roles columnRoles
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		r, matched := detectRoles(rows[i])
		if matched >= 2 && r.item >= 0 && r.amount >= 0 {
			headerIdx, roles = i, r
			break
		}
	}
	if headerIdx < 0 {
		return parseHeaderless(rows, fallbackDate)
	}

	var records []entity.Record
	for _, row := range rows[headerIdx+1:] {
		item := cell(row, roles.item)
		if item == "" || containsAnyFold(item, autoSkipItems) {
			continue
		}
		amount, ok := parseCellNumber(cell(row, roles.amount))
		if !ok {
			continue
		}

		var qty, unitPrice float64
		if roles.qty >= 0 {
			qty, _ = parseCellNumber(cell(row, roles.qty))
		}
		if roles.unitPrice >= 0 {
			unitPrice, _ = parseCellNumber(cell(row, roles.unitPrice))
		}
		unit := ""
		if roles.unit >= 0 {
			unit = cell(row, roles.unit)
		}
		date := fallbackDate
		if roles.date >= 0 {
			date = parseSheetDate(cell(row, roles.date), fallbackDate)
		}

		records = append(records, entity.Record{
			Date:      date,
			ItemName:  item,
			Quantity:  qty,
			Unit:      unit,
			UnitPrice: unitPrice,
			Amount:    amount,
		})
	}
	return records
}

// parseHeaderless guesses row shape when no label row exists: the first
// date-like cell is the row date, the first remaining text cell is the item,
// and of the numeric cells the first is the quantity and the last is the
// amount, with the next-to-last as unit price when three or more are
// present.
func parseHeaderless(rows [][]string, fallbackDate string) []entity.Record {
	var records []entity.Record
	for _, row := range rows {
		date := fallbackDate
		item := ""
		var numerics []float64
		for _, raw := range row {
			c := strings.TrimSpace(raw)
			if c == "" {
				continue
			}
			if d, ok := cellAsDate(c); ok && date == fallbackDate {
				date = d
				continue
			}
			if v, ok := parseCellNumber(c); ok {
				numerics = append(numerics, v)
				continue
			}
			if item == "" {
				item = c
			}
		}
		if item == "" || len(numerics) == 0 || containsAnyFold(item, autoSkipItems) {
			continue
		}

		r := entity.Record{Date: date, ItemName: item, Amount: numerics[len(numerics)-1]}
		if len(numerics) >= 2 {
			r.Quantity = numerics[0]
		}
		if len(numerics) >= 3 {
			r.UnitPrice = numerics[len(numerics)-2]
		}
		records = append(records, r)
	}
	return records
}

func cellAsDate(s string) (string, bool) {
	if len(s) > 10 && s[4] == '-' {
		s = s[:10]
	}
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

func containsAnyFold(s string, keys []string) bool {
	lowered := strings.ToLower(s)
	for _, k := range keys {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}
