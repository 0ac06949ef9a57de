package sheet

import (
	"strings"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
)

// The French F&B accounting export is a 36-column dump. Only six columns
// matter; the rest are branch codes and tax bookkeeping.
const (
	frenchColDate      = 15 // 伝票日付
	frenchColItem      = 30 // 商品名
	frenchColUnitPrice = 32 // 単価
	frenchColQty       = 33 // 数量
	frenchColUnit      = 34 // 単位
	frenchColAmount    = 35 // 商品金額
)

// isKnownLayout reports whether the sheet carries the supplier export
// signature: the labeled header row, or the bare 36-column shape in
// headerless dumps.
func isKnownLayout(rows [][]string) bool {
	header := rows[0]
	if len(header) > frenchColAmount {
		if strings.Contains(cell(header, frenchColItem), "商品名") ||
			strings.Contains(cell(header, frenchColDate), "伝票日付") {
			return true
		}
	}
	for _, row := range rows {
		if len(row) > frenchColAmount {
			return true
		}
	}
	return false
}

// parseKnownLayout reads data rows by fixed position, skipping the header
// row. Shipping-fee rows and non-positive amounts (returns) are excluded;
// every other figure is taken as printed. Caviar rows counted in tins are
// restated in grams.
func parseKnownLayout(rows [][]string, fallbackDate string) []entity.Record {
	var records []entity.Record
	for _, row := range rows[1:] {
		item := cell(row, frenchColItem)
		if item == "" {
			continue
		}
		if strings.Contains(item, "運賃") {
			continue
		}
		amount, ok := parseCellNumber(cell(row, frenchColAmount))
		if !ok || amount <= 0 {
			continue
		}

		qty, _ := parseCellNumber(cell(row, frenchColQty))
		unitPrice, _ := parseCellNumber(cell(row, frenchColUnitPrice))
		unit := cell(row, frenchColUnit)

		if vendor.ContainsItem(item, "caviar") {
			if unit == "缶" {
				qty *= 100
				unit = string(constants.UnitG)
			}
			item = "KAVIARI キャビア クリスタル 100g"
		}

		records = append(records, entity.Record{
			Vendor:    vendor.DisplayFrenchFnB,
			Date:      parseSheetDate(cell(row, frenchColDate), fallbackDate),
			ItemName:  item,
			Quantity:  qty,
			Unit:      unit,
			UnitPrice: unitPrice,
			Amount:    amount,
		})
	}
	return records
}
