package sheet

import (
	"io"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
)

func TestSheet(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sheet Suite")
}

func newTestExtractor() *Extractor {
	return NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// frenchRow builds a 36-column supplier export row with the six meaningful
// columns populated.
func frenchRow(date, item string, unitPrice, qty interface{}, unit string, amount interface{}) []interface{} {
	row := make([]interface{}, 36)
	for i := range row {
		row[i] = ""
	}
	row[15] = date
	row[30] = item
	row[32] = unitPrice
	row[33] = qty
	row[34] = unit
	row[35] = amount
	return row
}

func frenchHeader() []interface{} {
	row := make([]interface{}, 36)
	for i := range row {
		row[i] = ""
	}
	row[15] = "伝票日付"
	row[30] = "商品名"
	row[32] = "単価"
	row[33] = "数量"
	row[34] = "単位"
	row[35] = "商品金額"
	return row
}

func workbookBytes(rows ...[]interface{}) []byte {
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		r := row
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.SetSheetRow("Sheet1", cellRef, &r)).To(Succeed())
	}
	buf, err := f.WriteToBuffer()
	Expect(err).NotTo(HaveOccurred())
	return buf.Bytes()
}

var _ = Describe("Extract", func() {
	var ex *Extractor

	BeforeEach(func() {
		ex = newTestExtractor()
	})

	When("the workbook carries the supplier export signature", func() {
		var (
			records []entity.Record
			layout  Layout
		)

		BeforeEach(func() {
			data := workbookBytes(
				frenchHeader(),
				frenchRow("2025-10-07", "KAVIARI キャビア クリスタル", 19500, 22, "缶", 429000),
				frenchRow("2025-10-09", "パレット バター 20g", 3200, 45, "PC", 144000),
				frenchRow("2025-10-09", "宅配運賃", 0, 1, "", 1080),
				frenchRow("2025-10-12", "シャンパン ヴィネガー 500ml", 3440, 1, "本", -3440),
				frenchRow("2025-10-13", "", 0, 0, "", 5000),
			)
			var err error
			records, layout, err = ex.Extract(data, "2025-10-01")
			Expect(err).NotTo(HaveOccurred())
		})

		It("routes to the known layout", func() {
			Expect(layout).To(Equal(LayoutKnown))
		})

		It("keeps product rows and drops fees, returns, and blanks", func() {
			Expect(records).To(HaveLen(2))
		})

		It("restates caviar tins in grams under the canonical name", func() {
			Expect(records[0].ItemName).To(Equal("KAVIARI キャビア クリスタル 100g"))
			Expect(records[0].Quantity).To(Equal(2200.0))
			Expect(records[0].Unit).To(Equal("g"))
			Expect(records[0].UnitPrice).To(Equal(19500.0))
			Expect(records[0].Amount).To(Equal(429000.0))
			Expect(records[0].Date).To(Equal("2025-10-07"))
		})

		It("reads ordinary rows by position", func() {
			Expect(records[1].ItemName).To(Equal("パレット バター 20g"))
			Expect(records[1].Quantity).To(Equal(45.0))
			Expect(records[1].Unit).To(Equal("PC"))
			Expect(records[1].Amount).To(Equal(144000.0))
		})

		It("attributes every row to the supplier", func() {
			for _, r := range records {
				Expect(r.Vendor).To(Equal(vendor.DisplayFrenchFnB))
			}
		})
	})

	It("recognizes the 36-column shape without a labeled header", func() {
		data := workbookBytes(
			frenchRow("2025-10-07", "パレット バター 20g", 3200, 45, "PC", 144000),
			frenchRow("2025-10-09", "パレット バター 20g", 3200, 10, "PC", 32000),
		)
		records, layout, err := ex.Extract(data, "2025-10-01")

		Expect(err).NotTo(HaveOccurred())
		Expect(layout).To(Equal(LayoutKnown))
		// Row 0 is always treated as the header, so only the second row lands.
		Expect(records).To(HaveLen(1))
		Expect(records[0].Quantity).To(Equal(10.0))
	})

	When("the workbook has a labeled header in another shape", func() {
		var (
			records []entity.Record
			layout  Layout
		)

		BeforeEach(func() {
			data := workbookBytes(
				[]interface{}{"日付", "品名", "数量", "単位", "単価", "金額"},
				[]interface{}{"2025/10/07", "のどぐろ", 2, "尾", 3500, 7000},
				[]interface{}{"2025/10/08", "合計", "", "", "", 7000},
				[]interface{}{"", "真鯛", 1.5, "kg", 4000, 6000},
			)
			var err error
			records, layout, err = ex.Extract(data, "2025-10-01")
			Expect(err).NotTo(HaveOccurred())
		})

		It("routes to auto detection", func() {
			Expect(layout).To(Equal(LayoutAuto))
		})

		It("reads rows by detected column roles", func() {
			Expect(records).To(HaveLen(2))
			Expect(records[0].ItemName).To(Equal("のどぐろ"))
			Expect(records[0].Quantity).To(Equal(2.0))
			Expect(records[0].Unit).To(Equal("尾"))
			Expect(records[0].UnitPrice).To(Equal(3500.0))
			Expect(records[0].Amount).To(Equal(7000.0))
			Expect(records[0].Date).To(Equal("2025-10-07"))
		})

		It("skips arithmetic rows", func() {
			for _, r := range records {
				Expect(r.ItemName).NotTo(ContainSubstring("合計"))
			}
		})

		It("stamps the fallback date on rows without one", func() {
			Expect(records[1].Date).To(Equal("2025-10-01"))
		})

		It("leaves vendor attribution to the session", func() {
			for _, r := range records {
				Expect(r.Vendor).To(BeEmpty())
			}
		})
	})

	It("guesses row shape when no header row exists", func() {
		data := workbookBytes(
			[]interface{}{"10-07-25", "のどぐろ", 2, 3500, 7000},
			[]interface{}{"うに", 11000},
		)
		records, layout, err := ex.Extract(data, "2025-10-01")

		Expect(err).NotTo(HaveOccurred())
		Expect(layout).To(Equal(LayoutAuto))
		Expect(records).To(HaveLen(2))

		Expect(records[0].ItemName).To(Equal("のどぐろ"))
		Expect(records[0].Date).To(Equal("2025-10-07"))
		Expect(records[0].Quantity).To(Equal(2.0))
		Expect(records[0].UnitPrice).To(Equal(3500.0))
		Expect(records[0].Amount).To(Equal(7000.0))

		Expect(records[1].ItemName).To(Equal("うに"))
		Expect(records[1].Date).To(Equal("2025-10-01"))
		Expect(records[1].Quantity).To(BeZero())
		Expect(records[1].Amount).To(Equal(11000.0))
	})

	It("returns no records for an empty workbook", func() {
		records, _, err := ex.Extract(workbookBytes(), "2025-10-01")

		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
	})

	It("fails on bytes that are not a workbook", func() {
		_, _, err := ex.Extract([]byte("not a workbook"), "2025-10-01")

		Expect(err).To(HaveOccurred())
	})
})
