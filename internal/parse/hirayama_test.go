package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
)

// October 2025 statement, reconciled by hand against the paper slip:
// fourteen deliveries, 89.50 kg, ¥1,074,000 before tax.
const hirayamaOct2025 = `ミートショップひら山
2025年10月分 御請求書
25/10/09 002077 和牛ヒレ 8% 6.30 kg 12,000 75,600
25/10/09 002078 和牛ヒレ 8% 5.90 kg 12,000 70,800
25/10/11 002080 和牛ヒレ 8% 5.80 kg 12,000 69,600
25/10/11 002081 和牛ヒレ 8% 5.70 kg 12,000 68,400
25/10/13 002083 和牛ヒレ 8% 6.10 kg 12,000 73,200
25/10/16 002085 和牛ヒレ 8% 6.00 kg 12,000 72,000
25/10/16 002086 和牛ヒレ 8% 5.50 kg 12,000 66,000
25/10/18 002088 和牛ヒレ 8% 7.30 kg 12,000 87,600
25/10/21 002090 和牛ヒレ 8% 7.10 kg 12,000 85,200
25/10/21 002091 和牛ヒレ 8% 7.30 kg 12,000 87,600
25/10/23 002093 和牛ヒレ 8% 7.90 kg 12,000 94,800
25/10/23 002094 和牛ヒレ 8% 6.00 kg 12,000 72,000
25/10/31 002096 和牛ヒレ 8% 5.70 kg 12,000 68,400
25/10/31 002097 和牛ヒレ 8% 6.90 kg 12,000 82,800
御買上額合計 1,074,000`

var _ = Describe("ParseHirayama", func() {
	var records []entity.Record

	When("given the October 2025 statement", func() {
		BeforeEach(func() {
			records = ParseHirayama(hirayamaOct2025)
		})

		It("extracts all fourteen deliveries", func() {
			Expect(records).To(HaveLen(14))
		})

		It("reconciles against the statement totals", func() {
			var kg, yen float64
			for _, r := range records {
				kg += r.Quantity
				yen += r.Amount
			}
			Expect(kg).To(BeNumerically("~", 89.50, 1e-9))
			Expect(yen).To(Equal(1074000.0))
		})

		It("stamps every record with the fixed contract terms", func() {
			for _, r := range records {
				Expect(r.Vendor).To(Equal(vendor.DisplayHirayama))
				Expect(r.ItemName).To(Equal("和牛ヒレ (Wagyu Tenderloin)"))
				Expect(r.Unit).To(Equal("kg"))
				Expect(r.UnitPrice).To(Equal(12000.0))
				Expect(r.Amount).To(Equal(r.Quantity * 12000))
			}
		})

		It("keeps the same weight delivered on two different dates", func() {
			dates := map[string]bool{}
			for _, r := range records {
				if r.Quantity == 7.30 {
					dates[r.Date] = true
				}
			}
			Expect(dates).To(HaveKey("2025-10-18"))
			Expect(dates).To(HaveKey("2025-10-21"))
		})

		It("sorts records by ascending weight", func() {
			for i := 1; i < len(records); i++ {
				Expect(records[i].Quantity).To(BeNumerically(">=", records[i-1].Quantity))
			}
		})
	})

	It("collapses the doubled-line OCR artifact to a single record", func() {
		doubled := `2025年10月分
25/10/18 002088 和牛ヒレ 8% 7.30 kg 12,000 87,600
25/10/18 002088 和牛ヒレ 8% 7.30 kg 12,000 87,600`

		records = ParseHirayama(doubled)
		Expect(records).To(HaveLen(1))
		Expect(records[0].Date).To(Equal("2025-10-18"))
		Expect(records[0].Quantity).To(Equal(7.30))
		Expect(records[0].Amount).To(Equal(87600.0))
	})

	It("carries a date forward across suffix-only lines", func() {
		text := `2025年10月分
25/10/09 和牛ヒレ
6.30 kg
5.90 kg`

		records = ParseHirayama(text)
		Expect(records).To(HaveLen(2))
		Expect(records[0].Date).To(Equal("2025-10-09"))
		Expect(records[1].Date).To(Equal("2025-10-09"))
	})

	It("accepts the ke misreading of the kg suffix", func() {
		records = ParseHirayama("2025年10月分\n25/10/13 和牛モレ 6.10 ke 73,200")
		Expect(records).To(HaveLen(1))
		Expect(records[0].Quantity).To(Equal(6.10))
	})

	When("OCR destroys every kg suffix", func() {
		BeforeEach(func() {
			records = ParseHirayama(`2025年10月分 御請求書
読取不能 6.30 読取不能 5.90
税率 8% 合計 146,400 消費税 11,712 繰越 3.50 11.20`)
		})

		It("sweeps in-band weights and dates them at the start of the month", func() {
			Expect(records).To(HaveLen(2))
			for _, r := range records {
				Expect(r.Date).To(Equal("2025-10-01"))
			}
		})

		It("rejects sweep candidates outside the delivery band", func() {
			for _, r := range records {
				Expect(r.Quantity).To(BeNumerically(">=", 4.0))
				Expect(r.Quantity).To(BeNumerically("<=", 10.0))
			}
		})
	})

	It("leaves the sweep off when any suffixed weight was found", func() {
		records = ParseHirayama("2025年10月分\n25/10/09 和牛ヒレ 6.30 kg 75,600\nノイズ 5.90 ノイズ")
		Expect(records).To(HaveLen(1))
		Expect(records[0].Quantity).To(Equal(6.30))
	})

	It("falls back to header defaults when the month line is missing", func() {
		records = ParseHirayama("和牛ヒレ 6.30 kg")
		Expect(records).To(HaveLen(1))
		Expect(records[0].Date).To(Equal("2025-10-01"))
	})

	It("is idempotent for identical input", func() {
		Expect(ParseHirayama(hirayamaOct2025)).To(Equal(ParseHirayama(hirayamaOct2025)))
	})

	It("returns no records for unrelated text", func() {
		Expect(ParseHirayama("2025年10月分 宅配運賃 1,080円")).To(BeEmpty())
	})
})
