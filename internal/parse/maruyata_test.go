package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
)

const maruyataOct2025 = `株式会社 丸弥太
2025年10月分 御請求書
10/07 002131 のどぐろ 2 尾 3,500 7,000
10/07 002132 真鯛 1.5 kg 4,000 6,000
10/12 鱧 3 本 1,200 3,600
小計 16,600
10/15 002140 うに 2 パック 5,500 11,000
消費税 1,328
御買上額 17,928`

var _ = Describe("ParseMaruyata", func() {
	var records []entity.Record

	When("given the October 2025 slip", func() {
		BeforeEach(func() {
			records = ParseMaruyata(maruyataOct2025)
		})

		It("extracts every priced catch line", func() {
			Expect(records).To(HaveLen(4))
		})

		It("reads the date token on each line", func() {
			Expect(records[0].Date).To(Equal("2025-10-07"))
			Expect(records[1].Date).To(Equal("2025-10-07"))
			Expect(records[2].Date).To(Equal("2025-10-12"))
			Expect(records[3].Date).To(Equal("2025-10-15"))
		})

		It("strips slip codes from item names", func() {
			Expect(records[0].ItemName).To(Equal("のどぐろ"))
			Expect(records[1].ItemName).To(Equal("真鯛"))
			Expect(records[2].ItemName).To(Equal("鱧"))
			Expect(records[3].ItemName).To(Equal("うに"))
		})

		It("normalizes counting units onto the canonical vocabulary", func() {
			Expect(records[0].Unit).To(Equal("pc"))
			Expect(records[1].Unit).To(Equal("kg"))
			Expect(records[2].Unit).To(Equal("pc"))
			Expect(records[3].Unit).To(Equal("pack"))
		})

		It("keeps the printed unit price and amount columns", func() {
			Expect(records[0].UnitPrice).To(Equal(3500.0))
			Expect(records[0].Amount).To(Equal(7000.0))
			Expect(records[1].Quantity).To(Equal(1.5))
			Expect(records[1].Amount).To(Equal(6000.0))
		})

		It("skips subtotal, tax, and balance rows", func() {
			for _, r := range records {
				Expect(r.Amount).To(BeNumerically("<", 16600))
			}
		})

		It("stamps the vendor display name", func() {
			for _, r := range records {
				Expect(r.Vendor).To(Equal(vendor.DisplayMaruyata))
			}
		})
	})

	It("recovers the unit price when a line prints only the amount", func() {
		records = ParseMaruyata("2025年10月分\n10/20 平目 1 枚 8,000")

		Expect(records).To(HaveLen(1))
		Expect(records[0].Quantity).To(Equal(1.0))
		Expect(records[0].UnitPrice).To(Equal(8000.0))
		Expect(records[0].Amount).To(Equal(8000.0))
	})

	It("carries the date forward to lines without a token", func() {
		records = ParseMaruyata(`2025年10月分
10/07
のどぐろ 2 尾 3,500 7,000
真鯛 1.5 kg 4,000 6,000`)

		Expect(records).To(HaveLen(2))
		Expect(records[0].Date).To(Equal("2025-10-07"))
		Expect(records[1].Date).To(Equal("2025-10-07"))
	})

	It("collapses a doubled line to one record", func() {
		records = ParseMaruyata(`2025年10月分
10/07 のどぐろ 2 尾 3,500 7,000
10/07 のどぐろ 2 尾 3,500 7,000`)

		Expect(records).To(HaveLen(1))
	})

	It("ignores date tokens with impossible months or days", func() {
		records = ParseMaruyata("2025年10月分\n13/45 のどぐろ 2 尾 3,500 7,000")

		Expect(records).To(HaveLen(1))
		Expect(records[0].Date).To(Equal("2025-10-01"))
	})

	It("returns no records when no line carries a priced unit", func() {
		Expect(ParseMaruyata("株式会社 丸弥太\n2025年10月分\nお世話になっております")).To(BeEmpty())
	})
})
