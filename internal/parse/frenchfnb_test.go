package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
)

var _ = Describe("ParseFrenchFnB", func() {
	var records []entity.Record

	When("given the classic invoice layout", func() {
		BeforeEach(func() {
			records = ParseFrenchFnB(`フレンチ・エフ・アンド・ビージャパン株式会社
2025年9月 御請求書
KAVIARI キャビア クリスタル 100g ¥117,000
エシレ ブール パレット 20g ¥3,200
宅配運賃 ¥1,080`)
		})

		It("extracts one priced line per product", func() {
			Expect(records).To(HaveLen(2))
		})

		It("books caviar as a single piece at the line amount", func() {
			Expect(records[0].ItemName).To(Equal("KAVIARI キャビア クリスタル 100g"))
			Expect(records[0].Quantity).To(Equal(1.0))
			Expect(records[0].Unit).To(Equal("pc"))
			Expect(records[0].UnitPrice).To(Equal(117000.0))
			Expect(records[0].Amount).To(Equal(117000.0))
		})

		It("recognizes butter by the ブール alias", func() {
			Expect(records[1].ItemName).To(Equal("パレット バター 20g"))
			Expect(records[1].Amount).To(Equal(3200.0))
		})

		It("dates every record at the start of the invoice month", func() {
			for _, r := range records {
				Expect(r.Date).To(Equal("2025-09-01"))
				Expect(r.Vendor).To(Equal(vendor.DisplayFrenchFnB))
			}
		})
	})

	When("given the product summary layout", func() {
		BeforeEach(func() {
			records = ParseFrenchFnB(`商品別金額表 2025年10月
KAVIARI キャビア クリスタル 100g 22缶 \429,000
パレット バター 20g 45 PC \144,000
生 スモールジロール
2 kg \13,000
シャンパン ヴィネガー 500ml 6本 \20,640
シャンパン ヴィネガー 500ml 6本 \20,640`)
		})

		It("converts caviar tins to grams and keeps the per-tin price", func() {
			Expect(records[0].ItemName).To(Equal("KAVIARI キャビア クリスタル 100g"))
			Expect(records[0].Quantity).To(Equal(2200.0))
			Expect(records[0].Unit).To(Equal("g"))
			Expect(records[0].UnitPrice).To(Equal(19500.0))
			Expect(records[0].Amount).To(Equal(429000.0))
		})

		It("books butter by piece count", func() {
			Expect(records[1].Quantity).To(Equal(45.0))
			Expect(records[1].Unit).To(Equal("pc"))
			Expect(records[1].UnitPrice).To(Equal(3200.0))
		})

		It("reads a count wrapped onto the following line", func() {
			Expect(records[2].ItemName).To(Equal("生 スモールジロール"))
			Expect(records[2].Quantity).To(Equal(2.0))
			Expect(records[2].Unit).To(Equal("kg"))
			Expect(records[2].Amount).To(Equal(13000.0))
		})

		It("collapses the repeated vinegar row to one record", func() {
			Expect(records).To(HaveLen(4))
			Expect(records[3].ItemName).To(Equal("シャンパン ヴィネガー 500ml"))
			Expect(records[3].Quantity).To(Equal(6.0))
			Expect(records[3].Unit).To(Equal("bottle"))
			Expect(records[3].Amount).To(Equal(20640.0))
		})
	})

	It("routes on the 取引数量 column label as well", func() {
		records = ParseFrenchFnB(`取引数量 2025年10月
KAVIARI キャビア クリスタル 100g 22缶 \429,000`)

		Expect(records).To(HaveLen(1))
		Expect(records[0].Quantity).To(Equal(2200.0))
	})

	It("consumes a caviar count line so it is not read twice", func() {
		records = ParseFrenchFnB(`商品別金額表 2025年10月
KAVIARI キャビア クリスタル 100g
22缶 \429,000`)

		Expect(records).To(HaveLen(1))
		Expect(records[0].Quantity).To(Equal(2200.0))
		Expect(records[0].Amount).To(Equal(429000.0))
	})

	It("ignores the vinegar category row without the product word", func() {
		records = ParseFrenchFnB(`商品別金額表 2025年10月
ビネガー類 6本 \20,640`)

		Expect(records).To(BeEmpty())
	})

	It("reads OCR yen marks in either form", func() {
		records = ParseFrenchFnB(`2025年9月
KAVIARI キャビア クリスタル 100g \117,000`)

		Expect(records).To(HaveLen(1))
		Expect(records[0].Amount).To(Equal(117000.0))
	})

	It("defaults to January when the month header is unreadable", func() {
		records = ParseFrenchFnB("KAVIARI キャビア クリスタル 100g ¥117,000")

		Expect(records).To(HaveLen(1))
		Expect(records[0].Date).To(Equal("2025-01-01"))
	})
})
