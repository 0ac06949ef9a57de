package parse

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/entity"
)

func TestParse(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parse Suite")
}

var _ = Describe("FillDefaults", func() {
	It("fills vendor, date, and unit from the session context", func() {
		records := FillDefaults([]entity.Record{
			{ItemName: "うに", Quantity: 2, Amount: 11000},
		}, "Asami Suisan", "2025-10-05")

		Expect(records).To(HaveLen(1))
		Expect(records[0].Vendor).To(Equal("Asami Suisan"))
		Expect(records[0].Date).To(Equal("2025-10-05"))
		Expect(records[0].Unit).To(Equal("pc"))
		Expect(records[0].UnitPrice).To(Equal(5500.0))
	})

	It("keeps values the extractor already set", func() {
		records := FillDefaults([]entity.Record{
			{Vendor: "Maruyata", Date: "2025-10-12", ItemName: "真鯛", Quantity: 1.5, Unit: "kg", UnitPrice: 4000, Amount: 6000},
		}, "someone else", "2025-10-01")

		Expect(records).To(HaveLen(1))
		Expect(records[0].Vendor).To(Equal("Maruyata"))
		Expect(records[0].Date).To(Equal("2025-10-12"))
		Expect(records[0].UnitPrice).To(Equal(4000.0))
	})

	It("normalizes counter units onto the canonical vocabulary", func() {
		records := FillDefaults([]entity.Record{
			{ItemName: "のどぐろ", Quantity: 2, Unit: "尾", Amount: 7000},
		}, "Maruyata", "2025-10-07")

		Expect(records[0].Unit).To(Equal("pc"))
	})

	It("defaults a zero quantity to one before validity filtering", func() {
		records := FillDefaults([]entity.Record{
			{ItemName: "バター", Amount: 3200},
		}, "French F&B Japan", "2025-10-01")

		Expect(records).To(HaveLen(1))
		Expect(records[0].Quantity).To(Equal(1.0))
		Expect(records[0].UnitPrice).To(Equal(3200.0))
	})

	It("drops zero-amount lines and keeps credits", func() {
		records := FillDefaults([]entity.Record{
			{ItemName: "宅配運賃", Quantity: 1, Amount: 0},
			{ItemName: "返品 シャンパン ヴィネガー", Quantity: 1, UnitPrice: 3440, Amount: -3440},
		}, "French F&B Japan", "2025-10-01")

		Expect(records).To(HaveLen(1))
		Expect(records[0].Amount).To(Equal(-3440.0))
	})
})

var _ = Describe("ForStrategy", func() {
	It("binds each regex strategy to its parser", func() {
		for _, s := range []constants.Strategy{
			constants.StrategyHirayama,
			constants.StrategyFrenchFnB,
			constants.StrategyMaruyata,
		} {
			fn, ok := ForStrategy(s)
			Expect(ok).To(BeTrue(), string(s))
			Expect(fn).NotTo(BeNil(), string(s))
		}
	})

	It("reports no parser for sheet and vision strategies", func() {
		_, ok := ForStrategy(constants.StrategySheet)
		Expect(ok).To(BeFalse())
		_, ok = ForStrategy(constants.StrategyVision)
		Expect(ok).To(BeFalse())
	})
})
