package vision

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const cleanReply = `{
  "vendor_name": "株式会社 丸弥太",
  "invoice_date": "2025-10-07",
  "items": [
    {"date": "2025-10-07", "item_name": "のどぐろ", "quantity": 2, "unit": "尾", "unit_price": 3500, "amount": 7000},
    {"date": "2025-10-07", "item_name": "真鯛", "quantity": "1.50", "unit": "kg", "unit_price": "¥4,000", "amount": "6,000"}
  ]
}`

// Three complete items, then the stream cuts out mid way through a fourth.
const truncatedReply = `{"vendor_name": "株式会社 丸弥太", "invoice_date": "2025-10-07", "items": [` +
	`{"date": "2025-10-07", "item_name": "のどぐろ", "quantity": 2, "unit": "尾", "unit_price": 3500, "amount": 7000},` +
	`{"date": "2025-10-07", "item_name": "真鯛", "quantity": 1.5, "unit": "kg", "unit_price": 4000, "amount": 6000},` +
	`{"date": "2025-10-09", "item_name": "鱧", "quantity": 3, "unit": "本", "unit_price": 1200, "amount": 3600},` +
	`{"date": "2025-10-0`

var _ = Describe("StripCodeFence", func() {
	It("unwraps a terminated json fence", func() {
		Expect(StripCodeFence("```json\n{\"a\": 1}\n```")).To(Equal(`{"a": 1}`))
	})

	It("unwraps a fence with no language tag", func() {
		Expect(StripCodeFence("```\n{\"a\": 1}\n```")).To(Equal(`{"a": 1}`))
	})

	It("drops the opening marker of an unterminated fence", func() {
		Expect(StripCodeFence("```json\n{\"a\": 1")).To(Equal(`{"a": 1`))
	})

	It("leaves unfenced text alone", func() {
		Expect(StripCodeFence(`{"a": 1}`)).To(Equal(`{"a": 1}`))
	})
})

var _ = Describe("ParseResponse", func() {
	When("the reply is well formed", func() {
		It("parses directly, fences and all", func() {
			fields, stage, ok := ParseResponse("```json\n" + cleanReply + "\n```")
			Expect(ok).To(BeTrue())
			Expect(stage).To(Equal(RepairDirect))
			Expect(fields.VendorName).To(Equal("株式会社 丸弥太"))
			Expect(fields.InvoiceDate).To(Equal("2025-10-07"))
			Expect(fields.Items).To(HaveLen(2))
		})

		It("coerces quoted and yen-marked numerics", func() {
			fields, _, ok := ParseResponse(cleanReply)
			Expect(ok).To(BeTrue())
			tai := fields.Items[1]
			Expect(float64(tai.Quantity)).To(BeNumerically("~", 1.5, 1e-9))
			Expect(float64(tai.UnitPrice)).To(BeNumerically("~", 4000, 1e-9))
			Expect(float64(tai.Amount)).To(BeNumerically("~", 6000, 1e-9))
		})
	})

	When("the reply is cut off mid item", func() {
		It("recovers exactly the complete items", func() {
			fields, stage, ok := ParseResponse(truncatedReply)
			Expect(ok).To(BeTrue())
			Expect(stage).To(Equal(RepairObjects))
			Expect(fields.Items).To(HaveLen(3))
			Expect(fields.Items[2].ItemName).To(Equal("鱧"))
			Expect(fields.VendorName).To(Equal("株式会社 丸弥太"))
			Expect(fields.InvoiceDate).To(Equal("2025-10-07"))
		})

		It("recovers even when the cut lands inside an open fence", func() {
			fields, stage, ok := ParseResponse("```json\n" + truncatedReply)
			Expect(ok).To(BeTrue())
			Expect(stage).To(Equal(RepairObjects))
			Expect(fields.Items).To(HaveLen(3))
		})

		It("drops an item whose fields will not decode, keeping the rest", func() {
			reply := `{"vendor_name": "V", "items": [` +
				`{"item_name": "A", "quantity": 1, "amount": 100},` +
				`{"item_name": "B", "quantity": "abc", "amount": 200},` +
				`{"item_name": "C", "quantity": 3, "amount": 300},` +
				`{"item_name": "D", "qua`
			fields, stage, ok := ParseResponse(reply)
			Expect(ok).To(BeTrue())
			Expect(stage).To(Equal(RepairObjects))
			Expect(fields.Items).To(HaveLen(2))
			Expect(fields.Items[0].ItemName).To(Equal("A"))
			Expect(fields.Items[1].ItemName).To(Equal("C"))
		})

		It("decodes escapes inside a recovered vendor name", func() {
			reply := `{"vendor_name": "丸\"弥\"太", "items": [` +
				`{"item_name": "A", "amount": 100},` +
				`{"item_name": "B", "amo`
			fields, _, ok := ParseResponse(reply)
			Expect(ok).To(BeTrue())
			Expect(fields.VendorName).To(Equal(`丸"弥"太`))
		})
	})

	When("no complete item object survives", func() {
		It("falls through to closure on foreign item keys", func() {
			reply := `{"vendor_name": "V", "items": [` +
				`{"name": "A", "amount": 100},` +
				`{"name": "B", "amo`
			fields, stage, ok := ParseResponse(reply)
			Expect(ok).To(BeTrue())
			Expect(stage).To(Equal(RepairClosure))
			Expect(fields.Items).To(HaveLen(1))
			Expect(float64(fields.Items[0].Amount)).To(BeNumerically("~", 100, 1e-9))
		})

		It("closes out a document whose items all fail the name check", func() {
			reply := `{"vendor_name": "V", "invoice_date": "2025-10-01", "items": [` +
				`{"item_name": "", "amount": 100},` +
				`{"item_name": "", "amount": 200}]}`
			fields, stage, ok := ParseResponse(reply)
			Expect(ok).To(BeTrue())
			Expect(stage).To(Equal(RepairClosure))
			Expect(fields.Records()).To(BeEmpty())
		})
	})

	When("every stage fails", func() {
		It("reports no parse for prose with no item boundary", func() {
			_, _, ok := ParseResponse("I could not read this invoice, the scan is illegible.")
			Expect(ok).To(BeFalse())
		})

		It("reports no parse for a bare vendor object", func() {
			_, _, ok := ParseResponse(`{"vendor_name": "V"}`)
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("ParseDirect", func() {
	It("rejects a document with no items key", func() {
		_, ok := ParseDirect(`{"vendor_name": "V", "invoice_date": "2025-10-01"}`)
		Expect(ok).To(BeFalse())
	})

	It("rejects an item with an empty name", func() {
		_, ok := ParseDirect(`{"vendor_name": "V", "items": [{"item_name": ""}]}`)
		Expect(ok).To(BeFalse())
	})

	It("accepts a minimal valid document", func() {
		f, ok := ParseDirect(`{"items": [{"item_name": "うに"}]}`)
		Expect(ok).To(BeTrue())
		Expect(f.Items).To(HaveLen(1))
	})
})

var _ = Describe("Number", func() {
	DescribeTable("coercions",
		func(raw string, want float64) {
			var n Number
			Expect(json.Unmarshal([]byte(raw), &n)).To(Succeed())
			Expect(float64(n)).To(BeNumerically("~", want, 1e-9))
		},
		Entry("bare number", `6.3`, 6.3),
		Entry("quoted decimal", `"6.30"`, 6.3),
		Entry("yen mark and thousands separators", `"¥12,000"`, 12000.0),
		Entry("thousands separators alone", `"1,200"`, 1200.0),
		Entry("null", `null`, 0.0),
		Entry("empty string", `""`, 0.0),
	)

	It("rejects non numeric text", func() {
		var n Number
		Expect(json.Unmarshal([]byte(`"two cans"`), &n)).NotTo(Succeed())
	})
})

var _ = Describe("Records", func() {
	It("canonicalizes the vendor and fills missing item dates", func() {
		f := InvoiceFields{
			VendorName:  "株式会社ミートショップひらい",
			InvoiceDate: "2025-10-09",
			Items: []InvoiceItem{
				{ItemName: "和牛ヒレ", Quantity: 6.3, Unit: "kg", UnitPrice: 12000, Amount: 75600},
				{Date: "2025-10-11", ItemName: "和牛ヒレ", Quantity: 5.8, Unit: "kg", UnitPrice: 12000, Amount: 69600},
			},
		}
		records := f.Records()
		Expect(records).To(HaveLen(2))
		Expect(records[0].Vendor).To(Equal("Meat Shop Hirayama"))
		Expect(records[0].Date).To(Equal("2025-10-09"))
		Expect(records[1].Date).To(Equal("2025-10-11"))
	})

	It("passes unknown vendors through unchanged", func() {
		f := InvoiceFields{VendorName: "京都食品卸センター", Items: []InvoiceItem{{ItemName: "鹿ロース", Amount: 9600}}}
		Expect(f.Records()[0].Vendor).To(Equal("京都食品卸センター"))
	})

	It("canonicalizes mapped vendor spellings", func() {
		f := InvoiceFields{VendorName: "洛北ジビエ イマイ", Items: []InvoiceItem{{ItemName: "鹿ロース", Amount: 9600}}}
		Expect(f.Records()[0].Vendor).To(Equal("Gibier Imai"))
	})

	It("skips items with blank names", func() {
		f := InvoiceFields{Items: []InvoiceItem{
			{ItemName: "  ", Amount: 100},
			{ItemName: "うに", Amount: 11000},
		}}
		Expect(f.Records()).To(HaveLen(1))
	})
})
