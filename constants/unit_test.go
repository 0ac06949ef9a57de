package constants

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConstants(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Constants Suite")
}

var _ = Describe("NormalizeUnit", func() {
	DescribeTable("maps localized spellings onto the canonical vocabulary",
		func(input string, want Unit) {
			Expect(NormalizeUnit(input)).To(Equal(want))
		},
		Entry("kilogram word", "キログラム", UnitKg),
		Entry("gram word", "グラム", UnitG),
		Entry("litre word", "リットル", UnitL),
		Entry("counter 個", "個", UnitPiece),
		Entry("counter 本", "本", UnitPiece),
		Entry("counter 丁", "丁", UnitPiece),
		Entry("fish counter 尾", "尾", UnitPiece),
		Entry("can", "缶", UnitCan),
		Entry("box", "箱", UnitBox),
		Entry("pack", "パック", UnitPack),
		Entry("bag", "袋", UnitBag),
		Entry("bottle", "瓶", UnitBottle),
		Entry("plural pcs", "pcs", UnitPiece),
		Entry("uppercase weight", "Kg", UnitKg),
		Entry("surrounding space", " kg ", UnitKg),
	)

	It("defaults empty tokens to pc", func() {
		Expect(NormalizeUnit("")).To(Equal(UnitPiece))
		Expect(NormalizeUnit("   ")).To(Equal(UnitPiece))
	})

	It("passes unknown tokens through unchanged", func() {
		Expect(NormalizeUnit("樽")).To(Equal(Unit("樽")))
	})
})

var _ = Describe("MapExtToFormat", func() {
	It("routes extensions to document formats", func() {
		Expect(MapExtToFormat(".pdf")).To(Equal(PDF))
		Expect(MapExtToFormat("PDF")).To(Equal(PDF))
		Expect(MapExtToFormat(".xlsx")).To(Equal(SHEET))
		Expect(MapExtToFormat("xls")).To(Equal(SHEET))
		Expect(MapExtToFormat(".csv")).To(Equal(CSV))
		Expect(MapExtToFormat(".jpeg")).To(Equal(IMAGE))
		Expect(MapExtToFormat(".docx")).To(Equal(FileFormat("")))
	})
})

var _ = Describe("CategorizeItem", func() {
	It("buckets wagyu as meat", func() {
		Expect(CategorizeItem("和牛ヒレ (Wagyu Tenderloin)")).To(Equal(Meat))
	})

	It("buckets caviar as seafood", func() {
		Expect(CategorizeItem("KAVIARI キャビア クリスタル 100g")).To(Equal(Seafood))
	})

	It("prefers the vinegar bucket over the champagne keyword", func() {
		Expect(CategorizeItem("シャンパン ヴィネガー 500ml")).To(Equal(Pantry))
	})

	It("lands unmatched names in Other", func() {
		Expect(CategorizeItem("宅配運賃")).To(Equal(Other))
	})
})
