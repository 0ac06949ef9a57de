package units

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUnits(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Units Suite")
}

var _ = Describe("ToGrams", func() {
	When("converting weight units", func() {
		It("multiplies kilograms by 1000", func() {
			Expect(ToGrams(6.3, "kg", 0)).To(BeNumerically("~", 6300, 1e-9))
		})

		It("multiplies 100g packs by 100", func() {
			Expect(ToGrams(3, "100g", 0)).To(BeNumerically("~", 300, 1e-9))
		})

		It("passes grams through", func() {
			Expect(ToGrams(250, "g", 0)).To(BeNumerically("~", 250, 1e-9))
		})

		It("round-trips every weight unit", func() {
			for _, unit := range []string{"kg", "g", "100g"} {
				grams := ToGrams(7.25, unit, 0)
				Expect(FromGrams(grams, unit)).To(BeNumerically("~", 7.25, 1e-9))
			}
		})
	})

	When("converting container units", func() {
		It("multiplies cans by the caller default", func() {
			Expect(ToGrams(22, "can", 100)).To(BeNumerically("~", 2200, 1e-9))
		})

		It("applies the default even for large counts", func() {
			Expect(ToGrams(10000, "can", 100)).To(BeNumerically("~", 1000000, 1e-9))
		})

		It("treats unknown tokens exactly like cans", func() {
			Expect(ToGrams(5, "樽", 100)).To(Equal(ToGrams(5, "can", 100)))
		})

		It("treats volumes as containers", func() {
			Expect(ToGrams(2, "bottle", 500)).To(BeNumerically("~", 1000, 1e-9))
			Expect(ToGrams(2, "ml", 500)).To(BeNumerically("~", 1000, 1e-9))
		})
	})

	When("the unit arrives in a localized spelling", func() {
		It("normalizes through the synonym table before converting", func() {
			Expect(ToGrams(2, "キログラム", 0)).To(BeNumerically("~", 2000, 1e-9))
			Expect(ToGrams(4, "缶", 100)).To(BeNumerically("~", 400, 1e-9))
		})
	})
})
