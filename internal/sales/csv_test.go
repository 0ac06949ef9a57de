package sales

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/internal/entity"
)

func TestSales(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sales Suite")
}

const posReport = `"Bistro Kyoto"
"Item Sales Report"
"From 2025-10-01 To 2025-10-31"
"Outlet: Main"
"Code","Name","Barcode","Category","Dept","Price","Qty","Gross Total","Discount","Tax","Net Total"
"1001","Omakase Course","","Food","1","28,000","45","1,260,000","0","0","1,260,000"
"2001","Wine Pairing","","Beverage","2","12,000","30","360,000","10,000","0","350,000"
"","","","","","","","","","",""
"Sub Total:","","","","","","75","1,620,000","10,000","0","1,610,000"
"3001","Sparkling Water","","Beverage","2","800","52","41,600","0","0","41,600"
"END OF REPORT","","","","","","","","","",""`

var _ = Describe("Extract", func() {
	var (
		ex   *Extractor
		rows []entity.SalesRow
	)

	BeforeEach(func() {
		ex = NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	When("given a monthly POS report", func() {
		BeforeEach(func() {
			var err error
			rows, err = ex.Extract([]byte(posReport))
			Expect(err).NotTo(HaveOccurred())
		})

		It("keeps item rows and drops banner, blank, and subtotal rows", func() {
			Expect(rows).To(HaveLen(3))
		})

		It("stamps the sniffed report month on every row", func() {
			for _, r := range rows {
				Expect(r.Month).To(Equal("2025-10"))
			}
		})

		It("reads comma-grouped figures", func() {
			Expect(rows[0].Code).To(Equal("1001"))
			Expect(rows[0].Name).To(Equal("Omakase Course"))
			Expect(rows[0].Category).To(Equal("Food"))
			Expect(rows[0].Price).To(Equal(28000.0))
			Expect(rows[0].Qty).To(Equal(45.0))
			Expect(rows[0].GrossTotal).To(Equal(1260000.0))
			Expect(rows[0].NetTotal).To(Equal(1260000.0))
		})

		It("keeps the discount column separate from net", func() {
			Expect(rows[1].Discount).To(Equal(10000.0))
			Expect(rows[1].GrossTotal).To(Equal(360000.0))
			Expect(rows[1].NetTotal).To(Equal(350000.0))
		})

		It("resumes item rows after a subtotal", func() {
			Expect(rows[2].Code).To(Equal("3001"))
			Expect(rows[2].Qty).To(Equal(52.0))
		})
	})

	It("ignores item-shaped rows before the column header", func() {
		report := `"9999","Phantom","","Food","1","100","1","100","0","0","100"
"Code","Name","Barcode","Category","Dept","Price","Qty","Gross Total","Discount","Tax","Net Total"
"1001","Omakase Course","","Food","1","28,000","45","1,260,000","0","0","1,260,000"`

		rows, err := ex.Extract([]byte(report))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Code).To(Equal("1001"))
	})

	It("drops rows whose numeric cells do not parse", func() {
		report := `"Code","Name","Barcode","Category","Dept","Price","Qty","Gross Total","Discount","Tax","Net Total"
"4001","Broken Row","","Food","1","abc","1","100","0","0","100"
"1001","Good Row","","Food","1","100","1","100","0","0","100"`

		rows, err := ex.Extract([]byte(report))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Name).To(Equal("Good Row"))
	})

	It("handles Windows line endings", func() {
		rows, err := ex.Extract([]byte(strings.ReplaceAll(posReport, "\n", "\r\n")))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))
	})

	It("leaves the month empty when the banner has no date range", func() {
		report := `"Code","Name","Barcode","Category","Dept","Price","Qty","Gross Total","Discount","Tax","Net Total"
"1001","Good Row","","Food","1","100","1","100","0","0","100"`

		rows, err := ex.Extract([]byte(report))
		Expect(err).NotTo(HaveOccurred())
		Expect(rows[0].Month).To(BeEmpty())
	})

	It("returns no rows for an empty file", func() {
		rows, err := ex.Extract(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(BeEmpty())
	})
})
