package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/internal/pdf"
	"github.com/bistrodata/invoice-tracker/internal/sales"
	"github.com/bistrodata/invoice-tracker/internal/sheet"
	"github.com/bistrodata/invoice-tracker/internal/vision"
)

type fakePDF struct {
	text        pdf.TextResult
	images      [][]byte
	renderErr   error
	cleanupWarn string
	textCalls   int
	renderCalls int
}

func (f *fakePDF) ExtractText(data []byte) pdf.TextResult {
	f.textCalls++
	return f.text
}

func (f *fakePDF) RenderPages(ctx context.Context, data []byte) ([][]byte, string, error) {
	f.renderCalls++
	return f.images, f.cleanupWarn, f.renderErr
}

func (f *fakePDF) MaxPages() int { return 5 }

type fakeVision struct {
	fields  vision.InvoiceFields
	raw     []byte
	err     error
	calls   int
	lastReq vision.ExtractRequest
}

func (f *fakeVision) ExtractInvoice(ctx context.Context, req vision.ExtractRequest) (vision.InvoiceFields, []byte, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return vision.InvoiceFields{}, nil, f.err
	}
	return f.fields, f.raw, nil
}

const hirayamaText = `2025年10月 御請求書
ミートショップひら山
25/10/09 002077 和牛ヒレ 8% 6.30 kg 12,000 75,600
25/10/11 002077 和牛ヒレ 8% 5.80 kg 12,000 69,600
御買上額合計 145,200`

const posCSV = `Daily Sales Report From 2025-10-01 To 2025-10-31
Code,Name,Kind,Category,Base,Price,Qty,Gross,Discount,Tax,Net
101,"Omakase Course",ITEM,Food,0,"28,000",45,"1,260,000",0,0,"1,260,000"
Sub Total:,,,,,,,,,,
END OF REPORT`

func uniItems() vision.InvoiceFields {
	return vision.InvoiceFields{
		VendorName:  "有限会社浅見水産",
		InvoiceDate: "2025-10-12",
		Items: []vision.InvoiceItem{
			{ItemName: "うに", Quantity: 2, Unit: "パック", UnitPrice: 5500, Amount: 11000},
			{ItemName: "送料", Quantity: 1, Amount: 0},
		},
		Stage: vision.RepairDirect,
	}
}

func autoSheetBytes() []byte {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"商品名", "数量", "金額"},
		{"のどぐろ", 2, 7000},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.SetSheetRow("Sheet1", cell, &row)).To(Succeed())
	}
	buf, err := f.WriteToBuffer()
	Expect(err).NotTo(HaveOccurred())
	return buf.Bytes()
}

var _ = Describe("Engine", func() {
	var (
		pdfx *fakePDF
		vx   *fakeVision
	)

	newEngine := func(v vision.Extractor) *Engine {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		return NewEngine(Config{FallbackDate: "2025-10-01"}, pdfx, sheet.NewExtractor(log), sales.NewExtractor(log), v, log)
	}

	BeforeEach(func() {
		pdfx = &fakePDF{images: [][]byte{{0x89, 'P', 'N', 'G'}}}
		vx = &fakeVision{fields: uniItems(), raw: []byte(`{}`)}
	})

	When("a text-layer PDF matches a vendor parser", func() {
		BeforeEach(func() {
			pdfx.text = pdf.TextResult{Text: hirayamaText, Pages: 1}
		})

		It("stops at the regex parser", func() {
			s := newEngine(vx).Extract(context.Background(), []byte("%PDF"), "hirayama_oct.pdf")
			Expect(s.Records).To(HaveLen(2))
			Expect(s.Strategy).To(Equal(constants.StrategyHirayama))
			Expect(s.Vendor).To(Equal("Meat Shop Hirayama"))
			Expect(vx.calls).To(BeZero())
			Expect(pdfx.renderCalls).To(BeZero())
			Expect(s.Attempts).To(HaveLen(1))
			Expect(s.Attempts[0].Outcome).To(Equal("ok"))
		})

		It("produces the same output when run twice", func() {
			e := newEngine(vx)
			first := e.Extract(context.Background(), []byte("%PDF"), "hirayama_oct.pdf")
			second := e.Extract(context.Background(), []byte("%PDF"), "hirayama_oct.pdf")
			Expect(second.Records).To(Equal(first.Records))
			Expect(second.ID).NotTo(Equal(first.ID))
		})
	})

	When("the vendor is known but the document is scanned", func() {
		BeforeEach(func() {
			pdfx.text = pdf.TextResult{Text: "ひら山 2025年10月", Pages: 2, IsScanned: true}
		})

		It("never invokes the regex parser, going straight to vision", func() {
			s := newEngine(vx).Extract(context.Background(), []byte("%PDF"), "scan.pdf")
			Expect(s.IsScanned).To(BeTrue())
			Expect(s.Attempts[0].Strategy).To(Equal(constants.StrategyHirayama))
			Expect(s.Attempts[0].Outcome).To(ContainSubstring("skipped"))
			Expect(vx.calls).To(Equal(1))
			Expect(s.Records).To(HaveLen(1))
			Expect(s.Strategy).To(Equal(constants.StrategyVision))
		})

		It("ends with zero records and a trace line when no provider is configured", func() {
			s := newEngine(nil).Extract(context.Background(), []byte("%PDF"), "scan.pdf")
			Expect(s.Records).To(BeEmpty())
			Expect(s.Trace.Lines()).To(ContainElement(ContainSubstring("vision unavailable")))
			Expect(s.Failure).To(BeEmpty())
		})
	})

	When("the parser finds nothing in a text layer", func() {
		BeforeEach(func() {
			pdfx.text = pdf.TextResult{Text: "ミートショップひら山 ご請求の明細は別紙をご覧ください", Pages: 1}
		})

		It("escalates to vision and keeps the detected vendor", func() {
			vx.fields.VendorName = ""
			s := newEngine(vx).Extract(context.Background(), []byte("%PDF"), "cover.pdf")
			Expect(s.Attempts[0].Outcome).To(Equal("empty"))
			Expect(vx.calls).To(Equal(1))
			Expect(s.Records).To(HaveLen(1))
			Expect(s.Records[0].Vendor).To(Equal("Meat Shop Hirayama"))
		})
	})

	When("vision responds", func() {
		BeforeEach(func() {
			pdfx.text = pdf.TextResult{IsScanned: true, Pages: 1}
		})

		It("normalizes and filters the model items", func() {
			s := newEngine(vx).Extract(context.Background(), []byte("%PDF"), "asami.pdf")
			Expect(s.Records).To(HaveLen(1))
			r := s.Records[0]
			Expect(r.ItemName).To(Equal("うに"))
			Expect(r.Vendor).To(Equal("Asami Suisan"))
			Expect(r.Date).To(Equal("2025-10-12"))
			Expect(r.Unit).To(Equal(string(constants.UnitPack)))
			Expect(r.UnitPrice).To(BeNumerically("~", 5500, 1e-9))
			Expect(s.Trace.Lines()).To(ContainElement(ContainSubstring("stage direct")))
		})

		It("submits the rendered pages", func() {
			pdfx.images = [][]byte{{1}, {2}, {3}}
			newEngine(vx).Extract(context.Background(), []byte("%PDF"), "asami.pdf")
			Expect(vx.lastReq.Images).To(HaveLen(3))
			Expect(vx.lastReq.Filename).To(Equal("asami.pdf"))
		})

		It("treats a failed call as escalation exhausted", func() {
			vx.err = fmt.Errorf("deadline exceeded")
			s := newEngine(vx).Extract(context.Background(), []byte("%PDF"), "asami.pdf")
			Expect(s.Records).To(BeEmpty())
			Expect(s.Failure).To(BeEmpty())
			Expect(s.Trace.Lines()).To(ContainElement(ContainSubstring("escalation exhausted")))
			Expect(vx.calls).To(Equal(1))
		})

		It("records a render failure without calling the model", func() {
			pdfx.images = nil
			pdfx.renderErr = fmt.Errorf("pdftoppm: exit status 1")
			s := newEngine(vx).Extract(context.Background(), []byte("%PDF"), "asami.pdf")
			Expect(vx.calls).To(BeZero())
			Expect(s.Records).To(BeEmpty())
			Expect(s.Trace.Lines()).To(ContainElement(ContainSubstring("page render failed")))
		})

		It("logs a scratch cleanup failure to the trace without failing the session", func() {
			pdfx.cleanupWarn = "failed to remove scratch dir"
			s := newEngine(vx).Extract(context.Background(), []byte("%PDF"), "asami.pdf")
			Expect(s.Records).To(HaveLen(1))
			Expect(s.Trace.Lines()).To(ContainElement(ContainSubstring("cleanup")))
		})
	})

	When("the file is a single image", func() {
		It("goes straight to vision with the raw bytes", func() {
			img := []byte{0xff, 0xd8, 0xff}
			s := newEngine(vx).Extract(context.Background(), img, "photo.jpg")
			Expect(pdfx.textCalls).To(BeZero())
			Expect(pdfx.renderCalls).To(BeZero())
			Expect(vx.calls).To(Equal(1))
			Expect(vx.lastReq.Images).To(Equal([][]byte{img}))
			Expect(s.Strategy).To(Equal(constants.StrategyVision))
		})
	})

	When("the file is a spreadsheet", func() {
		It("extracts through the sheet path and never escalates", func() {
			s := newEngine(vx).Extract(context.Background(), autoSheetBytes(), "orders.xlsx")
			Expect(s.Strategy).To(Equal(constants.StrategySheet))
			Expect(s.Records).To(HaveLen(1))
			Expect(s.Records[0].ItemName).To(Equal("のどぐろ"))
			Expect(s.Records[0].Amount).To(BeNumerically("~", 7000, 1e-9))
			Expect(s.Records[0].Date).To(Equal("2025-10-01"))
			Expect(vx.calls).To(BeZero())
		})

		It("marks an unreadable workbook failed instead of routing to vision", func() {
			s := newEngine(vx).Extract(context.Background(), []byte("not a workbook"), "orders.xlsx")
			Expect(s.Failure).To(ContainSubstring("unreadable workbook"))
			Expect(s.Records).To(BeEmpty())
			Expect(vx.calls).To(BeZero())
		})
	})

	When("the file is a sales CSV", func() {
		It("extracts sales rows", func() {
			s := newEngine(vx).Extract(context.Background(), []byte(posCSV), "sales_oct.csv")
			Expect(s.Strategy).To(Equal(constants.StrategySales))
			Expect(s.SalesRows).To(HaveLen(1))
			Expect(s.SalesRows[0].Name).To(Equal("Omakase Course"))
			Expect(s.SalesRows[0].Month).To(Equal("2025-10"))
			Expect(s.Records).To(BeEmpty())
			Expect(vx.calls).To(BeZero())
		})
	})

	When("the extension is not supported", func() {
		It("fails the document without touching any extractor", func() {
			s := newEngine(vx).Extract(context.Background(), []byte("hello"), "notes.txt")
			Expect(s.Failure).To(ContainSubstring("unsupported file extension"))
			Expect(pdfx.textCalls).To(BeZero())
			Expect(vx.calls).To(BeZero())
		})
	})
})
