package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/internal/entity"
)

type stubRecords struct {
	rows     []*entity.PurchaseRecord
	lastFrom *time.Time
	lastTo   *time.Time
}

func (s *stubRecords) UpsertBatch(ctx context.Context, records []entity.Record) (int, error) {
	return 0, nil
}

func (s *stubRecords) ListByDateRange(ctx context.Context, from, to *time.Time, vendorFilter string) ([]*entity.PurchaseRecord, error) {
	s.lastFrom, s.lastTo = from, to
	return s.rows, nil
}

func (s *stubRecords) DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	return 0, nil
}

func (s *stubRecords) Summary(ctx context.Context) (entity.TableSummary, error) {
	return entity.TableSummary{}, nil
}

type stubSales struct {
	rows []*entity.SalesRecord
}

func (s *stubSales) InsertBatch(ctx context.Context, rows []entity.SalesRow) (int, error) {
	return 0, nil
}

func (s *stubSales) ListByDateRange(ctx context.Context, from, to *time.Time, itemFilter string) ([]*entity.SalesRecord, error) {
	return s.rows, nil
}

func (s *stubSales) DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	return 0, nil
}

func (s *stubSales) Summary(ctx context.Context) (entity.TableSummary, error) {
	return entity.TableSummary{}, nil
}

var _ = Describe("ExportXLSX", func() {
	var (
		records *stubRecords
		sales   *stubSales
		svc     *Service
	)

	day := func(value string) time.Time {
		t, err := time.Parse("2006-01-02", value)
		Expect(err).NotTo(HaveOccurred())
		return t
	}

	BeforeEach(func() {
		records = &stubRecords{rows: []*entity.PurchaseRecord{
			{
				Vendor:    "Meat Shop Hirayama",
				TxDate:    day("2025-10-09"),
				ItemName:  "和牛ヒレ",
				Quantity:  6.3,
				Unit:      "kg",
				UnitPrice: 12000,
				Amount:    75600,
				Category:  "beef",
			},
			{
				Vendor:    "French F&B",
				TxDate:    day("2025-10-14"),
				ItemName:  "KAVIARI キャビア",
				Quantity:  22,
				Unit:      "can",
				UnitPrice: 19500,
				Amount:    429000,
				Category:  "caviar",
			},
		}}
		sales = &stubSales{rows: []*entity.SalesRecord{
			{
				SaleDate: day("2025-10-01"),
				Code:     "101",
				ItemName: "Omakase Course",
				Category: "course",
				Qty:      48,
				Price:    38500,
				NetTotal: 1848000,
			},
		}}
		svc = NewService(records, sales, 100, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	It("writes both sheets and drops the default one", func() {
		out, err := svc.ExportXLSX(context.Background(), nil, nil)
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		Expect(f.GetSheetList()).To(ConsistOf("Purchases", "Sales"))
	})

	It("lays out purchase rows with a grams column", func() {
		out, err := svc.ExportXLSX(context.Background(), nil, nil)
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Purchases")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal([]string{
			"Transaction Date", "Vendor", "Item", "Category",
			"Quantity", "Unit", "Grams", "Unit Price", "Amount",
		}))

		Expect(rows[1][0]).To(Equal("2025-10-09"))
		Expect(rows[1][1]).To(Equal("Meat Shop Hirayama"))
		Expect(rows[1][6]).To(Equal("6300"))

		// 22 cans at the 100 g container default.
		Expect(rows[2][2]).To(Equal("KAVIARI キャビア"))
		Expect(rows[2][6]).To(Equal("2200"))
	})

	It("lays out sales rows", func() {
		out, err := svc.ExportXLSX(context.Background(), nil, nil)
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Sales")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))
		Expect(rows[1]).To(Equal([]string{
			"2025-10-01", "101", "Omakase Course", "course", "48", "38500", "1848000",
		}))
	})

	It("closes an open-ended window at today", func() {
		from := day("2025-10-01")
		_, err := svc.ExportXLSX(context.Background(), &from, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(records.lastFrom).NotTo(BeNil())
		Expect(records.lastTo).NotTo(BeNil())
		Expect(records.lastFrom.Location()).To(Equal(time.UTC))
	})

	It("passes an unbounded window through as nil", func() {
		_, err := svc.ExportXLSX(context.Background(), nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(records.lastFrom).To(BeNil())
		Expect(records.lastTo).To(BeNil())
	})
})
