package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/gen/ent"
	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/pdf"
	"github.com/bistrodata/invoice-tracker/internal/repository"
	"github.com/bistrodata/invoice-tracker/internal/sales"
	"github.com/bistrodata/invoice-tracker/internal/sheet"
	"github.com/bistrodata/invoice-tracker/internal/vision"
)

type fakeFiles struct {
	row *ent.InvoiceFile
	err error
}

func (f *fakeFiles) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.row, nil
}

func (f *fakeFiles) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error) {
	return nil, errors.New("not found")
}

func (f *fakeFiles) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	return f.row, nil
}

func (f *fakeFiles) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	return f.row, false, nil
}

type fakeJobs struct {
	startedFormats []string
	outcome        *repository.JobOutcome
	failureMessage string
	failureTrace   []string
}

func (f *fakeJobs) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	f.startedFormats = append(f.startedFormats, format)
	return &ent.ExtractJob{ID: uuid.New(), FileID: fileID, Format: format}, nil
}

func (f *fakeJobs) Finish(ctx context.Context, jobID uuid.UUID, outcome repository.JobOutcome) error {
	f.outcome = &outcome
	return nil
}

func (f *fakeJobs) FinishFailure(ctx context.Context, jobID uuid.UUID, message string, trace []string) error {
	f.failureMessage = message
	f.failureTrace = trace
	return nil
}

func (f *fakeJobs) ListByFile(ctx context.Context, fileID uuid.UUID) ([]*ent.ExtractJob, error) {
	return nil, nil
}

type fakeRecords struct {
	upserted []entity.Record
}

func (f *fakeRecords) UpsertBatch(ctx context.Context, records []entity.Record) (int, error) {
	f.upserted = append(f.upserted, records...)
	return len(records), nil
}

func (f *fakeRecords) ListByDateRange(ctx context.Context, from, to *time.Time, vendorFilter string) ([]*entity.PurchaseRecord, error) {
	return nil, nil
}

func (f *fakeRecords) DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	return 0, nil
}

func (f *fakeRecords) Summary(ctx context.Context) (entity.TableSummary, error) {
	return entity.TableSummary{}, nil
}

type fakeSales struct {
	inserted []entity.SalesRow
}

func (f *fakeSales) InsertBatch(ctx context.Context, rows []entity.SalesRow) (int, error) {
	f.inserted = append(f.inserted, rows...)
	return len(rows), nil
}

func (f *fakeSales) ListByDateRange(ctx context.Context, from, to *time.Time, itemFilter string) ([]*entity.SalesRecord, error) {
	return nil, nil
}

func (f *fakeSales) DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	return 0, nil
}

func (f *fakeSales) Summary(ctx context.Context) (entity.TableSummary, error) {
	return entity.TableSummary{}, nil
}

var _ = Describe("Processor", func() {
	var (
		pdfx    *fakePDF
		files   *fakeFiles
		jobs    *fakeJobs
		records *fakeRecords
		salesRs *fakeSales
	)

	newProcessor := func(v vision.Extractor) *Processor {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		engine := NewEngine(Config{FallbackDate: "2025-10-01"}, pdfx, sheet.NewExtractor(log), sales.NewExtractor(log), v, log)
		return NewProcessor(log, engine, files, jobs, records, salesRs)
	}

	fileRow := func(dir, name string, content []byte) *ent.InvoiceFile {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, content, 0o600)).To(Succeed())
		return &ent.InvoiceFile{
			ID:         uuid.New(),
			SourcePath: path,
			Filename:   name,
			FileExt:    constants.NormalizeExt(filepath.Ext(name)),
			FileSize:   len(content),
		}
	}

	BeforeEach(func() {
		pdfx = &fakePDF{images: [][]byte{{0x89}}}
		files = &fakeFiles{}
		jobs = &fakeJobs{}
		records = &fakeRecords{}
		salesRs = &fakeSales{}
	})

	It("persists sales rows and closes the job", func() {
		files.row = fileRow(GinkgoT().TempDir(), "sales_oct.csv", []byte(posCSV))
		jobID, err := newProcessor(nil).ProcessFile(context.Background(), files.row.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(jobID).NotTo(Equal(uuid.Nil))
		Expect(salesRs.inserted).To(HaveLen(1))
		Expect(records.upserted).To(BeEmpty())
		Expect(jobs.outcome).NotTo(BeNil())
		Expect(jobs.outcome.Status).To(Equal(constants.JobStatusExtracted))
		Expect(jobs.outcome.SalesCount).To(Equal(1))
		Expect(jobs.outcome.Strategy).To(Equal(constants.StrategySales))
	})

	It("persists extracted records with the session trace", func() {
		pdfx.text = pdf.TextResult{Text: hirayamaText, Pages: 1}
		files.row = fileRow(GinkgoT().TempDir(), "hirayama_oct.pdf", []byte("%PDF"))
		_, err := newProcessor(nil).ProcessFile(context.Background(), files.row.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(records.upserted).To(HaveLen(2))
		Expect(jobs.outcome.Status).To(Equal(constants.JobStatusExtracted))
		Expect(jobs.outcome.Strategy).To(Equal(constants.StrategyHirayama))
		Expect(jobs.outcome.Vendor).To(Equal("Meat Shop Hirayama"))
		Expect(jobs.outcome.RecordCount).To(Equal(2))
		Expect(jobs.outcome.Trace).NotTo(BeEmpty())
	})

	It("marks a session with no output EMPTY", func() {
		pdfx.text = pdf.TextResult{Text: "ひら山", Pages: 1, IsScanned: true}
		files.row = fileRow(GinkgoT().TempDir(), "scan.pdf", []byte("%PDF"))
		_, err := newProcessor(nil).ProcessFile(context.Background(), files.row.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(jobs.outcome.Status).To(Equal(constants.JobStatusEmpty))
		Expect(jobs.outcome.IsScanned).To(BeTrue())
		Expect(jobs.outcome.Trace).To(ContainElement(ContainSubstring("vision unavailable")))
	})

	It("fails the job when the source file is gone", func() {
		files.row = &ent.InvoiceFile{
			ID:         uuid.New(),
			SourcePath: "/nonexistent/gone.pdf",
			Filename:   "gone.pdf",
			FileExt:    "pdf",
		}
		jobID, err := newProcessor(nil).ProcessFile(context.Background(), files.row.ID)
		Expect(err).To(MatchError(ContainSubstring("read source")))
		Expect(jobID).NotTo(Equal(uuid.Nil))
		Expect(jobs.failureMessage).To(ContainSubstring("read source"))
	})

	It("rejects unsupported formats before starting a job", func() {
		files.row = &ent.InvoiceFile{ID: uuid.New(), SourcePath: "x", Filename: "x.txt", FileExt: "txt"}
		_, err := newProcessor(nil).ProcessFile(context.Background(), files.row.ID)
		Expect(err).To(MatchError(ContainSubstring("unsupported format")))
		Expect(jobs.startedFormats).To(BeEmpty())
	})

	It("fails the job on an unreadable workbook", func() {
		files.row = fileRow(GinkgoT().TempDir(), "orders.xlsx", []byte("not a workbook"))
		_, err := newProcessor(nil).ProcessFile(context.Background(), files.row.ID)
		Expect(err).To(MatchError(ContainSubstring("unreadable workbook")))
		Expect(jobs.failureMessage).To(ContainSubstring("unreadable workbook"))
		Expect(jobs.failureTrace).NotTo(BeEmpty())
	})
})
