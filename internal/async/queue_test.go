package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/gen/ent"
	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/pdf"
	"github.com/bistrodata/invoice-tracker/internal/pipeline"
	"github.com/bistrodata/invoice-tracker/internal/repository"
	"github.com/bistrodata/invoice-tracker/internal/sales"
	"github.com/bistrodata/invoice-tracker/internal/sheet"
)

const queueReport = `"Bistro Kyoto"
"From 2025-10-01 To 2025-10-31"
"Code","Name","Barcode","Category","Dept","Price","Qty","Gross Total","Discount","Tax","Net Total"
"1001","Omakase Course","","Food","1","28,000","45","1,260,000","0","0","1,260,000"
"END OF REPORT","","","","","","","","","",""`

type stubPDF struct{}

func (stubPDF) ExtractText(data []byte) pdf.TextResult { return pdf.TextResult{} }

func (stubPDF) RenderPages(ctx context.Context, data []byte) ([][]byte, string, error) {
	return nil, "", errors.New("no renderer")
}

func (stubPDF) MaxPages() int { return 5 }

type syncFiles struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*ent.InvoiceFile
}

func (f *syncFiles) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return row, nil
}

func (f *syncFiles) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error) {
	return nil, errors.New("not found")
}

func (f *syncFiles) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	return nil, nil
}

func (f *syncFiles) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	return nil, false, nil
}

type syncJobs struct {
	mu       sync.Mutex
	finished int
	failed   int
}

func (j *syncJobs) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	return &ent.ExtractJob{ID: uuid.New(), FileID: fileID, Format: format}, nil
}

func (j *syncJobs) Finish(ctx context.Context, jobID uuid.UUID, outcome repository.JobOutcome) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.finished++
	return nil
}

func (j *syncJobs) FinishFailure(ctx context.Context, jobID uuid.UUID, message string, trace []string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.failed++
	return nil
}

func (j *syncJobs) ListByFile(ctx context.Context, fileID uuid.UUID) ([]*ent.ExtractJob, error) {
	return nil, nil
}

func (j *syncJobs) counts() (int, int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.finished, j.failed
}

type syncRecords struct{}

func (syncRecords) UpsertBatch(ctx context.Context, records []entity.Record) (int, error) {
	return len(records), nil
}

func (syncRecords) ListByDateRange(ctx context.Context, from, to *time.Time, vendorFilter string) ([]*entity.PurchaseRecord, error) {
	return nil, nil
}

func (syncRecords) DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	return 0, nil
}

func (syncRecords) Summary(ctx context.Context) (entity.TableSummary, error) {
	return entity.TableSummary{}, nil
}

type syncSales struct {
	mu   sync.Mutex
	rows int
}

func (s *syncSales) InsertBatch(ctx context.Context, rows []entity.SalesRow) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows += len(rows)
	return len(rows), nil
}

func (s *syncSales) ListByDateRange(ctx context.Context, from, to *time.Time, itemFilter string) ([]*entity.SalesRecord, error) {
	return nil, nil
}

func (s *syncSales) DeleteByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	return 0, nil
}

func (s *syncSales) Summary(ctx context.Context) (entity.TableSummary, error) {
	return entity.TableSummary{}, nil
}

var _ = Describe("ProcessorQueue", func() {
	var (
		log   *slog.Logger
		files *syncFiles
		jobs  *syncJobs
		srepo *syncSales
		proc  *pipeline.Processor
	)

	addFile := func(dir string) uuid.UUID {
		name := filepath.Join(dir, uuid.NewString()+".csv")
		Expect(os.WriteFile(name, []byte(queueReport), 0o600)).To(Succeed())
		id := uuid.New()
		files.rows[id] = &ent.InvoiceFile{
			ID:         id,
			SourcePath: name,
			Filename:   filepath.Base(name),
			FileExt:    "csv",
		}
		return id
	}

	BeforeEach(func() {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
		files = &syncFiles{rows: map[uuid.UUID]*ent.InvoiceFile{}}
		jobs = &syncJobs{}
		srepo = &syncSales{}
		engine := pipeline.NewEngine(pipeline.Config{FallbackDate: "2025-10-01"}, stubPDF{}, sheet.NewExtractor(log), sales.NewExtractor(log), nil, log)
		proc = pipeline.NewProcessor(log, engine, files, jobs, syncRecords{}, srepo)
	})

	It("drains every queued job before shutdown returns", func() {
		dir := GinkgoT().TempDir()
		q := NewProcessorQueue(proc, log, WithWorkers(3), WithQueueSize(16))

		const n = 8
		for i := 0; i < n; i++ {
			id := addFile(dir)
			Expect(q.Enqueue(context.Background(), Job{FileID: id, SubmittedAt: time.Now()})).To(Succeed())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		q.Shutdown(ctx)

		finished, failed := jobs.counts()
		Expect(finished).To(Equal(n))
		Expect(failed).To(BeZero())

		srepo.mu.Lock()
		defer srepo.mu.Unlock()
		Expect(srepo.rows).To(Equal(n))
	})

	It("records a failure for a missing file and keeps working", func() {
		dir := GinkgoT().TempDir()
		q := NewProcessorQueue(proc, log, WithWorkers(1))

		unknown := uuid.New()
		Expect(q.Enqueue(context.Background(), Job{FileID: unknown})).To(Succeed())
		Expect(q.Enqueue(context.Background(), Job{FileID: addFile(dir)})).To(Succeed())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		q.Shutdown(ctx)

		finished, _ := jobs.counts()
		Expect(finished).To(Equal(1))
	})

	It("ignores enqueues after shutdown", func() {
		q := NewProcessorQueue(proc, log, WithWorkers(1))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		q.Shutdown(ctx)

		Expect(q.Enqueue(context.Background(), Job{FileID: uuid.New()})).To(Succeed())
		finished, failed := jobs.counts()
		Expect(finished).To(BeZero())
		Expect(failed).To(BeZero())
	})

	It("tolerates a second shutdown", func() {
		q := NewProcessorQueue(proc, log, WithWorkers(1))
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		q.Shutdown(ctx)
		q.Shutdown(ctx)
	})
})
