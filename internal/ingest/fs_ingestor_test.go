package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bistrodata/invoice-tracker/gen/ent"
)

// memFiles keeps rows by content hash, like the real repository's dedup.
type memFiles struct {
	rows    map[string]*ent.InvoiceFile
	failSub string
}

func newMemFiles() *memFiles {
	return &memFiles{rows: map[string]*ent.InvoiceFile{}}
}

func (m *memFiles) GetByID(ctx context.Context, id uuid.UUID) (*ent.InvoiceFile, error) {
	for _, row := range m.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memFiles) GetByHash(ctx context.Context, hash []byte) (*ent.InvoiceFile, error) {
	if row, ok := m.rows[hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, errors.New("not found")
}

func (m *memFiles) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, error) {
	row := &ent.InvoiceFile{
		ID:         uuid.New(),
		SourcePath: sourcePath,
		Filename:   filename,
		FileExt:    ext,
		FileSize:   size,
		UploadedAt: uploadedAt,
	}
	m.rows[hex.EncodeToString(hash)] = row
	return row, nil
}

func (m *memFiles) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.InvoiceFile, bool, error) {
	if m.failSub != "" && strings.Contains(sourcePath, m.failSub) {
		return nil, false, errors.New("database unavailable")
	}
	if row, err := m.GetByHash(ctx, hash); err == nil {
		return row, true, nil
	}
	row, err := m.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

var _ = Describe("FSIngestor", func() {
	var (
		files *memFiles
		ing   *FSIngestor
		dir   string
	)

	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		files = newMemFiles()
		ing = NewFSIngestor(files, slog.New(slog.NewTextHandler(io.Discard, nil)))
		dir = GinkgoT().TempDir()
	})

	Describe("IngestPath", func() {
		It("hashes and registers a new file", func() {
			path := writeFile("hirayama_oct.pdf", "%PDF-1.4 body")

			res, err := ing.IngestPath(context.Background(), path)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.FileID).NotTo(Equal(uuid.Nil))
			Expect(res.Deduplicated).To(BeFalse())
			Expect(res.FileExt).To(Equal("pdf"))

			sum := sha256.Sum256([]byte("%PDF-1.4 body"))
			Expect(res.HashHex).To(Equal(hex.EncodeToString(sum[:])))
		})

		It("reports known content as deduplicated", func() {
			path := writeFile("hirayama_oct.pdf", "%PDF-1.4 body")
			first, err := ing.IngestPath(context.Background(), path)
			Expect(err).NotTo(HaveOccurred())

			copyPath := writeFile("copy_of_hirayama.pdf", "%PDF-1.4 body")
			second, err := ing.IngestPath(context.Background(), copyPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Deduplicated).To(BeTrue())
			Expect(second.FileID).To(Equal(first.FileID))
		})

		It("rejects unsupported extensions", func() {
			path := writeFile("notes.txt", "not an invoice")
			_, err := ing.IngestPath(context.Background(), path)
			Expect(err).To(MatchError(ContainSubstring("unsupported or missing extension")))
		})

		It("accepts spreadsheet and csv extensions", func() {
			for _, name := range []string{"orders.xlsx", "sales_oct.csv"} {
				_, err := ing.IngestPath(context.Background(), writeFile(name, name))
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	Describe("IngestDirectory", func() {
		It("walks the tree and counts outcomes", func() {
			writeFile("a/inv1.pdf", "one")
			writeFile("a/b/inv2.xlsx", "two")
			writeFile("sales.csv", "three")
			writeFile("readme.txt", "skip me")
			writeFile(".hidden/secret.pdf", "hidden")

			results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Matched).To(Equal(uint32(3)))
			Expect(stats.Succeeded).To(Equal(uint32(3)))
			Expect(stats.Failed).To(BeZero())
			Expect(results).To(HaveLen(3))
		})

		It("ingests hidden files when not skipping them", func() {
			writeFile(".hidden/secret.pdf", "hidden")
			_, stats, err := ing.IngestDirectory(context.Background(), dir, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Matched).To(Equal(uint32(1)))
		})

		It("keeps walking past a failing file", func() {
			writeFile("good.pdf", "good")
			writeFile("bad.pdf", "bad")
			files.failSub = "bad.pdf"

			results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Succeeded).To(Equal(uint32(1)))
			Expect(stats.Failed).To(Equal(uint32(1)))

			var failed []string
			for _, r := range results {
				if r.Err != "" {
					failed = append(failed, r.SourcePath)
				}
			}
			Expect(failed).To(HaveLen(1))
			Expect(failed[0]).To(ContainSubstring("bad.pdf"))
		})

		It("requires a root path", func() {
			_, _, err := ing.IngestDirectory(context.Background(), "  ", true)
			Expect(err).To(MatchError(ContainSubstring("root_path is required")))
		})
	})
})
