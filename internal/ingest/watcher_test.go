package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StartWatcher", func() {
	var (
		dir    string
		ctx    context.Context
		cancel context.CancelFunc
		logger *slog.Logger
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		ctx, cancel = context.WithCancel(context.Background())
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	AfterEach(func() {
		cancel()
	})

	It("requires at least one root", func() {
		_, _, err := StartWatcher(ctx, WatchConfig{Logger: logger})
		Expect(err).To(MatchError(ContainSubstring("no roots provided")))
	})

	It("emits existing files on the initial scan", func() {
		path := filepath.Join(dir, "existing.pdf")
		Expect(os.WriteFile(path, []byte("%PDF"), 0o600)).To(Succeed())

		evCh, _, err := StartWatcher(ctx, WatchConfig{
			Roots:       []string{dir},
			InitialScan: true,
			Logger:      logger,
		})
		Expect(err).NotTo(HaveOccurred())
		Eventually(evCh, "2s").Should(Receive(Equal(path)))
	})

	It("emits newly created invoice files and ignores the rest", func() {
		evCh, _, err := StartWatcher(ctx, WatchConfig{
			Roots:    []string{dir},
			Debounce: 10 * time.Millisecond,
			Logger:   logger,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600)).To(Succeed())
		invoice := filepath.Join(dir, "asami_oct.pdf")
		Expect(os.WriteFile(invoice, []byte("%PDF"), 0o600)).To(Succeed())

		Eventually(evCh, "2s").Should(Receive(Equal(invoice)))
		Consistently(evCh, "100ms").ShouldNot(Receive())
	})

	It("stops emitting after cancellation", func() {
		evCh, _, err := StartWatcher(ctx, WatchConfig{
			Roots:  []string{dir},
			Logger: logger,
		})
		Expect(err).NotTo(HaveOccurred())

		cancel()
		Eventually(evCh, "2s").Should(BeClosed())
	})
})
