// Package pdf reads the embedded text layer of PDF documents and renders
// their pages to images for the vision path. The text layer is extracted
// in-process; rendering shells out to pdftoppm through a stubable Runner.
package pdf

import (
	"log/slog"
)

// Config controls page rendering for the vision path.
type Config struct {
	// Pdftoppm is the rasterizer binary. Defaults to "pdftoppm" on PATH.
	Pdftoppm string
	// DPI for rendered page images.
	DPI int
	// MaxPages caps how many pages are rendered per document to bound
	// vision cost and latency.
	MaxPages int
	// ScratchDir hosts per-document render directories. Empty means the
	// system temp dir.
	ScratchDir string
}

// Extractor owns text-layer reads and page rendering for one process.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI == 0 {
		cfg.DPI = 300
	}
	if cfg.MaxPages == 0 {
		cfg.MaxPages = 5
	}
	return &Extractor{
		cfg:    cfg,
		runner: execRunner{},
		logger: logger.With("component", "pdf"),
	}
}

// WithRunner swaps the command runner, for tests.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// MaxPages exposes the render cap for trace reporting.
func (e *Extractor) MaxPages() int {
	return e.cfg.MaxPages
}
