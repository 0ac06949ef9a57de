package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// RenderPages rasterizes the document to per-page PNG images, capped at
// MaxPages. The input bytes are written to a scratch directory for the
// rasterizer and the whole directory is removed before returning, on every
// exit path.
func (e *Extractor) RenderPages(ctx context.Context, data []byte) (images [][]byte, cleanupWarn string, err error) {
	tmpDir, err := os.MkdirTemp(e.cfg.ScratchDir, "ivt-pp-*")
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			cleanupWarn = fmt.Sprintf("failed to remove scratch dir %q: %v", tmpDir, rmErr)
			e.logger.Warn("scratch cleanup failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	src := filepath.Join(tmpDir, "doc.pdf")
	if err := os.WriteFile(src, data, 0o600); err != nil {
		return nil, "", err
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <doc.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", src, prefix)
	if err != nil {
		return nil, "", fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 512))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, "", fmt.Errorf("no pages rendered")
	}

	for _, img := range matches {
		buf, readErr := os.ReadFile(img)
		if readErr != nil {
			// One unreadable page image must not block the rest.
			e.logger.Warn("skipping unreadable page image", "path", img, "error", readErr)
			continue
		}
		images = append(images, buf)
	}
	if len(images) == 0 {
		return nil, "", fmt.Errorf("no readable page images")
	}
	return images, "", nil
}
