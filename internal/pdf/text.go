package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// scannedTextThreshold is the character count under which a document is
// treated as image-only. Deliberately conservative: it flags "no usable
// text layer", it does not attempt language detection.
const scannedTextThreshold = 100

// TextResult is the outcome of a text-layer read.
type TextResult struct {
	Text      string
	Pages     int
	IsScanned bool
	Warnings  []string
}

// ExtractText reads the embedded text layer page by page, concatenating
// pages with newline boundaries. A failing page contributes no text and a
// warning; it never aborts the remaining pages. Pure read of the input
// bytes.
func (e *Extractor) ExtractText(data []byte) TextResult {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return TextResult{
			IsScanned: true,
			Warnings:  []string{fmt.Sprintf("open pdf: %v", err)},
		}
	}

	var b strings.Builder
	var warnings []string
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		text, err := extractPageText(reader, i)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	text := b.String()
	return TextResult{
		Text:      text,
		Pages:     pages,
		IsScanned: utf8.RuneCountInString(strings.TrimSpace(text)) < scannedTextThreshold,
		Warnings:  warnings,
	}
}

// extractPageText isolates one page read. The underlying reader panics on
// some malformed content streams, so the recover keeps a bad page from
// taking down the document.
func extractPageText(reader *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("recovered: %v", r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, row := range rows {
		for i, word := range row.Content {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(word.S)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
