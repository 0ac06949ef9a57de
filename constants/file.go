package constants

import (
	"path/filepath"
	"strings"
)

// FileFormat is the coarse document kind that decides the extraction route.
type FileFormat string

const (
	PDF   FileFormat = "PDF"
	IMAGE FileFormat = "IMAGE"
	SHEET FileFormat = "SHEET"
	CSV   FileFormat = "CSV"
)

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{"PDF", "IMAGE", "SHEET", "CSV"}

// AllowedExtensions holds the default allowed file extensions for invoice
// and sales ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"xlsx": {},
	"xls":  {},
	"csv":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat routes a file extension to its document format. Spreadsheet
// and CSV files bypass vendor detection entirely; images go straight to the
// vision path.
func MapExtToFormat(ext string) FileFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	case "xlsx", "xls":
		return SHEET
	case "csv":
		return CSV
	}
	return ""
}

// FormatForPath is MapExtToFormat applied to a path.
func FormatForPath(path string) FileFormat {
	return MapExtToFormat(filepath.Ext(path))
}
