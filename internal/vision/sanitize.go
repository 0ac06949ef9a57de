package vision

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/bistrodata/invoice-tracker/internal/entity"
	"github.com/bistrodata/invoice-tracker/internal/vendor"
)

// Records converts accepted items into canonical records. The document-level
// vendor and date fill any per-item gap, and the vendor attribution is
// canonicalized against the reference table. Items without a name are model
// noise and are dropped here; zero-amount filtering happens downstream with
// every other strategy's output.
func (f InvoiceFields) Records() []entity.Record {
	vendorName := vendor.CleanName(f.VendorName)
	docDate := strings.TrimSpace(f.InvoiceDate)

	records := make([]entity.Record, 0, len(f.Items))
	for _, it := range f.Items {
		name := strings.TrimSpace(it.ItemName)
		if name == "" {
			continue
		}
		date := strings.TrimSpace(it.Date)
		if date == "" {
			date = docDate
		}
		records = append(records, entity.Record{
			Vendor:    vendorName,
			Date:      date,
			ItemName:  name,
			Quantity:  float64(it.Quantity),
			Unit:      strings.TrimSpace(it.Unit),
			UnitPrice: float64(it.UnitPrice),
			Amount:    float64(it.Amount),
		})
	}
	return records
}

// imageDataURL inlines a page render for a chat payload.
func imageDataURL(img []byte) string {
	return "data:" + http.DetectContentType(img) + ";base64," + base64.StdEncoding.EncodeToString(img)
}

// imageFormat returns the short format suffix for SDKs that want "png"
// rather than a MIME type.
func imageFormat(img []byte) string {
	if strings.HasPrefix(http.DetectContentType(img), "image/jpeg") {
		return "jpeg"
	}
	return "png"
}
