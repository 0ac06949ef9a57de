package vision

import (
	"fmt"
	"strings"
)

// systemPrompt fixes the output contract. The repair ladder tolerates prose
// and fences around the JSON, but the prompt discourages them anyway.
var systemPrompt = strings.Join([]string{
	"You are an invoice parser for a restaurant's supplier documents.",
	"Read the attached page images and return ONLY one JSON object, no prose, shaped as:",
	`{"vendor_name": string, "invoice_date": "YYYY-MM-DD", "items": [{"date": "YYYY-MM-DD", "item_name": string, "quantity": number, "unit": string, "unit_price": number, "amount": number}]}.`,
	"Copy item names exactly as printed; never translate Japanese product names.",
	"Use ISO dates (YYYY-MM-DD); items without their own date take the document date.",
	"Quantities, unit prices, and amounts are plain numbers without currency marks or thousands separators.",
	"Use the printed unit token (kg, g, 100g, pc, can, box, pack, bottle, bag) when identifiable.",
	"Include credit and return lines with negative amounts.",
	"Skip subtotal, tax, and carried-balance rows.",
}, " ")

func buildUserPrompt(filename string, pages int) string {
	var b strings.Builder
	b.WriteString("Filename: ")
	b.WriteString(filename)
	fmt.Fprintf(&b, "\nPages attached: %d\n\n", pages)
	b.WriteString("Extract every line item from the attached invoice pages.")
	return b.String()
}
