package vision

import (
	"encoding/json"
	"regexp"
	"strings"
)

// RepairStage names which rung of the repair ladder produced a parse. The
// stage is written to the extraction trace; knowing how often responses
// arrive broken is part of operating this path.
type RepairStage string

const (
	RepairDirect  RepairStage = "direct"
	RepairObjects RepairStage = "objects"
	RepairClosure RepairStage = "closure"
)

var (
	reCodeFence   = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	reVendorField = regexp.MustCompile(`"vendor_name"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	reDateField   = regexp.MustCompile(`"invoice_date"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	// A syntactically complete, flat item object. A trailing object cut off
	// before its closing brace can never match.
	reItemObject = regexp.MustCompile(`\{[^{}]*"item_name"[^{}]*\}`)
)

// StripCodeFence unwraps a markdown code fence. A fence left unterminated by
// a cut-off response loses only its opening marker.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if m := reCodeFence.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	return strings.TrimSpace(s)
}

// ParseResponse runs the repair ladder over a raw model reply, first success
// wins. ok is false only when every stage fails.
func ParseResponse(raw string) (InvoiceFields, RepairStage, bool) {
	if f, ok := ParseDirect(raw); ok {
		return f, RepairDirect, true
	}
	if f, ok := ParseObjects(raw); ok {
		return f, RepairObjects, true
	}
	if f, ok := ParseClosure(raw); ok {
		return f, RepairClosure, true
	}
	return InvoiceFields{}, "", false
}

// ParseDirect parses the fence-stripped response whole, accepting only
// schema-valid documents.
func ParseDirect(raw string) (InvoiceFields, bool) {
	text := []byte(StripCodeFence(raw))
	if err := ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), text); err != nil {
		return InvoiceFields{}, false
	}
	var f InvoiceFields
	if err := json.Unmarshal(text, &f); err != nil {
		return InvoiceFields{}, false
	}
	return f, true
}

// ParseObjects recovers what it can from a response cut off mid-stream: the
// two document fields by pattern, then every complete item object, each
// parsed on its own so one bad item cannot poison the rest. Succeeds only
// when at least one item survives.
func ParseObjects(raw string) (InvoiceFields, bool) {
	text := StripCodeFence(raw)

	var f InvoiceFields
	if m := reVendorField.FindStringSubmatch(text); m != nil {
		f.VendorName = unescapeJSONString(m[1])
	}
	if m := reDateField.FindStringSubmatch(text); m != nil {
		f.InvoiceDate = unescapeJSONString(m[1])
	}

	for _, obj := range reItemObject.FindAllString(text, -1) {
		var it InvoiceItem
		if err := json.Unmarshal([]byte(obj), &it); err != nil {
			continue
		}
		if strings.TrimSpace(it.ItemName) == "" {
			continue
		}
		f.Items = append(f.Items, it)
	}
	if len(f.Items) == 0 {
		return InvoiceFields{}, false
	}
	return f, true
}

// ParseClosure forces a terminal structure onto the response: cut at the
// last complete item boundary and close the array and object.
func ParseClosure(raw string) (InvoiceFields, bool) {
	text := StripCodeFence(raw)
	idx := strings.LastIndex(text, "},")
	if idx < 0 {
		return InvoiceFields{}, false
	}
	patched := text[:idx+1] + "]}"

	var f InvoiceFields
	if err := json.Unmarshal([]byte(patched), &f); err != nil {
		return InvoiceFields{}, false
	}
	return f, true
}

// unescapeJSONString decodes the escaped interior of a JSON string capture.
func unescapeJSONString(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		return s
	}
	return out
}
