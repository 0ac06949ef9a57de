package vision

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint
// and also use it locally to accept or reject a direct parse.
func BuildInvoiceJSONSchema() map[string]any {
	item := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"date":       map[string]any{"type": "string"},
			"item_name":  map[string]any{"type": "string", "minLength": 1},
			"quantity":   numericProp(),
			"unit":       map[string]any{"type": "string"},
			"unit_price": numericProp(),
			"amount":     numericProp(),
		},
		"required": []string{"item_name"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vendor_name":  map[string]any{"type": "string"},
			"invoice_date": map[string]any{"type": "string"},
			"items":        map[string]any{"type": "array", "items": item},
		},
		"required": []string{"items"},
	}
}

// numericProp admits both JSON numbers and quoted figures; models switch
// between the two mid-response.
func numericProp() map[string]any {
	return map[string]any{"type": []string{"number", "string"}}
}
