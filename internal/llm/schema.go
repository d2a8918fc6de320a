package llm

// Response schemas for the three delegated extraction calls, kept as generic
// maps so they read the same as the prompts that describe them. Only the
// fields the checkers consume are required; models habitually add extras
// (their own validity verdicts, reasons), which are tolerated and ignored.

// VendorMatchSchema constrains the resolver's answer: a single "vendor"
// field naming a candidate exactly, or null for no match.
func VendorMatchSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vendor": map[string]any{"type": []any{"string", "null"}},
		},
		"required": []string{"vendor"},
	}
}

// DateExtractionSchema constrains the date checker's answer to a list of
// ISO-formatted calendar dates.
func DateExtractionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dates_found": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":    "string",
					"pattern": `^\d{4}-\d{2}-\d{2}$`,
				},
			},
		},
		"required": []string{"dates_found"},
	}
}

// AmountExtractionSchema constrains the rate checker's answer to a list of
// numeric amounts.
func AmountExtractionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"amounts_found": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []string{"amounts_found"},
	}
}
