package resolver

import (
	"encoding/json"
	"fmt"
)

// buildMatchPrompt composes the matching rubric for one document against the
// full candidate list. The rubric tells the model to ignore cosmetic naming
// differences, require the match to plausibly be the invoice issuer, and
// return null over a low-confidence guess.
func buildMatchPrompt(docText string, candidates []string) string {
	names, _ := json.MarshalIndent(candidates, "", "  ")

	return fmt.Sprintf(`You are an expert at identifying company names in invoices and matching them to a supplier database.

TASK: Analyze this invoice/document text and identify which supplier from the provided list is the vendor/company that issued this document.

INVOICE/DOCUMENT TEXT:
%s

SUPPLIER DATABASE:
%s

MATCHING RULES:
1. Look for company names that appear as the sender/issuer of the invoice
2. Match variations like:
   - "Mid-South Instrument Service" matching "Mid South Instrument Services Inc."
3. Ignore differences in:
   - Punctuation (hyphens, periods, commas)
   - Word order variations
   - Legal suffixes (Inc, LLC, Corp, etc.)
   - Articles (The, A, An)
4. Be flexible with partial matches - an abbreviated name should match its full form
5. Look in headers, letterheads, "From:" fields, company contact info
6. If multiple potential matches, choose the most specific/complete one

IMPORTANT: Only match if you are confident this supplier is the one issuing the invoice/document. Return null if no clear match exists.

Return ONLY valid JSON in this exact format:
{"vendor": "Exact Name From Supplier List"}

OR if no match found:
{"vendor": null}`, docText, names)
}
