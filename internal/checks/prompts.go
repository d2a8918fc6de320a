package checks

import "fmt"

const (
	checkTemperature = 0.3
	checkMaxTokens   = 2000
)

func buildDatePrompt(docText, contractStart, contractEnd string) string {
	return fmt.Sprintf(`You are an expert at extracting dates from invoice documents and validating date ranges.

TASK: Extract all dates from this invoice/document and check if ANY of them fall within the given contract period.

DOCUMENT TEXT:
%s

CONTRACT PERIOD:
Start: %s
End: %s

INSTRUCTIONS:
1. Extract ALL dates you can find in the document (invoice date, service dates, billing periods, etc.)
2. Convert each date to YYYY-MM-DD format if possible
3. Check if ANY extracted date falls within the contract period (inclusive)
4. Look for dates in formats like: MM/DD/YYYY, DD/MM/YYYY, Month DD YYYY, YYYY-MM-DD, etc.
5. Pay special attention to invoice dates, service period dates, billing dates

Return ONLY valid JSON in this exact format:
{
  "dates_found": ["YYYY-MM-DD", "YYYY-MM-DD", ...],
  "date_valid": true/false,
  "valid_dates": ["YYYY-MM-DD", ...],
  "reason": "explanation of result"
}`, docText, contractStart, contractEnd)
}

func buildRatePrompt(docText, rateType string, expected, min, max float64) string {
	return fmt.Sprintf(`You are an expert at extracting billing and rate information from invoice documents.

TASK: Extract rate/amount information from this invoice and validate it against expected values.

DOCUMENT TEXT:
%s

EXPECTED RATE INFO:
- Type: %s
- Amount: $%.2f
- Acceptable range: $%.2f - $%.2f (±5%% tolerance)

INSTRUCTIONS:
1. Look for total amounts, line items, rates, fees, or billing amounts in the document
2. Pay attention to words like "total", "amount due", "invoice amount", "rate", "cost"
3. Extract all numeric amounts you find (convert to numbers)
4. Check if ANY amount falls within the acceptable range
5. Consider different billing periods if rate type is known (monthly, annual, etc.)
6. Look for both individual line items and total amounts

Return ONLY valid JSON in this exact format:
{
  "amounts_found": [123.45, 678.90, ...],
  "rate_valid": true/false,
  "matching_amounts": [123.45, ...],
  "reason": "explanation of what was found and why it passed/failed"
}`, docText, rateType, expected, min, max)
}
