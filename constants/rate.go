package constants

import "strings"

// RateType is the billing cadence recorded for a vendor in the rates sheet.
type RateType string

// Stable values (these exact strings appear in the registry workbook).
const (
	RateAnnual   RateType = "annual"
	RateMonthly  RateType = "monthly"
	RateWeekly   RateType = "weekly"
	RateHourly   RateType = "hourly"
	RateBiannual RateType = "biannual"
	RateAsNeeded RateType = "as needed"
	RateVariable RateType = "variable"
	RateUnknown  RateType = "unknown"
)

var rateVocabulary = []RateType{
	RateAnnual,
	RateMonthly,
	RateWeekly,
	RateHourly,
	RateBiannual,
	RateAsNeeded,
	RateVariable,
}

// ParseRateType matches a sheet cell against the cadence vocabulary.
// Returns ok=false when the cell carries no recognized keyword.
func ParseRateType(cell string) (RateType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(cell))
	for _, rt := range rateVocabulary {
		if normalized == string(rt) {
			return rt, true
		}
	}
	return RateUnknown, false
}

// IsVariable reports whether the cadence has no fixed amount to compare against.
func (r RateType) IsVariable() bool {
	return r == RateVariable || r == RateAsNeeded
}
