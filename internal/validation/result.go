// Package validation drives the end-to-end pipeline for one invoice: text
// extraction, vendor resolution, the three compliance checks, and routing.
package validation

// ValidationResult is the flat per-document output contract. Check verdicts
// are three-valued: true, false, or null when the check never ran.
type ValidationResult struct {
	Error  string  `json:"error,omitempty"`
	Vendor *string `json:"vendor"`
	Method string  `json:"method,omitempty"`

	POValid    *bool  `json:"po_valid"`
	POReason   string `json:"po_reason,omitempty"`
	ExpectedPO string `json:"expected_po,omitempty"`

	DateValid  *bool    `json:"date_valid"`
	DateReason string   `json:"date_reason,omitempty"`
	DatesFound []string `json:"dates_found,omitempty"`
	ValidDates []string `json:"valid_dates,omitempty"`

	RateValid       *bool     `json:"rate_valid"`
	RateReason      string    `json:"rate_reason,omitempty"`
	RateType        string    `json:"rate_type,omitempty"`
	ExpectedAmount  *float64  `json:"expected_amount,omitempty"`
	AmountsFound    []float64 `json:"amounts_found,omitempty"`
	MatchingAmounts []float64 `json:"matching_amounts,omitempty"`
	IsVariableRate  bool      `json:"is_variable_rate"`

	ContactPerson string `json:"contact_person,omitempty"`
	ContactRole   string `json:"contact_role,omitempty"`
	ContactReason string `json:"contact_reason,omitempty"`

	Overall string `json:"overall,omitempty"`
}
