// Package checks implements the three compliance checks that run against a
// resolved vendor's registry record: purchase order presence, invoice date
// coverage, and billed rate tolerance.
package checks

import "github.com/joseph-ayodele/invoice-sentinel/constants"

// POResult reports whether the vendor's purchase order number appears in the
// document text.
type POResult struct {
	Outcome    constants.Outcome
	ExpectedPO string
	Reason     string
}

// DateResult reports whether every date found in the document falls inside
// the vendor's contract window.
type DateResult struct {
	Outcome    constants.Outcome
	DatesFound []string
	ValidDates []string
	Reason     string
}

// RateResult reports whether any monetary amount in the document matches the
// vendor's contracted rate within tolerance.
type RateResult struct {
	Outcome         constants.Outcome
	RateType        constants.RateType
	ExpectedAmount  *float64
	AmountsFound    []float64
	MatchingAmounts []float64
	IsVariable      bool
	Reason          string
}
