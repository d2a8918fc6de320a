package constants

// Outcome is the tri-state result of a single compliance check.
// Inapplicable means the registry lacks the reference data needed to
// run the check at all; it is distinct from a failed check.
type Outcome string

const (
	OutcomeValid        Outcome = "valid"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeInapplicable Outcome = "inapplicable"
)

// Bool maps an outcome onto the wire encoding consumers expect:
// true / false / null (nil = inapplicable or never run).
func (o Outcome) Bool() *bool {
	switch o {
	case OutcomeValid:
		v := true
		return &v
	case OutcomeInvalid:
		v := false
		return &v
	default:
		return nil
	}
}

// ContactRole identifies which escalation path a validated invoice routes to.
type ContactRole string

const (
	RoleDirector ContactRole = "director"
	RoleAdmin    ContactRole = "admin"
	RoleUnknown  ContactRole = "unknown"
)

// Overall status values for a completed validation run.
const (
	OverallApproved = "APPROVED" // all three checks valid
	OverallRejected = "REJECTED" // at least one check invalid
	OverallPartial  = "PARTIAL"  // no failures, but some checks could not run
)
