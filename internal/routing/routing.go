// Package routing selects the person who should handle a validated invoice
// based on the check outcomes and the contacts on file.
package routing

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
	"github.com/joseph-ayodele/invoice-sentinel/internal/checks"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
)

// Contact is the routing decision for one processed invoice.
type Contact struct {
	Name   string
	Role   constants.ContactRole
	Reason string
}

// Decide routes to the director only when every check passed and the rate is
// fixed. Anything that needs a human eye (a failed check, or a variable rate
// with no comparable amount) goes to the admin side instead. The admin
// contact takes precedence over the main contact when both are on file.
func Decide(rec *registry.VendorRecord, po checks.POResult, date checks.DateResult, rate checks.RateResult) Contact {
	allValid := po.Outcome == constants.OutcomeValid &&
		date.Outcome == constants.OutcomeValid &&
		rate.Outcome == constants.OutcomeValid

	if allValid && !rate.IsVariable && rec.DirectorContact != "" {
		return Contact{
			Name:   rec.DirectorContact,
			Role:   constants.RoleDirector,
			Reason: "all validations passed and rate is fixed",
		}
	}

	admin := rec.AdminContact
	role := constants.RoleAdmin
	if admin == "" {
		admin = rec.MainContact
	}
	if admin == "" {
		return Contact{
			Name:   "Unknown",
			Role:   constants.RoleUnknown,
			Reason: "no contact information available",
		}
	}

	var issues []string
	if po.Outcome == constants.OutcomeInvalid {
		issues = append(issues, "PO validation failed")
	}
	if date.Outcome == constants.OutcomeInvalid {
		issues = append(issues, "date validation failed")
	}
	if rate.Outcome == constants.OutcomeInvalid {
		issues = append(issues, "rate validation failed")
	}
	if rate.IsVariable {
		issues = append(issues, "variable rate type")
	}

	reason := "default admin contact"
	if len(issues) > 0 {
		reason = fmt.Sprintf("issue requires admin attention: %s", strings.Join(issues, ", "))
	}
	return Contact{Name: admin, Role: role, Reason: reason}
}
