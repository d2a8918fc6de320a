package checks

import (
	"strings"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
)

// CheckPO looks for the vendor's current PO number anywhere in the document
// text. The comparison is case-insensitive and ignores surrounding
// whitespace on the stored number.
func CheckPO(docText string, rec *registry.VendorRecord) POResult {
	po := strings.TrimSpace(rec.CurrentPO)
	if po == "" {
		return POResult{
			Outcome: constants.OutcomeInapplicable,
			Reason:  "no PO number on file for this vendor",
		}
	}

	res := POResult{ExpectedPO: po}
	if strings.Contains(strings.ToLower(docText), strings.ToLower(po)) {
		res.Outcome = constants.OutcomeValid
		res.Reason = "PO number found in document"
	} else {
		res.Outcome = constants.OutcomeInvalid
		res.Reason = "PO number not found in document"
	}
	return res
}
