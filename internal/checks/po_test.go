package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
)

func TestCheckPOFound(t *testing.T) {
	rec := &registry.VendorRecord{CurrentPO: "PO-7788"}
	res := CheckPO("Invoice 1234\nReference: po-7788\nTotal: $505.00", rec)
	assert.Equal(t, constants.OutcomeValid, res.Outcome)
	assert.Equal(t, "PO-7788", res.ExpectedPO)
	assert.Equal(t, "PO number found in document", res.Reason)
}

func TestCheckPOMissing(t *testing.T) {
	rec := &registry.VendorRecord{CurrentPO: "PO-7788"}
	res := CheckPO("Invoice 1234\nNo reference here", rec)
	assert.Equal(t, constants.OutcomeInvalid, res.Outcome)
	assert.Equal(t, "PO-7788", res.ExpectedPO)
	assert.Equal(t, "PO number not found in document", res.Reason)
}

func TestCheckPONoneOnFile(t *testing.T) {
	for _, po := range []string{"", "   "} {
		rec := &registry.VendorRecord{CurrentPO: po}
		res := CheckPO("anything", rec)
		assert.Equal(t, constants.OutcomeInapplicable, res.Outcome)
		assert.Empty(t, res.ExpectedPO)
		assert.Equal(t, "no PO number on file for this vendor", res.Reason)
	}
}

func TestCheckPOStoredNumberIsTrimmed(t *testing.T) {
	rec := &registry.VendorRecord{CurrentPO: "  PO-42  "}
	res := CheckPO("ref po-42 attached", rec)
	assert.Equal(t, constants.OutcomeValid, res.Outcome)
	assert.Equal(t, "PO-42", res.ExpectedPO)
}

func TestCheckPOSubstringMidToken(t *testing.T) {
	// plain substring containment: an embedded occurrence still counts
	rec := &registry.VendorRecord{CurrentPO: "4421"}
	res := CheckPO("order 94421x", rec)
	assert.Equal(t, constants.OutcomeValid, res.Outcome)
}
