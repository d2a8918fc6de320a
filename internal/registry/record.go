package registry

import (
	"time"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
)

// VendorRecord is one vendor's reconciled registry row. Field-name
// reconciliation against the workbook headers happens once at load time;
// readers only ever see these fixed optional fields.
type VendorRecord struct {
	Name string `json:"name"`

	ContractStart *time.Time `json:"contract_start,omitempty"`
	ContractEnd   *time.Time `json:"contract_end,omitempty"`

	CurrentPO string     `json:"current_po,omitempty"`
	POStart   *time.Time `json:"po_start,omitempty"`
	POEnd     *time.Time `json:"po_end,omitempty"`

	RateType   constants.RateType `json:"rate_type,omitempty"`
	RateAmount *float64           `json:"rate_amount,omitempty"`

	AdminContact    string `json:"admin_contact,omitempty"`
	MainContact     string `json:"main_contact,omitempty"`
	DirectorContact string `json:"director_contact,omitempty"`
}

// HasContractWindow reports whether the record carries both contract bounds.
// The date-range check needs the full interval; either bound missing makes
// the check inapplicable.
func (r VendorRecord) HasContractWindow() bool {
	return r.ContractStart != nil && r.ContractEnd != nil
}

// HasRateData reports whether the record carries any rate information at all.
func (r VendorRecord) HasRateData() bool {
	return (r.RateType != "" && r.RateType != constants.RateUnknown) || r.RateAmount != nil
}
