package validation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
	"github.com/joseph-ayodele/invoice-sentinel/internal/checks"
	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
	"github.com/joseph-ayodele/invoice-sentinel/internal/extract"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
)

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (extract.Result, error) {
	f.calls++
	if f.err != nil {
		return extract.Result{}, f.err
	}
	return extract.Result{Text: f.text, Method: "pdftotext"}, nil
}

type fakeResolver struct {
	name  string
	err   error
	calls int
}

func (f *fakeResolver) Resolve(_ context.Context, _ string, _ []string) (string, error) {
	f.calls++
	return f.name, f.err
}

type fakeDateChecker struct{ res checks.DateResult }

func (f *fakeDateChecker) Check(_ context.Context, _ string, _ *registry.VendorRecord) checks.DateResult {
	return f.res
}

type fakeRateChecker struct{ res checks.RateResult }

func (f *fakeRateChecker) Check(_ context.Context, _ string, _ *registry.VendorRecord) checks.RateResult {
	return f.res
}

type fakeRecorder struct {
	paths   []string
	results []*ValidationResult
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, pdfPath string, res *ValidationResult) error {
	f.paths = append(f.paths, pdfPath)
	f.results = append(f.results, res)
	return f.err
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func midSouthHolder() *registry.Holder {
	amt := 505.00
	return registry.NewHolder(registry.NewSnapshot(map[string]registry.VendorRecord{
		"Mid South Maintenance": {
			ContractStart:   day(2025, 1, 1),
			ContractEnd:     day(2025, 12, 31),
			CurrentPO:       "PO-7788",
			RateType:        constants.RateMonthly,
			RateAmount:      &amt,
			AdminContact:    "Dana Admin",
			DirectorContact: "Lee Director",
		},
	}))
}

func passMonthlyRate() checks.RateResult {
	amt := 505.00
	return checks.RateResult{
		Outcome:         constants.OutcomeValid,
		RateType:        constants.RateMonthly,
		ExpectedAmount:  &amt,
		AmountsFound:    []float64{505.00},
		MatchingAmounts: []float64{505.00},
		Reason:          "found amount within $479.75 - $530.25 of expected $505.00",
	}
}

func passDates() checks.DateResult {
	return checks.DateResult{
		Outcome:    constants.OutcomeValid,
		DatesFound: []string{"2025-03-15"},
		ValidDates: []string{"2025-03-15"},
		Reason:     "1 date(s) fall within contract period 2025-01-01 to 2025-12-31",
	}
}

func TestProcessAllChecksPass(t *testing.T) {
	rec := &fakeRecorder{}
	orch := NewOrchestrator(
		&fakeExtractor{text: "Invoice PO-7788 dated 2025-03-15 total $505.00"},
		&fakeResolver{name: "Mid South Maintenance"},
		midSouthHolder(),
		&fakeDateChecker{res: passDates()},
		&fakeRateChecker{res: passMonthlyRate()},
		rec,
		nil,
	)

	res := orch.Process(context.Background(), "invoice.pdf")

	require.Empty(t, res.Error)
	require.NotNil(t, res.Vendor)
	assert.Equal(t, "Mid South Maintenance", *res.Vendor)
	assert.Equal(t, "amplify_api", res.Method)

	require.NotNil(t, res.POValid)
	assert.True(t, *res.POValid)
	assert.Equal(t, "PO-7788", res.ExpectedPO)
	require.NotNil(t, res.DateValid)
	assert.True(t, *res.DateValid)
	require.NotNil(t, res.RateValid)
	assert.True(t, *res.RateValid)
	assert.False(t, res.IsVariableRate)

	assert.Equal(t, "Lee Director", res.ContactPerson)
	assert.Equal(t, "director", res.ContactRole)
	assert.Equal(t, constants.OverallApproved, res.Overall)

	require.Len(t, rec.results, 1)
	assert.Equal(t, "invoice.pdf", rec.paths[0])
	assert.Same(t, res, rec.results[0])
}

func TestProcessRateMismatchIsRejected(t *testing.T) {
	amt := 505.00
	orch := NewOrchestrator(
		&fakeExtractor{text: "Invoice PO-7788 dated 2025-03-15 total $600.00"},
		&fakeResolver{name: "Mid South Maintenance"},
		midSouthHolder(),
		&fakeDateChecker{res: passDates()},
		&fakeRateChecker{res: checks.RateResult{
			Outcome:        constants.OutcomeInvalid,
			RateType:       constants.RateMonthly,
			ExpectedAmount: &amt,
			AmountsFound:   []float64{600.00},
			Reason:         "no amounts within $479.75 - $530.25 of expected $505.00",
		}},
		nil,
		nil,
	)

	res := orch.Process(context.Background(), "invoice.pdf")

	require.NotNil(t, res.RateValid)
	assert.False(t, *res.RateValid)
	assert.Equal(t, constants.OverallRejected, res.Overall)
	assert.Equal(t, "Dana Admin", res.ContactPerson)
	assert.Equal(t, "admin", res.ContactRole)
	assert.Contains(t, res.ContactReason, "rate validation failed")
}

func TestProcessInapplicableCheckIsPartial(t *testing.T) {
	orch := NewOrchestrator(
		&fakeExtractor{text: "Invoice PO-7788"},
		&fakeResolver{name: "Mid South Maintenance"},
		midSouthHolder(),
		&fakeDateChecker{res: checks.DateResult{
			Outcome: constants.OutcomeInapplicable,
			Reason:  "no contract period on file for this vendor",
		}},
		&fakeRateChecker{res: passMonthlyRate()},
		nil,
		nil,
	)

	res := orch.Process(context.Background(), "invoice.pdf")

	assert.Nil(t, res.DateValid)
	assert.Equal(t, constants.OverallPartial, res.Overall)
	assert.Equal(t, "Dana Admin", res.ContactPerson)
}

func TestProcessNoVendorMatchSkipsChecks(t *testing.T) {
	rec := &fakeRecorder{}
	orch := NewOrchestrator(
		&fakeExtractor{text: "some unrelated document"},
		&fakeResolver{name: ""},
		midSouthHolder(),
		&fakeDateChecker{res: passDates()},
		&fakeRateChecker{res: passMonthlyRate()},
		rec,
		nil,
	)

	res := orch.Process(context.Background(), "mystery.pdf")

	assert.Empty(t, res.Error)
	assert.Nil(t, res.Vendor)
	assert.Equal(t, "amplify_api", res.Method)
	assert.Nil(t, res.POValid)
	assert.Nil(t, res.DateValid)
	assert.Nil(t, res.RateValid)
	assert.Empty(t, res.ContactPerson)
	assert.Empty(t, res.Overall)
	require.Len(t, rec.results, 1)
}

func TestProcessExtractionFailure(t *testing.T) {
	resolver := &fakeResolver{name: "Mid South Maintenance"}
	orch := NewOrchestrator(
		&fakeExtractor{err: fmt.Errorf("%w: scan.pdf", common.ErrExtraction)},
		resolver,
		midSouthHolder(),
		&fakeDateChecker{},
		&fakeRateChecker{},
		nil,
		nil,
	)

	res := orch.Process(context.Background(), "scan.pdf")

	assert.Equal(t, "could not extract text from PDF", res.Error)
	assert.Nil(t, res.Vendor)
	assert.Zero(t, resolver.calls, "resolution must not run without text")
}

func TestProcessResolverTransportFailure(t *testing.T) {
	orch := NewOrchestrator(
		&fakeExtractor{text: "invoice text"},
		&fakeResolver{err: fmt.Errorf("%w: 502", common.ErrTransport)},
		midSouthHolder(),
		&fakeDateChecker{},
		&fakeRateChecker{},
		nil,
		nil,
	)

	res := orch.Process(context.Background(), "invoice.pdf")

	assert.Contains(t, res.Error, "vendor resolution failed")
	assert.Nil(t, res.Vendor)
	assert.Nil(t, res.POValid)
}

func TestProcessAuditFailureIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	orch := NewOrchestrator(
		&fakeExtractor{text: "Invoice PO-7788"},
		&fakeResolver{name: "Mid South Maintenance"},
		midSouthHolder(),
		&fakeDateChecker{res: passDates()},
		&fakeRateChecker{res: passMonthlyRate()},
		rec,
		nil,
	)

	res := orch.Process(context.Background(), "invoice.pdf")
	assert.Empty(t, res.Error)
	assert.Equal(t, constants.OverallApproved, res.Overall)
}

func TestComputeOverall(t *testing.T) {
	v, iv, na := constants.OutcomeValid, constants.OutcomeInvalid, constants.OutcomeInapplicable

	assert.Equal(t, constants.OverallApproved, computeOverall(v, v, v))
	assert.Equal(t, constants.OverallRejected, computeOverall(iv, v, v))
	assert.Equal(t, constants.OverallRejected, computeOverall(v, na, iv))
	assert.Equal(t, constants.OverallPartial, computeOverall(v, na, v))
	assert.Equal(t, constants.OverallPartial, computeOverall(na, na, na))
}
