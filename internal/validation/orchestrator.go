package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
	"github.com/joseph-ayodele/invoice-sentinel/internal/checks"
	"github.com/joseph-ayodele/invoice-sentinel/internal/extract"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
	"github.com/joseph-ayodele/invoice-sentinel/internal/routing"
)

// TextExtractor pulls plain text from a PDF on disk.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (extract.Result, error)
}

// VendorResolver maps document text to a canonical registry name, or ""
// when no vendor matches.
type VendorResolver interface {
	Resolve(ctx context.Context, docText string, candidates []string) (string, error)
}

// DateChecker and RateChecker run the two model-assisted checks.
type DateChecker interface {
	Check(ctx context.Context, docText string, rec *registry.VendorRecord) checks.DateResult
}

type RateChecker interface {
	Check(ctx context.Context, docText string, rec *registry.VendorRecord) checks.RateResult
}

// AuditRecorder persists a completed result. Recording is best-effort;
// failures are logged, never surfaced to callers.
type AuditRecorder interface {
	Record(ctx context.Context, pdfPath string, res *ValidationResult) error
}

// Orchestrator runs the full pipeline for one document.
type Orchestrator struct {
	extractor TextExtractor
	resolver  VendorResolver
	registry  *registry.Holder
	dates     DateChecker
	rates     RateChecker
	audit     AuditRecorder // optional
	logger    *slog.Logger
}

func NewOrchestrator(
	extractor TextExtractor,
	resolver VendorResolver,
	reg *registry.Holder,
	dates DateChecker,
	rates RateChecker,
	audit AuditRecorder,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		extractor: extractor,
		resolver:  resolver,
		registry:  reg,
		dates:     dates,
		rates:     rates,
		audit:     audit,
		logger:    logger,
	}
}

// Process validates one PDF end to end. It never returns an error: every
// failure mode is encoded in the result so batch callers keep going.
func (o *Orchestrator) Process(ctx context.Context, pdfPath string) *ValidationResult {
	rid := uuid.New().String()
	start := time.Now()
	o.logger.Info("validate.start", "req_id", rid, "path", pdfPath)

	res := &ValidationResult{}

	extracted, err := o.extractor.Extract(ctx, pdfPath)
	if err != nil {
		res.Error = "could not extract text from PDF"
		o.logger.Warn("validate.extract_failed", "req_id", rid, "path", pdfPath, "error", err)
		o.record(ctx, pdfPath, res)
		return res
	}
	docText := extracted.Text

	snap := o.registry.Load()
	name, err := o.resolver.Resolve(ctx, docText, snap.Names())
	if err != nil {
		res.Error = fmt.Sprintf("vendor resolution failed: %v", err)
		o.logger.Error("validate.resolve_failed", "req_id", rid, "path", pdfPath, "error", err)
		o.record(ctx, pdfPath, res)
		return res
	}
	res.Method = "amplify_api"
	if name == "" {
		o.logger.Info("validate.no_vendor", "req_id", rid, "path", pdfPath)
		o.record(ctx, pdfPath, res)
		return res
	}
	res.Vendor = &name

	rec, ok := snap.Lookup(name)
	if !ok {
		// Resolver answers are pinned to the candidate list, so a miss
		// here means the registry was swapped mid-flight.
		res.Error = fmt.Sprintf("vendor %q missing from registry", name)
		o.logger.Error("validate.registry_miss", "req_id", rid, "vendor", name)
		o.record(ctx, pdfPath, res)
		return res
	}

	var (
		po   checks.POResult
		date checks.DateResult
		rate checks.RateResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		po = checks.CheckPO(docText, &rec)
		return nil
	})
	g.Go(func() error {
		date = o.dates.Check(gctx, docText, &rec)
		return nil
	})
	g.Go(func() error {
		rate = o.rates.Check(gctx, docText, &rec)
		return nil
	})
	_ = g.Wait() // checkers report through their results, never errors

	res.POValid = po.Outcome.Bool()
	res.POReason = po.Reason
	res.ExpectedPO = po.ExpectedPO

	res.DateValid = date.Outcome.Bool()
	res.DateReason = date.Reason
	res.DatesFound = date.DatesFound
	res.ValidDates = date.ValidDates

	res.RateValid = rate.Outcome.Bool()
	res.RateReason = rate.Reason
	res.RateType = string(rate.RateType)
	res.ExpectedAmount = rate.ExpectedAmount
	res.AmountsFound = rate.AmountsFound
	res.MatchingAmounts = rate.MatchingAmounts
	res.IsVariableRate = rate.IsVariable

	contact := routing.Decide(&rec, po, date, rate)
	res.ContactPerson = contact.Name
	res.ContactRole = string(contact.Role)
	res.ContactReason = contact.Reason

	res.Overall = computeOverall(po.Outcome, date.Outcome, rate.Outcome)

	o.logger.Info("validate.ok",
		"req_id", rid,
		"path", pdfPath,
		"vendor", name,
		"overall", res.Overall,
		"contact_role", res.ContactRole,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	o.record(ctx, pdfPath, res)
	return res
}

func (o *Orchestrator) record(ctx context.Context, pdfPath string, res *ValidationResult) {
	if o.audit == nil {
		return
	}
	if err := o.audit.Record(ctx, pdfPath, res); err != nil {
		o.logger.Warn("validate.audit_failed", "path", pdfPath, "error", err)
	}
}

func computeOverall(po, date, rate constants.Outcome) string {
	outcomes := []constants.Outcome{po, date, rate}
	allValid := true
	for _, oc := range outcomes {
		switch oc {
		case constants.OutcomeInvalid:
			return constants.OverallRejected
		case constants.OutcomeValid:
		default:
			allValid = false
		}
	}
	if allValid {
		return constants.OverallApproved
	}
	return constants.OverallPartial
}
