package checks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
	"github.com/joseph-ayodele/invoice-sentinel/internal/llm"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
)

// RateTolerance is the fraction of the contracted amount an invoiced amount
// may deviate by, in either direction, and still match.
const RateTolerance = 0.05

// RateChecker compares billed amounts in the document against the vendor's
// contracted rate. Amount extraction goes through the model; the tolerance
// comparison happens locally.
type RateChecker struct {
	q      llm.Querier
	logger *slog.Logger
}

func NewRateChecker(q llm.Querier, logger *slog.Logger) *RateChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &RateChecker{q: q, logger: logger}
}

func (c *RateChecker) Check(ctx context.Context, docText string, rec *registry.VendorRecord) RateResult {
	if !rec.HasRateData() {
		return RateResult{
			Outcome: constants.OutcomeInapplicable,
			Reason:  "no rate data on file for this vendor",
		}
	}

	if rec.RateType.IsVariable() {
		return RateResult{
			Outcome:    constants.OutcomeValid,
			RateType:   rec.RateType,
			IsVariable: true,
			Reason:     fmt.Sprintf("rate type is %q - no fixed amount to compare", rec.RateType),
		}
	}

	if rec.RateAmount == nil {
		return RateResult{
			Outcome:  constants.OutcomeInapplicable,
			RateType: rec.RateType,
			Reason:   fmt.Sprintf("rate type %q on file but no amount to compare", rec.RateType),
		}
	}

	expected := *rec.RateAmount
	min := expected * (1 - RateTolerance)
	max := expected * (1 + RateTolerance)

	rateType := rec.RateType
	if rateType == "" {
		rateType = constants.RateUnknown
	}

	answer, err := c.q.Query(ctx, llm.Request{
		Prompt:      buildRatePrompt(docText, string(rateType), expected, min, max),
		Temperature: checkTemperature,
		MaxTokens:   checkMaxTokens,
	})
	if err != nil {
		c.logger.Warn("check.rate.query_failed", "error", err)
		return RateResult{
			Outcome:        constants.OutcomeInvalid,
			RateType:       rateType,
			ExpectedAmount: &expected,
			Reason:         fmt.Sprintf("could not evaluate: %v", err),
		}
	}

	var extracted struct {
		AmountsFound []float64 `json:"amounts_found"`
	}
	if err := llm.DecodeLenient(answer, llm.AmountExtractionSchema(), &extracted); err != nil {
		c.logger.Warn("check.rate.unparseable", "error", err)
		return RateResult{
			Outcome:        constants.OutcomeInvalid,
			RateType:       rateType,
			ExpectedAmount: &expected,
			Reason:         fmt.Sprintf("could not evaluate: %v", err),
		}
	}

	res := RateResult{
		RateType:       rateType,
		ExpectedAmount: &expected,
		AmountsFound:   extracted.AmountsFound,
	}
	for _, a := range extracted.AmountsFound {
		if a >= min && a <= max {
			res.MatchingAmounts = append(res.MatchingAmounts, a)
		}
	}

	switch {
	case len(res.MatchingAmounts) > 0:
		res.Outcome = constants.OutcomeValid
		res.Reason = fmt.Sprintf("found amount within $%.2f - $%.2f of expected $%.2f", min, max, expected)
	case len(res.AmountsFound) == 0:
		res.Outcome = constants.OutcomeInvalid
		res.Reason = "no amounts found in document"
	default:
		res.Outcome = constants.OutcomeInvalid
		res.Reason = fmt.Sprintf("no amounts within $%.2f - $%.2f of expected $%.2f", min, max, expected)
	}
	return res
}
