package checks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
	"github.com/joseph-ayodele/invoice-sentinel/internal/llm"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
)

const dateLayout = "2006-01-02"

// DateChecker asks the model to extract every date in the document and then
// decides membership against the contract window locally. The model's own
// verdict is never trusted for the window comparison.
type DateChecker struct {
	q      llm.Querier
	logger *slog.Logger
}

func NewDateChecker(q llm.Querier, logger *slog.Logger) *DateChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &DateChecker{q: q, logger: logger}
}

func (c *DateChecker) Check(ctx context.Context, docText string, rec *registry.VendorRecord) DateResult {
	if !rec.HasContractWindow() {
		return DateResult{
			Outcome: constants.OutcomeInapplicable,
			Reason:  "no contract period on file for this vendor",
		}
	}

	start := rec.ContractStart.Truncate(24 * time.Hour)
	end := rec.ContractEnd.Truncate(24 * time.Hour)

	answer, err := c.q.Query(ctx, llm.Request{
		Prompt:      buildDatePrompt(docText, start.Format(dateLayout), end.Format(dateLayout)),
		Temperature: checkTemperature,
		MaxTokens:   checkMaxTokens,
	})
	if err != nil {
		c.logger.Warn("check.dates.query_failed", "error", err)
		return DateResult{
			Outcome: constants.OutcomeInvalid,
			Reason:  fmt.Sprintf("could not evaluate: %v", err),
		}
	}

	var extracted struct {
		DatesFound []string `json:"dates_found"`
	}
	if err := llm.DecodeLenient(answer, llm.DateExtractionSchema(), &extracted); err != nil {
		c.logger.Warn("check.dates.unparseable", "error", err)
		return DateResult{
			Outcome: constants.OutcomeInvalid,
			Reason:  fmt.Sprintf("could not evaluate: %v", err),
		}
	}

	res := DateResult{DatesFound: extracted.DatesFound}
	for _, raw := range extracted.DatesFound {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			res.ValidDates = append(res.ValidDates, raw)
		}
	}

	switch {
	case len(res.ValidDates) > 0:
		res.Outcome = constants.OutcomeValid
		res.Reason = fmt.Sprintf("%d date(s) fall within contract period %s to %s",
			len(res.ValidDates), start.Format(dateLayout), end.Format(dateLayout))
	case len(res.DatesFound) == 0:
		res.Outcome = constants.OutcomeInvalid
		res.Reason = "no dates found in document"
	default:
		res.Outcome = constants.OutcomeInvalid
		res.Reason = fmt.Sprintf("no dates fall within contract period %s to %s",
			start.Format(dateLayout), end.Format(dateLayout))
	}
	return res
}
