package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
	"github.com/joseph-ayodele/invoice-sentinel/internal/llm"
)

const (
	matchTemperature = 0.5
	matchMaxTokens   = 4096
)

// Resolver maps extracted document text to exactly one canonical vendor name
// from the registry's candidate list.
type Resolver struct {
	q      llm.Querier
	logger *slog.Logger
}

func New(q llm.Querier, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{q: q, logger: logger}
}

// Resolve returns the canonical name, or "" for a confident no-match.
// An unparseable answer fails open to no-match; a transport or
// configuration failure is returned as an error so callers can tell the
// two apart.
func (r *Resolver) Resolve(ctx context.Context, docText string, candidates []string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(candidates) == 0 {
		r.logger.Warn("resolve.no_candidates", "req_id", rid)
		return "", nil
	}

	r.logger.Info("resolve.start",
		"req_id", rid,
		"text_len", len(docText),
		"candidates", len(candidates),
	)

	answer, err := r.q.Query(ctx, llm.Request{
		Prompt:      buildMatchPrompt(docText, candidates),
		Temperature: matchTemperature,
		MaxTokens:   matchMaxTokens,
	})
	if err != nil {
		if errors.Is(err, common.ErrUnparseable) {
			r.logger.Warn("resolve.empty_answer", "req_id", rid, "error", err)
			return "", nil
		}
		return "", fmt.Errorf("vendor resolution: %w", err)
	}

	var match struct {
		Vendor *string `json:"vendor"`
	}
	if err := llm.DecodeLenient(answer, llm.VendorMatchSchema(), &match); err != nil {
		r.logger.Warn("resolve.unparseable",
			"req_id", rid,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", nil
	}

	if match.Vendor == nil || strings.TrimSpace(*match.Vendor) == "" {
		r.logger.Info("resolve.no_match",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", nil
	}

	name := strings.TrimSpace(*match.Vendor)
	for _, c := range candidates {
		if c == name {
			r.logger.Info("resolve.ok",
				"req_id", rid,
				"vendor", name,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return name, nil
		}
	}

	// The answer must name a candidate exactly; anything else is no match.
	r.logger.Warn("resolve.unknown_name", "req_id", rid, "answer", name)
	return "", nil
}
