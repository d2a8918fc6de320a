package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
)

var reFencedJSON = regexp.MustCompile("```(?:json)?\\s*(\\{[^`]+\\})\\s*```")

// ExtractJSON recovers the JSON object carried by a model answer: a bare
// object first, then one embedded in a fenced code block. Each attempt is
// independent and the first success wins.
func ExtractJSON(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty answer", common.ErrUnparseable)
	}

	var probe any
	if err := json.Unmarshal([]byte(trimmed), &probe); err == nil {
		return []byte(trimmed), nil
	}

	if m := reFencedJSON.FindStringSubmatch(trimmed); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &probe); err == nil {
			return []byte(m[1]), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", common.ErrUnparseable, snippet(trimmed, 160))
}

// DecodeLenient extracts the answer's JSON object, validates it against the
// given schema (when non-nil), and unmarshals it into v. Any failure wraps
// common.ErrUnparseable so callers can fail open rather than abort.
func DecodeLenient(raw string, schema map[string]any, v any) error {
	b, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if schema != nil {
		if err := ValidateAgainstSchema(schema, b); err != nil {
			return fmt.Errorf("%w: %v", common.ErrUnparseable, err)
		}
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnparseable, err)
	}
	return nil
}

func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
