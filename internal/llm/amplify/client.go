package amplify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
	"github.com/joseph-ayodele/invoice-sentinel/internal/llm"
)

// Query implements llm.Querier against the Amplify gateway. The gateway
// wraps an upstream chat model: requests carry the message list plus an
// options block naming the model, responses come back as {"data": "<text>"}.
func (c *Client) Query(ctx context.Context, req llm.Request) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	if c.cfg.APIURL == "" || c.cfg.APIKey == "" {
		return "", fmt.Errorf("%w: amplify api url or key missing", common.ErrConfiguration)
	}

	c.logger.Info("amplify.query.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", req.Temperature,
		"max_tokens", req.MaxTokens,
		"prompt_len", len(req.Prompt),
	)

	payload := map[string]any{
		"data": map[string]any{
			"temperature": req.Temperature,
			"max_tokens":  req.MaxTokens,
			"dataSources": []any{},
			"messages": []map[string]any{
				{"role": "user", "content": req.Prompt},
			},
			"options": map[string]any{
				"ragOnly": false,
				"skipRag": true,
				"model":   map[string]any{"id": c.cfg.Model},
				"prompt":  req.Prompt,
			},
		},
	}
	headers := map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}

	raw, status, err := llm.SendJSON(ctx, c.http, c.cfg.APIURL, payload, headers, c.logger)
	if err != nil {
		c.logger.Error("amplify.query.transport_error",
			"req_id", rid,
			"status", status,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("%w: %v", common.ErrTransport, err)
	}

	var envelope struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.logger.Error("amplify.query.decode_error",
			"req_id", rid,
			"raw_bytes", len(raw),
			"error", err,
		)
		return "", fmt.Errorf("%w: decode envelope: %v", common.ErrUnparseable, err)
	}
	if envelope.Data == "" {
		c.logger.Warn("amplify.query.empty_answer", "req_id", rid)
		return "", fmt.Errorf("%w: empty answer", common.ErrUnparseable)
	}

	c.logger.Info("amplify.query.ok",
		"req_id", rid,
		"answer_len", len(envelope.Data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return envelope.Data, nil
}
