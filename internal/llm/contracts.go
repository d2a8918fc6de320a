package llm

import "context"

// Request is one text-understanding call: a natural-language instruction
// plus document text, already composed into a single prompt.
type Request struct {
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Querier is the interface the resolver and checkers depend on.
// Implementations return the model's raw textual answer; tolerant JSON
// decoding is the caller's job via DecodeLenient.
type Querier interface {
	Query(ctx context.Context, req Request) (string, error)
}
