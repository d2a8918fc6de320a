package amplify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
	"github.com/joseph-ayodele/invoice-sentinel/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Config{
		APIURL: srv.URL,
		APIKey: "test-key",
		Model:  "gpt-4o",
	}, nil)
	return c, srv
}

func TestQuerySendsExpectedPayload(t *testing.T) {
	var captured map[string]any
	var gotAuth string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(map[string]string{"data": `{"vendor": "Acme Supply"}`})
	})

	answer, err := c.Query(context.Background(), llm.Request{
		Prompt:      "match this vendor",
		Temperature: 0.5,
		MaxTokens:   4096,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"vendor": "Acme Supply"}`, answer)
	assert.Equal(t, "Bearer test-key", gotAuth)

	data, ok := captured["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.5, data["temperature"])
	assert.Equal(t, float64(4096), data["max_tokens"])
	assert.Equal(t, []any{}, data["dataSources"])

	msgs, ok := data["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "match this vendor", msg["content"])

	opts, ok := data["options"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, opts["ragOnly"])
	assert.Equal(t, true, opts["skipRag"])
	model := opts["model"].(map[string]any)
	assert.Equal(t, "gpt-4o", model["id"])
}

func TestQueryNon2xxIsTransportError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream busy", http.StatusBadGateway)
	})

	_, err := c.Query(context.Background(), llm.Request{Prompt: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransport)
}

func TestQueryEmptyAnswer(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"data": ""})
	})

	_, err := c.Query(context.Background(), llm.Request{Prompt: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnparseable)
}

func TestQueryBadEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	})

	_, err := c.Query(context.Background(), llm.Request{Prompt: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnparseable)
}

func TestQueryMissingCredentials(t *testing.T) {
	t.Setenv("AMPLIFY_API_URL", "")
	t.Setenv("AMPLIFY_API_KEY", "")
	c := NewClient(Config{Model: "gpt-4o"}, nil)

	_, err := c.Query(context.Background(), llm.Request{Prompt: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConfiguration)
}
