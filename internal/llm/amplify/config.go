package amplify

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Amplify chat-completion client.
type Config struct {
	APIURL  string        // if empty, falls back to env AMPLIFY_API_URL
	APIKey  string        // if empty, falls back to env AMPLIFY_API_KEY
	Model   string        // e.g., "gpt-4o"
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("AMPLIFY_API_URL")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("AMPLIFY_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
