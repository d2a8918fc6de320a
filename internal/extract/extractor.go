package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
)

type Config struct {
	PdftotextBin string // binary name or absolute path; if empty -> "pdftotext"
}

// Result is the best-effort plain text pulled from one PDF.
type Result struct {
	Text     string
	Pages    int
	Method   string // "pdf-lib" | "pdftotext"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PdftotextBin == "" {
		cfg.PdftotextBin = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract runs every available strategy and keeps the longest non-empty
// result; some strategies recover tables and layout better than others, and
// character count is the success proxy. Zero-length output after
// normalization is a distinct error, not a silent empty result.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	res := Result{}

	if pages, err := api.PageCountFile(path); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("page count probe: %v", err))
	} else {
		res.Pages = pages
	}

	if text, err := readPDFText(path); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("pdf-lib: %v", err))
	} else if len(text) > len(res.Text) {
		res.Text, res.Method = text, "pdf-lib"
	}

	if text, err := e.pdftotext(ctx, path); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("pdftotext: %v", err))
	} else if len(text) > len(res.Text) {
		res.Text, res.Method = text, "pdftotext"
	}

	res.Text = NormalizeText(res.Text)
	res.Duration = time.Since(start)

	if res.Text == "" {
		e.logger.Warn("extract.no_text",
			"path", path,
			"warnings", res.Warnings,
			"elapsed_ms", res.Duration.Milliseconds(),
		)
		return res, fmt.Errorf("%w: %s", common.ErrExtraction, path)
	}

	e.logger.Info("extract.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// readPDFText is the in-process strategy: walk every page's text rows.
func readPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// pdftotext is the external-tool strategy; it tends to keep tabular layout
// the in-process reader loses.
func (e *Extractor) pdftotext(ctx context.Context, path string) (string, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.PdftotextBin, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("%v: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}
