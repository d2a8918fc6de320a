package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/invoice-sentinel/internal/audit"
	"github.com/joseph-ayodele/invoice-sentinel/internal/checks"
	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
	"github.com/joseph-ayodele/invoice-sentinel/internal/extract"
	"github.com/joseph-ayodele/invoice-sentinel/internal/llm/amplify"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
	"github.com/joseph-ayodele/invoice-sentinel/internal/resolver"
	"github.com/joseph-ayodele/invoice-sentinel/internal/validation"
)

func main() {
	jsonOut := flag.Bool("json", false, "emit one JSON result per document instead of the text report")
	timeout := flag.Duration("timeout", 5*time.Minute, "per-document processing timeout")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("dotenv.load", "error", err)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("config invalid", "error", err)
		os.Exit(2)
	}

	paths, err := collectPDFs(flag.Args())
	if err != nil {
		logger.Error("collect inputs", "error", err)
		os.Exit(2)
	}
	if len(paths) == 0 {
		logger.Error("usage: validate [-json] <file.pdf | dir> ...")
		os.Exit(2)
	}

	snap, err := registry.NewLoader(cfg.Registry, logger).Load()
	if err != nil {
		logger.Error("load registry", "path", cfg.Registry.Path, "error", err)
		os.Exit(1)
	}
	holder := registry.NewHolder(snap)

	client := amplify.NewClient(amplify.Config{
		APIURL:  cfg.LLM.APIURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	var recorder validation.AuditRecorder
	if cfg.Audit.DBPath != "" {
		store, err := audit.Open(cfg.Audit.DBPath, logger)
		if err != nil {
			logger.Error("open audit store", "path", cfg.Audit.DBPath, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		recorder = store
	}

	orch := validation.NewOrchestrator(
		extract.NewExtractor(extract.Config{PdftotextBin: cfg.Extract.PdftotextBin}, logger),
		resolver.New(client, logger),
		holder,
		checks.NewDateChecker(client, logger),
		checks.NewRateChecker(client, logger),
		recorder,
		logger,
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, p := range paths {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		res := orch.Process(ctx, p)
		cancel()

		if *jsonOut {
			if err := enc.Encode(res); err != nil {
				logger.Error("encode result", "path", p, "error", err)
			}
			continue
		}
		printReport(p, res)
	}
}

// collectPDFs expands any directory argument into its .pdf files.
func collectPDFs(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				out = append(out, filepath.Join(arg, e.Name()))
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func printReport(path string, res *validation.ValidationResult) {
	fmt.Printf("\n=== %s ===\n", filepath.Base(path))

	if res.Error != "" {
		fmt.Printf("[FAIL] ERROR: %s\n", res.Error)
		return
	}
	if res.Vendor == nil {
		fmt.Println("[FAIL] VENDOR: No match found")
		return
	}
	fmt.Printf("[PASS] VENDOR: %s\n", *res.Vendor)

	printCheck("PO NUMBER", res.POValid, res.POReason)
	printCheck("DATES", res.DateValid, res.DateReason)
	printCheck("RATE", res.RateValid, res.RateReason)

	if res.ContactPerson != "" {
		fmt.Printf("CONTACT: %s (%s) - %s\n", res.ContactPerson, res.ContactRole, res.ContactReason)
	}
	if res.Overall != "" {
		fmt.Printf("OVERALL: %s\n", res.Overall)
	}
}

func printCheck(label string, valid *bool, reason string) {
	switch {
	case valid == nil:
		fmt.Printf("[WARN] %s: %s\n", label, reason)
	case *valid:
		fmt.Printf("[PASS] %s: %s\n", label, reason)
	default:
		fmt.Printf("[FAIL] %s: %s\n", label, reason)
	}
}
