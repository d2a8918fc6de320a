// registrycheck loads the service-agreement workbook and dumps what the
// loader reconciled out of it. Useful when the spreadsheet layout drifts.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
	"github.com/joseph-ayodele/invoice-sentinel/internal/registry"
)

func main() {
	full := flag.Bool("full", false, "dump every reconciled record, not just the summary")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("dotenv.load", "error", err)
	}

	cfg := common.LoadConfig()
	if cfg.Registry.Path == "" {
		logger.Error("REGISTRY_PATH is required")
		os.Exit(2)
	}

	snap, err := registry.NewLoader(cfg.Registry, logger).Load()
	if err != nil {
		logger.Error("load registry", "path", cfg.Registry.Path, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if !*full {
		type summary struct {
			Path    string   `json:"path"`
			Vendors int      `json:"vendors"`
			Names   []string `json:"names"`
		}
		_ = enc.Encode(summary{Path: cfg.Registry.Path, Vendors: snap.Len(), Names: snap.Names()})
		return
	}

	for _, name := range snap.Names() {
		rec, _ := snap.Lookup(name)
		if err := enc.Encode(rec); err != nil {
			logger.Error("encode record", "vendor", name, "error", err)
		}
	}
}
