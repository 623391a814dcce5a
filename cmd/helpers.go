package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/plantlore/internal/analysis"
	"github.com/ziadkadry99/plantlore/internal/config"
	"github.com/ziadkadry99/plantlore/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `plantlore init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// initLogger installs the default logger at the configured level; --verbose
// forces debug.
func initLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	return logging.InitLogger(level), nil
}

// loadDocument performs the single load of the analysis document. A failure
// is logged once and returned; no views are populated after it.
func loadDocument(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*analysis.Document, error) {
	loader := analysis.NewLoader(logger)
	loader.Strict = cfg.Strict

	doc, err := loader.Load(ctx, cfg.Analysis)
	if err != nil {
		logger.Error("loading analysis failed", "location", cfg.Analysis, "error", err)
		return nil, err
	}
	logger.Debug("analysis loaded", "location", cfg.Analysis, "bytes", len(doc.Raw))
	return doc, nil
}
