package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-autofill/internal/config"
	"github.com/jonathan/resume-autofill/internal/logger"
	"github.com/jonathan/resume-autofill/internal/store"
)

// loadSettings assembles the effective configuration: flags win over the
// config file, which wins over environment variables.
func loadSettings(flags config.Config) (config.Config, error) {
	merged := flags

	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}

	merged = merged.MergeWithDefaults(config.FromEnv())

	if merged.StorePath == "" {
		merged.StorePath = store.DefaultPath()
	}
	if flagVerbose {
		merged.Verbose = true
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}

	return merged, nil
}

// newLogger builds the diagnostic logger for one command invocation.
func newLogger(verbose bool) (*zap.Logger, error) {
	log, err := logger.New(flagJSONLogs, verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// openStore opens the profile database named by the effective settings.
func openStore(cfg config.Config) (*store.Store, error) {
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}
	return st, nil
}
