package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-autofill/internal/config"
	"github.com/jonathan/resume-autofill/internal/detect"
	"github.com/jonathan/resume-autofill/internal/dom"
	"github.com/jonathan/resume-autofill/internal/fetch"
	"github.com/jonathan/resume-autofill/internal/observability"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Check whether a page looks like a job-application form",
	RunE:  runDetect,
}

var (
	detectInput   string
	detectURL     string
	detectBrowser bool
)

func init() {
	detectCmd.Flags().StringVarP(&detectInput, "in", "i", "", "Path to a saved HTML page")
	detectCmd.Flags().StringVar(&detectURL, "url", "", "URL to fetch the page from")
	detectCmd.Flags().BoolVar(&detectBrowser, "browser", false, "Render script-driven pages in a headless browser")

	rootCmd.AddCommand(detectCmd)
}

func runDetect(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{
		StorePath:  flagStore,
		Input:      detectInput,
		URL:        detectURL,
		UseBrowser: detectBrowser,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" && cfg.URL == "" {
		return fmt.Errorf("either --in or --url is required")
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var html string
	if cfg.Input != "" {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		html = string(data)
	} else {
		result, err := fetch.Page(context.Background(), cfg.URL, nil, cfg.UseBrowser, log)
		if err != nil {
			return fmt.Errorf("failed to fetch page: %w", err)
		}
		html = result.HTML
	}

	doc, err := dom.ParseString(html)
	if err != nil {
		return fmt.Errorf("failed to parse page: %w", err)
	}

	report := detect.Page(doc, cfg.URL, "")
	observability.NewPrinter(os.Stdout).PrintDetectReport(&report)

	return nil
}
