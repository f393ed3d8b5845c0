package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-autofill/internal/config"
	"github.com/jonathan/resume-autofill/internal/dom"
	"github.com/jonathan/resume-autofill/internal/fetch"
	"github.com/jonathan/resume-autofill/internal/fill"
	"github.com/jonathan/resume-autofill/internal/llm"
	"github.com/jonathan/resume-autofill/internal/observability"
	"github.com/jonathan/resume-autofill/internal/types"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill a job-application form with the stored profile",
	Long:  "Fill a job-application HTML form with the stored resume profile. The form comes from a saved HTML file (--in) or is fetched from a URL (--url).",
	RunE:  runFill,
}

var (
	fillInput    string
	fillURL      string
	fillOut      string
	fillBrowser  bool
	fillRemote   bool
	fillProvider string
	fillAPIKey   string
	fillEndpoint string
	fillModel    string
)

func init() {
	fillCmd.Flags().StringVarP(&fillInput, "in", "i", "", "Path to a saved HTML form page")
	fillCmd.Flags().StringVar(&fillURL, "url", "", "URL to fetch the form page from")
	fillCmd.Flags().StringVarP(&fillOut, "out", "o", "", "Path to write the filled HTML document")
	fillCmd.Flags().BoolVar(&fillBrowser, "browser", false, "Render script-driven pages in a headless browser")
	fillCmd.Flags().BoolVar(&fillRemote, "remote", false, "Ask the configured LLM provider to match unrecognized fields")
	fillCmd.Flags().StringVar(&fillProvider, "provider", "", `Suggestion provider: "chat" or "gemini"`)
	fillCmd.Flags().StringVar(&fillAPIKey, "api-key", "", "Provider API key (overrides the stored one)")
	fillCmd.Flags().StringVar(&fillEndpoint, "endpoint", "", "Chat-completions endpoint override")
	fillCmd.Flags().StringVar(&fillModel, "model", "", "Provider model override")

	rootCmd.AddCommand(fillCmd)
}

func runFill(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{
		StorePath:  flagStore,
		Input:      fillInput,
		URL:        fillURL,
		Provider:   fillProvider,
		APIKey:     fillAPIKey,
		Endpoint:   fillEndpoint,
		Model:      fillModel,
		UseBrowser: fillBrowser,
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

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	profile, err := st.LoadProfile(ctx)
	if err != nil {
		return err
	}
	if profile.IsEmpty() {
		fmt.Println("No resume data found. Import a profile first:")
		fmt.Println("  autofill_agent profile import --in profile.json")
		return fmt.Errorf("no profile stored")
	}

	var html string
	if cfg.Input != "" {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		html = string(data)
	} else {
		result, err := fetch.Page(ctx, cfg.URL, nil, cfg.UseBrowser, log)
		if err != nil {
			return fmt.Errorf("failed to fetch page: %w", err)
		}
		html = result.HTML
	}

	doc, err := dom.ParseString(html)
	if err != nil {
		return fmt.Errorf("failed to parse form document: %w", err)
	}

	var suggester llm.Suggester
	if fillRemote {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey, err = st.LoadAPIKey(ctx)
			if err != nil {
				return err
			}
		}
		if apiKey == "" {
			fmt.Println("No API key stored; proceeding with heuristics only.")
		} else {
			suggester = llm.NewSuggester(&llm.Config{
				Provider: llm.Provider(cfg.Provider),
				Endpoint: cfg.Endpoint,
				Model:    cfg.Model,
			}, apiKey)
		}
	}

	outcome := fill.Run(ctx, doc, profile, fill.Options{
		Suggester: suggester,
		Notifier:  &dom.LogNotifier{Log: log},
		Log:       log,
	})

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintFillOutcome(outcome)
	}

	if fillOut != "" {
		rendered, err := doc.Render()
		if err != nil {
			return fmt.Errorf("failed to render filled document: %w", err)
		}
		if err := os.WriteFile(fillOut, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Output: %s\n", fillOut)
	}

	fmt.Println(terminalMessage(outcome))
	return nil
}

// terminalMessage renders the user-facing summary line for a fill pass.
func terminalMessage(outcome *types.FillOutcome) string {
	msg := fmt.Sprintf("Filled %d field(s)", outcome.FilledCount)
	switch outcome.RemoteError {
	case types.RemoteErrorRateLimited:
		msg += " (remote suggestions unavailable: rate limited)"
	case types.RemoteErrorOther:
		msg += " (remote suggestions unavailable)"
	}
	return msg
}
