package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-autofill/internal/config"
	"github.com/jonathan/resume-autofill/internal/llm"
	"github.com/jonathan/resume-autofill/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start an HTTP server exposing the fill engine and profile store to host applications.",
	RunE:  runServe,
}

var (
	serveAddr     string
	serveProvider string
	serveEndpoint string
	serveModel    string
	serveBrowser  bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8085)")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", `Suggestion provider: "chat" or "gemini"`)
	serveCmd.Flags().StringVar(&serveEndpoint, "endpoint", "", "Chat-completions endpoint override")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Provider model override")
	serveCmd.Flags().BoolVar(&serveBrowser, "browser", false, "Allow the fill endpoint to render pages in a headless browser")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(config.Config{
		StorePath:  flagStore,
		ListenAddr: serveAddr,
		Provider:   serveProvider,
		Endpoint:   serveEndpoint,
		Model:      serveModel,
		UseBrowser: serveBrowser,
	})
	if err != nil {
		return err
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

	srv, err := server.New(server.Config{
		Addr:       cfg.ListenAddr,
		Store:      st,
		Provider:   llm.Provider(cfg.Provider),
		Endpoint:   cfg.Endpoint,
		Model:      cfg.Model,
		UseBrowser: cfg.UseBrowser,
		Log:        log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
