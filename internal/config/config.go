// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variable names consulted by FromEnv. OPENAI_API_KEY and
// GEMINI_API_KEY are the provider-native names; AUTOFILL_API_KEY overrides
// both.
const (
	EnvAPIKey       = "AUTOFILL_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvStorePath    = "AUTOFILL_STORE"
	EnvListenAddr   = "AUTOFILL_LISTEN_ADDR"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Input string `json:"input,omitempty"` // Path to a saved HTML form page
	URL   string `json:"url,omitempty"`   // URL to fetch the form page from

	// Storage
	StorePath string `json:"store_path,omitempty"` // Path to the profile database

	// Remote suggestions
	Provider string `json:"provider,omitempty"` // "chat" or "gemini"
	APIKey   string `json:"api_key,omitempty"`  // Provider API key
	Endpoint string `json:"endpoint,omitempty"` // Chat-completions endpoint override
	Model    string `json:"model,omitempty"`    // Provider model override

	// Behavior
	UseBrowser bool   `json:"use_browser,omitempty"` // Render script-driven pages in a headless browser
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
	ListenAddr string `json:"listen_addr,omitempty"` // Address for the serve command
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Values are
// meant to be merged under file and flag values.
func FromEnv() Config {
	cfg := Config{
		StorePath:  os.Getenv(EnvStorePath),
		ListenAddr: os.Getenv(EnvListenAddr),
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	} else if key := os.Getenv(EnvOpenAIAPIKey); key != "" {
		cfg.APIKey = key
		cfg.Provider = "chat"
	} else if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		cfg.APIKey = key
		cfg.Provider = "gemini"
	}

	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Input != "" && c.URL != "" {
		return fmt.Errorf("config error: 'input' and 'url' are mutually exclusive")
	}

	switch c.Provider {
	case "", "chat", "gemini":
	default:
		return fmt.Errorf("config error: unknown provider %q (want \"chat\" or \"gemini\")", c.Provider)
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file and environment values as
// defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Endpoint == "" {
		result.Endpoint = defaults.Endpoint
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}

	// Bool fields: true wins from either side
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
