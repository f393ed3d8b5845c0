package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"url": "https://boards.greenhouse.io/acme/jobs/123",
		"provider": "chat",
		"use_browser": true,
		"listen_addr": ":8085"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/123", cfg.URL)
	assert.Equal(t, "chat", cfg.Provider)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, ":8085", cfg.ListenAddr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := writeConfig(t, `{"url": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateInputAndURLExclusive(t *testing.T) {
	input := writeConfig(t, `{}`)
	cfg := &Config{Input: input, URL: "https://example.com/apply"}
	assert.Error(t, cfg.Validate())
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "anthropic"}
	assert.Error(t, cfg.Validate())
}

func TestValidateKnownProviders(t *testing.T) {
	for _, provider := range []string{"", "chat", "gemini"} {
		cfg := &Config{Provider: provider}
		assert.NoError(t, cfg.Validate(), provider)
	}
}

func TestValidateMissingInputFile(t *testing.T) {
	cfg := &Config{Input: filepath.Join(t.TempDir(), "absent.html")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{URL: "https://example.com/apply", Provider: "gemini"}
	defaults := Config{
		URL:        "https://default.example.com",
		Provider:   "chat",
		APIKey:     "sk-default",
		StorePath:  "/tmp/store.db",
		UseBrowser: true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win.
	assert.Equal(t, "https://example.com/apply", merged.URL)
	assert.Equal(t, "gemini", merged.Provider)
	// Empty values take defaults.
	assert.Equal(t, "sk-default", merged.APIKey)
	assert.Equal(t, "/tmp/store.db", merged.StorePath)
	assert.True(t, merged.UseBrowser)
}

func TestFromEnvProviderInference(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvOpenAIAPIKey, "")
	t.Setenv(EnvGeminiAPIKey, "sk-gem")

	cfg := FromEnv()
	assert.Equal(t, "sk-gem", cfg.APIKey)
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestFromEnvOverrideWins(t *testing.T) {
	t.Setenv(EnvAPIKey, "sk-override")
	t.Setenv(EnvOpenAIAPIKey, "sk-openai")

	cfg := FromEnv()
	assert.Equal(t, "sk-override", cfg.APIKey)
	assert.Empty(t, cfg.Provider)
}
