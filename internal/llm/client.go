// Package llm provides the optional remote suggestion adapter: a best-effort
// call to a language-model API that maps scanned form fields to résumé
// values. The fill engine treats it strictly as enrichment; any failure here
// falls back to the heuristic path.
package llm

import (
	"context"
	"errors"

	"github.com/jonathan/resume-autofill/internal/types"
)

// Mapping is one suggested field-to-value assignment returned by a provider.
type Mapping struct {
	FieldID     string `json:"fieldId"`
	FieldName   string `json:"fieldName"`
	ResumeValue string `json:"resumeValue"`
}

// Suggester is an abstraction over LLM providers. Suggest issues exactly one
// request carrying the field inventory and the profile; it never retries,
// backs off, or caches.
type Suggester interface {
	// Suggest returns field-to-value mappings, or nil when the provider has
	// nothing usable. A nil, nil return is a valid "no suggestions" result.
	Suggest(ctx context.Context, fields []types.FieldDescriptor, profile *types.Profile) ([]Mapping, error)
}

// Sentinel errors callers branch on. Rate limiting is surfaced distinctly so
// the user can be told, but both are non-fatal to a fill pass.
var (
	// ErrNoCredential means no API key is stored; no network call was made.
	ErrNoCredential = errors.New("llm: no API credential configured")
	// ErrRateLimited means the provider rejected the request with HTTP 429.
	ErrRateLimited = errors.New("llm: provider rate limit exceeded")
)

// SuggestionError represents a provider failure other than rate limiting.
type SuggestionError struct {
	Message string
	Cause   error
}

func (e *SuggestionError) Error() string {
	if e.Cause != nil {
		return "suggestion error: " + e.Message + ": " + e.Cause.Error()
	}
	return "suggestion error: " + e.Message
}

func (e *SuggestionError) Unwrap() error {
	return e.Cause
}

// Provider selects a Suggester implementation.
type Provider string

const (
	// ProviderChat is the OpenAI-compatible chat-completions HTTP provider.
	ProviderChat Provider = "chat"
	// ProviderGemini uses the Google Gemini SDK.
	ProviderGemini Provider = "gemini"
)

// NewSuggester creates a Suggester for the configured provider.
func NewSuggester(cfg *Config, apiKey string) Suggester {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiSuggester(cfg, apiKey)
	default:
		return NewChatSuggester(cfg, apiKey)
	}
}
