package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-autofill/internal/types"
)

// GeminiSuggester implements Suggester on Google Gemini.
type GeminiSuggester struct {
	cfg    *Config
	apiKey string
}

// NewGeminiSuggester creates the Gemini provider.
func NewGeminiSuggester(cfg *Config, apiKey string) *GeminiSuggester {
	return &GeminiSuggester{cfg: cfg.withDefaults(), apiKey: apiKey}
}

// Suggest implements Suggester. Quota exhaustion maps to ErrRateLimited the
// same way the chat provider maps HTTP 429.
func (s *GeminiSuggester) Suggest(ctx context.Context, fields []types.FieldDescriptor, profile *types.Profile) ([]Mapping, error) {
	if s.apiKey == "" {
		return nil, ErrNoCredential
	}

	prompt, err := buildPrompt(fields, profile)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, &SuggestionError{Message: "failed to create Gemini client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	model := client.GenerativeModel(s.cfg.Model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx, genai.Text(systemInstruction+"\n\n"+prompt))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == 429 {
			return nil, ErrRateLimited
		}
		return nil, &SuggestionError{Message: "failed to generate content", Cause: err}
	}

	content, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	return parseMappings(content), nil
}

// extractText extracts text from a Gemini API response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &SuggestionError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &SuggestionError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &SuggestionError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
