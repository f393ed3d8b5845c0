package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-autofill/internal/types"
)

// ChatSuggester calls an OpenAI-compatible chat-completions endpoint.
type ChatSuggester struct {
	cfg    *Config
	apiKey string
	client *http.Client
}

// NewChatSuggester creates the HTTP chat-completions provider.
func NewChatSuggester(cfg *Config, apiKey string) *ChatSuggester {
	cfg = cfg.withDefaults()
	return &ChatSuggester{
		cfg:    cfg,
		apiKey: apiKey,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Suggest implements Suggester with a single POST; HTTP 429 maps to
// ErrRateLimited and every other failure to SuggestionError.
func (s *ChatSuggester) Suggest(ctx context.Context, fields []types.FieldDescriptor, profile *types.Profile) ([]Mapping, error) {
	if s.apiKey == "" {
		return nil, ErrNoCredential
	}

	prompt, err := buildPrompt(fields, profile)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, &SuggestionError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &SuggestionError{Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &SuggestionError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &SuggestionError{
			Message: fmt.Sprintf("provider returned status %d", resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SuggestionError{Message: "failed to read response", Cause: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &SuggestionError{Message: "failed to decode response", Cause: err}
	}
	if len(parsed.Choices) == 0 {
		return nil, nil
	}

	return parseMappings(parsed.Choices[0].Message.Content), nil
}
