package llm

import "time"

// Default endpoint and models for the suggestion providers.
const (
	DefaultChatEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultChatModel    = "gpt-3.5-turbo"
	DefaultGeminiModel  = "gemini-2.0-flash-lite"

	// DefaultTimeout bounds the single suggestion round trip.
	DefaultTimeout = 30 * time.Second
)

// Config holds provider selection and endpoint settings.
type Config struct {
	Provider Provider
	Endpoint string
	Model    string
	Timeout  time.Duration
}

// DefaultConfig returns the chat provider with its default endpoint.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderChat,
		Endpoint: DefaultChatEndpoint,
		Model:    DefaultChatModel,
		Timeout:  DefaultTimeout,
	}
}

// withDefaults fills unset fields from the provider's defaults.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	if out.Endpoint == "" {
		out.Endpoint = DefaultChatEndpoint
	}
	if out.Model == "" {
		if out.Provider == ProviderGemini {
			out.Model = DefaultGeminiModel
		} else {
			out.Model = DefaultChatModel
		}
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	return &out
}
