package llm

import (
	"context"
	"fmt"
)

// Client is the chat-completion boundary: one prompt in, raw text out.
// Callers own parsing and fallback; the client never retries.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	Provider string // "openai" (any OpenAI-compatible endpoint, e.g. DeepSeek) or "gemini"
	APIKey   string
	Model    string
	BaseURL  string
}

// NewClient creates a Client from configuration.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
