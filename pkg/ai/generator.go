package ai

import (
	"context"
	"fmt"

	"github.com/johnquangdev/brainstorm-assistant/pkg/config"
)

// TextGenerator sends a single prompt to a language model and returns the whole reply as text
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	// Name identifies the provider in logs and error messages
	Name() string
	// DefaultModel is used when no model is configured
	DefaultModel() string
}

// NewTextGenerator builds the client for the configured provider
func NewTextGenerator(cfg *config.AIConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiClient(&cfg.Gemini), nil
	case "groq":
		return NewGroqClient(&cfg.Groq), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.Provider)
	}
}

// ModelFor returns the configured model, or the provider default
func ModelFor(cfg *config.AIConfig, gen TextGenerator) string {
	if cfg != nil && cfg.Model != "" {
		return cfg.Model
	}
	return gen.DefaultModel()
}
