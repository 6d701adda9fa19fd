package llm

import (
	"context"
	"fmt"
)

// Generator is the single-shot text completion capability the interview
// services depend on. Failure modes (timeouts, rate limits) surface as
// plain errors and are not retried here.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator picks a provider-backed Generator from configuration.
func NewGenerator(provider, openAIAPIKey, anthropicAPIKey string) (Generator, error) {
	switch provider {
	case "openai":
		return NewOpenAIGenerator(openAIAPIKey)
	case "anthropic":
		return NewAnthropicGenerator(anthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
