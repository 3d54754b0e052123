// Package static provides a built-in catalog source with a fixed table of
// well-known models. It makes the service usable with zero configuration
// and gives tests and local development a deterministic catalog.
package static

import (
	"context"
	"time"

	"github.com/davidbz/modelscout/internal/domain"
)

const sourceName = "static"

// Source implements the domain.CatalogSource interface over a fixed table.
type Source struct {
	models []domain.Model
}

// NewSource creates the built-in catalog source.
func NewSource() *Source {
	return &Source{models: builtinModels()}
}

// Name returns the provider identifier.
func (s *Source) Name() string {
	return sourceName
}

// Models returns a fresh copy of the built-in catalog. Copying keeps the
// table immutable even if a caller modifies the returned slice.
func (s *Source) Models(_ context.Context) ([]domain.Model, error) {
	out := make([]domain.Model, len(s.models))
	copy(out, s.models)
	return out, nil
}

// builtinModels is the catalog snapshot shipped with the binary. Prices
// are USD per 1M input/output tokens.
func builtinModels() []domain.Model {
	return []domain.Model{
		{
			ID:            "gpt-4.1",
			Provider:      "openai",
			DisplayName:   "GPT-4.1",
			Pricing:       &domain.Pricing{InputPerMillion: 2, OutputPerMillion: 8},
			ContextWindow: 1047576,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
			CreatedAt:     time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "gpt-4.1-mini",
			Provider:      "openai",
			DisplayName:   "GPT-4.1 Mini",
			Pricing:       &domain.Pricing{InputPerMillion: 0.4, OutputPerMillion: 1.6},
			ContextWindow: 1047576,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
			CreatedAt:     time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "gpt-4.1-nano",
			Provider:      "openai",
			DisplayName:   "GPT-4.1 Nano",
			Pricing:       &domain.Pricing{InputPerMillion: 0.1, OutputPerMillion: 0.4},
			ContextWindow: 1047576,
			Capabilities:  domain.Capabilities{Tools: true, Streaming: true, StructuredOutput: true},
			CreatedAt:     time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "gpt-4o-mini",
			Provider:      "openai",
			DisplayName:   "GPT-4o Mini",
			Pricing:       &domain.Pricing{InputPerMillion: 0.15, OutputPerMillion: 0.6},
			ContextWindow: 128000,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
			CreatedAt:     time.Date(2024, 7, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "claude-opus-4-1",
			Provider:      "anthropic",
			DisplayName:   "Claude Opus 4.1",
			Pricing:       &domain.Pricing{InputPerMillion: 15, OutputPerMillion: 75},
			ContextWindow: 200000,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true},
			CreatedAt:     time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "claude-sonnet-4-5",
			Provider:      "anthropic",
			DisplayName:   "Claude Sonnet 4.5",
			Pricing:       &domain.Pricing{InputPerMillion: 3, OutputPerMillion: 15},
			ContextWindow: 200000,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true},
			CreatedAt:     time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "claude-3-5-haiku",
			Provider:      "anthropic",
			DisplayName:   "Claude 3.5 Haiku",
			Pricing:       &domain.Pricing{InputPerMillion: 0.8, OutputPerMillion: 4},
			ContextWindow: 200000,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true},
			CreatedAt:     time.Date(2024, 11, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "gemini-2.5-pro",
			Provider:      "google",
			DisplayName:   "Gemini 2.5 Pro",
			Pricing:       &domain.Pricing{InputPerMillion: 1.25, OutputPerMillion: 10},
			ContextWindow: 1048576,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
			CreatedAt:     time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "gemini-2.5-flash",
			Provider:      "google",
			DisplayName:   "Gemini 2.5 Flash",
			Pricing:       &domain.Pricing{InputPerMillion: 0.3, OutputPerMillion: 2.5},
			ContextWindow: 1048576,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
			CreatedAt:     time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "llama-3.3-70b-instruct",
			Provider:      "meta",
			DisplayName:   "Llama 3.3 70B Instruct",
			Pricing:       &domain.Pricing{InputPerMillion: 0.59, OutputPerMillion: 0.79},
			ContextWindow: 131072,
			Capabilities:  domain.Capabilities{Tools: true, Streaming: true},
			CreatedAt:     time.Date(2024, 12, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "mistral-small-3.1",
			Provider:      "mistral",
			DisplayName:   "Mistral Small 3.1",
			Pricing:       &domain.Pricing{InputPerMillion: 0.1, OutputPerMillion: 0.3},
			ContextWindow: 128000,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true},
			CreatedAt:     time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "deepseek-chat-v3",
			Provider:      "deepseek",
			DisplayName:   "DeepSeek Chat V3",
			Pricing:       &domain.Pricing{InputPerMillion: 0.27, OutputPerMillion: 1.1},
			ContextWindow: 64000,
			Capabilities:  domain.Capabilities{Tools: true, Streaming: true},
			CreatedAt:     time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
		},
	}
}
