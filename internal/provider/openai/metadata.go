package openai

import "github.com/davidbz/modelscout/internal/domain"

// modelMetadata enriches the bare SDK model listing with the pricing,
// context and capability data the API does not return.
type modelMetadata struct {
	InputPerMillion  float64 // USD per 1M input tokens
	OutputPerMillion float64 // USD per 1M output tokens
	ContextWindow    int
	Capabilities     domain.Capabilities
}

// knownModels maps model ID prefixes to their metadata. Longest prefix
// wins, so "gpt-4.1-mini" beats "gpt-4.1" for gpt-4.1-mini-2025-04-14.
var knownModels = map[string]modelMetadata{
	"gpt-4.1": {
		InputPerMillion:  2,
		OutputPerMillion: 8,
		ContextWindow:    1047576,
		Capabilities:     domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
	},
	"gpt-4.1-mini": {
		InputPerMillion:  0.4,
		OutputPerMillion: 1.6,
		ContextWindow:    1047576,
		Capabilities:     domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
	},
	"gpt-4.1-nano": {
		InputPerMillion:  0.1,
		OutputPerMillion: 0.4,
		ContextWindow:    1047576,
		Capabilities:     domain.Capabilities{Tools: true, Streaming: true, StructuredOutput: true},
	},
	"gpt-4o": {
		InputPerMillion:  2.5,
		OutputPerMillion: 10,
		ContextWindow:    128000,
		Capabilities:     domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
	},
	"gpt-4o-mini": {
		InputPerMillion:  0.15,
		OutputPerMillion: 0.6,
		ContextWindow:    128000,
		Capabilities:     domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
	},
	"gpt-4-turbo": {
		InputPerMillion:  10,
		OutputPerMillion: 30,
		ContextWindow:    128000,
		Capabilities:     domain.Capabilities{Tools: true, Vision: true, Streaming: true},
	},
	"gpt-3.5-turbo": {
		InputPerMillion:  0.5,
		OutputPerMillion: 1.5,
		ContextWindow:    16385,
		Capabilities:     domain.Capabilities{Tools: true, Streaming: true},
	},
	"o3": {
		InputPerMillion:  2,
		OutputPerMillion: 8,
		ContextWindow:    200000,
		Capabilities:     domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
	},
	"o4-mini": {
		InputPerMillion:  1.1,
		OutputPerMillion: 4.4,
		ContextWindow:    200000,
		Capabilities:     domain.Capabilities{Tools: true, Vision: true, Streaming: true, StructuredOutput: true},
	},
	"dall-e-3": {
		InputPerMillion: 0,
		ContextWindow:   0,
		Capabilities:    domain.Capabilities{},
	},
}

// imageModels lists ID prefixes of models whose output is image rather
// than text.
var imageModels = []string{"dall-e", "gpt-image"}
