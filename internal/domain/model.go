package domain

import "time"

// Pricing holds a model's token pricing in USD per 1M tokens.
type Pricing struct {
	InputPerMillion  float64 `json:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million"`
}

// Capabilities describes optional model features.
type Capabilities struct {
	Tools            bool `json:"tools"`
	Vision           bool `json:"vision"`
	Streaming        bool `json:"streaming"`
	StructuredOutput bool `json:"structured_output"`
}

// Model is the canonical catalog record for one model.
// Records are immutable once constructed: no component mutates a Model,
// derived data is always produced as new values.
type Model struct {
	ID               string       `json:"id"`
	Provider         string       `json:"provider"`
	DisplayName      string       `json:"display_name"`
	Pricing          *Pricing     `json:"pricing,omitempty"`
	ContextWindow    int          `json:"context_window,omitempty"`
	InputModalities  []string     `json:"input_modalities,omitempty"`
	OutputModalities []string     `json:"output_modalities,omitempty"`
	Capabilities     Capabilities `json:"capabilities"`
	CreatedAt        time.Time    `json:"created_at,omitzero"`
}

// InputPrice returns the input price per 1M tokens, or 0 when pricing
// is unknown.
func (m Model) InputPrice() float64 {
	if m.Pricing == nil {
		return 0
	}
	return m.Pricing.InputPerMillion
}

// ScoredModel is a Model with an attached score in [0, 1]. Scored records
// exist only for the duration of one scoring or recommendation call.
type ScoredModel struct {
	Model
	Score float64 `json:"score"`
}
