package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownPurpose indicates a purpose name that is not in the built-in
// registry. Unknown names fail loudly: silently substituting a default
// profile could produce a recommendation the caller did not ask for.
var ErrUnknownPurpose = errors.New("unknown purpose")

// Weights is the scoring weight triple of a purpose. Values must be
// non-negative; they are renormalized to sum to 1 before use, so only the
// relative proportions matter.
type Weights struct {
	Cost    float64 `json:"cost"    yaml:"cost"`
	Quality float64 `json:"quality" yaml:"quality"`
	Context float64 `json:"context" yaml:"context"`
}

// Requirements are hard requirements of a purpose. A model failing any of
// them is dropped before scoring. A nil Requirements means no constraint.
type Requirements struct {
	Tools            bool `json:"tools,omitempty"             yaml:"tools"`
	MinContextWindow int  `json:"min_context_window,omitempty" yaml:"min_context_window"`
}

// Exclusions drop models before scoring. Patterns are matched
// case-insensitively as substrings against model ID and display name.
// A nil Exclusions means nothing is excluded.
type Exclusions struct {
	Tiers    []CapabilityTier `json:"tiers,omitempty"    yaml:"tiers"`
	Patterns []string         `json:"patterns,omitempty" yaml:"patterns"`
}

// Purpose is an immutable policy bundle describing what a caller wants a
// model for: a preferred capability tier (a hard anchor, not a weight),
// scoring weights, and optional hard requirements and exclusions.
type Purpose struct {
	Name          string         `json:"name"           yaml:"name"`
	PreferredTier CapabilityTier `json:"preferred_tier" yaml:"preferred_tier"`
	Weights       Weights        `json:"weights"        yaml:"weights"`
	Require       *Requirements  `json:"require,omitempty" yaml:"require"`
	Exclude       *Exclusions    `json:"exclude,omitempty" yaml:"exclude"`
}

// builtinPurposes is the read-only registry of well-known purposes,
// constructed once at process start. There is no runtime registration.
var builtinPurposes = map[string]Purpose{
	"general": {
		Name:          "general",
		PreferredTier: TierStandard,
		Weights:       Weights{Cost: 0.3, Quality: 0.4, Context: 0.3},
	},
	"cheap": {
		Name:          "cheap",
		PreferredTier: TierEfficient,
		Weights:       Weights{Cost: 0.6, Quality: 0.2, Context: 0.2},
	},
	"quality": {
		Name:          "quality",
		PreferredTier: TierFlagship,
		Weights:       Weights{Cost: 0.1, Quality: 0.7, Context: 0.2},
	},
	"coding": {
		Name:          "coding",
		PreferredTier: TierFlagship,
		Weights:       Weights{Cost: 0.2, Quality: 0.5, Context: 0.3},
		Require:       &Requirements{Tools: true},
	},
	"long-context": {
		Name:          "long-context",
		PreferredTier: TierStandard,
		Weights:       Weights{Cost: 0.2, Quality: 0.2, Context: 0.6},
		Require:       &Requirements{MinContextWindow: 128000},
	},
}

// PurposeFor looks up a built-in purpose by name.
func PurposeFor(name string) (Purpose, error) {
	purpose, ok := builtinPurposes[name]
	if !ok {
		return Purpose{}, fmt.Errorf("%w: %q", ErrUnknownPurpose, name)
	}
	return purpose, nil
}

// PurposeNames returns the names of all built-in purposes.
func PurposeNames() []string {
	names := make([]string, 0, len(builtinPurposes))
	for name := range builtinPurposes {
		names = append(names, name)
	}
	return names
}
