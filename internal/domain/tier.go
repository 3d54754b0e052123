package domain

import (
	"encoding/json"
	"fmt"
)

// CapabilityTier is an ordinal classification of a model's general
// capability class. It is a distinct type from CostTier: the two axes share
// some names but must never be compared against each other.
type CapabilityTier int

const (
	TierEfficient CapabilityTier = iota
	TierStandard
	TierFlagship
)

var capabilityTierNames = [...]string{"efficient", "standard", "flagship"}

// String returns the tier name.
func (t CapabilityTier) String() string {
	if t < 0 || int(t) >= len(capabilityTierNames) {
		return "unknown"
	}
	return capabilityTierNames[t]
}

// MarshalJSON encodes the tier as its string name.
func (t CapabilityTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier from its string name.
func (t *CapabilityTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	tier, err := ParseCapabilityTier(s)
	if err != nil {
		return err
	}

	*t = tier
	return nil
}

// ParseCapabilityTier converts a tier name into a CapabilityTier.
func ParseCapabilityTier(s string) (CapabilityTier, error) {
	for i, name := range capabilityTierNames {
		if name == s {
			return CapabilityTier(i), nil
		}
	}
	return TierStandard, fmt.Errorf("unknown capability tier: %q", s)
}

// CostTier is an ordinal classification of a model's price band.
type CostTier int

const (
	CostFree CostTier = iota
	CostBudget
	CostStandard
	CostPremium
	CostUltra
)

var costTierNames = [...]string{"free", "budget", "standard", "premium", "ultra"}

// String returns the tier name.
func (t CostTier) String() string {
	if t < 0 || int(t) >= len(costTierNames) {
		return "unknown"
	}
	return costTierNames[t]
}

// MarshalJSON encodes the tier as its string name.
func (t CostTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier from its string name.
func (t *CostTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	tier, err := ParseCostTier(s)
	if err != nil {
		return err
	}

	*t = tier
	return nil
}

// ParseCostTier converts a tier name into a CostTier.
func ParseCostTier(s string) (CostTier, error) {
	for i, name := range costTierNames {
		if name == s {
			return CostTier(i), nil
		}
	}
	return CostStandard, fmt.Errorf("unknown cost tier: %q", s)
}
