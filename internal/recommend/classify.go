// Package recommend implements the model recommendation engine: tier
// classification, multi-criterion scoring, constrained selection, and the
// purpose-driven orchestration that composes them. Every function in this
// package is a pure, synchronous computation over in-memory records; no
// input is ever mutated.
package recommend

import (
	"strings"

	"github.com/davidbz/modelscout/internal/domain"
)

// flagshipPriceThreshold is the input price per 1M tokens at or above which
// a model is classified Flagship regardless of naming.
const flagshipPriceThreshold = 10.0

// Cost tier band boundaries, USD per 1M input tokens. Bands are
// inclusive-lower, exclusive-upper except the terminal band.
const (
	budgetPriceCeiling   = 2.0
	standardPriceCeiling = 10.0
	premiumPriceCeiling  = 20.0
)

// efficientTokens mark small or cheap model variants.
var efficientTokens = []string{"mini", "nano", "lite", "flash", "haiku", "tiny", "small"}

// flagshipTokens mark top-of-line model variants.
var flagshipTokens = []string{"opus", "ultra", "pro"}

// ClassifyTier maps a model to its capability tier from naming heuristics
// and price. Efficient naming signals win over flagship signals; models with
// neither signal and sub-threshold pricing default to Standard.
// Classification never fails: every input has a defined output tier.
func ClassifyTier(m domain.Model) domain.CapabilityTier {
	name := strings.ToLower(m.ID + " " + m.DisplayName)

	for _, token := range efficientTokens {
		if containsBoundedToken(name, token) {
			return domain.TierEfficient
		}
	}

	if m.InputPrice() >= flagshipPriceThreshold {
		return domain.TierFlagship
	}
	for _, token := range flagshipTokens {
		if containsBoundedToken(name, token) {
			return domain.TierFlagship
		}
	}

	return domain.TierStandard
}

// ClassifyCostTier maps a model to its price band. Missing pricing is
// treated as 0, landing in the cheapest band.
func ClassifyCostTier(m domain.Model) domain.CostTier {
	price := m.InputPrice()

	switch {
	case price <= 0:
		return domain.CostFree
	case price < budgetPriceCeiling:
		return domain.CostBudget
	case price < standardPriceCeiling:
		return domain.CostStandard
	case price < premiumPriceCeiling:
		return domain.CostPremium
	default:
		return domain.CostUltra
	}
}

// TierAtMost returns a predicate matching models at or below the threshold
// capability tier.
func TierAtMost(threshold domain.CapabilityTier) func(domain.Model) bool {
	return func(m domain.Model) bool {
		return ClassifyTier(m) <= threshold
	}
}

// TierAtLeast returns a predicate matching models at or above the threshold
// capability tier.
func TierAtLeast(threshold domain.CapabilityTier) func(domain.Model) bool {
	return func(m domain.Model) bool {
		return ClassifyTier(m) >= threshold
	}
}

// CostAtMost returns a predicate matching models at or below the threshold
// cost tier.
func CostAtMost(threshold domain.CostTier) func(domain.Model) bool {
	return func(m domain.Model) bool {
		return ClassifyCostTier(m) <= threshold
	}
}

// CostAtLeast returns a predicate matching models at or above the threshold
// cost tier.
func CostAtLeast(threshold domain.CostTier) func(domain.Model) bool {
	return func(m domain.Model) bool {
		return ClassifyCostTier(m) >= threshold
	}
}

// containsBoundedToken reports whether s contains token bounded by
// non-alphanumeric characters or string edges on both sides. Bounding keeps
// "gemini" from matching "mini" and "provider" from matching "pro".
func containsBoundedToken(s, token string) bool {
	for start := 0; ; {
		i := strings.Index(s[start:], token)
		if i < 0 {
			return false
		}
		i += start

		leftOK := i == 0 || !isAlphanumeric(s[i-1])
		end := i + len(token)
		rightOK := end == len(s) || !isAlphanumeric(s[end])
		if leftOK && rightOK {
			return true
		}

		start = i + 1
	}
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
