package recommend

import (
	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/modelid"
)

// Criterion scores one model in [0, 1] relative to a comparison set.
// Range-based criteria min-max normalize over the set; an empty or
// singleton set has min equal to max and scores 0, signalling "no signal"
// rather than implying differentiation that does not exist.
type Criterion func(m domain.Model, pool []domain.Model) float64

// Tier proximity step values: exact match, one step away, two steps away.
// Tier distance is a small discrete space, so this is a step function
// rather than a continuous one.
const (
	tierExactScore    = 1.0
	tierAdjacentScore = 0.5
	tierFarScore      = 0.1
)

// CostEfficiency scores cheaper models higher: the cheapest model in the
// pool scores 1, the most expensive 0. Missing pricing counts as 0.
func CostEfficiency(m domain.Model, pool []domain.Model) float64 {
	lo, hi := rangeOf(pool, func(p domain.Model) float64 { return p.InputPrice() })
	if hi <= lo {
		// No price variance: inverting would turn "no signal" into a
		// perfect score for every model.
		return 0
	}
	return 1 - (m.InputPrice()-lo)/(hi-lo)
}

// ContextCapacity scores larger context windows higher. Missing context
// counts as 0.
func ContextCapacity(m domain.Model, pool []domain.Model) float64 {
	return minMaxNormalize(float64(m.ContextWindow), pool, func(p domain.Model) float64 {
		return float64(p.ContextWindow)
	})
}

// Recency scores newer models higher. A missing creation timestamp counts
// as the epoch, i.e. oldest.
func Recency(m domain.Model, pool []domain.Model) float64 {
	return minMaxNormalize(createdAtSeconds(m), pool, createdAtSeconds)
}

func createdAtSeconds(m domain.Model) float64 {
	if m.CreatedAt.IsZero() {
		return 0
	}
	return float64(m.CreatedAt.Unix())
}

// VersionFreshness scores higher versions extracted from the model ID
// higher. An unextractable version counts as 0.
func VersionFreshness(m domain.Model, pool []domain.Model) float64 {
	return minMaxNormalize(float64(modelid.Version(m.ID)), pool, func(p domain.Model) float64 {
		return float64(modelid.Version(p.ID))
	})
}

// TierProximity returns a criterion scoring models by distance from the
// target capability tier: exact match 1.0, one step 0.5, two steps 0.1.
func TierProximity(target domain.CapabilityTier) Criterion {
	return func(m domain.Model, _ []domain.Model) float64 {
		switch tierDistance(ClassifyTier(m), target) {
		case 0:
			return tierExactScore
		case 1:
			return tierAdjacentScore
		default:
			return tierFarScore
		}
	}
}

func tierDistance(a, b domain.CapabilityTier) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// minMaxNormalize maps value into [0, 1] over the pool's range of field.
// A pool with no range (empty, singleton, or all-equal) yields 0.
func minMaxNormalize(value float64, pool []domain.Model, field func(domain.Model) float64) float64 {
	lo, hi := rangeOf(pool, field)
	if hi <= lo {
		return 0
	}
	return (value - lo) / (hi - lo)
}

func rangeOf(pool []domain.Model, field func(domain.Model) float64) (lo, hi float64) {
	if len(pool) == 0 {
		return 0, 0
	}

	lo = field(pool[0])
	hi = lo
	for _, m := range pool[1:] {
		v := field(m)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
