package recommend

import (
	"sort"

	"github.com/davidbz/modelscout/internal/domain"
)

// WeightedCriterion pairs a criterion with its relative weight. Weights
// must be non-negative; only their proportions matter.
type WeightedCriterion struct {
	Criterion Criterion
	Weight    float64
}

// ScoreModels evaluates every criterion for every model against the full
// comparison set, combines them into one weighted score per model, and
// returns new scored records sorted by score descending (ties keep input
// order). Weights are renormalized to sum to 1; a zero total weight scores
// everything 0 rather than erroring. The input slice is not modified.
func ScoreModels(models []domain.Model, criteria []WeightedCriterion) []domain.ScoredModel {
	var totalWeight float64
	for _, wc := range criteria {
		totalWeight += wc.Weight
	}

	scored := make([]domain.ScoredModel, 0, len(models))
	for _, m := range models {
		var score float64
		if totalWeight > 0 {
			for _, wc := range criteria {
				score += wc.Weight / totalWeight * wc.Criterion(m, models)
			}
		}
		scored = append(scored, domain.ScoredModel{Model: m, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
