package recommend

import (
	"strings"

	"github.com/davidbz/modelscout/internal/domain"
)

// nonTextModalities are output modalities dropped by the default
// text-focus filter.
var nonTextModalities = map[string]bool{
	"image": true,
	"audio": true,
	"video": true,
}

// RecommendOptions configures one recommendation call.
type RecommendOptions struct {
	// Count is the maximum number of models to return.
	Count int

	// IncludeNonText disables the default text-focus filter, keeping
	// models that produce image, audio, or video output.
	IncludeNonText bool
}

// Recommend returns up to opts.Count models best satisfying the purpose,
// best first. Candidates are filtered by the purpose's hard requirements
// and exclusions, scored together under the purpose's weights, then drawn
// from tier buckets ordered by distance from the preferred tier.
//
// Tier preference is a hard structural ordering, not a scoring weight: an
// off-tier model never outranks an on-tier model, regardless of score.
// Fewer eligible models than requested returns what exists, not an error.
func Recommend(models []domain.Model, purpose domain.Purpose, opts RecommendOptions) []domain.ScoredModel {
	eligible := filterEligible(models, purpose, opts)
	if len(eligible) == 0 {
		return nil
	}

	// Score the whole eligible set together so normalization reflects
	// the full competitive field, not a single tier bucket.
	scored := ScoreModels(eligible, purposeCriteria(purpose))

	// Partition by distance from the preferred tier, preserving score
	// order within each bucket.
	var buckets [3][]domain.ScoredModel
	for _, s := range scored {
		d := tierDistance(ClassifyTier(s.Model), purpose.PreferredTier)
		buckets[d] = append(buckets[d], s)
	}

	// Walk buckets nearest-first. Provider diversity counts models
	// chosen in earlier buckets too.
	selected := make([]domain.ScoredModel, 0, opts.Count)
	diversity := ProviderDiversity(defaultProviderLimit)

	for _, bucket := range buckets {
		if len(selected) >= opts.Count {
			break
		}
		if len(bucket) == 0 {
			continue
		}

		picked := SelectModels(bucket, SelectOptions{
			Count: opts.Count - len(selected),
			Constraints: []Constraint{
				acrossBuckets(diversity, selected),
			},
		})
		selected = append(selected, picked...)
	}

	return selected
}

// acrossBuckets extends a constraint's view of the selection with models
// already chosen from earlier tier buckets.
func acrossBuckets(constraint Constraint, prior []domain.ScoredModel) Constraint {
	return func(selected []domain.ScoredModel, candidate domain.ScoredModel) bool {
		combined := make([]domain.ScoredModel, 0, len(prior)+len(selected))
		combined = append(combined, prior...)
		combined = append(combined, selected...)
		return constraint(combined, candidate)
	}
}

// purposeCriteria maps a purpose's weight triple onto scoring criteria.
// The quality weight is split evenly between version freshness and
// recency; zero-weight axes contribute no criterion.
func purposeCriteria(purpose domain.Purpose) []WeightedCriterion {
	weights := purpose.Weights
	criteria := make([]WeightedCriterion, 0, 4)

	if weights.Cost > 0 {
		criteria = append(criteria, WeightedCriterion{Criterion: CostEfficiency, Weight: weights.Cost})
	}
	if weights.Quality > 0 {
		half := weights.Quality / 2
		criteria = append(criteria,
			WeightedCriterion{Criterion: VersionFreshness, Weight: half},
			WeightedCriterion{Criterion: Recency, Weight: half},
		)
	}
	if weights.Context > 0 {
		criteria = append(criteria, WeightedCriterion{Criterion: ContextCapacity, Weight: weights.Context})
	}

	return criteria
}

// filterEligible drops models failing the purpose's hard requirements or
// matching its exclusions. The returned slice is freshly allocated.
func filterEligible(models []domain.Model, purpose domain.Purpose, opts RecommendOptions) []domain.Model {
	eligible := make([]domain.Model, 0, len(models))

	for _, m := range models {
		if !opts.IncludeNonText && producesNonText(m) {
			continue
		}
		if !meetsRequirements(m, purpose.Require) {
			continue
		}
		if isExcluded(m, purpose.Exclude) {
			continue
		}
		eligible = append(eligible, m)
	}

	return eligible
}

func producesNonText(m domain.Model) bool {
	for _, modality := range m.OutputModalities {
		if nonTextModalities[strings.ToLower(modality)] {
			return true
		}
	}
	return false
}

func meetsRequirements(m domain.Model, require *domain.Requirements) bool {
	if require == nil {
		return true
	}
	if require.Tools && !m.Capabilities.Tools {
		return false
	}
	if m.ContextWindow < require.MinContextWindow {
		return false
	}
	return true
}

func isExcluded(m domain.Model, exclude *domain.Exclusions) bool {
	if exclude == nil {
		return false
	}

	tier := ClassifyTier(m)
	for _, excluded := range exclude.Tiers {
		if tier == excluded {
			return true
		}
	}

	name := strings.ToLower(m.ID + " " + m.DisplayName)
	for _, pattern := range exclude.Patterns {
		if pattern != "" && strings.Contains(name, strings.ToLower(pattern)) {
			return true
		}
	}

	return false
}
