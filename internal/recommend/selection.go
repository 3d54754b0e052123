package recommend

import "github.com/davidbz/modelscout/internal/domain"

// defaultProviderLimit is the number of models per provider the diversity
// constraint admits by default.
const defaultProviderLimit = 1

// Constraint decides whether a candidate may join an in-progress selection
// given what has already been selected. Constraints are stateless and
// composable; they express preferences, not hard filters — the second
// selection pass may override them to fill the requested count.
type Constraint func(selected []domain.ScoredModel, candidate domain.ScoredModel) bool

// SelectOptions configures one selection call.
type SelectOptions struct {
	// Count is the maximum number of models to return.
	Count int

	// Constraints are applied in order during the first pass.
	Constraints []Constraint

	// Filter, when non-nil, drops candidates before selection starts.
	// Unlike constraints, filtered-out candidates are never backfilled.
	Filter func(domain.ScoredModel) bool
}

// SelectModels builds a bounded result set from candidates already sorted
// by score descending. The first pass admits candidates satisfying every
// constraint; if that under-fills, a second pass backfills the remaining
// candidates unconditionally in original score order. The caller is
// therefore guaranteed Count results whenever the post-filter pool has
// that many.
func SelectModels(candidates []domain.ScoredModel, opts SelectOptions) []domain.ScoredModel {
	pool := candidates
	if opts.Filter != nil {
		pool = make([]domain.ScoredModel, 0, len(candidates))
		for _, c := range candidates {
			if opts.Filter(c) {
				pool = append(pool, c)
			}
		}
	}

	if len(pool) == 0 || opts.Count <= 0 {
		return nil
	}

	selected := make([]domain.ScoredModel, 0, opts.Count)
	admitted := make(map[int]bool, opts.Count)

	// First pass: constrained.
	for i, c := range pool {
		if len(selected) >= opts.Count {
			break
		}
		if satisfiesAll(opts.Constraints, selected, c) {
			selected = append(selected, c)
			admitted[i] = true
		}
	}

	// Second pass: unconstrained backfill in score order.
	for i, c := range pool {
		if len(selected) >= opts.Count {
			break
		}
		if !admitted[i] {
			selected = append(selected, c)
			admitted[i] = true
		}
	}

	return selected
}

func satisfiesAll(constraints []Constraint, selected []domain.ScoredModel, candidate domain.ScoredModel) bool {
	for _, constraint := range constraints {
		if !constraint(selected, candidate) {
			return false
		}
	}
	return true
}

// ProviderDiversity admits a candidate only while fewer than max already
// selected models share its provider. A max below 1 falls back to the
// default of one model per provider.
func ProviderDiversity(max int) Constraint {
	if max < 1 {
		max = defaultProviderLimit
	}
	return func(selected []domain.ScoredModel, candidate domain.ScoredModel) bool {
		count := 0
		for _, s := range selected {
			if s.Provider == candidate.Provider {
				count++
			}
		}
		return count < max
	}
}

// MinContextWindow admits only candidates with a context window of at
// least min tokens. A missing context window counts as 0.
func MinContextWindow(min int) Constraint {
	return func(_ []domain.ScoredModel, candidate domain.ScoredModel) bool {
		return candidate.ContextWindow >= min
	}
}
