package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/recommend"
)

func scored(id, provider string, score float64) domain.ScoredModel {
	return domain.ScoredModel{
		Model: domain.Model{ID: id, Provider: provider},
		Score: score,
	}
}

func TestSelectModels(t *testing.T) {
	candidates := []domain.ScoredModel{
		scored("a", "openai", 0.9),
		scored("b", "openai", 0.8),
		scored("c", "anthropic", 0.7),
		scored("d", "google", 0.6),
	}

	t.Run("should return the top N when unconstrained", func(t *testing.T) {
		selected := recommend.SelectModels(candidates, recommend.SelectOptions{Count: 2})

		require.Len(t, selected, 2)
		require.Equal(t, "a", selected[0].ID)
		require.Equal(t, "b", selected[1].ID)
	})

	t.Run("should return fewer when input is smaller than count", func(t *testing.T) {
		selected := recommend.SelectModels(candidates[:1], recommend.SelectOptions{Count: 5})
		require.Len(t, selected, 1)
	})

	t.Run("should return empty for empty input", func(t *testing.T) {
		require.Empty(t, recommend.SelectModels(nil, recommend.SelectOptions{Count: 3}))
	})

	t.Run("should return empty for a non-positive count", func(t *testing.T) {
		require.Empty(t, recommend.SelectModels(candidates, recommend.SelectOptions{Count: 0}))
	})

	t.Run("should prefer distinct providers under the diversity constraint", func(t *testing.T) {
		selected := recommend.SelectModels(candidates, recommend.SelectOptions{
			Count:       3,
			Constraints: []recommend.Constraint{recommend.ProviderDiversity(1)},
		})

		require.Len(t, selected, 3)
		require.Equal(t, "a", selected[0].ID)
		require.Equal(t, "c", selected[1].ID)
		require.Equal(t, "d", selected[2].ID)
	})

	t.Run("should backfill in score order once constraints cannot be met", func(t *testing.T) {
		selected := recommend.SelectModels(candidates, recommend.SelectOptions{
			Count:       4,
			Constraints: []recommend.Constraint{recommend.ProviderDiversity(1)},
		})

		// All distinct providers first, then the best remaining duplicate.
		require.Len(t, selected, 4)
		require.Equal(t, []string{"a", "c", "d", "b"}, ids(selected))
	})

	t.Run("should never backfill filtered-out candidates", func(t *testing.T) {
		selected := recommend.SelectModels(candidates, recommend.SelectOptions{
			Count: 4,
			Filter: func(s domain.ScoredModel) bool {
				return s.Provider != "openai"
			},
		})

		require.Equal(t, []string{"c", "d"}, ids(selected))
	})

	t.Run("should apply every constraint in order", func(t *testing.T) {
		withContext := []domain.ScoredModel{
			{Model: domain.Model{ID: "big", Provider: "openai", ContextWindow: 200000}, Score: 0.9},
			{Model: domain.Model{ID: "small", Provider: "openai", ContextWindow: 8000}, Score: 0.8},
			{Model: domain.Model{ID: "other", Provider: "google", ContextWindow: 128000}, Score: 0.7},
		}

		selected := recommend.SelectModels(withContext, recommend.SelectOptions{
			Count: 2,
			Constraints: []recommend.Constraint{
				recommend.ProviderDiversity(1),
				recommend.MinContextWindow(100000),
			},
		})

		require.Equal(t, []string{"big", "other"}, ids(selected))
	})

	t.Run("should treat constraints as preferences not hard filters", func(t *testing.T) {
		tiny := []domain.ScoredModel{
			{Model: domain.Model{ID: "x", Provider: "p", ContextWindow: 4000}, Score: 0.5},
			{Model: domain.Model{ID: "y", Provider: "p", ContextWindow: 2000}, Score: 0.4},
		}

		selected := recommend.SelectModels(tiny, recommend.SelectOptions{
			Count:       2,
			Constraints: []recommend.Constraint{recommend.MinContextWindow(100000)},
		})

		// Nothing satisfies the constraint; the backfill pass still
		// fills the requested count in score order.
		require.Equal(t, []string{"x", "y"}, ids(selected))
	})
}

func TestProviderDiversity(t *testing.T) {
	t.Run("should admit up to max models per provider", func(t *testing.T) {
		constraint := recommend.ProviderDiversity(2)
		selected := []domain.ScoredModel{scored("a", "openai", 0.9), scored("b", "openai", 0.8)}

		require.False(t, constraint(selected, scored("c", "openai", 0.7)))
		require.True(t, constraint(selected, scored("d", "google", 0.7)))
	})

	t.Run("should default to one per provider for a non-positive max", func(t *testing.T) {
		constraint := recommend.ProviderDiversity(0)
		selected := []domain.ScoredModel{scored("a", "openai", 0.9)}

		require.False(t, constraint(selected, scored("b", "openai", 0.8)))
	})
}

func ids(selected []domain.ScoredModel) []string {
	out := make([]string, 0, len(selected))
	for _, s := range selected {
		out = append(out, s.ID)
	}
	return out
}
