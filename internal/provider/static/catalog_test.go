package static_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/modelscout/internal/provider/static"
)

func TestSource_Models(t *testing.T) {
	source := static.NewSource()

	t.Run("should return a non-empty multi-provider catalog", func(t *testing.T) {
		models, err := source.Models(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, models)

		providers := map[string]bool{}
		for _, m := range models {
			require.NotEmpty(t, m.ID)
			require.NotEmpty(t, m.Provider)
			require.NotEmpty(t, m.DisplayName)
			providers[m.Provider] = true
		}
		require.GreaterOrEqual(t, len(providers), 3)
	})

	t.Run("should isolate callers from each other", func(t *testing.T) {
		first, err := source.Models(context.Background())
		require.NoError(t, err)

		first[0].ID = "tampered"

		second, err := source.Models(context.Background())
		require.NoError(t, err)
		require.NotEqual(t, "tampered", second[0].ID)
	})

	t.Run("should name itself static", func(t *testing.T) {
		require.Equal(t, "static", source.Name())
	})
}
