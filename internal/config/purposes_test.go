package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/modelscout/internal/config"
	"github.com/davidbz/modelscout/internal/domain"
)

func writePurposesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "purposes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPurposes(t *testing.T) {
	t.Run("should return nothing when no file is configured", func(t *testing.T) {
		purposes, err := config.LoadPurposes(&config.CatalogConfig{})
		require.NoError(t, err)
		require.Empty(t, purposes)
	})

	t.Run("should load a full purpose definition", func(t *testing.T) {
		path := writePurposesFile(t, `
purposes:
  - name: support-bot
    preferred_tier: efficient
    weights:
      cost: 0.5
      quality: 0.3
      context: 0.2
    require:
      tools: true
      min_context_window: 32000
    exclude:
      tiers: [flagship]
      patterns: ["preview"]
`)

		purposes, err := config.LoadPurposes(&config.CatalogConfig{PurposesFile: path})

		require.NoError(t, err)
		require.Len(t, purposes, 1)

		p := purposes[0]
		require.Equal(t, "support-bot", p.Name)
		require.Equal(t, domain.TierEfficient, p.PreferredTier)
		require.InDelta(t, 0.5, p.Weights.Cost, 1e-9)
		require.NotNil(t, p.Require)
		require.True(t, p.Require.Tools)
		require.Equal(t, 32000, p.Require.MinContextWindow)
		require.NotNil(t, p.Exclude)
		require.Equal(t, []domain.CapabilityTier{domain.TierFlagship}, p.Exclude.Tiers)
		require.Equal(t, []string{"preview"}, p.Exclude.Patterns)
	})

	t.Run("should error on a missing configured file", func(t *testing.T) {
		_, err := config.LoadPurposes(&config.CatalogConfig{PurposesFile: "/no/such/file.yaml"})
		require.Error(t, err)
	})

	t.Run("should error on an unknown tier name", func(t *testing.T) {
		path := writePurposesFile(t, `
purposes:
  - name: broken
    preferred_tier: mega
`)

		_, err := config.LoadPurposes(&config.CatalogConfig{PurposesFile: path})

		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown capability tier")
	})

	t.Run("should error on negative weights", func(t *testing.T) {
		path := writePurposesFile(t, `
purposes:
  - name: broken
    preferred_tier: standard
    weights:
      cost: -1
`)

		_, err := config.LoadPurposes(&config.CatalogConfig{PurposesFile: path})
		require.Error(t, err)
	})

	t.Run("should error on a nameless purpose", func(t *testing.T) {
		path := writePurposesFile(t, `
purposes:
  - preferred_tier: standard
`)

		_, err := config.LoadPurposes(&config.CatalogConfig{PurposesFile: path})
		require.Error(t, err)
	})
}
