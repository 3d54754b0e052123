package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/modelscout/internal/catalog"
	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/provider/registry"
)

// mockSource is a mock implementation of CatalogSource for testing.
type mockSource struct {
	name   string
	models []domain.Model
	err    error
}

func (m *mockSource) Name() string {
	return m.name
}

func (m *mockSource) Models(_ context.Context) ([]domain.Model, error) {
	return m.models, m.err
}

// mockCache is a mock implementation of CatalogCache for testing.
type mockCache struct {
	snapshot []domain.Model
	present  bool
	getErr   error
	setErr   error
	sets     int
}

func (m *mockCache) Get(_ context.Context) ([]domain.Model, bool, error) {
	return m.snapshot, m.present, m.getErr
}

func (m *mockCache) Set(_ context.Context, models []domain.Model) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.snapshot = models
	m.present = true
	m.sets++
	return nil
}

func newRegistry(t *testing.T, sources ...domain.CatalogSource) domain.SourceRegistry {
	t.Helper()
	reg := registry.NewRegistry()
	for _, s := range sources {
		require.NoError(t, reg.Register(context.Background(), s))
	}
	return reg
}

func TestService_Models(t *testing.T) {
	ctx := context.Background()

	t.Run("should merge and sort models across sources", func(t *testing.T) {
		reg := newRegistry(t,
			&mockSource{name: "openai", models: []domain.Model{
				{ID: "gpt-4o-mini", Provider: "openai"},
				{ID: "gpt-4.1", Provider: "openai"},
			}},
			&mockSource{name: "static", models: []domain.Model{
				{ID: "claude-sonnet-4-5", Provider: "anthropic"},
			}},
		)
		service, err := catalog.NewService(reg, nil)
		require.NoError(t, err)

		models, err := service.Models(ctx)

		require.NoError(t, err)
		require.Len(t, models, 3)
		require.Equal(t, "claude-sonnet-4-5", models[0].ID)
		require.Equal(t, "gpt-4.1", models[1].ID)
		require.Equal(t, "gpt-4o-mini", models[2].ID)
	})

	t.Run("should deduplicate models reported by multiple sources", func(t *testing.T) {
		duplicate := domain.Model{ID: "gpt-4.1", Provider: "openai"}
		reg := newRegistry(t,
			&mockSource{name: "openai", models: []domain.Model{duplicate}},
			&mockSource{name: "static", models: []domain.Model{duplicate}},
		)
		service, err := catalog.NewService(reg, nil)
		require.NoError(t, err)

		models, err := service.Models(ctx)

		require.NoError(t, err)
		require.Len(t, models, 1)
	})

	t.Run("should skip a failing source and keep the rest", func(t *testing.T) {
		reg := newRegistry(t,
			&mockSource{name: "openai", err: errors.New("api down")},
			&mockSource{name: "static", models: []domain.Model{{ID: "m", Provider: "p"}}},
		)
		service, err := catalog.NewService(reg, nil)
		require.NoError(t, err)

		models, err := service.Models(ctx)

		require.NoError(t, err)
		require.Len(t, models, 1)
	})

	t.Run("should error when every source fails", func(t *testing.T) {
		reg := newRegistry(t, &mockSource{name: "openai", err: errors.New("api down")})
		service, err := catalog.NewService(reg, nil)
		require.NoError(t, err)

		_, err = service.Models(ctx)

		require.Error(t, err)
		require.Contains(t, err.Error(), "all catalog sources failed")
	})

	t.Run("should error when no sources are registered", func(t *testing.T) {
		service, err := catalog.NewService(registry.NewRegistry(), nil)
		require.NoError(t, err)

		_, err = service.Models(ctx)
		require.Error(t, err)
	})

	t.Run("should serve from cache when a snapshot is present", func(t *testing.T) {
		reg := newRegistry(t, &mockSource{name: "openai", err: errors.New("must not be called")})
		cache := &mockCache{snapshot: []domain.Model{{ID: "cached", Provider: "p"}}, present: true}
		service, err := catalog.NewService(reg, cache)
		require.NoError(t, err)

		models, err := service.Models(ctx)

		require.NoError(t, err)
		require.Len(t, models, 1)
		require.Equal(t, "cached", models[0].ID)
	})

	t.Run("should fill the cache after a fetch", func(t *testing.T) {
		reg := newRegistry(t, &mockSource{name: "static", models: []domain.Model{{ID: "m", Provider: "p"}}})
		cache := &mockCache{}
		service, err := catalog.NewService(reg, cache)
		require.NoError(t, err)

		_, err = service.Models(ctx)

		require.NoError(t, err)
		require.Equal(t, 1, cache.sets)
	})

	t.Run("should degrade to a direct fetch on cache errors", func(t *testing.T) {
		reg := newRegistry(t, &mockSource{name: "static", models: []domain.Model{{ID: "m", Provider: "p"}}})
		cache := &mockCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
		service, err := catalog.NewService(reg, cache)
		require.NoError(t, err)

		models, err := service.Models(ctx)

		require.NoError(t, err)
		require.Len(t, models, 1)
	})
}

func TestNewService(t *testing.T) {
	t.Run("should require a registry", func(t *testing.T) {
		_, err := catalog.NewService(nil, nil)
		require.Error(t, err)
	})
}
