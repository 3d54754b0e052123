// Package catalog merges all registered catalog sources into one model
// list, with an optional snapshot cache in front of the provider APIs.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/observability"
)

// Service implements the domain.Catalog interface.
type Service struct {
	registry domain.SourceRegistry
	cache    domain.CatalogCache // optional
}

// NewService creates a new catalog service (DI constructor). The cache may
// be nil, in which case every call fetches from the sources.
func NewService(registry domain.SourceRegistry, cache domain.CatalogCache) (*Service, error) {
	if registry == nil {
		return nil, errors.New("source registry cannot be nil")
	}

	return &Service{
		registry: registry,
		cache:    cache,
	}, nil
}

// Models returns the merged catalog across all sources, deduplicated by
// provider and ID, sorted by provider then ID for stable output. Cache
// failures degrade to a direct fetch and are never fatal.
func (s *Service) Models(ctx context.Context) ([]domain.Model, error) {
	logger := observability.FromContext(ctx)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.Warn("catalog cache read failed", zap.Error(err))
		} else if ok {
			logger.Debug("catalog served from cache", zap.Int("models", len(cached)))
			return cached, nil
		}
	}

	models, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, models); err != nil {
			logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return models, nil
}

// fetch pulls every source and merges the results. A failing source is
// skipped with a warning rather than failing the whole catalog; only all
// sources failing is an error.
func (s *Service) fetch(ctx context.Context) ([]domain.Model, error) {
	logger := observability.FromContext(ctx)

	names, err := s.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog sources: %w", err)
	}
	if len(names) == 0 {
		return nil, errors.New("no catalog sources registered")
	}

	var merged []domain.Model
	seen := make(map[string]bool)
	failed := 0

	for _, name := range names {
		source, getErr := s.registry.Get(ctx, name)
		if getErr != nil {
			failed++
			continue
		}

		models, listErr := source.Models(ctx)
		if listErr != nil {
			logger.Warn("catalog source failed",
				zap.String("source", name),
				zap.Error(listErr),
			)
			failed++
			continue
		}

		for _, m := range models {
			key := m.Provider + "/" + m.ID
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, m)
		}
	}

	if failed == len(names) {
		return nil, errors.New("all catalog sources failed")
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Provider != merged[j].Provider {
			return merged[i].Provider < merged[j].Provider
		}
		return merged[i].ID < merged[j].ID
	})

	return merged, nil
}
