package recommend

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/observability"
)

// defaultCount is how many recommendations a request gets when it does not
// say how many it wants.
const defaultCount = 3

// Service orchestrates recommendation requests: it resolves purpose names,
// pulls the catalog, and runs the engine.
type Service struct {
	catalog  domain.Catalog
	purposes map[string]domain.Purpose
	events   domain.EventPublisher
}

// NewService creates a new recommendation service (DI constructor).
// Extra purposes supplement the built-in registry for name resolution;
// they cannot shadow built-in names.
func NewService(catalog domain.Catalog, extraPurposes []domain.Purpose, events domain.EventPublisher) (*Service, error) {
	purposes := make(map[string]domain.Purpose, len(extraPurposes))
	for _, p := range extraPurposes {
		if p.Name == "" {
			return nil, errors.New("purpose name cannot be empty")
		}
		if _, err := domain.PurposeFor(p.Name); err == nil {
			return nil, fmt.Errorf("purpose %q shadows a built-in purpose", p.Name)
		}
		if _, exists := purposes[p.Name]; exists {
			return nil, fmt.Errorf("purpose %q configured twice", p.Name)
		}
		purposes[p.Name] = p
	}

	return &Service{
		catalog:  catalog,
		purposes: purposes,
		events:   events,
	}, nil
}

// ResolvePurpose returns the purpose registered under name, checking
// built-ins first and configured purposes second.
func (s *Service) ResolvePurpose(name string) (domain.Purpose, error) {
	if purpose, err := domain.PurposeFor(name); err == nil {
		return purpose, nil
	}
	if purpose, ok := s.purposes[name]; ok {
		return purpose, nil
	}
	return domain.Purpose{}, fmt.Errorf("%w: %q", domain.ErrUnknownPurpose, name)
}

// PurposeNames returns all resolvable purpose names, built-in and
// configured.
func (s *Service) PurposeNames() []string {
	names := domain.PurposeNames()
	for name := range s.purposes {
		names = append(names, name)
	}
	return names
}

// RecommendByName recommends models for a named purpose.
func (s *Service) RecommendByName(ctx context.Context, purposeName string, opts RecommendOptions) ([]domain.ScoredModel, error) {
	purpose, err := s.ResolvePurpose(purposeName)
	if err != nil {
		return nil, err
	}
	return s.RecommendForPurpose(ctx, purpose, opts)
}

// RecommendForPurpose recommends models for an ad-hoc purpose profile.
func (s *Service) RecommendForPurpose(ctx context.Context, purpose domain.Purpose, opts RecommendOptions) ([]domain.ScoredModel, error) {
	if opts.Count <= 0 {
		opts.Count = defaultCount
	}

	models, err := s.catalog.Models(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	result := Recommend(models, purpose, opts)

	logger := observability.FromContext(ctx)
	logger.Info("recommendation served",
		zap.String("purpose", purpose.Name),
		zap.Int("candidates", len(models)),
		zap.Int("returned", len(result)),
	)

	if s.events != nil {
		s.events.Publish(ctx, "recommendation.served", map[string]interface{}{
			"purpose":    purpose.Name,
			"candidates": len(models),
			"returned":   len(result),
		})
	}

	return result, nil
}

// Models returns the full catalog, for callers that want the raw list.
func (s *Service) Models(ctx context.Context) ([]domain.Model, error) {
	models, err := s.catalog.Models(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return models, nil
}
