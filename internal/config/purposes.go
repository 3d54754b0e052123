package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/modelscout/internal/domain"
)

// purposesFile is the YAML layout of an operator-defined purposes file.
type purposesFile struct {
	Purposes []purposeEntry `yaml:"purposes"`
}

type purposeEntry struct {
	Name          string        `yaml:"name"`
	PreferredTier string        `yaml:"preferred_tier"`
	Weights       weightsEntry  `yaml:"weights"`
	Require       *requireEntry `yaml:"require"`
	Exclude       *excludeEntry `yaml:"exclude"`
}

type weightsEntry struct {
	Cost    float64 `yaml:"cost"`
	Quality float64 `yaml:"quality"`
	Context float64 `yaml:"context"`
}

type requireEntry struct {
	Tools            bool `yaml:"tools"`
	MinContextWindow int  `yaml:"min_context_window"`
}

type excludeEntry struct {
	Tiers    []string `yaml:"tiers"`
	Patterns []string `yaml:"patterns"`
}

// LoadPurposes reads operator-defined purpose profiles from the configured
// YAML file. A missing path returns no purposes; a present but unreadable
// or invalid file is an error so a typo cannot silently drop policies.
func LoadPurposes(cfg *CatalogConfig) ([]domain.Purpose, error) {
	if cfg == nil || cfg.PurposesFile == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(cfg.PurposesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read purposes file: %w", err)
	}

	var file purposesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse purposes file: %w", err)
	}

	purposes := make([]domain.Purpose, 0, len(file.Purposes))
	for _, entry := range file.Purposes {
		purpose, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid purpose %q: %w", entry.Name, err)
		}
		purposes = append(purposes, purpose)
	}

	return purposes, nil
}

func (e purposeEntry) toDomain() (domain.Purpose, error) {
	if e.Name == "" {
		return domain.Purpose{}, fmt.Errorf("name is required")
	}
	if e.Weights.Cost < 0 || e.Weights.Quality < 0 || e.Weights.Context < 0 {
		return domain.Purpose{}, fmt.Errorf("weights must be non-negative")
	}

	tier, err := domain.ParseCapabilityTier(e.PreferredTier)
	if err != nil {
		return domain.Purpose{}, err
	}

	purpose := domain.Purpose{
		Name:          e.Name,
		PreferredTier: tier,
		Weights: domain.Weights{
			Cost:    e.Weights.Cost,
			Quality: e.Weights.Quality,
			Context: e.Weights.Context,
		},
	}

	if e.Require != nil {
		purpose.Require = &domain.Requirements{
			Tools:            e.Require.Tools,
			MinContextWindow: e.Require.MinContextWindow,
		}
	}

	if e.Exclude != nil {
		exclude := &domain.Exclusions{Patterns: e.Exclude.Patterns}
		for _, name := range e.Exclude.Tiers {
			excludedTier, parseErr := domain.ParseCapabilityTier(name)
			if parseErr != nil {
				return domain.Purpose{}, parseErr
			}
			exclude.Tiers = append(exclude.Tiers, excludedTier)
		}
		purpose.Exclude = exclude
	}

	return purpose, nil
}
