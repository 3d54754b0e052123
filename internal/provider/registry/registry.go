package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davidbz/modelscout/internal/domain"
)

// Registry implements the SourceRegistry interface.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]domain.CatalogSource
}

// NewRegistry creates a new catalog source registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:      sync.RWMutex{},
		sources: make(map[string]domain.CatalogSource),
	}
}

// Register adds a source to the registry.
func (r *Registry) Register(_ context.Context, source domain.CatalogSource) error {
	if source == nil {
		return errors.New("source cannot be nil")
	}

	name := source.Name()
	if name == "" {
		return errors.New("source name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sources[name]; exists {
		return fmt.Errorf("source %s already registered", name)
	}

	r.sources[name] = source

	return nil
}

// Get retrieves a source by name.
func (r *Registry) Get(_ context.Context, sourceName string) (domain.CatalogSource, error) {
	if sourceName == "" {
		return nil, errors.New("source name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	source, exists := r.sources[sourceName]
	if !exists {
		return nil, fmt.Errorf("source %s not found", sourceName)
	}

	return source, nil
}

// List returns all registered source names.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}

	return names, nil
}
