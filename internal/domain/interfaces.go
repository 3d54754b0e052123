package domain

import "context"

// CatalogSource provides model records from one provider.
type CatalogSource interface {
	// Name returns the provider identifier.
	Name() string

	// Models returns the provider's canonical model records.
	Models(ctx context.Context) ([]Model, error)
}

// SourceRegistry manages available catalog sources.
type SourceRegistry interface {
	// Register adds a source to the registry.
	Register(ctx context.Context, source CatalogSource) error

	// Get retrieves a source by name.
	Get(ctx context.Context, sourceName string) (CatalogSource, error)

	// List returns all registered source names.
	List(ctx context.Context) ([]string, error)
}

// Catalog provides the merged model catalog across all sources.
type Catalog interface {
	// Models returns the full catalog.
	Models(ctx context.Context) ([]Model, error)
}

// CatalogCache caches a catalog snapshot between fetches.
type CatalogCache interface {
	// Get returns the cached snapshot, reporting whether one was present.
	Get(ctx context.Context) ([]Model, bool, error)

	// Set stores a snapshot.
	Set(ctx context.Context, models []Model) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
