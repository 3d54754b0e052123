package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	rediscache "github.com/davidbz/modelscout/internal/cache/redis"
	"github.com/davidbz/modelscout/internal/catalog"
	"github.com/davidbz/modelscout/internal/config"
	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/httpserver"
	"github.com/davidbz/modelscout/internal/httpserver/middleware"
	"github.com/davidbz/modelscout/internal/observability"
	"github.com/davidbz/modelscout/internal/provider/openai"
	"github.com/davidbz/modelscout/internal/provider/registry"
	"github.com/davidbz/modelscout/internal/provider/static"
	"github.com/davidbz/modelscout/internal/recommend"
)

// ErrSourceNotConfigured indicates that a catalog source is not configured and should be skipped.
var ErrSourceNotConfigured = errors.New("catalog source not configured")

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *httpserver.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func() domain.EventPublisher {
		return observability.NewEventBus(slog.Default())
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Source Registry
	if err := container.Provide(func() domain.SourceRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// OpenAI Catalog Source
	if err := container.Provide(func(cfg *config.Config) (*openai.Source, error) {
		if cfg.OpenAI.APIKey == "" {
			return nil, ErrSourceNotConfigured
		}

		return openai.NewSource(cfg.OpenAI)
	}); err != nil {
		log.Fatalf("Failed to provide OpenAI source: %v", err)
	}

	// Register the built-in catalog unless disabled (invoked for side effects)
	if err := container.Invoke(func(reg domain.SourceRegistry, cfg *config.Config) error {
		if !cfg.Catalog.StaticSource {
			return nil
		}
		if err := reg.Register(context.Background(), static.NewSource()); err != nil {
			return fmt.Errorf("failed to register static source: %w", err)
		}
		return nil
	}); err != nil {
		log.Fatalf("Failed to register static source: %v", err)
	}

	// Register OpenAI if enabled
	if err := container.Invoke(func(reg domain.SourceRegistry, openaiSource *openai.Source) error {
		if openaiSource == nil {
			return nil
		}
		if err := reg.Register(context.Background(), openaiSource); err != nil {
			return fmt.Errorf("failed to register OpenAI source: %w", err)
		}
		return nil
	}); err != nil {
		// Ignore ErrSourceNotConfigured as it's expected for optional sources
		if !errors.Is(err, ErrSourceNotConfigured) {
			log.Fatalf("Failed to register sources: %v", err)
		}
	}

	// Catalog Cache (optional, Redis-backed)
	if err := container.Provide(func(cfg *config.Config) (domain.CatalogCache, error) {
		if cfg.Redis.Addr == "" {
			return nil, nil
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		return rediscache.NewCatalogCache(client, time.Duration(cfg.Redis.CacheTTL)*time.Second)
	}); err != nil {
		log.Fatalf("Failed to provide catalog cache: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(reg domain.SourceRegistry, c domain.CatalogCache) (domain.Catalog, error) {
		return catalog.NewService(reg, c)
	}); err != nil {
		log.Fatalf("Failed to provide catalog service: %v", err)
	}
	if err := container.Provide(func(cat domain.Catalog, cfg *config.Config, events domain.EventPublisher) (*recommend.Service, error) {
		purposes, err := config.LoadPurposes(&cfg.Catalog)
		if err != nil {
			return nil, err
		}
		return recommend.NewService(cat, purposes, events)
	}); err != nil {
		log.Fatalf("Failed to provide recommendation service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
