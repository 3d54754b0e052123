// Package openai provides a catalog source backed by the OpenAI API using
// the official SDK. It implements the domain.CatalogSource interface,
// converting the SDK's bare model listing into canonical records enriched
// with pricing, context window and capability metadata.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/observability"
)

const sourceName = "openai"

// Source implements the domain.CatalogSource interface for OpenAI.
type Source struct {
	client openai.Client
	name   string
}

// NewSource creates a new OpenAI catalog source.
func NewSource(config Config) (*Source, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Source{
		client: openai.NewClient(opts...),
		name:   sourceName,
	}, nil
}

// Name returns the provider identifier.
func (s *Source) Name() string {
	return s.name
}

// Models fetches the live model listing and converts it into canonical
// records.
func (s *Source) Models(ctx context.Context) ([]domain.Model, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("listing OpenAI models")

	page, err := s.client.Models.List(ctx)
	if err != nil {
		logger.Error("OpenAI model listing failed", zap.Error(err))
		return nil, fmt.Errorf("OpenAI model listing failed: %w", err)
	}

	models := make([]domain.Model, 0, len(page.Data))
	for _, m := range page.Data {
		models = append(models, toDomainModel(m.ID, m.Created))
	}

	logger.Debug("OpenAI model listing succeeded", zap.Int("models", len(models)))

	return models, nil
}

// toDomainModel converts one SDK listing entry into a canonical record,
// enriching it from the metadata table by longest matching ID prefix.
func toDomainModel(id string, created int64) domain.Model {
	model := domain.Model{
		ID:           id,
		Provider:     sourceName,
		DisplayName:  displayName(id),
		Capabilities: domain.Capabilities{Streaming: true},
	}

	if created > 0 {
		model.CreatedAt = time.Unix(created, 0).UTC()
	}

	if meta, ok := lookupMetadata(id); ok {
		if meta.InputPerMillion > 0 || meta.OutputPerMillion > 0 {
			model.Pricing = &domain.Pricing{
				InputPerMillion:  meta.InputPerMillion,
				OutputPerMillion: meta.OutputPerMillion,
			}
		}
		model.ContextWindow = meta.ContextWindow
		model.Capabilities = meta.Capabilities
	}

	model.InputModalities = []string{"text"}
	model.OutputModalities = []string{"text"}
	for _, prefix := range imageModels {
		if strings.HasPrefix(id, prefix) {
			model.OutputModalities = []string{"image"}
			break
		}
	}

	return model
}

// lookupMetadata finds the longest metadata prefix matching the ID.
func lookupMetadata(id string) (modelMetadata, bool) {
	var (
		best      modelMetadata
		bestLen   int
		bestFound bool
	)

	for prefix, meta := range knownModels {
		if strings.HasPrefix(id, prefix) && len(prefix) > bestLen {
			best = meta
			bestLen = len(prefix)
			bestFound = true
		}
	}

	return best, bestFound
}

// displayName derives a readable name from a model ID, e.g.
// "gpt-4o-mini" becomes "GPT 4o Mini".
func displayName(id string) string {
	parts := strings.Split(id, "-")
	for i, part := range parts {
		switch {
		case part == "gpt":
			parts[i] = "GPT"
		case part == "":
		default:
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
