package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"go.uber.org/zap"

	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/format"
	"github.com/davidbz/modelscout/internal/observability"
	"github.com/davidbz/modelscout/internal/recommend"
)

// Handler handles HTTP requests.
type Handler struct {
	advisor *recommend.Service
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(advisor *recommend.Service) *Handler {
	return &Handler{
		advisor: advisor,
	}
}

// modelPayload is the wire form of one catalog entry, combining the raw
// record with its classification and display strings.
type modelPayload struct {
	ID              string                `json:"id"`
	Provider        string                `json:"provider"`
	ProviderDisplay string                `json:"provider_display"`
	DisplayName     string                `json:"display_name"`
	Tier            domain.CapabilityTier `json:"tier"`
	CostTier        domain.CostTier       `json:"cost_tier"`
	ContextWindow   int                   `json:"context_window,omitempty"`
	ContextDisplay  string                `json:"context_display"`
	Pricing         *pricingPayload       `json:"pricing,omitempty"`
	Capabilities    domain.Capabilities   `json:"capabilities"`
}

type pricingPayload struct {
	InputPerMillion  float64 `json:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million"`
	Display          string  `json:"display"`
}

// recommendationPayload is one ranked recommendation.
type recommendationPayload struct {
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
	modelPayload
}

// recommendRequest is the POST /v1/recommend body. Either Purpose (a
// registered name) or Profile (an ad-hoc policy) must be set, not both.
type recommendRequest struct {
	Purpose        string          `json:"purpose,omitempty"`
	Profile        *domain.Purpose `json:"profile,omitempty"`
	Count          int             `json:"count,omitempty"`
	IncludeNonText bool            `json:"include_non_text,omitempty"`
}

// HandleModels serves the classified catalog.
func (h *Handler) HandleModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	models, err := h.advisor.Models(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("catalog listing failed", zap.Error(err))
		http.Error(w, "failed to load catalog", http.StatusBadGateway)
		return
	}

	payload := make([]modelPayload, 0, len(models))
	for _, m := range models {
		payload = append(payload, toModelPayload(m))
	}

	writeJSON(ctx, w, map[string]interface{}{"data": payload})
}

// HandleRecommend serves purpose-driven recommendations.
func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	purpose, err := h.resolvePurpose(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Inject purpose into context for downstream logging.
	ctx = observability.WithPurpose(ctx, purpose.Name)

	opts := recommend.RecommendOptions{
		Count:          req.Count,
		IncludeNonText: req.IncludeNonText,
	}

	result, err := h.advisor.RecommendForPurpose(ctx, purpose, opts)
	if err != nil {
		observability.FromContext(ctx).Error("recommendation failed", zap.Error(err))
		http.Error(w, "recommendation failed", http.StatusBadGateway)
		return
	}

	payload := make([]recommendationPayload, 0, len(result))
	for i, s := range result {
		payload = append(payload, recommendationPayload{
			Rank:         i + 1,
			Score:        s.Score,
			modelPayload: toModelPayload(s.Model),
		})
	}

	writeJSON(ctx, w, map[string]interface{}{
		"purpose": purpose.Name,
		"data":    payload,
	})
}

// HandlePurposes lists all resolvable purpose names.
func (h *Handler) HandlePurposes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names := h.advisor.PurposeNames()
	sort.Strings(names)

	writeJSON(r.Context(), w, map[string]interface{}{"purposes": names})
}

// HandleHealth serves liveness checks.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, map[string]string{"status": "ok"})
}

func (h *Handler) resolvePurpose(req recommendRequest) (domain.Purpose, error) {
	switch {
	case req.Purpose != "" && req.Profile != nil:
		return domain.Purpose{}, errors.New("purpose and profile are mutually exclusive")
	case req.Profile != nil:
		return validateProfile(*req.Profile)
	case req.Purpose != "":
		return h.advisor.ResolvePurpose(req.Purpose)
	default:
		return domain.Purpose{}, errors.New("either purpose or profile is required")
	}
}

func validateProfile(profile domain.Purpose) (domain.Purpose, error) {
	if profile.Weights.Cost < 0 || profile.Weights.Quality < 0 || profile.Weights.Context < 0 {
		return domain.Purpose{}, errors.New("profile weights must be non-negative")
	}
	if profile.Name == "" {
		profile.Name = "ad-hoc"
	}
	return profile, nil
}

func toModelPayload(m domain.Model) modelPayload {
	payload := modelPayload{
		ID:              m.ID,
		Provider:        m.Provider,
		ProviderDisplay: format.Provider(m.Provider),
		DisplayName:     m.DisplayName,
		Tier:            recommend.ClassifyTier(m),
		CostTier:        recommend.ClassifyCostTier(m),
		ContextWindow:   m.ContextWindow,
		ContextDisplay:  format.ContextWindow(m.ContextWindow),
		Capabilities:    m.Capabilities,
	}

	if m.Pricing != nil {
		payload.Pricing = &pricingPayload{
			InputPerMillion:  m.Pricing.InputPerMillion,
			OutputPerMillion: m.Pricing.OutputPerMillion,
			Display:          format.Price(m.Pricing.InputPerMillion),
		}
	}

	return payload
}

func writeJSON(ctx context.Context, w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(err))
	}
}
