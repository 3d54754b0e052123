package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/modelscout/internal/domain"
	"github.com/davidbz/modelscout/internal/httpserver"
	"github.com/davidbz/modelscout/internal/recommend"
)

// mockCatalog is a mock implementation of domain.Catalog for testing.
type mockCatalog struct {
	models []domain.Model
	err    error
}

func (m *mockCatalog) Models(_ context.Context) ([]domain.Model, error) {
	return m.models, m.err
}

func testModels() []domain.Model {
	return []domain.Model{
		{
			ID:            "atlas-mini",
			Provider:      "openai",
			DisplayName:   "Atlas Mini",
			Pricing:       &domain.Pricing{InputPerMillion: 0.15, OutputPerMillion: 0.6},
			ContextWindow: 128000,
			Capabilities:  domain.Capabilities{Tools: true, Streaming: true},
		},
		{
			ID:            "borealis-opus",
			Provider:      "anthropic",
			DisplayName:   "Borealis Opus",
			Pricing:       &domain.Pricing{InputPerMillion: 15, OutputPerMillion: 75},
			ContextWindow: 200000,
			Capabilities:  domain.Capabilities{Tools: true, Vision: true, Streaming: true},
		},
	}
}

func newHandler(t *testing.T, catalog domain.Catalog) *httpserver.Handler {
	t.Helper()
	advisor, err := recommend.NewService(catalog, nil, nil)
	require.NoError(t, err)
	return httpserver.NewHandler(advisor)
}

func TestHandleModels(t *testing.T) {
	t.Run("should serve the classified catalog", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{models: testModels()})

		req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
		w := httptest.NewRecorder()

		handler.HandleModels(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response struct {
			Data []struct {
				ID             string `json:"id"`
				Tier           string `json:"tier"`
				CostTier       string `json:"cost_tier"`
				ContextDisplay string `json:"context_display"`
				Pricing        *struct {
					Display string `json:"display"`
				} `json:"pricing"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Data, 2)

		require.Equal(t, "atlas-mini", response.Data[0].ID)
		require.Equal(t, "efficient", response.Data[0].Tier)
		require.Equal(t, "budget", response.Data[0].CostTier)
		require.Equal(t, "128K", response.Data[0].ContextDisplay)
		require.NotNil(t, response.Data[0].Pricing)
		require.Equal(t, "$0.15/M", response.Data[0].Pricing.Display)
	})

	t.Run("should reject non-GET methods", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{models: testModels()})

		req := httptest.NewRequest(http.MethodPost, "/v1/models", nil)
		w := httptest.NewRecorder()

		handler.HandleModels(w, req)

		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandleRecommend(t *testing.T) {
	t.Run("should recommend for a named purpose", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{models: testModels()})

		body, err := json.Marshal(map[string]interface{}{"purpose": "cheap", "count": 1})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleRecommend(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Purpose string `json:"purpose"`
			Data    []struct {
				Rank  int     `json:"rank"`
				Score float64 `json:"score"`
				ID    string  `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Equal(t, "cheap", response.Purpose)
		require.Len(t, response.Data, 1)
		require.Equal(t, 1, response.Data[0].Rank)
		require.Equal(t, "atlas-mini", response.Data[0].ID)
	})

	t.Run("should recommend for an ad-hoc profile", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{models: testModels()})

		body, err := json.Marshal(map[string]interface{}{
			"profile": map[string]interface{}{
				"preferred_tier": "flagship",
				"weights":        map[string]float64{"quality": 1},
			},
			"count": 1,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleRecommend(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Purpose string `json:"purpose"`
			Data    []struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Equal(t, "ad-hoc", response.Purpose)
		require.Len(t, response.Data, 1)
		require.Equal(t, "borealis-opus", response.Data[0].ID)
	})

	t.Run("should reject an unknown purpose", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{models: testModels()})

		body := []byte(`{"purpose":"no-such-purpose"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleRecommend(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "unknown purpose")
	})

	t.Run("should reject a body with neither purpose nor profile", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{models: testModels()})

		req := httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()

		handler.HandleRecommend(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject a body with both purpose and profile", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{models: testModels()})

		body := []byte(`{"purpose":"cheap","profile":{"preferred_tier":"efficient"}}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleRecommend(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject invalid JSON", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{models: testModels()})

		req := httptest.NewRequest(http.MethodPost, "/v1/recommend", bytes.NewReader([]byte(`{`)))
		w := httptest.NewRecorder()

		handler.HandleRecommend(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandlePurposes(t *testing.T) {
	t.Run("should list purposes sorted", func(t *testing.T) {
		handler := newHandler(t, &mockCatalog{})

		req := httptest.NewRequest(http.MethodGet, "/v1/purposes", nil)
		w := httptest.NewRecorder()

		handler.HandlePurposes(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Purposes []string `json:"purposes"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Contains(t, response.Purposes, "cheap")
		require.Contains(t, response.Purposes, "quality")
		require.IsIncreasing(t, response.Purposes)
	})
}

func TestHandleHealth(t *testing.T) {
	handler := newHandler(t, &mockCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.HandleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "ok")
}
