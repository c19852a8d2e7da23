package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-seo-keywords/internal/cache"
	middlewares "github.com/prefeitura-rio/app-seo-keywords/internal/middleware"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	err      error
	received *models.OpportunitiesRequest
}

func (f *fakeRunner) Run(_ context.Context, req *models.OpportunitiesRequest) (*models.OpportunitiesResponse, error) {
	f.received = req
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.OpportunitiesResponse{
		Opportunities:      []models.Opportunity{{OpportunityCandidate: models.OpportunityCandidate{Keyword: "car wash austin"}}},
		TotalOpportunities: 1,
		CacheKey:           "k",
	}, nil
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("down") }

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(runner OpportunityRunner, inspector CacheInspector) *gin.Engine {
	h := NewOpportunitiesHandler(runner, inspector)
	r := gin.New()
	r.Use(middlewares.ExtractUserContext())
	r.POST("/api/v1/opportunities", h.GenerateOpportunities)
	r.GET("/api/v1/opportunities/cache", h.GetCachedOpportunities)
	return r
}

func post(r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/opportunities", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"businessProfile":{"businessType":"Car Wash","location":"Austin, TX","websiteUrl":"https://example.com"},"performanceRows":[]}`

func TestGenerateOpportunitiesOK(t *testing.T) {
	runner := &fakeRunner{}
	w := post(newRouter(runner, nil), validBody, map[string]string{middlewares.UserIDHeader: "user-1"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OpportunitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalOpportunities)
	assert.Equal(t, "car wash austin", resp.Opportunities[0].Keyword)
	assert.Equal(t, "user-1", runner.received.UserID)
}

func TestGenerateOpportunitiesBodyUserIDWins(t *testing.T) {
	runner := &fakeRunner{}
	body := `{"userId":"from-body","businessProfile":{"businessType":"Car Wash","location":"Austin, TX"}}`
	w := post(newRouter(runner, nil), body, map[string]string{middlewares.UserIDHeader: "from-header"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "from-body", runner.received.UserID)
}

func TestGenerateOpportunitiesMalformedJSON(t *testing.T) {
	w := post(newRouter(&fakeRunner{}, nil), `{"businessProfile":`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Requisição inválida")
}

func TestGenerateOpportunitiesValidationDetails(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"sem perfil", `{"performanceRows":[]}`, "businessProfile"},
		{"sem localização", `{"businessProfile":{"businessType":"Car Wash"}}`, "businessProfile.location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newRouter(&fakeRunner{}, nil), tt.body, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Details, tt.wantField)
		})
	}
}

func TestGenerateOpportunitiesInternalError(t *testing.T) {
	w := post(newRouter(&fakeRunner{err: errors.New("boom: segredo interno")}, nil), validBody, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "segredo")
}

func TestGetCachedOpportunities(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rc := cache.NewResultCache(cache.NewMemoryStore(10), 0, func() time.Time { return now })

	profile := models.BusinessProfile{BusinessType: "Car Wash", Location: "Austin, TX", WebsiteURL: "https://example.com"}
	key := cache.BuildKey("user-1", profile)
	rc.Save(context.Background(), &models.CacheEntry{
		Key:           key,
		Opportunities: make([]models.Opportunity, 3),
		Timestamp:     now.Add(-3 * time.Hour).UnixMilli(),
	})

	r := newRouter(&fakeRunner{}, rc)

	t.Run("por perfil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/cache?businessType=Car+Wash&websiteUrl=https://example.com", nil)
		req.Header.Set(middlewares.UserIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp CacheStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, key, resp.Key)
		assert.True(t, resp.Fresh)
		assert.InDelta(t, 3.0, resp.CacheAgeHours, 0.001)
		assert.Equal(t, 3, resp.TotalOpportunities)
	})

	t.Run("por chave", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/cache?key="+key, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("inexistente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/cache?key=nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("sem parâmetros", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/cache", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetCachedOpportunitiesWithoutCache(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities/cache?key=x", nil)
	w := httptest.NewRecorder()
	newRouter(&fakeRunner{}, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		gemini     bool
		wantStatus int
		wantChecks map[string]string
	}{
		{
			name:       "cache ok",
			pinger:     cache.NewMemoryStore(1),
			gemini:     true,
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{"cache": "ok", "gemini": "configured"},
		},
		{
			name:       "cache fora",
			pinger:     failingPinger{},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"cache": "failed", "gemini": "disabled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.pinger, tt.gemini)
			r := gin.New()
			r.GET("/readiness", h.Readiness)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readiness", nil))

			require.Equal(t, tt.wantStatus, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantChecks, resp.Checks)
		})
	}
}

func TestLiveness(t *testing.T) {
	r := gin.New()
	r.GET("/liveness", NewHealthHandler(nil, false).Liveness)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/liveness", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alive")
}
