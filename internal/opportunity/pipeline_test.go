package opportunity

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-seo-keywords/internal/cache"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/prefeitura-rio/app-seo-keywords/internal/opportunity/generator"
	"github.com/prefeitura-rio/app-seo-keywords/internal/siteanalysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

type fakeAnalyzer struct {
	analysis *siteanalysis.SiteAnalysis
	err      error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, url string) (*siteanalysis.SiteAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

type staticGenerator struct {
	name       string
	candidates []models.OpportunityCandidate
}

func (g staticGenerator) Name() string { return g.name }

func (g staticGenerator) Generate(context.Context, generator.Input) []models.OpportunityCandidate {
	return g.candidates
}

type panicGenerator struct{}

func (panicGenerator) Name() string { return "panic" }

func (panicGenerator) Generate(context.Context, generator.Input) []models.OpportunityCandidate {
	panic("boom")
}

func fixedClock() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func request(rows ...models.PerformanceRow) *models.OpportunitiesRequest {
	profile := austinProfile
	return &models.OpportunitiesRequest{
		PerformanceRows: rows,
		BusinessProfile: &profile,
		UserID:          "user-1",
	}
}

func opportunityKeywords(opps []models.Opportunity) []string {
	out := make([]string, len(opps))
	for i, o := range opps {
		out[i] = o.Keyword
	}
	return out
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestEngineInvalidJSONReturnsFallback(t *testing.T) {
	llm := &fakeLLM{response: "I think these keywords are great: car wash, detailing"}
	engine := NewEngine([]generator.SignalGenerator{generator.NewAIGenerator(llm)}, nil, nil, nil, EngineConfig{})

	resp, err := engine.Run(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, []string{"car wash austin", "best car wash near me", "affordable car wash"}, opportunityKeywords(resp.Opportunities))
	assert.Equal(t, 3, resp.TotalOpportunities)
	assert.False(t, resp.FromCache)
	assert.Nil(t, resp.CacheAgeHours)
}

func TestEngineNeverEmpty(t *testing.T) {
	tests := []struct {
		name       string
		generators []generator.SignalGenerator
		rows       []models.PerformanceRow
	}{
		{name: "Sem geradores", generators: nil},
		{name: "Geradores vazios", generators: []generator.SignalGenerator{staticGenerator{name: "empty"}}},
		{name: "Gerador com pânico", generators: []generator.SignalGenerator{panicGenerator{}}},
		{
			name:       "Tudo filtrado",
			generators: []generator.SignalGenerator{staticGenerator{name: "one", candidates: []models.OpportunityCandidate{candidate("car wash austin", 8)}}},
			rows: []models.PerformanceRow{
				{Keyword: "car wash austin", Page: "https://example.com/"},
				{Keyword: "best car wash near me", Page: "https://example.com/"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(tt.generators, nil, nil, nil, EngineConfig{})

			resp, err := engine.Run(context.Background(), request(tt.rows...))

			require.NoError(t, err)
			require.NotEmpty(t, resp.Opportunities)
			existing := models.ExistingKeywords(tt.rows)
			for _, o := range resp.Opportunities {
				assert.NotContains(t, existing, strings.ToLower(o.Keyword))
			}
		})
	}
}

func TestEngineFiltersExactDuplicate(t *testing.T) {
	gen := staticGenerator{name: "static", candidates: []models.OpportunityCandidate{
		candidate("Mobile Detailing", 9),
		candidate("ceramic coating", 7),
	}}
	engine := NewEngine([]generator.SignalGenerator{gen}, nil, nil, nil, EngineConfig{})

	resp, err := engine.Run(context.Background(), request(models.PerformanceRow{Keyword: "mobile detailing", Page: "https://example.com/detailing"}))

	require.NoError(t, err)
	assert.Equal(t, []string{"ceramic coating"}, opportunityKeywords(resp.Opportunities))
}

func TestEngineSortsAndCaps(t *testing.T) {
	engine := NewEngine(
		[]generator.SignalGenerator{generator.NewRuleBasedGenerator(fixedClock)},
		nil, nil, nil,
		EngineConfig{MaxOpportunities: 3},
	)

	resp, err := engine.Run(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, []string{"car wash near me", "best car wash austin", "car wash trends"}, opportunityKeywords(resp.Opportunities))
	// A estratégia usa a lista completa, antes do corte
	assert.Len(t, resp.HubAndSpokeStrategy.OpportunitiesByPage[models.NewContentPage], 5)
}

func TestEngineCacheIdempotence(t *testing.T) {
	now := fixedClock()
	clock := func() time.Time { return now }

	llm := &fakeLLM{response: `[{"keyword": "ceramic coating austin", "category": "service_based", "priority": 9, "contentIdea": "Coating page"}]`}
	resultCache := cache.NewResultCache(cache.NewMemoryStore(10), 0, clock)
	engine := NewEngine(
		[]generator.SignalGenerator{generator.NewRuleBasedGenerator(clock), generator.NewAIGenerator(llm)},
		nil, nil, resultCache, EngineConfig{},
	).WithClock(clock)

	rows := []models.PerformanceRow{
		{Keyword: "car wash", Page: "https://example.com/", Position: 3, Impressions: 200, Clicks: 20, CTR: "10%"},
		{Keyword: "car wash", Page: "https://example.com/blog", Position: 18, Impressions: 40, Clicks: 1, CTR: "2.5%"},
	}

	first, err := engine.Run(context.Background(), request(rows...))
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	now = now.Add(3 * time.Hour)
	second, err := engine.Run(context.Background(), request(rows...))
	require.NoError(t, err)

	assert.True(t, second.FromCache)
	require.NotNil(t, second.CacheAgeHours)
	assert.Equal(t, 3.0, *second.CacheAgeHours)
	assert.Equal(t, mustJSON(t, first.Opportunities), mustJSON(t, second.Opportunities))
	assert.Equal(t, mustJSON(t, first.CannibalizationAnalysis), mustJSON(t, second.CannibalizationAnalysis))
	assert.Equal(t, mustJSON(t, first.HubAndSpokeStrategy), mustJSON(t, second.HubAndSpokeStrategy))
	assert.Equal(t, first.GeneratedAt, second.GeneratedAt)
	assert.Len(t, llm.prompts, 1)

	// Depois do TTL o pipeline roda de novo
	now = now.Add(cache.DefaultTTL)
	third, err := engine.Run(context.Background(), request(rows...))
	require.NoError(t, err)
	assert.False(t, third.FromCache)
	assert.Len(t, llm.prompts, 2)
}

func TestEngineForceRefresh(t *testing.T) {
	llm := &fakeLLM{err: errors.New("offline")}
	resultCache := cache.NewResultCache(cache.NewMemoryStore(10), 0, nil)
	engine := NewEngine([]generator.SignalGenerator{generator.NewAIGenerator(llm)}, nil, nil, resultCache, EngineConfig{})

	_, err := engine.Run(context.Background(), request())
	require.NoError(t, err)

	req := request()
	req.ForceRefresh = true
	resp, err := engine.Run(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.FromCache)
	assert.Len(t, llm.prompts, 2)
	assert.Equal(t, "user-1_Car_Wash_example_com", resp.CacheKey)
}

func TestEngineExplicitCacheKey(t *testing.T) {
	resultCache := cache.NewResultCache(cache.NewMemoryStore(10), 0, nil)
	engine := NewEngine(nil, nil, nil, resultCache, EngineConfig{})

	req := request()
	req.CacheKey = "custom-key"
	resp, err := engine.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "custom-key", resp.CacheKey)

	entry, ok := resultCache.Lookup(context.Background(), "custom-key")
	require.True(t, ok)
	assert.Equal(t, "custom-key", entry.Key)
}

func TestEngineInvalidRequest(t *testing.T) {
	engine := NewEngine(nil, nil, nil, nil, EngineConfig{})

	_, err := engine.Run(context.Background(), &models.OpportunitiesRequest{})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = engine.Run(context.Background(), &models.OpportunitiesRequest{
		BusinessProfile: &models.BusinessProfile{BusinessType: "Car Wash"},
	})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestEngineHubSelection(t *testing.T) {
	engine := NewEngine(
		[]generator.SignalGenerator{generator.NewRuleBasedGenerator(fixedClock)},
		nil, nil, nil, EngineConfig{},
	)

	resp, err := engine.Run(context.Background(), request(
		models.PerformanceRow{Keyword: "sparkle wash", Page: "https://site.com/", Position: 1.2, Impressions: 80, CTR: "12%"},
		models.PerformanceRow{Keyword: "premium wash package", Page: "https://site.com/services", Position: 6, Impressions: 40, CTR: "5%"},
	))
	require.NoError(t, err)

	strategy := resp.HubAndSpokeStrategy
	require.NotNil(t, strategy.Hub)
	assert.Equal(t, "https://site.com/", strategy.Hub.Page)

	var services *models.SpokePlan
	for i := range strategy.Spokes {
		assert.NotEqual(t, strategy.Hub.Page, strategy.Spokes[i].Page)
		if strategy.Spokes[i].Page == "https://site.com/services" {
			services = &strategy.Spokes[i]
		}
	}
	require.NotNil(t, services)
	assert.Equal(t, models.PageTypeService, services.Type)
	assert.Equal(t, models.RecommendationOptimizeHub, strategy.Recommendations[0].Type)
}

func TestEngineDetectsCannibalization(t *testing.T) {
	engine := NewEngine(nil, nil, nil, nil, EngineConfig{})

	resp, err := engine.Run(context.Background(), request(
		models.PerformanceRow{Keyword: "oil change", Page: "/a", Position: 15},
		models.PerformanceRow{Keyword: "Oil Change", Page: "/b", Position: 2},
	))
	require.NoError(t, err)

	analysis := resp.CannibalizationAnalysis
	require.Len(t, analysis.Groups, 1)
	assert.Equal(t, "/b", analysis.Groups[0].PrimaryPage)
	assert.Equal(t, []string{"/a"}, analysis.PrimaryPageAssignments["oil change"].RemoveFrom)
}

func TestEngineSiteAnalysisFeedsAIGenerator(t *testing.T) {
	llm := &fakeLLM{response: "[]"}
	analyzer := &fakeAnalyzer{analysis: &siteanalysis.SiteAnalysis{
		URL:   "https://example.com",
		Title: "Sparkle Car Wash | Austin",
	}}
	engine := NewEngine([]generator.SignalGenerator{generator.NewAIGenerator(llm)}, analyzer, nil, nil, EngineConfig{})

	_, err := engine.Run(context.Background(), request())
	require.NoError(t, err)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Sparkle Car Wash | Austin")
}

func TestEngineSiteAnalysisFailureDegrades(t *testing.T) {
	llm := &fakeLLM{response: `[{"keyword": "touchless car wash", "category": "service_based", "priority": 7}]`}
	analyzer := &fakeAnalyzer{err: siteanalysis.ErrNonHTMLContent}
	engine := NewEngine([]generator.SignalGenerator{generator.NewAIGenerator(llm)}, analyzer, nil, nil, EngineConfig{})

	resp, err := engine.Run(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, []string{"touchless car wash"}, opportunityKeywords(resp.Opportunities))
	assert.NotContains(t, llm.prompts[0], "Website content")
}

func TestEngineUsesRecommendationProvider(t *testing.T) {
	gen := staticGenerator{name: "static", candidates: []models.OpportunityCandidate{candidate("ceramic coating", 7)}}
	provider := &fakeProvider{items: map[string][]string{"ceramic coating": {"Publish a coating page"}}}
	engine := NewEngine([]generator.SignalGenerator{gen}, nil, provider, nil, EngineConfig{})

	resp, err := engine.Run(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, []string{"Publish a coating page"}, resp.Opportunities[0].ActionItems)
}

func TestEngineExcludeLowPerforming(t *testing.T) {
	gen := staticGenerator{name: "static", candidates: []models.OpportunityCandidate{
		candidate("wax service", 9),
		candidate("interior cleaning", 5),
	}}
	rows := []models.PerformanceRow{{Keyword: "wax", Page: "/wax", CTR: "0.4%", Impressions: 90}}

	withExclusion := NewEngine([]generator.SignalGenerator{gen}, nil, nil, nil, EngineConfig{ExcludeLowPerforming: true})
	resp, err := withExclusion.Run(context.Background(), request(rows...))
	require.NoError(t, err)
	assert.Equal(t, []string{"interior cleaning"}, opportunityKeywords(resp.Opportunities))

	without := NewEngine([]generator.SignalGenerator{gen}, nil, nil, nil, EngineConfig{})
	resp, err = without.Run(context.Background(), request(rows...))
	require.NoError(t, err)
	assert.Equal(t, []string{"wax service", "interior cleaning"}, opportunityKeywords(resp.Opportunities))
}

func TestCacheAgeHours(t *testing.T) {
	entry := &models.CacheEntry{Timestamp: fixedClock().UnixMilli()}
	assert.Equal(t, 1.5, CacheAgeHours(entry, fixedClock().Add(90*time.Minute)))
	assert.Equal(t, 0.3, CacheAgeHours(entry, fixedClock().Add(17*time.Minute)))
}
