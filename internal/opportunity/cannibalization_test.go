package opportunity

import (
	"strings"
	"testing"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usage(keyword, page string, priority int) models.KeywordUsage {
	return models.KeywordUsage{
		Keyword: keyword,
		PagePerformance: models.PagePerformance{
			Page:     page,
			CTR:      "0%",
			Priority: priority,
		},
	}
}

func TestAnalyzeCannibalizationDetectsConflict(t *testing.T) {
	got := AnalyzeCannibalization([]models.KeywordUsage{
		usage("oil change", "/a", 5),
		usage("oil change", "/b", 8),
	})

	require.Len(t, got.Groups, 1)
	group := got.Groups[0]
	assert.Equal(t, "oil change", group.Keyword)
	assert.Equal(t, "/b", group.PrimaryPage)
	require.Len(t, group.Pages, 2)
	assert.Equal(t, "/b", group.Pages[0].Page)
	assert.Equal(t, "/a", group.Pages[1].Page)
	assert.Contains(t, group.Recommendation, "/b")
	assert.Contains(t, group.Recommendation, "/a")

	assignment, ok := got.PrimaryPageAssignments["oil change"]
	require.True(t, ok)
	assert.Equal(t, "/b", assignment.PrimaryPage)
	assert.Equal(t, []string{"/a"}, assignment.RemoveFrom)
	assert.NotEmpty(t, assignment.Reason)
	assert.Equal(t, 1, got.TotalConflicts)
}

func TestAnalyzeCannibalizationStableTieBreak(t *testing.T) {
	got := AnalyzeCannibalization([]models.KeywordUsage{
		usage("Car Wash", "/first", 7),
		usage("car wash", "/second", 7),
		usage("CAR WASH", "/third", 3),
	})

	require.Len(t, got.Groups, 1)
	assert.Equal(t, "/first", got.Groups[0].PrimaryPage)
	assert.Equal(t, []string{"/second", "/third"}, got.PrimaryPageAssignments["car wash"].RemoveFrom)
}

func TestAnalyzeCannibalizationSamePageIsNotConflict(t *testing.T) {
	got := AnalyzeCannibalization([]models.KeywordUsage{
		usage("detailing", "/detailing", 6),
		usage("Detailing", "/detailing", 4),
		usage("ceramic coating", models.NewContentPage, 8),
	})

	assert.Empty(t, got.Groups)
	assert.Empty(t, got.PrimaryPageAssignments)
	assert.Equal(t, 0, got.TotalConflicts)
	assert.NotNil(t, got.Groups)
}

func TestAnalyzeCannibalizationCompleteness(t *testing.T) {
	usages := []models.KeywordUsage{
		usage("a keyword", "/1", 5),
		usage("a keyword", "/2", 5),
		usage("b keyword", "/1", 5),
		usage("c keyword", "/1", 5),
		usage("C Keyword", "/3", 2),
		usage("c keyword", "/3", 9),
		usage("d keyword", models.NewContentPage, 5),
		usage("d keyword", "/4", 5),
	}

	// Conta páginas distintas por keyword normalizada
	pagesByKeyword := map[string]map[string]bool{}
	for _, u := range usages {
		kw := strings.ToLower(u.Keyword)
		if pagesByKeyword[kw] == nil {
			pagesByKeyword[kw] = map[string]bool{}
		}
		pagesByKeyword[kw][u.Page] = true
	}

	got := AnalyzeCannibalization(usages)

	grouped := map[string]models.CannibalizationGroup{}
	for _, g := range got.Groups {
		grouped[g.Keyword] = g
	}
	for kw, pages := range pagesByKeyword {
		g, ok := grouped[kw]
		assert.Equal(t, len(pages) >= 2, ok, kw)
		if ok {
			assert.Len(t, g.Pages, len(pages))
		}
	}
	assert.Equal(t, "/3", grouped["c keyword"].PrimaryPage)
	assert.Equal(t, []string{"a keyword", "c keyword", "d keyword"}, []string{got.Groups[0].Keyword, got.Groups[1].Keyword, got.Groups[2].Keyword})
}

func TestUsagesFromRows(t *testing.T) {
	rows := []models.PerformanceRow{
		{Keyword: "car wash", Page: "https://example.com/", Position: 2.1, Impressions: 100, Clicks: 10, CTR: "10%"},
		{Keyword: "car wash", Page: "https://example.com/blog", Position: 14},
		{Keyword: "", Page: "https://example.com/x"},
	}

	got := UsagesFromRows(rows)

	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Priority)
	assert.Equal(t, 6, got[1].Priority)
	assert.Equal(t, "0%", got[1].CTR)
	assert.Equal(t, 100, got[0].Impressions)
}

func TestPositionPriority(t *testing.T) {
	tests := []struct {
		position float64
		want     int
	}{
		{0, 1}, {1, 10}, {3, 10}, {4.5, 9}, {10, 8}, {11, 6}, {25, 4}, {45, 2}, {80, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, positionPriority(tt.position), tt.position)
	}
}

func TestUsagesFromOpportunities(t *testing.T) {
	opps := Normalize(t.Context(), []models.OpportunityCandidate{candidate("car wash tips", 6)}, austinProfile, nil)

	got := UsagesFromOpportunities(opps)

	require.Len(t, got, 1)
	assert.Equal(t, models.NewContentPage, got[0].Page)
	assert.Equal(t, 6, got[0].Priority)
}
