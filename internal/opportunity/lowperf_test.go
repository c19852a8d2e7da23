package opportunity

import (
	"context"
	"testing"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/stretchr/testify/assert"
)

func opportunities(keywords ...string) []models.Opportunity {
	var cs []models.OpportunityCandidate
	for _, kw := range keywords {
		cs = append(cs, candidate(kw, 5))
	}
	return Normalize(context.Background(), cs, austinProfile, nil)
}

func TestLowPerformingPages(t *testing.T) {
	rows := []models.PerformanceRow{
		{Keyword: "Car Wash", Page: "/a", CTR: "1.5%", Impressions: 50},
		{Keyword: "hand wash", Page: "/b", CTR: "1.5%", Impressions: 20},
		{Keyword: "detailing", Page: "/c", CTR: "2%", Impressions: 500},
		{Keyword: "wax", Page: "/d", CTR: "", Impressions: 21},
	}

	got := LowPerformingPages(rows)

	assert.Equal(t, map[string][]string{
		"/a": {"car wash"},
		"/d": {"wax"},
	}, got)
}

func TestExcludeLowPerforming(t *testing.T) {
	rows := []models.PerformanceRow{
		{Keyword: "car wash", Page: "/a", CTR: "0.5%", Impressions: 100},
	}

	got := ExcludeLowPerforming(opportunities("car wash austin", "detailing tips"), rows)

	assert.Len(t, got, 1)
	assert.Equal(t, "detailing tips", got[0].Keyword)
}

func TestExcludeLowPerformingNeverEmpties(t *testing.T) {
	rows := []models.PerformanceRow{
		{Keyword: "car wash", Page: "/a", CTR: "0.5%", Impressions: 100},
	}
	opps := opportunities("car wash austin", "best car wash")

	got := ExcludeLowPerforming(opps, rows)

	assert.Equal(t, opps, got)
}

func TestExcludeLowPerformingWithoutFlaggedPages(t *testing.T) {
	opps := opportunities("car wash austin")

	assert.Equal(t, opps, ExcludeLowPerforming(opps, nil))
}
