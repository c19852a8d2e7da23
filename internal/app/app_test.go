package app

import (
	"context"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-seo-keywords/internal/config"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutGemini(t *testing.T) {
	cfg := &config.Config{
		CacheBackend:     "memory",
		CacheTTL:         time.Hour,
		SiteFetchTimeout: time.Second,
		MaxOpportunities: 10,
	}

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.False(t, a.Gemini.IsAvailable())

	resp, err := a.Engine.Run(context.Background(), &models.OpportunitiesRequest{
		BusinessProfile: &models.BusinessProfile{BusinessType: "Car Wash", Location: "Austin, TX"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Opportunities)
	assert.LessOrEqual(t, len(resp.Opportunities), 10)
	assert.False(t, resp.FromCache)

	again, err := a.Engine.Run(context.Background(), &models.OpportunitiesRequest{
		BusinessProfile: &models.BusinessProfile{BusinessType: "Car Wash", Location: "Austin, TX"},
	})
	require.NoError(t, err)
	assert.True(t, again.FromCache)
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), &config.Config{CacheBackend: "mongo"})
	require.Error(t, err)
}

func TestNewInvalidTemplatesFile(t *testing.T) {
	_, err := New(context.Background(), &config.Config{
		CacheBackend:  "memory",
		TemplatesFile: "/nao/existe/templates.yaml",
	})
	require.Error(t, err)
}
