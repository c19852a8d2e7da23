// Package app monta o pipeline de oportunidades a partir da configuração.
// É compartilhado pelo servidor HTTP e pela CLI.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/prefeitura-rio/app-seo-keywords/internal/adapter"
	"github.com/prefeitura-rio/app-seo-keywords/internal/cache"
	"github.com/prefeitura-rio/app-seo-keywords/internal/config"
	"github.com/prefeitura-rio/app-seo-keywords/internal/opportunity"
	"github.com/prefeitura-rio/app-seo-keywords/internal/opportunity/generator"
	"github.com/prefeitura-rio/app-seo-keywords/internal/siteanalysis"
)

// App agrupa as dependências construídas
type App struct {
	Engine *opportunity.Engine
	Cache  *cache.ResultCache
	Gemini *adapter.GeminiAdapter

	store cache.Store
}

// New constrói cache, adapter Gemini, geradores e o pipeline
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := cache.Open(ctx, cache.Options{
		Backend:    cfg.CacheBackend,
		BadgerPath: cfg.BadgerPath,
		SQLitePath: cfg.SQLitePath,
		RedisURL:   cfg.RedisURL,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir cache: %w", err)
	}
	resultCache := cache.NewResultCache(store, cfg.CacheTTL, nil)

	client, err := adapter.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		// Sem Gemini o pipeline segue só com os geradores por regras
		log.Warn("Gemini indisponível", "error", err)
	}
	geminiCfg := adapter.DefaultGeminiConfig()
	geminiCfg.ChatModel = cfg.GeminiChatModel
	geminiCfg.RequestsPerMinute = cfg.GeminiRequestsPerMinute
	gemini := adapter.NewGeminiAdapter(client, geminiCfg)

	templates, err := generator.LoadTemplates(cfg.TemplatesFile)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("erro ao carregar templates: %w", err)
	}

	generators := []generator.SignalGenerator{
		generator.NewRuleBasedGenerator(nil),
		generator.NewTemplateGenerator(templates, nil),
	}

	var recommender opportunity.RecommendationProvider
	if gemini.IsAvailable() {
		generators = append(generators, generator.NewAIGenerator(gemini))
		recommender = opportunity.NewAIRecommendationProvider(gemini)
		log.Info("Gemini habilitado", "model", gemini.GetChatModel())
	}

	engine := opportunity.NewEngine(
		generators,
		siteanalysis.New(cfg.SiteFetchTimeout, cfg.SiteFetchMaxBytes),
		recommender,
		resultCache,
		opportunity.EngineConfig{
			MaxOpportunities:     cfg.MaxOpportunities,
			ExcludeLowPerforming: cfg.ExcludeLowPerforming,
		},
	)

	log.Info("pipeline inicializado", "generators", len(generators), "cache", cfg.CacheBackend)

	return &App{
		Engine: engine,
		Cache:  resultCache,
		Gemini: gemini,
		store:  store,
	}, nil
}

// Close libera o store do cache
func (a *App) Close() error {
	return a.store.Close()
}
