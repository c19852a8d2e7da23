// Package opportunity implementa o pipeline de oportunidades de keywords: geração, filtro,
// normalização, canibalização e planejamento hub-and-spoke.
package opportunity

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prefeitura-rio/app-seo-keywords/internal/cache"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/prefeitura-rio/app-seo-keywords/internal/opportunity/generator"
	"github.com/prefeitura-rio/app-seo-keywords/internal/siteanalysis"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultMaxOpportunities limita a lista devolvida
const DefaultMaxOpportunities = 50

// SiteAnalyzer busca e resume o site do negócio
type SiteAnalyzer interface {
	Analyze(ctx context.Context, url string) (*siteanalysis.SiteAnalysis, error)
}

// ResultCache é o cache de resultados com TTL consultivo
type ResultCache interface {
	Lookup(ctx context.Context, key string) (*models.CacheEntry, bool)
	Save(ctx context.Context, entry *models.CacheEntry)
}

// EngineConfig ajusta o pós-processamento da lista
type EngineConfig struct {
	MaxOpportunities     int
	ExcludeLowPerforming bool
}

// Engine executa o pipeline. É seguro para uso concorrente; só o cache é compartilhado.
type Engine struct {
	generators  []generator.SignalGenerator
	analyzer    SiteAnalyzer
	recommender RecommendationProvider
	cache       ResultCache
	config      EngineConfig
	now         func() time.Time
}

// NewEngine cria o pipeline. analyzer, recommender e cache podem ser nil.
func NewEngine(
	generators []generator.SignalGenerator,
	analyzer SiteAnalyzer,
	recommender RecommendationProvider,
	resultCache ResultCache,
	config EngineConfig,
) *Engine {
	if config.MaxOpportunities <= 0 {
		config.MaxOpportunities = DefaultMaxOpportunities
	}
	if len(generators) == 0 {
		log.Warn("pipeline sem geradores, apenas o fallback será usado", "error", ErrNoGenerators)
	}
	return &Engine{
		generators:  generators,
		analyzer:    analyzer,
		recommender: recommender,
		cache:       resultCache,
		config:      config,
		now:         time.Now,
	}
}

// WithClock substitui o relógio usado no timestamp das entradas
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Run executa o pipeline completo ou devolve o resultado em cache.
// Só erros de validação são retornados; falhas de colaboradores viram fallback.
func (e *Engine) Run(ctx context.Context, req *models.OpportunitiesRequest) (*models.OpportunitiesResponse, error) {
	ctx, span := otel.Tracer("opportunity").Start(ctx, "Engine.Run")
	defer span.End()

	if err := req.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		return nil, err
	}

	profile := *req.BusinessProfile
	key := req.CacheKey
	if key == "" {
		key = cache.BuildKey(req.UserID, profile)
	}

	span.SetAttributes(
		attribute.String("opportunity.cache_key", key),
		attribute.String("opportunity.business_type", profile.EffectiveType()),
		attribute.Int("opportunity.performance_rows", len(req.PerformanceRows)),
		attribute.Bool("opportunity.force_refresh", req.ForceRefresh),
	)

	if e.cache != nil && !req.ForceRefresh {
		if entry, ok := e.cache.Lookup(ctx, key); ok {
			span.SetAttributes(attribute.Bool("opportunity.cache_hit", true))
			log.Debug("oportunidades servidas do cache", "key", key)
			return e.response(entry, true), nil
		}
	}
	span.SetAttributes(attribute.Bool("opportunity.cache_hit", false))

	entry := e.generate(ctx, key, profile, req.PerformanceRows)

	if e.cache != nil {
		e.cache.Save(ctx, entry)
	}

	span.SetAttributes(attribute.Int("opportunity.total", len(entry.Opportunities)))
	span.SetStatus(codes.Ok, "pipeline concluído")
	return e.response(entry, false), nil
}

// generate executa as etapas sem cache
func (e *Engine) generate(ctx context.Context, key string, profile models.BusinessProfile, rows []models.PerformanceRow) *models.CacheEntry {
	site := e.startSiteAnalysis(ctx, profile.WebsiteURL)
	candidates := e.fanOut(ctx, generator.Input{Profile: profile, Site: site})
	site() // garante que a análise terminou antes de seguir

	existing := models.ExistingKeywords(rows)

	_, filterSpan := otel.Tracer("opportunity").Start(ctx, "FilterExisting")
	filtered := FilterExisting(candidates, existing)
	if len(filtered) == 0 {
		log.Info("todos os candidatos foram filtrados, usando fallback", "candidates", len(candidates))
		filtered = FallbackOpportunities(profile, existing)
	}
	filterSpan.SetAttributes(
		attribute.Int("filter.input", len(candidates)),
		attribute.Int("filter.output", len(filtered)),
	)
	filterSpan.End()

	normCtx, normSpan := otel.Tracer("opportunity").Start(ctx, "Normalize")
	opportunities := Normalize(normCtx, filtered, profile, e.recommender)
	normSpan.End()

	_, analysisSpan := otel.Tracer("opportunity").Start(ctx, "Analyze")
	usages := append(UsagesFromOpportunities(opportunities), UsagesFromRows(rows)...)
	cannibalization := AnalyzeCannibalization(usages)
	strategy := PlanHubAndSpoke(usages, profile)
	analysisSpan.SetAttributes(
		attribute.Int("cannibalization.conflicts", cannibalization.TotalConflicts),
		attribute.Int("strategy.spokes", len(strategy.Spokes)),
		attribute.Bool("strategy.has_hub", strategy.Hub != nil),
	)
	analysisSpan.End()

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Priority > opportunities[j].Priority
	})
	if e.config.ExcludeLowPerforming {
		opportunities = ExcludeLowPerforming(opportunities, rows)
	}
	if len(opportunities) > e.config.MaxOpportunities {
		opportunities = opportunities[:e.config.MaxOpportunities]
	}

	log.Info("oportunidades geradas",
		"key", key,
		"candidates", len(candidates),
		"opportunities", len(opportunities),
		"conflicts", cannibalization.TotalConflicts,
	)

	return &models.CacheEntry{
		Key:                     key,
		Opportunities:           opportunities,
		CannibalizationAnalysis: cannibalization,
		HubAndSpokeStrategy:     strategy,
		Timestamp:               e.now().UnixMilli(),
	}
}

// startSiteAnalysis dispara a análise em paralelo e devolve uma função que bloqueia até o resultado
func (e *Engine) startSiteAnalysis(ctx context.Context, url string) func() *siteanalysis.SiteAnalysis {
	if e.analyzer == nil || url == "" {
		empty := siteanalysis.Empty(url)
		return func() *siteanalysis.SiteAnalysis { return empty }
	}

	done := make(chan struct{})
	var result *siteanalysis.SiteAnalysis

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Error("pânico na análise do site", "url", url, "panic", r)
				result = siteanalysis.Empty(url)
			}
		}()

		spanCtx, span := otel.Tracer("opportunity").Start(ctx, "SiteAnalysis")
		defer span.End()

		analysis, err := e.analyzer.Analyze(spanCtx, url)
		if err != nil {
			span.RecordError(err)
			log.Warn("falha ao analisar site, seguindo sem análise", "url", url, "error", err)
			analysis = siteanalysis.Empty(url)
		}
		result = analysis
	}()

	return func() *siteanalysis.SiteAnalysis {
		<-done
		if result == nil {
			return siteanalysis.Empty(url)
		}
		return result
	}
}

// fanOut executa os geradores em paralelo e concatena na ordem de registro
func (e *Engine) fanOut(ctx context.Context, in generator.Input) []models.OpportunityCandidate {
	ctx, span := otel.Tracer("opportunity").Start(ctx, "Generate")
	defer span.End()

	results := make([][]models.OpportunityCandidate, len(e.generators))
	var wg sync.WaitGroup

	for i, g := range e.generators {
		wg.Add(1)
		go func(i int, g generator.SignalGenerator) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error("pânico no gerador, ignorando", "generator", g.Name(), "panic", r)
				}
			}()

			start := time.Now()
			results[i] = g.Generate(ctx, in)
			log.Debug("gerador concluído", "generator", g.Name(), "candidates", len(results[i]), "duration", time.Since(start))
		}(i, g)
	}
	wg.Wait()

	var candidates []models.OpportunityCandidate
	for _, r := range results {
		candidates = append(candidates, r...)
	}
	span.SetAttributes(attribute.Int("generate.candidates", len(candidates)))
	return candidates
}

// response monta a resposta a partir da entrada
func (e *Engine) response(entry *models.CacheEntry, fromCache bool) *models.OpportunitiesResponse {
	resp := &models.OpportunitiesResponse{
		Opportunities:           entry.Opportunities,
		CannibalizationAnalysis: entry.CannibalizationAnalysis,
		HubAndSpokeStrategy:     entry.HubAndSpokeStrategy,
		FromCache:               fromCache,
		TotalOpportunities:      len(entry.Opportunities),
		GeneratedAt:             time.UnixMilli(entry.Timestamp).UTC(),
		CacheKey:                entry.Key,
	}
	if fromCache {
		hours := CacheAgeHours(entry, e.now())
		resp.CacheAgeHours = &hours
	}
	return resp
}

// CacheAgeHours retorna a idade da entrada em horas, com uma casa decimal
func CacheAgeHours(entry *models.CacheEntry, now time.Time) float64 {
	return math.Round(entry.Age(now).Hours()*10) / 10
}
