package generator

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

// trendTemplate é uma variação temporal/tendência sobre o tipo de negócio
type trendTemplate struct {
	pattern      string
	priority     int
	searchVolume string
	difficulty   string
	contentIdea  string
}

// Ordem e prioridades fixas: a saída é determinística para o mesmo perfil e ano
var trendTemplates = []trendTemplate{
	{"{type} {year}", 6, "Medium", "Easy", "Roundup of what's new in {type} for {year}"},
	{"{type} near me", 8, "High", "Medium", "Location-focused landing page for {type} in {city}"},
	{"best {type} {city}", 7, "Medium", "Medium", "Why customers pick us as the best {type} in {city}"},
	{"{type} trends", 7, "Medium", "Easy", "Blog post on current {type} trends and what they mean for customers"},
	{"{type} tips", 6, "Medium", "Easy", "Practical {type} tips customers search for"},
}

// RuleBasedGenerator expande templates fixos de tendência em 5 candidatos trending_search
type RuleBasedGenerator struct {
	now func() time.Time
}

// NewRuleBasedGenerator cria o gerador por regras. now pode ser nil (usa time.Now).
func NewRuleBasedGenerator(now func() time.Time) *RuleBasedGenerator {
	if now == nil {
		now = time.Now
	}
	return &RuleBasedGenerator{now: now}
}

func (g *RuleBasedGenerator) Name() string { return "rule_based" }

// Generate retorna vazio quando o perfil não tem tipo de negócio
func (g *RuleBasedGenerator) Generate(_ context.Context, in Input) []models.OpportunityCandidate {
	businessType := strings.ToLower(in.Profile.EffectiveType())
	if businessType == "" {
		return []models.OpportunityCandidate{}
	}

	r := strings.NewReplacer(
		"{type}", businessType,
		"{city}", strings.ToLower(in.Profile.City()),
		"{year}", strconv.Itoa(g.now().Year()),
	)

	candidates := make([]models.OpportunityCandidate, 0, len(trendTemplates))
	for _, t := range trendTemplates {
		keyword := strings.Join(strings.Fields(r.Replace(t.pattern)), " ")
		candidates = append(candidates, models.OpportunityCandidate{
			Keyword:      keyword,
			Category:     models.CategoryTrendingSearch,
			Priority:     t.priority,
			SearchVolume: t.searchVolume,
			Difficulty:   t.difficulty,
			ContentIdea:  r.Replace(t.contentIdea),
			Source:       models.SourceRuleBased,
		})
	}
	return candidates
}
