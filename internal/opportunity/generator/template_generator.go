package generator

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

// TemplateGenerator expande a tabela de templates do tipo de negócio
type TemplateGenerator struct {
	table TemplateTable
	now   func() time.Time
}

// NewTemplateGenerator cria o gerador. table nil usa DefaultTemplates.
func NewTemplateGenerator(table TemplateTable, now func() time.Time) *TemplateGenerator {
	if table == nil {
		table = DefaultTemplates()
	}
	if now == nil {
		now = time.Now
	}
	return &TemplateGenerator{table: table, now: now}
}

func (g *TemplateGenerator) Name() string { return "business_templates" }

func (g *TemplateGenerator) Generate(_ context.Context, in Input) []models.OpportunityCandidate {
	if in.Profile.EffectiveType() == "" {
		return []models.OpportunityCandidate{}
	}

	city := strings.ToLower(in.Profile.City())
	r := strings.NewReplacer(
		"{type}", typeKeyword(in.Profile),
		"{city}", city,
		"{year}", strconv.Itoa(g.now().Year()),
	)

	templates := g.table.Lookup(in.Profile.EffectiveType())
	candidates := make([]models.OpportunityCandidate, 0, len(templates))
	for _, t := range templates {
		if city == "" && strings.Contains(t.Pattern, "{city}") {
			continue
		}
		candidates = append(candidates, models.OpportunityCandidate{
			Keyword:      strings.Join(strings.Fields(r.Replace(t.Pattern)), " "),
			Category:     t.Category,
			Priority:     models.ClampPriority(t.Priority),
			SearchVolume: t.SearchVolume,
			Difficulty:   t.Difficulty,
			ContentIdea:  r.Replace(t.ContentIdea),
			Source:       models.SourceRuleBased,
		})
	}
	return candidates
}
