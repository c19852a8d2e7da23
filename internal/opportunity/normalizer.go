package opportunity

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

// RecommendationProvider gera itens de ação para um lote de candidatos.
// O mapa é indexado pela keyword em minúsculas; keywords ausentes recebem os itens padrão.
type RecommendationProvider interface {
	ActionItems(ctx context.Context, profile models.BusinessProfile, candidates []models.OpportunityCandidate) (map[string][]string, error)
}

// Normalize aplica os defaults e os itens de ação a cada candidato, preservando a ordem
func Normalize(ctx context.Context, candidates []models.OpportunityCandidate, profile models.BusinessProfile, provider RecommendationProvider) []models.Opportunity {
	var items map[string][]string
	if provider != nil && len(candidates) > 0 {
		var err error
		items, err = provider.ActionItems(ctx, profile, candidates)
		if err != nil {
			log.Warn("falha ao gerar itens de ação, usando padrão", "error", err)
			items = nil
		}
	}

	opportunities := make([]models.Opportunity, 0, len(candidates))
	for _, c := range candidates {
		actions := items[normalizeKeyword(c.Keyword)]
		if len(actions) == 0 {
			actions = DefaultActionItems(c, profile)
		}
		opportunities = append(opportunities, normalizeOne(c, actions))
	}
	return opportunities
}

func normalizeOne(c models.OpportunityCandidate, actions []string) models.Opportunity {
	if c.SearchVolume == "" {
		c.SearchVolume = models.DefaultSearchVolume
	}
	if c.Competition == "" {
		c.Competition = models.DefaultCompetition
	}
	if c.Difficulty == "" {
		c.Difficulty = models.DefaultDifficulty
	}
	if c.Potential == "" {
		c.Potential = models.DefaultPotential
	}
	c.Priority = models.ClampPriority(c.Priority)

	return models.Opportunity{
		OpportunityCandidate: c,
		ActionItems:          actions,
		CurrentPerformance:   models.EmptyPerformance(),
		Opportunity:          models.OpportunityContentCreation,
	}
}

// DefaultActionItems é o plano determinístico de 4 passos.
// O último passo é de SEO local quando a keyword é de localização ou menciona a cidade.
func DefaultActionItems(c models.OpportunityCandidate, profile models.BusinessProfile) []string {
	items := []string{
		fmt.Sprintf("Create a dedicated page targeting %q", c.Keyword),
		fmt.Sprintf("Address the search intent behind %q with clear answers, pricing and next steps", c.Keyword),
		fmt.Sprintf("Include %q in the page title, H1 and at least one subheading", c.Keyword),
	}

	city := strings.ToLower(profile.City())
	if c.Category == models.CategoryLocationBased || (city != "" && strings.Contains(strings.ToLower(c.Keyword), city)) {
		place := profile.City()
		if place == "" {
			place = "your service area"
		}
		items = append(items, fmt.Sprintf("Add local SEO signals for %s: address, service area, map embed and a Google Business Profile link", place))
	} else {
		items = append(items, "Link to the new page from your homepage and related service pages")
	}

	return items
}
