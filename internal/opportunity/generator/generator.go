// Package generator contém os geradores de sinais: produtores independentes de candidatos a oportunidade.
package generator

import (
	"context"
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/prefeitura-rio/app-seo-keywords/internal/siteanalysis"
)

// SignalGenerator produz candidatos a partir do perfil do negócio.
// Nunca retorna erro: falhas viram lista vazia ou o fallback documentado do gerador.
type SignalGenerator interface {
	Name() string
	Generate(ctx context.Context, in Input) []models.OpportunityCandidate
}

// TextGenerator é o colaborador de geração de texto (LLM)
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Input é a entrada comum dos geradores
type Input struct {
	Profile models.BusinessProfile

	// Site bloqueia até a análise do site terminar. Pode ser nil.
	Site func() *siteanalysis.SiteAnalysis
}

// SiteAnalysis retorna a análise do site ou a análise vazia
func (in Input) SiteAnalysis() *siteanalysis.SiteAnalysis {
	if in.Site == nil {
		return siteanalysis.Empty(in.Profile.WebsiteURL)
	}
	if a := in.Site(); a != nil {
		return a
	}
	return siteanalysis.Empty(in.Profile.WebsiteURL)
}

// typeKeyword retorna o tipo de negócio em minúsculas para compor keywords
func typeKeyword(p models.BusinessProfile) string {
	t := strings.ToLower(p.EffectiveType())
	if t == "" || t == strings.ToLower(models.OtherBusinessType) {
		return "local business"
	}
	return t
}

// FallbackCandidates é a lista fixa de 3 candidatos de serviço usada quando nada mais sobra
func FallbackCandidates(p models.BusinessProfile) []models.OpportunityCandidate {
	t := typeKeyword(p)
	city := strings.ToLower(p.City())

	primary := t + " services"
	if city != "" {
		primary = t + " " + city
	}

	return []models.OpportunityCandidate{
		{
			Keyword:      primary,
			Category:     models.CategoryServiceBased,
			Priority:     8,
			SearchVolume: "Medium",
			Difficulty:   "Medium",
			Potential:    "High",
			ContentIdea:  "Main service page describing your " + t + " offering and service area",
			Source:       models.SourceRuleBased,
		},
		{
			Keyword:      "best " + t + " near me",
			Category:     models.CategoryServiceBased,
			Priority:     7,
			SearchVolume: "High",
			Difficulty:   "Medium",
			Potential:    "High",
			ContentIdea:  "Page highlighting reviews, guarantees and what makes your " + t + " stand out",
			Source:       models.SourceRuleBased,
		},
		{
			Keyword:      "affordable " + t,
			Category:     models.CategoryServiceBased,
			Priority:     6,
			SearchVolume: "Medium",
			Difficulty:   "Easy",
			Potential:    "Medium",
			ContentIdea:  "Pricing page with packages, transparent costs and current offers",
			Source:       models.SourceRuleBased,
		},
	}
}
