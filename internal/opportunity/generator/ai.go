package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/prefeitura-rio/app-seo-keywords/internal/adapter"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

const siteSummaryMaxText = 1500

// aiKeyword é o formato esperado de cada item na resposta do modelo
type aiKeyword struct {
	Keyword     string          `json:"keyword"`
	Category    models.Category `json:"category"`
	Priority    int             `json:"priority"`
	ContentIdea string          `json:"contentIdea"`
	Difficulty  string          `json:"difficulty"`
	Potential   string          `json:"potential"`
}

// AIGenerator delega ao TextGenerator e cai para FallbackCandidates em qualquer falha
type AIGenerator struct {
	llm TextGenerator
}

// NewAIGenerator cria o gerador. llm nil faz o gerador sempre devolver o fallback.
func NewAIGenerator(llm TextGenerator) *AIGenerator {
	return &AIGenerator{llm: llm}
}

func (g *AIGenerator) Name() string { return "ai_generated" }

func (g *AIGenerator) Generate(ctx context.Context, in Input) []models.OpportunityCandidate {
	if g.llm == nil {
		return FallbackCandidates(in.Profile)
	}

	prompt := buildKeywordPrompt(in.Profile, in.SiteAnalysis().Summary(siteSummaryMaxText))
	raw, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		log.Warn("falha ao gerar keywords via IA, usando fallback", "error", err)
		return FallbackCandidates(in.Profile)
	}

	candidates, err := ParseAIKeywords(raw)
	if err != nil {
		log.Warn("resposta de keywords da IA inválida, usando fallback", "error", err)
		return FallbackCandidates(in.Profile)
	}
	if len(candidates) == 0 {
		log.Warn("IA não retornou keywords utilizáveis, usando fallback")
		return FallbackCandidates(in.Profile)
	}
	return candidates
}

// ParseAIKeywords converte a resposta do modelo em candidatos sanitizados
func ParseAIKeywords(raw string) ([]models.OpportunityCandidate, error) {
	var items []aiKeyword
	if err := json.Unmarshal([]byte(adapter.ExtractJSON(raw)), &items); err != nil {
		return nil, fmt.Errorf("erro ao parsear keywords: %w", err)
	}

	candidates := make([]models.OpportunityCandidate, 0, len(items))
	for _, item := range items {
		keyword := strings.Join(strings.Fields(item.Keyword), " ")
		if keyword == "" {
			continue
		}
		category := item.Category
		if !category.IsValid() {
			category = models.CategoryAIGenerated
		}
		candidates = append(candidates, models.OpportunityCandidate{
			Keyword:     keyword,
			Category:    category,
			Priority:    models.ClampPriority(item.Priority),
			Difficulty:  strings.TrimSpace(item.Difficulty),
			Potential:   strings.TrimSpace(item.Potential),
			ContentIdea: strings.TrimSpace(item.ContentIdea),
			Source:      models.SourceAIGenerated,
		})
	}
	return candidates, nil
}

func buildKeywordPrompt(p models.BusinessProfile, siteSummary string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an SEO strategist for a local %s located in %s.\n", p.EffectiveType(), p.Location)
	b.WriteString("Suggest 10 to 15 realistic keyword phrases real customers type into Google for this business.\n")
	b.WriteString("Do not invent brand names, statistics or services the business does not offer.\n")

	if siteSummary != "" {
		b.WriteString("\nWebsite content:\n")
		b.WriteString(siteSummary)
		b.WriteString("\n")
	}

	b.WriteString("\nCategories: service_based, location_based, problem_based, comparison_based, time_based.\n")
	b.WriteString("Priority is an integer from 1 (low) to 10 (high). Difficulty is Easy, Medium or Hard. Potential is Low, Medium or High.\n")
	b.WriteString("Respond ONLY with a JSON array, no prose, in this exact format:\n")
	b.WriteString(`[{"keyword": "...", "category": "service_based", "priority": 8, "contentIdea": "...", "difficulty": "Medium", "potential": "High"}]`)

	return b.String()
}
