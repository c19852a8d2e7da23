package opportunity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/adapter"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/prefeitura-rio/app-seo-keywords/internal/opportunity/generator"
	"github.com/prefeitura-rio/app-seo-keywords/internal/utils"
)

// maxActionItems limita os itens por keyword vindos do modelo
const maxActionItems = 5

// AIRecommendationProvider pede ao modelo itens de ação para todas as keywords numa única chamada
type AIRecommendationProvider struct {
	llm generator.TextGenerator
}

func NewAIRecommendationProvider(llm generator.TextGenerator) *AIRecommendationProvider {
	return &AIRecommendationProvider{llm: llm}
}

func (p *AIRecommendationProvider) ActionItems(ctx context.Context, profile models.BusinessProfile, candidates []models.OpportunityCandidate) (map[string][]string, error) {
	if p.llm == nil {
		return nil, ErrNoTextGenerator
	}
	raw, err := p.llm.Generate(ctx, buildActionItemsPrompt(profile, candidates))
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar itens de ação: %w", err)
	}
	return ParseActionItems(raw)
}

// ParseActionItems converte {"keyword": ["item", ...]} em itens limpos, indexados pela keyword em minúsculas
func ParseActionItems(raw string) (map[string][]string, error) {
	var parsed map[string][]string
	if err := json.Unmarshal([]byte(adapter.ExtractJSON(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("erro ao parsear itens de ação: %w", err)
	}

	items := make(map[string][]string, len(parsed))
	for keyword, actions := range parsed {
		cleaned := utils.CleanActionItems(actions)
		if len(cleaned) == 0 {
			continue
		}
		if len(cleaned) > maxActionItems {
			cleaned = cleaned[:maxActionItems]
		}
		items[normalizeKeyword(keyword)] = cleaned
	}
	return items, nil
}

func buildActionItemsPrompt(profile models.BusinessProfile, candidates []models.OpportunityCandidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an SEO consultant for a local %s in %s.\n", profile.EffectiveType(), profile.Location)
	b.WriteString("For each keyword below, write 3 to 4 short, concrete action items to rank for it.\n\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- %s", c.Keyword)
		if c.ContentIdea != "" {
			fmt.Fprintf(&b, " (content idea: %s)", c.ContentIdea)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nRespond ONLY with a JSON object mapping each keyword exactly as written to an array of strings, for example:\n")
	b.WriteString(`{"keyword one": ["action", "action"], "keyword two": ["action", "action"]}`)

	return b.String()
}
