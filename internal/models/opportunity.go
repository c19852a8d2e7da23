package models

// Category classifica a origem semântica de uma oportunidade
type Category string

const (
	CategoryServiceBased    Category = "service_based"
	CategoryLocationBased   Category = "location_based"
	CategoryProblemBased    Category = "problem_based"
	CategoryComparisonBased Category = "comparison_based"
	CategoryTimeBased       Category = "time_based"
	CategoryTrendingSearch  Category = "trending_search"
	CategoryAIGenerated     Category = "ai_generated"
)

// IsValid verifica se a categoria é conhecida
func (c Category) IsValid() bool {
	switch c {
	case CategoryServiceBased, CategoryLocationBased, CategoryProblemBased,
		CategoryComparisonBased, CategoryTimeBased, CategoryTrendingSearch, CategoryAIGenerated:
		return true
	}
	return false
}

// Source identifica o gerador que emitiu o candidato
type Source string

const (
	SourceRuleBased   Source = "rule_based"
	SourceAIGenerated Source = "ai_generated"
)

// Valores padrão aplicados pelo normalizador
const (
	DefaultSearchVolume = "Unknown"
	DefaultCompetition  = "Medium"
	DefaultDifficulty   = "Medium"
	DefaultPotential    = "High"

	// NewContentPage é a página sentinela usada para oportunidades sem página própria
	NewContentPage = "New Content"

	// OpportunityContentCreation é o único tipo de oportunidade emitido pelo pipeline
	OpportunityContentCreation = "content_creation"

	MinPriority = 1
	MaxPriority = 10
)

// OpportunityCandidate é emitido por um gerador de sinais e não é alterado depois
type OpportunityCandidate struct {
	Keyword      string   `json:"keyword" example:"mobile detailing austin"`
	Category     Category `json:"category" example:"service_based"`
	Priority     int      `json:"priority" example:"8"`
	SearchVolume string   `json:"searchVolume,omitempty" example:"Medium"`
	Competition  string   `json:"competition,omitempty" example:"Medium"`
	Difficulty   string   `json:"difficulty,omitempty" example:"Easy"`
	Potential    string   `json:"potential,omitempty" example:"High"`
	ContentIdea  string   `json:"contentIdea" example:"Service page covering mobile detailing packages"`
	Source       Source   `json:"source" example:"rule_based"`
}

// CurrentPerformance descreve o desempenho atual da keyword.
// Para oportunidades Page é sempre nil: a keyword ainda não tem página dedicada.
type CurrentPerformance struct {
	Position    float64 `json:"position"`
	CTR         string  `json:"ctr"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Page        *string `json:"page"`
}

// Opportunity é o candidato normalizado, com defaults e itens de ação
type Opportunity struct {
	OpportunityCandidate
	ActionItems        []string           `json:"actionItems"`
	CurrentPerformance CurrentPerformance `json:"currentPerformance"`
	Opportunity        string             `json:"opportunity" example:"content_creation"`
}

// EmptyPerformance retorna o desempenho zerado de uma oportunidade nova
func EmptyPerformance() CurrentPerformance {
	return CurrentPerformance{CTR: "0%"}
}

// ClampPriority limita a prioridade ao intervalo [1, 10]
func ClampPriority(p int) int {
	if p < MinPriority {
		return MinPriority
	}
	if p > MaxPriority {
		return MaxPriority
	}
	return p
}
