package models

// PagePerformance é a participação de uma página num grupo de keywords
type PagePerformance struct {
	Page        string  `json:"page"`
	Position    float64 `json:"position"`
	CTR         string  `json:"ctr"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Priority    int     `json:"priority"`
}

// KeywordUsage associa uma keyword a uma página.
// É a entrada comum da análise de canibalização e do planejamento hub-and-spoke.
type KeywordUsage struct {
	Keyword string `json:"keyword"`
	PagePerformance
}

// CannibalizationGroup existe apenas quando duas ou mais páginas distintas disputam a mesma keyword
type CannibalizationGroup struct {
	Keyword        string            `json:"keyword"`
	Pages          []PagePerformance `json:"pages"`
	PrimaryPage    string            `json:"primaryPage"`
	Recommendation string            `json:"recommendation"`
}

// PrimaryPageAssignment é derivado de um CannibalizationGroup para a ação "corrigir" da UI
type PrimaryPageAssignment struct {
	PrimaryPage string   `json:"primaryPage"`
	Reason      string   `json:"reason"`
	RemoveFrom  []string `json:"removeFrom"`
}

// CannibalizationAnalysis é o relatório de canibalização
type CannibalizationAnalysis struct {
	Groups                 []CannibalizationGroup           `json:"groups"`
	PrimaryPageAssignments map[string]PrimaryPageAssignment `json:"primaryPageAssignments"`
	TotalConflicts         int                              `json:"totalConflicts"`
}
