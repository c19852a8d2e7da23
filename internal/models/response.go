package models

import "time"

// OpportunitiesResponse é a resposta do pipeline de oportunidades
type OpportunitiesResponse struct {
	Opportunities           []Opportunity           `json:"opportunities"`
	CannibalizationAnalysis CannibalizationAnalysis `json:"cannibalizationAnalysis"`
	HubAndSpokeStrategy     SiteStrategy            `json:"hubAndSpokeStrategy"`
	FromCache               bool                    `json:"fromCache"`
	CacheAgeHours           *float64                `json:"cacheAgeHours,omitempty"`
	TotalOpportunities      int                     `json:"totalOpportunities"`
	GeneratedAt             time.Time               `json:"generatedAt"`
	CacheKey                string                  `json:"cacheKey"`
}
