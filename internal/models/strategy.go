package models

// PageType é a classificação de uma página no plano hub-and-spoke
type PageType string

const (
	PageTypeHomepage    PageType = "homepage"
	PageTypeOilChange   PageType = "oil_change"
	PageTypeDetailing   PageType = "detailing"
	PageTypeLocation    PageType = "location"
	PageTypeLandingPage PageType = "landing_page"
	PageTypeFAQ         PageType = "faq"
	PageTypeCoupon      PageType = "coupon"
	PageTypeService     PageType = "service"
)

// Limites de keywords por página
const (
	MaxHubKeywords   = 4
	MaxSpokeKeywords = 3
)

// HubPlan é a página central da estrutura
type HubPlan struct {
	Page            string   `json:"page"`
	Type            PageType `json:"type"`
	PrimaryKeywords []string `json:"primaryKeywords"`
	Strategy        string   `json:"strategy"`
}

// SpokePlan é uma página satélite
type SpokePlan struct {
	Page            string   `json:"page"`
	Type            PageType `json:"type"`
	PrimaryKeywords []string `json:"primaryKeywords"`
	Strategy        string   `json:"strategy"`
}

// Recommendation é uma ação sugerida para a estrutura do site
type Recommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Page        string `json:"page,omitempty"`
}

// Tipos de recomendação
const (
	RecommendationOptimizeHub   = "optimize_homepage"
	RecommendationCreateContent = "create_content"
	RecommendationLocalSEO      = "local_seo"
)

// SiteStrategy é reconstruída a cada execução do pipeline.
// Hub é nil quando não existe homepage entre as páginas.
type SiteStrategy struct {
	Hub                 *HubPlan                  `json:"hub"`
	Spokes              []SpokePlan               `json:"spokes"`
	Recommendations     []Recommendation          `json:"recommendations"`
	OpportunitiesByPage map[string][]KeywordUsage `json:"opportunitiesByPage"`
}
