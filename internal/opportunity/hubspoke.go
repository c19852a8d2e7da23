package opportunity

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/prefeitura-rio/app-seo-keywords/internal/utils"
)

// pageRule classifica uma página por trechos da URL ou das keywords
type pageRule struct {
	pageType models.PageType
	urlHints []string
	kwHints  []string
}

// A ordem é o critério de desempate: a primeira regra que casar vence.
// homepage é tratada antes, pela raiz do caminho.
var pageRules = []pageRule{
	{models.PageTypeOilChange, []string{"oil-change", "oil_change", "oilchange", "lube"}, []string{"oil change", "lube"}},
	{models.PageTypeDetailing, []string{"detail"}, []string{"detailing"}},
	{models.PageTypeLocation, []string{"location", "near-me", "directions", "service-area"}, []string{"near me", "directions"}},
	{models.PageTypeLandingPage, []string{"landing", "/lp/", "/lp-"}, nil},
	{models.PageTypeFAQ, []string{"faq", "questions"}, []string{"how to", "what is", "faq"}},
	{models.PageTypeCoupon, []string{"coupon", "deals", "specials", "offers"}, []string{"coupon", "deal", "discount"}},
}

// strategyTemplates recebe a frase com as 1 ou 2 keywords principais
var strategyTemplates = map[models.PageType]string{
	models.PageTypeHomepage:    "Position the homepage as the hub for %s, summarizing every service and linking to each spoke page.",
	models.PageTypeOilChange:   "Target %s with pricing, turnaround time and oil types, and link back to the homepage.",
	models.PageTypeDetailing:   "Showcase %s with packages, before-and-after photos and booking calls to action.",
	models.PageTypeLocation:    "Win local searches for %s with address, hours, map embed and local reviews.",
	models.PageTypeLandingPage: "Convert visitors searching %s with one clear offer, social proof and a single call to action.",
	models.PageTypeFAQ:         "Answer the questions behind %s in short sections marked up with FAQ schema.",
	models.PageTypeCoupon:      "Capture deal seekers searching %s with current offers and expiration dates.",
}

const genericStrategy = "Build focused content around %s and link it to the hub page."

// PlanHubAndSpoke agrupa as keywords por página, elege o hub e monta as recomendações.
// As páginas são processadas na ordem da primeira ocorrência.
func PlanHubAndSpoke(usages []models.KeywordUsage, profile models.BusinessProfile) models.SiteStrategy {
	var pages []string
	byPage := make(map[string][]models.KeywordUsage)
	for _, u := range usages {
		page := strings.TrimSpace(u.Page)
		if page == "" {
			page = models.NewContentPage
			u.Page = page
		}
		if _, ok := byPage[page]; !ok {
			pages = append(pages, page)
		}
		byPage[page] = append(byPage[page], u)
	}

	strategy := models.SiteStrategy{
		Spokes:              []models.SpokePlan{},
		Recommendations:     []models.Recommendation{},
		OpportunitiesByPage: byPage,
	}

	for _, page := range pages {
		keywords := byPage[page]
		pageType := classifyPage(page, keywords)

		if pageType == models.PageTypeHomepage && strategy.Hub == nil {
			selected := selectPrimaryKeywords(keywords, models.MaxHubKeywords)
			strategy.Hub = &models.HubPlan{
				Page:            page,
				Type:            pageType,
				PrimaryKeywords: selected,
				Strategy:        strategyText(pageType, selected),
			}
			continue
		}

		selected := selectPrimaryKeywords(keywords, models.MaxSpokeKeywords)
		strategy.Spokes = append(strategy.Spokes, models.SpokePlan{
			Page:            page,
			Type:            pageType,
			PrimaryKeywords: selected,
			Strategy:        strategyText(pageType, selected),
		})
	}

	strategy.Recommendations = buildRecommendations(strategy, profile)
	return strategy
}

// classifyPage aplica as regras na ordem fixa; service é o padrão.
// As dicas de URL olham só o caminho, não o domínio.
func classifyPage(page string, keywords []models.KeywordUsage) models.PageType {
	path, ok := pagePath(page)
	if ok && isRootPath(path) {
		return models.PageTypeHomepage
	}

	path = strings.ToLower(path)
	for _, rule := range pageRules {
		if ok && containsAny(path, rule.urlHints) {
			return rule.pageType
		}
		for _, kw := range keywords {
			if containsAny(strings.ToLower(kw.Keyword), rule.kwHints) {
				return rule.pageType
			}
		}
	}
	return models.PageTypeService
}

// pagePath extrai o caminho da página. Falso para "New Content" e URLs inválidas.
func pagePath(page string) (string, bool) {
	if page == models.NewContentPage || page == "" {
		return "", false
	}
	u, err := url.Parse(page)
	if err != nil {
		return "", false
	}
	if u.Host == "" && !strings.HasPrefix(page, "/") {
		// "example.com/servicos" sem esquema
		if _, rest, found := strings.Cut(page, "/"); found {
			return "/" + rest, true
		}
		return "", true
	}
	return u.Path, true
}

func isRootPath(path string) bool {
	switch strings.ToLower(strings.TrimRight(path, "/")) {
	case "", "/index.html", "/index.php", "/home":
		return true
	}
	return false
}

func containsAny(s string, hints []string) bool {
	for _, h := range hints {
		if strings.Contains(s, h) {
			return true
		}
	}
	return false
}

// selectPrimaryKeywords escolhe até limit keywords distintas por prioridade desc
func selectPrimaryKeywords(usages []models.KeywordUsage, limit int) []string {
	sorted := make([]models.KeywordUsage, len(usages))
	copy(sorted, usages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	selected := make([]string, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, u := range sorted {
		if len(selected) == limit {
			break
		}
		kw := normalizeKeyword(u.Keyword)
		if _, ok := seen[kw]; ok || kw == "" {
			continue
		}
		seen[kw] = struct{}{}
		selected = append(selected, kw)
	}
	return selected
}

func strategyText(pageType models.PageType, keywords []string) string {
	tmpl, ok := strategyTemplates[pageType]
	if !ok {
		tmpl = genericStrategy
	}
	return fmt.Sprintf(tmpl, keywordPhrase(keywords))
}

// keywordPhrase interpola as 1 ou 2 primeiras keywords
func keywordPhrase(keywords []string) string {
	switch len(keywords) {
	case 0:
		return "your core services"
	case 1:
		return fmt.Sprintf("%q", keywords[0])
	default:
		return fmt.Sprintf("%q and %q", keywords[0], keywords[1])
	}
}

// buildRecommendations: hub (se houver), uma por spoke e a de SEO local, nessa ordem
func buildRecommendations(strategy models.SiteStrategy, profile models.BusinessProfile) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(strategy.Spokes)+2)

	if strategy.Hub != nil {
		recs = append(recs, models.Recommendation{
			Type:        models.RecommendationOptimizeHub,
			Priority:    "high",
			Title:       "Optimize your homepage as the hub",
			Description: fmt.Sprintf("Target %s on the homepage and link to all %d spoke pages.", keywordPhrase(strategy.Hub.PrimaryKeywords), len(strategy.Spokes)),
			Page:        strategy.Hub.Page,
		})
	}

	for _, spoke := range strategy.Spokes {
		recs = append(recs, spokeRecommendation(spoke))
	}

	place := profile.Location
	if strings.TrimSpace(place) == "" {
		place = "your service area"
	}
	recs = append(recs, models.Recommendation{
		Type:        models.RecommendationLocalSEO,
		Priority:    "medium",
		Title:       "Strengthen local SEO",
		Description: fmt.Sprintf("Keep your Google Business Profile, NAP citations and location pages consistent for %s, and collect fresh reviews.", place),
	})

	return recs
}

func spokeRecommendation(spoke models.SpokePlan) models.Recommendation {
	if spoke.Page != models.NewContentPage {
		return models.Recommendation{
			Type:        models.RecommendationCreateContent,
			Priority:    "medium",
			Title:       "Expand " + spoke.Page,
			Description: fmt.Sprintf("Add sections targeting %s and link back to the hub page.", keywordPhrase(spoke.PrimaryKeywords)),
			Page:        spoke.Page,
		}
	}

	title := "Create new content pages"
	paths := make([]string, 0, len(spoke.PrimaryKeywords))
	for _, kw := range spoke.PrimaryKeywords {
		paths = append(paths, "/"+utils.Slugify(kw))
	}
	if len(spoke.PrimaryKeywords) > 0 {
		title = "Create a page for " + utils.DisplayName(spoke.PrimaryKeywords[0])
	}
	description := fmt.Sprintf("Publish dedicated pages for %s.", keywordPhrase(spoke.PrimaryKeywords))
	if len(paths) > 0 {
		description += " Suggested URLs: " + strings.Join(paths, ", ") + "."
	}

	return models.Recommendation{
		Type:        models.RecommendationCreateContent,
		Priority:    "high",
		Title:       title,
		Description: description,
		Page:        spoke.Page,
	}
}
