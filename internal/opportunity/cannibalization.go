package opportunity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

// UsagesFromOpportunities mapeia oportunidades para a página sentinela "New Content"
func UsagesFromOpportunities(opportunities []models.Opportunity) []models.KeywordUsage {
	usages := make([]models.KeywordUsage, 0, len(opportunities))
	for _, o := range opportunities {
		page := models.NewContentPage
		if o.CurrentPerformance.Page != nil {
			page = *o.CurrentPerformance.Page
		}
		usages = append(usages, models.KeywordUsage{
			Keyword: o.Keyword,
			PagePerformance: models.PagePerformance{
				Page:        page,
				Position:    o.CurrentPerformance.Position,
				CTR:         o.CurrentPerformance.CTR,
				Impressions: o.CurrentPerformance.Impressions,
				Clicks:      o.CurrentPerformance.Clicks,
				Priority:    o.Priority,
			},
		})
	}
	return usages
}

// UsagesFromRows mapeia o inventário para suas páginas reais, com prioridade derivada da posição
func UsagesFromRows(rows []models.PerformanceRow) []models.KeywordUsage {
	usages := make([]models.KeywordUsage, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Keyword) == "" || strings.TrimSpace(r.Page) == "" {
			continue
		}
		ctr := r.CTR
		if ctr == "" {
			ctr = "0%"
		}
		usages = append(usages, models.KeywordUsage{
			Keyword: r.Keyword,
			PagePerformance: models.PagePerformance{
				Page:        strings.TrimSpace(r.Page),
				Position:    r.Position,
				CTR:         ctr,
				Impressions: r.Impressions,
				Clicks:      r.Clicks,
				Priority:    positionPriority(r.Position),
			},
		})
	}
	return usages
}

// positionPriority converte a posição média no Google em prioridade 1..10.
// Posição 0 significa sem dado.
func positionPriority(position float64) int {
	switch {
	case position <= 0:
		return models.MinPriority
	case position <= 3:
		return 10
	case position <= 5:
		return 9
	case position <= 10:
		return 8
	case position <= 20:
		return 6
	case position <= 30:
		return 4
	case position <= 50:
		return 2
	default:
		return models.MinPriority
	}
}

// AnalyzeCannibalization agrupa as keywords sem diferenciar maiúsculas e reporta as que
// aparecem em duas ou mais páginas distintas. Os grupos seguem a ordem da primeira ocorrência.
func AnalyzeCannibalization(usages []models.KeywordUsage) models.CannibalizationAnalysis {
	var order []string
	members := make(map[string][]models.PagePerformance)

	for _, u := range usages {
		kw := normalizeKeyword(u.Keyword)
		if kw == "" {
			continue
		}
		if _, ok := members[kw]; !ok {
			order = append(order, kw)
		}
		members[kw] = append(members[kw], u.PagePerformance)
	}

	analysis := models.CannibalizationAnalysis{
		Groups:                 []models.CannibalizationGroup{},
		PrimaryPageAssignments: map[string]models.PrimaryPageAssignment{},
	}

	for _, kw := range order {
		pages := distinctPages(members[kw])
		if len(pages) < 2 {
			continue
		}

		primary := pages[0].Page
		removeFrom := make([]string, 0, len(pages)-1)
		for _, p := range pages[1:] {
			removeFrom = append(removeFrom, p.Page)
		}

		analysis.Groups = append(analysis.Groups, models.CannibalizationGroup{
			Keyword:        kw,
			Pages:          pages,
			PrimaryPage:    primary,
			Recommendation: fmt.Sprintf("Make %s the primary page for %q. Consolidate, redirect or de-optimize: %s.", primary, kw, strings.Join(removeFrom, ", ")),
		})
		analysis.PrimaryPageAssignments[kw] = models.PrimaryPageAssignment{
			PrimaryPage: primary,
			Reason:      fmt.Sprintf("Highest priority (%d) among %d pages competing for %q", pages[0].Priority, len(pages), kw),
			RemoveFrom:  removeFrom,
		}
	}

	analysis.TotalConflicts = len(analysis.Groups)
	return analysis
}

// distinctPages ordena por prioridade desc (estável) e mantém a primeira ocorrência de cada página
func distinctPages(members []models.PagePerformance) []models.PagePerformance {
	sorted := make([]models.PagePerformance, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	seen := make(map[string]struct{}, len(sorted))
	pages := sorted[:0]
	for _, m := range sorted {
		if _, ok := seen[m.Page]; ok {
			continue
		}
		seen[m.Page] = struct{}{}
		pages = append(pages, m)
	}
	return pages
}
