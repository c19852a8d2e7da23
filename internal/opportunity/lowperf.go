package opportunity

import (
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

// Limiares de página com baixo desempenho
const (
	lowPerfMaxCTR         = 2.0
	lowPerfMinImpressions = 20
)

// LowPerformingPages retorna as páginas com CTR < 2% e mais de 20 impressões,
// cada uma com as keywords (minúsculas) do inventário
func LowPerformingPages(rows []models.PerformanceRow) map[string][]string {
	pages := make(map[string][]string)
	for _, r := range rows {
		if r.CTRValue() >= lowPerfMaxCTR || r.Impressions <= lowPerfMinImpressions {
			continue
		}
		kw := normalizeKeyword(r.Keyword)
		if kw == "" {
			continue
		}
		pages[r.Page] = append(pages[r.Page], kw)
	}
	return pages
}

// ExcludeLowPerforming remove oportunidades cuja keyword contém, ou está contida em, uma keyword
// de página de baixo desempenho, sem o limite de tamanho do filtro. Nunca esvazia a lista.
func ExcludeLowPerforming(opportunities []models.Opportunity, rows []models.PerformanceRow) []models.Opportunity {
	flagged := LowPerformingPages(rows)
	if len(flagged) == 0 {
		return opportunities
	}

	var keywords []string
	for _, kws := range flagged {
		keywords = append(keywords, kws...)
	}

	kept := make([]models.Opportunity, 0, len(opportunities))
	for _, o := range opportunities {
		if !containsEither(normalizeKeyword(o.Keyword), keywords) {
			kept = append(kept, o)
		}
	}

	if len(kept) == 0 {
		return opportunities
	}
	return kept
}

func containsEither(kw string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(kw, k) || strings.Contains(k, kw) {
			return true
		}
	}
	return false
}
