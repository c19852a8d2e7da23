package opportunity

import (
	"strconv"
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/prefeitura-rio/app-seo-keywords/internal/opportunity/generator"
)

// minSubstringLen é o tamanho mínimo (exclusivo) das duas strings para o casamento por substring.
// Evita que termos curtos como "wash" filtrem demais.
const minSubstringLen = 10

// FilterExisting remove candidatos que já correspondem a keywords do inventário
// e deduplica os candidatos entre si (a primeira ocorrência vence).
// existing deve estar em minúsculas.
func FilterExisting(candidates []models.OpportunityCandidate, existing []string) []models.OpportunityCandidate {
	kept := make([]models.OpportunityCandidate, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		kw := normalizeKeyword(c.Keyword)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		if matchesExisting(kw, existing) {
			continue
		}
		seen[kw] = struct{}{}
		kept = append(kept, c)
	}

	return kept
}

// matchesExisting aplica a regra: igualdade exata, ou substring em qualquer direção
// quando ambas as strings têm mais de minSubstringLen caracteres
func matchesExisting(kw string, existing []string) bool {
	for _, e := range existing {
		if kw == e {
			return true
		}
		if len(kw) > minSubstringLen && len(e) > minSubstringLen &&
			(strings.Contains(kw, e) || strings.Contains(e, kw)) {
			return true
		}
	}
	return false
}

// FallbackOpportunities devolve o conjunto fixo de 3 candidatos, garantindo que nenhum
// seja igual a uma keyword existente. Colisões são trocadas por variações numeradas.
func FallbackOpportunities(p models.BusinessProfile, existing []string) []models.OpportunityCandidate {
	taken := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		taken[e] = struct{}{}
	}

	fallback := generator.FallbackCandidates(p)
	out := make([]models.OpportunityCandidate, 0, len(fallback))
	for _, c := range fallback {
		kw := normalizeKeyword(c.Keyword)
		if _, ok := taken[kw]; ok {
			base := kw + " guide"
			kw = base
			for n := 2; ; n++ {
				if _, ok := taken[kw]; !ok {
					break
				}
				kw = base + " " + strconv.Itoa(n)
			}
			c.Keyword = kw
		}
		taken[kw] = struct{}{}
		out = append(out, c)
	}
	return out
}

func normalizeKeyword(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
