package models

import (
	"strconv"
	"strings"
)

// PerformanceRow é uma linha do inventário de keywords (Search Console ou equivalente).
// Uma keyword pode aparecer em várias páginas; é isso que a análise de canibalização observa.
type PerformanceRow struct {
	Keyword     string  `json:"keyword" validate:"required" example:"car wash austin"`
	Page        string  `json:"page" validate:"required" example:"https://example.com/"`
	Clicks      int     `json:"clicks" validate:"min=0" example:"12"`
	Impressions int     `json:"impressions" validate:"min=0" example:"340"`
	Position    float64 `json:"position" validate:"min=0" example:"8.4"`
	CTR         string  `json:"ctr" example:"3.5%"`
}

// CTRValue converte o CTR percentual ("3.5%") para número (3.5).
// Valores inválidos ou vazios retornam 0.
func (r PerformanceRow) CTRValue() float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(r.CTR), "%"))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ExistingKeywords retorna as keywords do inventário em minúsculas, sem repetições
func ExistingKeywords(rows []PerformanceRow) []string {
	seen := make(map[string]struct{}, len(rows))
	keywords := make([]string, 0, len(rows))
	for _, row := range rows {
		kw := strings.ToLower(strings.TrimSpace(row.Keyword))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}
	return keywords
}
