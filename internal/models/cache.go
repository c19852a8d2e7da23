package models

import "time"

// CacheEntry é o resultado completo do pipeline armazenado no cache
type CacheEntry struct {
	Key                     string                  `json:"key"`
	Opportunities           []Opportunity           `json:"opportunities"`
	CannibalizationAnalysis CannibalizationAnalysis `json:"cannibalizationAnalysis"`
	HubAndSpokeStrategy     SiteStrategy            `json:"hubAndSpokeStrategy"`
	Timestamp               int64                   `json:"timestamp"` // epoch em milissegundos
}

// Age retorna a idade da entrada em relação a now
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(e.Timestamp))
}
