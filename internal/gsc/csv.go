// Package gsc lê exportações CSV do Google Search Console como linhas de desempenho.
package gsc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

var ErrMissingKeywordColumn = errors.New("CSV sem coluna de keyword")

// aliases dos cabeçalhos aceitos, já em minúsculas
var columnAliases = map[string][]string{
	"keyword":     {"keyword", "query", "top queries", "queries"},
	"page":        {"page", "top pages", "landing page", "url"},
	"clicks":      {"clicks"},
	"impressions": {"impressions"},
	"ctr":         {"ctr"},
	"position":    {"position", "avg. position", "average position"},
}

// ReadRows lê o CSV. Linhas sem keyword são ignoradas.
// Números com separador de milhar ("1,234") são aceitos; valores inválidos viram zero.
func ReadRows(r io.Reader) ([]models.PerformanceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}
	index := mapColumns(header)
	if _, ok := index["keyword"]; !ok {
		return nil, ErrMissingKeywordColumn
	}

	var rows []models.PerformanceRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro na linha %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		keyword := field("keyword")
		if keyword == "" {
			continue
		}

		rows = append(rows, models.PerformanceRow{
			Keyword:     keyword,
			Page:        field("page"),
			Clicks:      parseInt(field("clicks")),
			Impressions: parseInt(field("impressions")),
			Position:    parseFloat(field("position")),
			CTR:         normalizeCTR(field("ctr")),
		})
	}

	return rows, nil
}

func mapColumns(header []string) map[string]int {
	index := make(map[string]int)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for column, aliases := range columnAliases {
			if _, done := index[column]; done {
				continue
			}
			for _, alias := range aliases {
				if h == alias {
					index[column] = i
				}
			}
		}
	}
	return index
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// normalizeCTR garante o formato "N%"; vazio continua vazio
func normalizeCTR(s string) string {
	if s == "" || strings.HasSuffix(s, "%") {
		return s
	}
	return s + "%"
}
