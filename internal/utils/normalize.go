package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldAccents remove acentos e diacríticos
// Exemplo: "Café São Paulo" -> "Cafe Sao Paulo"
func FoldAccents(s string) string {
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// DisplayName formata uma keyword para exibição em títulos
// Exemplo: "mobile detailing austin" -> "Mobile Detailing Austin"
func DisplayName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return s
	}
	return cases.Title(language.English).String(s)
}
