package utils

import (
	"strings"
)

// SanitizeKeyPart prepara um trecho de chave de cache.
// Remove o esquema, troca cada caractere não alfanumérico por "_" e apara "_" nas pontas.
// Exemplo: "https://www.example.com/" -> "www_example_com"
func SanitizeKeyPart(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "://"); idx != -1 {
		s = s[idx+3:]
	}
	s = FoldAccents(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return strings.Trim(b.String(), "_")
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
