package utils

import (
	"regexp"
	"strings"
)

// MaxSlugLength limita o tamanho do caminho sugerido para páginas novas
const MaxSlugLength = 60

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converte uma keyword em caminho kebab-case para uma página nova
// Exemplo: "Best Café in Austin" -> "best-cafe-in-austin"
func Slugify(text string) string {
	slug := strings.ToLower(FoldAccents(text))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}
