package cache

import (
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/prefeitura-rio/app-seo-keywords/internal/utils"
)

// DefaultUserID é usado quando a requisição não identifica o usuário
const DefaultUserID = "anonymous"

// BuildKey monta a chave determinística: usuário, tipo efetivo e URL sanitizada
// Exemplo: ("u1", Car Wash, https://example.com) -> "u1_Car_Wash_example_com"
func BuildKey(userID string, profile models.BusinessProfile) string {
	if userID == "" {
		userID = DefaultUserID
	}
	return userID + "_" + utils.SanitizeKeyPart(profile.EffectiveType()) + "_" + utils.SanitizeKeyPart(profile.WebsiteURL)
}
