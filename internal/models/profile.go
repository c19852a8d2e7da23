package models

import "strings"

// OtherBusinessType é o valor de businessType que habilita o tipo customizado
const OtherBusinessType = "Other"

// BusinessProfile descreve o negócio para o qual as oportunidades são geradas
type BusinessProfile struct {
	BusinessType       string `json:"businessType" validate:"required" example:"Car Wash"`
	CustomBusinessType string `json:"customBusinessType,omitempty" example:"Pet Grooming"`
	Location           string `json:"location" validate:"required" example:"Austin, TX"`
	WebsiteURL         string `json:"websiteUrl,omitempty" example:"https://example.com"`
}

// EffectiveType retorna o tipo de negócio efetivo.
// customBusinessType só substitui businessType quando businessType == "Other".
func (p BusinessProfile) EffectiveType() string {
	if p.BusinessType == OtherBusinessType && strings.TrimSpace(p.CustomBusinessType) != "" {
		return strings.TrimSpace(p.CustomBusinessType)
	}
	return strings.TrimSpace(p.BusinessType)
}

// City retorna o primeiro segmento da localização (até a primeira vírgula)
// Exemplo: "Austin, TX" -> "Austin"
func (p BusinessProfile) City() string {
	city, _, _ := strings.Cut(p.Location, ",")
	return strings.TrimSpace(city)
}

// IsDegenerate indica se o perfil não tem dados suficientes para gerar oportunidades
func (p BusinessProfile) IsDegenerate() bool {
	return p.EffectiveType() == "" || strings.TrimSpace(p.Location) == ""
}
