package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"gopkg.in/yaml.v3"
)

// KeywordTemplate é um padrão de keyword com placeholders {type}, {city} e {year}
type KeywordTemplate struct {
	Pattern      string          `yaml:"pattern"`
	Category     models.Category `yaml:"category"`
	Priority     int             `yaml:"priority"`
	SearchVolume string          `yaml:"search_volume"`
	Difficulty   string          `yaml:"difficulty"`
	ContentIdea  string          `yaml:"content_idea"`
}

// TemplateTable mapeia tipo de negócio (minúsculo) para seus templates.
// Tipos desconhecidos caem na entrada "other".
type TemplateTable map[string][]KeywordTemplate

const otherTemplateKey = "other"

// Lookup retorna os templates do tipo de negócio ou os de "other"
func (t TemplateTable) Lookup(businessType string) []KeywordTemplate {
	if templates, ok := t[strings.ToLower(strings.TrimSpace(businessType))]; ok {
		return templates
	}
	return t[otherTemplateKey]
}

// DefaultTemplates retorna a tabela embutida de templates por tipo de negócio
func DefaultTemplates() TemplateTable {
	return TemplateTable{
		"car wash": {
			{"car wash {city}", models.CategoryLocationBased, 9, "High", "Medium", "Location page for car wash services in {city}"},
			{"hand car wash", models.CategoryServiceBased, 8, "Medium", "Medium", "Service page explaining the hand wash process"},
			{"mobile car detailing {city}", models.CategoryServiceBased, 8, "Medium", "Medium", "Mobile detailing service page with packages and coverage map"},
			{"oil change {city}", models.CategoryServiceBased, 7, "High", "Hard", "Quick lube and oil change service page"},
			{"how to remove water spots from car", models.CategoryProblemBased, 6, "Medium", "Easy", "How-to guide on preventing and removing water spots"},
			{"touchless vs soft touch car wash", models.CategoryComparisonBased, 6, "Low", "Easy", "Comparison article of wash methods"},
			{"car wash membership {city}", models.CategoryServiceBased, 7, "Medium", "Easy", "Unlimited wash club page with pricing tiers"},
			{"winter car wash salt removal", models.CategoryTimeBased, 5, "Low", "Easy", "Seasonal guide on undercarriage washes"},
		},
		"restaurant": {
			{"restaurants in {city}", models.CategoryLocationBased, 9, "Very High", "Hard", "Location page with menu highlights and directions"},
			{"{city} restaurant delivery", models.CategoryServiceBased, 8, "High", "Medium", "Delivery and takeout ordering page"},
			{"private dining {city}", models.CategoryServiceBased, 7, "Medium", "Medium", "Private events and catering page"},
			{"gluten free options near me", models.CategoryProblemBased, 6, "Medium", "Easy", "Dietary options page"},
			{"brunch vs lunch menu", models.CategoryComparisonBased, 5, "Low", "Easy", "Menu comparison post"},
			{"holiday dinner reservations {year}", models.CategoryTimeBased, 6, "Medium", "Easy", "Seasonal reservations page"},
		},
		"dentist": {
			{"dentist in {city}", models.CategoryLocationBased, 9, "High", "Hard", "Location page for the dental practice"},
			{"emergency dentist {city}", models.CategoryServiceBased, 9, "High", "Medium", "Emergency dental care page with hours"},
			{"teeth whitening {city}", models.CategoryServiceBased, 7, "Medium", "Medium", "Whitening treatment page with pricing"},
			{"tooth pain relief", models.CategoryProblemBased, 6, "High", "Hard", "Guide on causes of tooth pain and when to see a dentist"},
			{"invisalign vs braces", models.CategoryComparisonBased, 6, "Medium", "Medium", "Comparison article of orthodontic options"},
			{"back to school dental checkup", models.CategoryTimeBased, 5, "Low", "Easy", "Seasonal checkup reminder post"},
		},
		"plumber": {
			{"plumber {city}", models.CategoryLocationBased, 9, "High", "Hard", "Location page for plumbing services"},
			{"emergency plumber {city}", models.CategoryServiceBased, 9, "High", "Medium", "24/7 emergency plumbing page"},
			{"water heater repair {city}", models.CategoryServiceBased, 7, "Medium", "Medium", "Water heater repair and replacement page"},
			{"how to fix a leaking faucet", models.CategoryProblemBased, 6, "High", "Medium", "DIY guide with when-to-call advice"},
			{"tankless vs tank water heater", models.CategoryComparisonBased, 6, "Medium", "Easy", "Comparison article of water heaters"},
			{"frozen pipes prevention", models.CategoryTimeBased, 5, "Medium", "Easy", "Winter pipe protection guide"},
		},
		"hair salon": {
			{"hair salon {city}", models.CategoryLocationBased, 9, "High", "Hard", "Location page for the salon"},
			{"balayage {city}", models.CategoryServiceBased, 8, "Medium", "Medium", "Color services page with gallery"},
			{"how to fix frizzy hair", models.CategoryProblemBased, 6, "Medium", "Easy", "Hair care guide"},
			{"keratin vs brazilian blowout", models.CategoryComparisonBased, 6, "Medium", "Easy", "Treatment comparison article"},
			{"prom hairstyles {year}", models.CategoryTimeBased, 5, "Medium", "Easy", "Seasonal styles lookbook"},
		},
		"auto repair": {
			{"auto repair {city}", models.CategoryLocationBased, 9, "High", "Hard", "Location page for the repair shop"},
			{"brake repair {city}", models.CategoryServiceBased, 8, "High", "Medium", "Brake service page"},
			{"oil change near me", models.CategoryServiceBased, 8, "Very High", "Hard", "Oil change service page with pricing"},
			{"check engine light on", models.CategoryProblemBased, 6, "High", "Medium", "Guide to common check engine light causes"},
			{"synthetic vs conventional oil", models.CategoryComparisonBased, 6, "Medium", "Easy", "Oil type comparison article"},
			{"winter car maintenance checklist", models.CategoryTimeBased, 5, "Medium", "Easy", "Seasonal maintenance checklist"},
		},
		"law firm": {
			{"lawyer {city}", models.CategoryLocationBased, 9, "High", "Hard", "Location page for the firm"},
			{"free consultation attorney {city}", models.CategoryServiceBased, 8, "Medium", "Hard", "Consultation booking page"},
			{"what to do after a car accident", models.CategoryProblemBased, 7, "High", "Medium", "Step-by-step legal guide"},
			{"mediation vs litigation", models.CategoryComparisonBased, 5, "Low", "Easy", "Comparison article of dispute options"},
		},
		otherTemplateKey: {
			{"{type} {city}", models.CategoryLocationBased, 9, "Medium", "Medium", "Location page for {type} services in {city}"},
			{"{type} services", models.CategoryServiceBased, 8, "Medium", "Medium", "Overview page of every {type} service offered"},
			{"{type} cost", models.CategoryProblemBased, 6, "Medium", "Easy", "Pricing guide answering what {type} costs"},
			{"how to choose a {type}", models.CategoryComparisonBased, 6, "Low", "Easy", "Buyer's guide comparing {type} providers"},
			{"{type} {year} guide", models.CategoryTimeBased, 5, "Low", "Easy", "Yearly guide to {type}"},
		},
	}
}

// LoadTemplates lê uma tabela em YAML e sobrepõe as entradas da tabela padrão
func LoadTemplates(path string) (TemplateTable, error) {
	table := DefaultTemplates()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler templates %s: %w", path, err)
	}

	var custom TemplateTable
	if err := yaml.Unmarshal(data, &custom); err != nil {
		return nil, fmt.Errorf("erro ao parsear templates %s: %w", path, err)
	}

	for businessType, templates := range custom {
		for i, t := range templates {
			if strings.TrimSpace(t.Pattern) == "" {
				return nil, fmt.Errorf("template %d de %q sem pattern", i, businessType)
			}
			if !t.Category.IsValid() {
				return nil, fmt.Errorf("template %q com categoria inválida %q", t.Pattern, t.Category)
			}
		}
		table[strings.ToLower(strings.TrimSpace(businessType))] = templates
	}

	return table, nil
}
