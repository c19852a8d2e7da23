package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-seo-keywords/internal/cache"
	middlewares "github.com/prefeitura-rio/app-seo-keywords/internal/middleware"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
	"github.com/prefeitura-rio/app-seo-keywords/internal/opportunity"
)

// OpportunityRunner executa o pipeline de oportunidades
type OpportunityRunner interface {
	Run(ctx context.Context, req *models.OpportunitiesRequest) (*models.OpportunitiesResponse, error)
}

// CacheInspector lê entradas do cache sem aplicar o TTL
type CacheInspector interface {
	Peek(ctx context.Context, key string) (*models.CacheEntry, error)
	IsFresh(entry *models.CacheEntry) bool
	Now() time.Time
}

// OpportunitiesHandler gerencia os endpoints de oportunidades de keywords
type OpportunitiesHandler struct {
	engine OpportunityRunner
	cache  CacheInspector
}

// NewOpportunitiesHandler cria o handler. cache pode ser nil.
func NewOpportunitiesHandler(engine OpportunityRunner, cache CacheInspector) *OpportunitiesHandler {
	return &OpportunitiesHandler{engine: engine, cache: cache}
}

// ErrorResponse é o corpo das respostas de erro
type ErrorResponse struct {
	Error   string            `json:"error" example:"Requisição inválida"`
	Details map[string]string `json:"details,omitempty"`
}

// CacheStatusResponse descreve a entrada em cache de um perfil
type CacheStatusResponse struct {
	Key                string    `json:"key" example:"user-1_Car_Wash_example_com"`
	Fresh              bool      `json:"fresh"`
	CacheAgeHours      float64   `json:"cacheAgeHours" example:"12.5"`
	GeneratedAt        time.Time `json:"generatedAt"`
	TotalOpportunities int       `json:"totalOpportunities" example:"18"`
	TotalConflicts     int       `json:"totalConflicts" example:"2"`
}

// GenerateOpportunities godoc
// @Summary Gera oportunidades de keywords
// @Description Recebe o perfil do negócio e o inventário de keywords do Search Console e devolve:
// @Description - **opportunities**: até 50 oportunidades deduplicadas, ordenadas por prioridade
// @Description - **cannibalizationAnalysis**: keywords disputadas por duas ou mais páginas
// @Description - **hubAndSpokeStrategy**: plano de estrutura do site (hub + spokes)
// @Description
// @Description O resultado fica em cache por 7 dias por (usuário, tipo de negócio, site). Use `forceRefresh` para regenerar.
// @Description O usuário vem de `userId` no corpo ou do header `X-User-ID`.
// @Tags opportunities
// @Accept json
// @Produce json
// @Param X-User-ID header string false "ID do usuário"
// @Param request body models.OpportunitiesRequest true "Perfil do negócio e inventário"
// @Success 200 {object} models.OpportunitiesResponse
// @Failure 400 {object} ErrorResponse "Requisição inválida"
// @Failure 500 {object} ErrorResponse "Erro interno"
// @Router /api/v1/opportunities [post]
func (h *OpportunitiesHandler) GenerateOpportunities(c *gin.Context) {
	var req models.OpportunitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Requisição inválida",
			Details: map[string]string{"body": "JSON malformado ou com tipos incorretos"},
		})
		return
	}

	if req.UserID == "" {
		req.UserID = middlewares.GetUserID(c)
	}

	resp, err := h.engine.Run(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, validationResponse(err))
			return
		}
		log.Error("erro ao gerar oportunidades", "error", err, "request_id", middlewares.GetRequestID(c))
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Não foi possível gerar as oportunidades. Tente novamente."})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCachedOpportunities godoc
// @Summary Consulta o cache de oportunidades
// @Description Informa se existe resultado em cache para o perfil, sua idade e se ainda está dentro da validade.
// @Description Informe `key` diretamente ou os campos do perfil usados para montar a chave.
// @Tags opportunities
// @Produce json
// @Param X-User-ID header string false "ID do usuário"
// @Param key query string false "Chave de cache explícita"
// @Param businessType query string false "Tipo de negócio" example("Car Wash")
// @Param customBusinessType query string false "Tipo customizado quando businessType=Other"
// @Param websiteUrl query string false "URL do site" example("https://example.com")
// @Success 200 {object} CacheStatusResponse
// @Failure 400 {object} ErrorResponse "Parâmetros insuficientes"
// @Failure 404 {object} ErrorResponse "Sem resultado em cache"
// @Failure 503 {object} ErrorResponse "Cache indisponível"
// @Router /api/v1/opportunities/cache [get]
func (h *OpportunitiesHandler) GetCachedOpportunities(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Cache não configurado"})
		return
	}

	key := c.Query("key")
	if key == "" {
		profile := models.BusinessProfile{
			BusinessType:       c.Query("businessType"),
			CustomBusinessType: c.Query("customBusinessType"),
			WebsiteURL:         c.Query("websiteUrl"),
		}
		if profile.EffectiveType() == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Parâmetros insuficientes",
				Details: map[string]string{"businessType": "is required when key is not provided"},
			})
			return
		}
		key = cache.BuildKey(middlewares.GetUserID(c), profile)
	}

	entry, err := h.cache.Peek(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Cache indisponível"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Nenhum resultado em cache"})
		return
	}

	c.JSON(http.StatusOK, CacheStatusResponse{
		Key:                key,
		Fresh:              h.cache.IsFresh(entry),
		CacheAgeHours:      opportunity.CacheAgeHours(entry, h.cache.Now()),
		GeneratedAt:        time.UnixMilli(entry.Timestamp).UTC(),
		TotalOpportunities: len(entry.Opportunities),
		TotalConflicts:     entry.CannibalizationAnalysis.TotalConflicts,
	})
}

func validationResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: "Requisição inválida"}

	var verr *models.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		resp.Details = verr.Fields
		return resp
	}
	if errors.Is(err, models.ErrNoUsableInput) {
		resp.Details = map[string]string{"performanceRows": "must not be empty when the business profile is incomplete"}
	}
	return resp
}
