package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger é qualquer dependência que responde a um health check
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	cache         Pinger
	geminiEnabled bool
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(cache Pinger, geminiEnabled bool) *HealthHandler {
	return &HealthHandler{cache: cache, geminiEnabled: geminiEnabled}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se o cache responde. O Gemini é opcional e só é informado.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			response.Checks["cache"] = "failed"
			response.Status = "not_ready"
			response.Error = "Cache not available"
		} else {
			response.Checks["cache"] = "ok"
		}
	}

	if h.geminiEnabled {
		response.Checks["gemini"] = "configured"
	} else {
		response.Checks["gemini"] = "disabled"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
