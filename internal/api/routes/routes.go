package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-seo-keywords/internal/api/handlers"
	"github.com/prefeitura-rio/app-seo-keywords/internal/config"
	middlewares "github.com/prefeitura-rio/app-seo-keywords/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ResultCache reúne o que as rotas precisam do cache de resultados
type ResultCache interface {
	handlers.CacheInspector
	handlers.Pinger
}

// SetupRouter monta o engine HTTP. resultCache pode ser nil.
func SetupRouter(cfg *config.Config, engine handlers.OpportunityRunner, resultCache ResultCache) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(corsMiddleware())
	r.Use(middlewares.ExtractUserContext())
	if cfg.TracingEnabled {
		r.Use(middlewares.RequestTracing())
	}

	var (
		inspector handlers.CacheInspector
		pinger    handlers.Pinger
	)
	if resultCache != nil {
		inspector = resultCache
		pinger = resultCache
	}

	opportunitiesHandler := handlers.NewOpportunitiesHandler(engine, inspector)
	healthHandler := handlers.NewHealthHandler(pinger, cfg.HasGemini())

	api := r.Group("/api/v1")
	{
		api.POST("/opportunities", opportunitiesHandler.GenerateOpportunities)
		api.GET("/opportunities/cache", opportunitiesHandler.GetCachedOpportunities)
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID, X-User-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
