package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/prefeitura-rio/app-seo-keywords/docs"
	"github.com/prefeitura-rio/app-seo-keywords/internal/api/routes"
	"github.com/prefeitura-rio/app-seo-keywords/internal/app"
	"github.com/prefeitura-rio/app-seo-keywords/internal/config"
	"github.com/prefeitura-rio/app-seo-keywords/internal/logging"
	"github.com/prefeitura-rio/app-seo-keywords/internal/observability"
)

// @title           Keyword Opportunity Engine API
// @version         1.0
// @description     API que gera oportunidades de keywords, análise de canibalização e estratégia hub and spoke a partir do perfil do negócio e dos dados do Search Console
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      services.staging.app.dados.rio/app-seo-keywords

func main() {
	cfg := config.LoadConfig()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingOptions{
		Enabled:  cfg.TracingEnabled,
		Endpoint: cfg.TracingEndpoint,
	})
	if err != nil {
		log.Warn("erro ao inicializar tracing, seguindo sem spans", "error", err)
	}
	defer shutdownTracer()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal("erro ao inicializar aplicação", "error", err)
	}
	defer application.Close()

	r := routes.SetupRouter(cfg, application.Engine, application.Cache)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("servidor iniciado", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("erro ao iniciar servidor", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("erro ao encerrar servidor", "error", err)
	}
}
