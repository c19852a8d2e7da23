package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/prefeitura-rio/app-seo-keywords/internal/app"
	"github.com/prefeitura-rio/app-seo-keywords/internal/config"
	"github.com/prefeitura-rio/app-seo-keywords/internal/gsc"
	"github.com/prefeitura-rio/app-seo-keywords/internal/logging"
	"github.com/prefeitura-rio/app-seo-keywords/internal/models"
)

// CLIFlags define os parâmetros da análise offline
type CLIFlags struct {
	CSV          string        `help:"Exportação CSV do Search Console" short:"c"`
	BusinessType string        `help:"Tipo de negócio" short:"b" required:""`
	CustomType   string        `help:"Tipo customizado quando business-type=Other"`
	Location     string        `help:"Cidade e estado, ex.: 'Austin, TX'" short:"l" required:""`
	Website      string        `help:"URL do site" short:"w"`
	User         string        `help:"ID do usuário usado na chave de cache" default:"cli"`
	Force        bool          `help:"Ignora o cache"`
	Output       string        `help:"Arquivo de saída (default: stdout)" short:"o"`
	Timeout      time.Duration `help:"Timeout total da análise" default:"2m"`
}

func main() {
	var flags CLIFlags
	kong.Parse(&flags,
		kong.Name("analyze"),
		kong.Description("Gera oportunidades de keywords a partir de uma exportação do Search Console"),
	)

	cfg := config.LoadConfig()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := run(flags, cfg); err != nil {
		log.Fatal("análise falhou", "error", err)
	}
}

func run(flags CLIFlags, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), flags.Timeout)
	defer cancel()

	var rows []models.PerformanceRow
	if flags.CSV != "" {
		f, err := os.Open(flags.CSV)
		if err != nil {
			return fmt.Errorf("erro ao abrir CSV: %w", err)
		}
		rows, err = gsc.ReadRows(f)
		f.Close()
		if err != nil {
			return err
		}
		log.Info("CSV carregado", "rows", len(rows))
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " gerando oportunidades..."
	s.Start()

	resp, err := application.Engine.Run(ctx, &models.OpportunitiesRequest{
		PerformanceRows: rows,
		BusinessProfile: &models.BusinessProfile{
			BusinessType:       flags.BusinessType,
			CustomBusinessType: flags.CustomType,
			Location:           flags.Location,
			WebsiteURL:         flags.Website,
		},
		UserID:       flags.User,
		ForceRefresh: flags.Force,
	})
	s.Stop()
	if err != nil {
		return err
	}

	log.Info("análise concluída",
		"opportunities", resp.TotalOpportunities,
		"conflicts", resp.CannibalizationAnalysis.TotalConflicts,
		"from_cache", resp.FromCache,
	)

	out := os.Stdout
	if flags.Output != "" {
		f, err := os.Create(flags.Output)
		if err != nil {
			return fmt.Errorf("erro ao criar arquivo de saída: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
