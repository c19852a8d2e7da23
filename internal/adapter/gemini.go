package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

var (
	ErrGeminiUnavailable = errors.New("cliente Gemini não inicializado")
	ErrEmptyResponse     = errors.New("resposta vazia do modelo")
)

// GeminiConfig configuração para o adapter Gemini
type GeminiConfig struct {
	ChatModel         string
	Timeout           time.Duration
	RequestsPerMinute int
	Temperature       float32
}

// DefaultGeminiConfig retorna configuração padrão
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		ChatModel:         "gemini-2.0-flash",
		Timeout:           30 * time.Second,
		RequestsPerMinute: 60,
		Temperature:       0.4,
	}
}

// GeminiAdapter gera texto via Gemini API.
// Cada chamada respeita o rate limit configurado e o timeout próprio.
type GeminiAdapter struct {
	client  *genai.Client
	config  GeminiConfig
	limiter *rate.Limiter
}

// NewGeminiClient cria o cliente genai. Sem API key retorna nil, nil.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar cliente Gemini: %w", err)
	}
	return client, nil
}

// NewGeminiAdapter cria um novo adapter para Gemini
func NewGeminiAdapter(client *genai.Client, cfg GeminiConfig) *GeminiAdapter {
	defaults := DefaultGeminiConfig()
	if cfg.ChatModel == "" {
		cfg.ChatModel = defaults.ChatModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = defaults.RequestsPerMinute
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaults.Temperature
	}

	return &GeminiAdapter{
		client:  client,
		config:  cfg,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 5),
	}
}

// IsAvailable verifica se o cliente está disponível
func (g *GeminiAdapter) IsAvailable() bool {
	return g != nil && g.client != nil
}

// GetChatModel retorna o modelo de chat configurado
func (g *GeminiAdapter) GetChatModel() string {
	return g.config.ChatModel
}

// Generate envia o prompt e retorna o texto bruto da resposta
func (g *GeminiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.IsAvailable() {
		return "", ErrGeminiUnavailable
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit Gemini: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	content := genai.NewContentFromText(prompt, genai.RoleUser)
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.config.Temperature),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.config.ChatModel, []*genai.Content{content}, config)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar conteúdo: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
