// Package config gerencia configurações da aplicação via variáveis de ambiente.
// Nenhuma variável é obrigatória: sem GEMINI_API_KEY o serviço roda só com os geradores por regras.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//
// ## Gemini
//   - GEMINI_API_KEY: Chave da API Google Gemini (opcional)
//   - GEMINI_CHAT_MODEL: Modelo de geração de texto (default: gemini-2.0-flash)
//   - GEMINI_REQUESTS_PER_MINUTE: Limite de chamadas por minuto (default: 60)
//
// ## Cache
//   - CACHE_BACKEND: memory, badger, sqlite ou redis (default: memory)
//   - CACHE_TTL_HOURS: Validade dos resultados em horas (default: 168)
//   - BADGER_PATH: Diretório do badger (default: ./data/badger)
//   - SQLITE_PATH: Arquivo do sqlite (default: ./data/cache.db)
//   - REDIS_URL: URL do redis, ex.: redis://localhost:6379/0
//
// ## Pipeline
//   - TEMPLATES_FILE: YAML que sobrepõe a tabela de templates por tipo de negócio
//   - SITE_FETCH_TIMEOUT_SECONDS: Timeout da análise do site (default: 15)
//   - SITE_FETCH_MAX_BYTES: Tamanho máximo lido da página (default: 2097152)
//   - MAX_OPPORTUNITIES: Máximo de oportunidades devolvidas (default: 50)
//   - EXCLUDE_LOW_PERFORMING: Remove oportunidades ligadas a páginas com CTR baixo (default: false)
//
// ## Observabilidade
//   - TRACING_ENABLED: Habilita OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
//   - LOG_LEVEL: debug, info, warn ou error (default: info)
//   - LOG_FORMAT: text ou json (default: text)
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Gemini configuration
	GeminiAPIKey            string
	GeminiChatModel         string
	GeminiRequestsPerMinute int

	// Cache configuration
	CacheBackend string
	CacheTTL     time.Duration
	BadgerPath   string
	SQLitePath   string
	RedisURL     string

	// Pipeline configuration
	TemplatesFile        string
	SiteFetchTimeout     time.Duration
	SiteFetchMaxBytes    int64
	MaxOpportunities     int
	ExcludeLowPerforming bool

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		GeminiAPIKey:            getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel:         getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),
		GeminiRequestsPerMinute: getEnvInt("GEMINI_REQUESTS_PER_MINUTE", 60),

		CacheBackend: strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
		CacheTTL:     getEnvDuration("CACHE_TTL_HOURS", time.Hour, 168*time.Hour),
		BadgerPath:   getEnv("BADGER_PATH", "./data/badger"),
		SQLitePath:   getEnv("SQLITE_PATH", "./data/cache.db"),
		RedisURL:     getEnv("REDIS_URL", ""),

		TemplatesFile:        getEnv("TEMPLATES_FILE", ""),
		SiteFetchTimeout:     getEnvDuration("SITE_FETCH_TIMEOUT_SECONDS", time.Second, 15*time.Second),
		SiteFetchMaxBytes:    int64(getEnvInt("SITE_FETCH_MAX_BYTES", 2<<20)),
		MaxOpportunities:     getEnvInt("MAX_OPPORTUNITIES", 50),
		ExcludeLowPerforming: getEnvBool("EXCLUDE_LOW_PERFORMING", false),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// HasGemini indica se há chave para o gerador de IA
func (c *Config) HasGemini() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvDuration lê um inteiro na unidade informada (ex.: CACHE_TTL_HOURS em horas)
func getEnvDuration(key string, unit, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && intVal > 0 {
			return time.Duration(intVal) * unit
		}
	}
	return defaultValue
}
