package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	Ai             AIConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	NatsURL            string // empty disables the domain event bus
	RedisURL           string // empty keeps websocket fan-out in-process
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "sqlite"
	Connection string
}

type AIConfig struct {
	LLMProvider     string // "ollama", "huggingface" or "openai"
	LLMModel        string
	LLMBaseURL      string
	OpenAIAPIKey    string
	HuggingFaceKey  string
	Temperature     float64
	BreakerDisabled bool
}

type RecommendationConfig struct {
	SearchCooldown    time.Duration
	CatalogFetchLimit int
	SessionTTL        time.Duration
	PosterHosts       []string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:     getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:        getEnv("LLM_MODEL", "llama3"),
			LLMBaseURL:      getEnv("LLM_BASE_URL", ""),
			OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
			HuggingFaceKey:  getEnv("HUGGINGFACE_API_KEY", ""),
			Temperature:     getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			BreakerDisabled: getEnvAsBool("LLM_BREAKER_DISABLED", false),
		},
		Recommendation: RecommendationConfig{
			SearchCooldown:    getEnvAsDuration("SEARCH_COOLDOWN", 5*time.Second),
			CatalogFetchLimit: getEnvAsInt("CATALOG_FETCH_LIMIT", 500),
			SessionTTL:        getEnvAsDuration("SESSION_TTL", time.Hour),
			PosterHosts:       getEnvAsList("POSTER_ALLOWED_HOSTS", nil),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
