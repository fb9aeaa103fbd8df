package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// OpenRouterBaseURL is the fixed upstream endpoint for chat completions.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	DatabaseURL      string
	OpenRouterAPIKey string
	OpenRouterModel  string
	CORSAllowOrigins []string
	ResumePath       string
	SiteURL          string
	SiteName         string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience. Loaded one at
	// a time; a missing first file must not skip the second.
	_ = godotenv.Load(".env")
	_ = godotenv.Load("cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	if env == "production" && os.Getenv("OPENROUTER_API_KEY") == "" {
		log.Printf("OPENROUTER_API_KEY is empty; chat completions will fail until it is set")
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              env,
		DatabaseURL:      getEnv("DATABASE_URL", "sqlite://portfolio.db"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:  getEnv("OPENROUTER_MODEL", "deepseek/deepseek-r1:free"),
		CORSAllowOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		ResumePath:       getEnv("RESUME_PATH", "data/resume.json"),
		SiteURL:          getEnv("SITE_URL", "http://localhost:5173"),
		SiteName:         getEnv("SITE_NAME", "Portfolio"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
