package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	LogLevel    string

	DatabaseURL string
	DBMaxConns  int
	RedisURL    string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	CookieSecure  bool
	FrontendURL   string

	// Media
	UploadDir     string
	PublicBaseURL string
	MaxUploadMB   int

	// Skills matching
	MatchScorer  string
	MatchTimeout time.Duration
	MatcherBin   string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),
		RedisURL:    os.Getenv("REDIS_URL"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "job-portal"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 24*60),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),

		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 15),

		MatchScorer:  getEnv("MATCH_SCORER", "inline"),
		MatchTimeout: getEnvDuration("MATCH_TIMEOUT", 10*time.Second),
		MatcherBin:   getEnv("MATCHER_BIN", "resume-matcher"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "job-portal"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
	}
}

// IsProduction reports whether the service runs with production defaults.
func (c Config) IsProduction() bool { return c.Environment == "production" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
