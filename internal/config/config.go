// README: Config loader with env defaults for HTTP, storage, catalog, rate limiting and external APIs.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr        string
		GinMode     string
		CORSOrigins []string
		// RateLimit is requests per minute per client; 0 disables it.
		RateLimit int
	}
	DB struct {
		// DSN empty runs without Postgres: built-in catalog, no AI call quota.
		DSN string
	}
	Redis struct {
		// Addr empty keeps the offline cache in memory.
		Addr     string
		CacheKey string
	}
	Catalog struct {
		File string
	}
	AI struct {
		GeminiKey    string
		MonthlyCalls int
	}
	Maps struct {
		APIKey string
	}
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env: %v", err)
	}

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("SATHI_HTTP_ADDR", ":8080")
	cfg.HTTP.GinMode = envOrDefault("SATHI_GIN_MODE", "release")
	cfg.HTTP.CORSOrigins = envOrDefaultList("SATHI_CORS_ORIGINS", []string{"*"})
	cfg.HTTP.RateLimit = envOrDefaultInt("SATHI_RATE_LIMIT", 60)
	cfg.DB.DSN = os.Getenv("SATHI_DB_DSN")
	cfg.Redis.Addr = os.Getenv("SATHI_REDIS_ADDR")
	cfg.Redis.CacheKey = envOrDefault("SATHI_CACHE_KEY", "travelsathi_cache")
	cfg.Catalog.File = os.Getenv("SATHI_CATALOG_FILE")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.MonthlyCalls = envOrDefaultInt("SATHI_AI_MONTHLY_CALLS", 1000)
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// envOrDefaultList splits a comma-separated value, dropping blanks.
func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
