package config

import (
	"slices"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SATHI_HTTP_ADDR", "SATHI_RATE_LIMIT", "SATHI_CORS_ORIGINS", "SATHI_REDIS_ADDR", "SATHI_CACHE_KEY", "SATHI_AI_MONTHLY_CALLS"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.HTTP.RateLimit != 60 || cfg.Redis.CacheKey != "travelsathi_cache" || cfg.AI.MonthlyCalls != 1000 {
		t.Errorf("defaults = %+v", cfg)
	}
	if !slices.Equal(cfg.HTTP.CORSOrigins, []string{"*"}) {
		t.Errorf("cors = %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis addr should default to empty, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SATHI_HTTP_ADDR", ":9090")
	t.Setenv("SATHI_RATE_LIMIT", "0")
	t.Setenv("SATHI_CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SATHI_AI_MONTHLY_CALLS", "not-a-number")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, _ := Load()
	if cfg.HTTP.Addr != ":9090" || cfg.HTTP.RateLimit != 0 || cfg.AI.GeminiKey != "k" {
		t.Errorf("overrides = %+v", cfg)
	}
	if cfg.AI.MonthlyCalls != 1000 {
		t.Errorf("unparsable int should fall back, got %d", cfg.AI.MonthlyCalls)
	}
	if want := []string{"https://a.example", "https://b.example"}; !slices.Equal(cfg.HTTP.CORSOrigins, want) {
		t.Errorf("cors = %v, want %v", cfg.HTTP.CORSOrigins, want)
	}
}
