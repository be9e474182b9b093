package ai

import (
	"context"
	"log"
	"strings"
	"time"
)

const (
	responderWeather   = "weather"
	responderTranslate = "translate"

	DefaultRequestTimeout = 15 * time.Second
)

// Responder answers weather and translation requests. It never fails: provider
// errors, exhausted quota or a missing provider fall back to static text.
type Responder struct {
	provider LLMProvider
	quota    Quota
	timeout  time.Duration
}

// NewResponder accepts a nil provider for fully offline operation and a nil quota for no limit.
func NewResponder(provider LLMProvider, quota Quota) *Responder {
	return &Responder{provider: provider, quota: quota, timeout: DefaultRequestTimeout}
}

func (r *Responder) Weather(ctx context.Context, query string) string {
	dest := WeatherDestination(query)
	if !r.allow(ctx, responderWeather) {
		return StaticWeather(dest)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.provider.WeatherSummary(ctx, dest)
	if err != nil {
		log.Printf("ai: weather for %q failed: %v", dest, err)
		return StaticWeather(dest)
	}
	return out
}

// Translate returns text unchanged for English.
func (r *Responder) Translate(ctx context.Context, text, code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || code == "en" {
		return text
	}
	if _, known := languageNames[code]; !known || !r.allow(ctx, responderTranslate) {
		return StaticTranslate(text, code)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.provider.Translate(ctx, text, LanguageName(code))
	if err != nil {
		log.Printf("ai: translate to %s failed: %v", code, err)
		return StaticTranslate(text, code)
	}
	return out
}

func (r *Responder) allow(ctx context.Context, responder string) bool {
	if r.provider == nil {
		return false
	}
	if r.quota == nil {
		return true
	}
	if err := r.quota.Allow(ctx, responder); err != nil {
		log.Printf("ai: %s call skipped: %v", responder, err)
		return false
	}
	return true
}
