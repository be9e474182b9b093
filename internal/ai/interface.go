package ai

import (
	"context"
)

// LLMProvider is the text-generation backend for the weather and translation responders.
type LLMProvider interface {
	// WeatherSummary returns a short markup weather note for travellers to destination.
	WeatherSummary(ctx context.Context, destination string) (string, error)

	// Translate renders text in the language named by languageName, keeping markup intact.
	Translate(ctx context.Context, text, languageName string) (string, error)
}

// Quota gates provider calls. Allow returns an error when the call must not be made.
type Quota interface {
	Allow(ctx context.Context, responder string) error
}
