package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.ResponseMIMEType = "text/plain"
	model.SetTemperature(0.3)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

func (p *GeminiProvider) WeatherSummary(ctx context.Context, destination string) (string, error) {
	return p.generate(ctx, buildWeatherPrompt(destination))
}

func (p *GeminiProvider) Translate(ctx context.Context, text, languageName string) (string, error) {
	return p.generate(ctx, buildTranslatePrompt(text, languageName))
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	out := cleanFences(responseText.String())
	if out == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return out, nil
}

func buildWeatherPrompt(destination string) string {
	return fmt.Sprintf(`Role: You are TravelSathi, a travel assistant for India.
Task: Write a short weather note for a traveller visiting %s, India.

RULES:
- Start with the line: 🌤️ **Weather Update for %s**
- Describe typical conditions for the current season: temperature range, rain, humidity.
- Add one "🧳 **Travel Tip:**" line on what to pack.
- Use **double asterisks** for bold and "• " for bullet lines. No headings, no tables.
- Keep it under 120 words.
- End with: 💡 For real-time weather updates, check local weather services or apps like India Meteorological Department.`,
		destination, destination)
}

func buildTranslatePrompt(text, languageName string) string {
	return fmt.Sprintf(`Translate the following travel assistant message into %s.

RULES:
- Keep emoji, "**" bold markers, "• " bullets and line breaks exactly where they are.
- Keep place names, phone numbers, prices (₹) and app names unchanged.
- Return only the translated message.

Message:
%s`, languageName, text)
}

// cleanFences removes markdown code blocks if present (e.g. ```text ... ```)
func cleanFences(input string) string {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "```") {
		if i := strings.IndexByte(input, '\n'); i >= 0 {
			input = input[i+1:]
		} else {
			input = strings.TrimPrefix(input, "```")
		}
	}
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
