// README: Wikipedia REST page-summary client used for destination overviews.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultWikipediaURL = "https://en.wikipedia.org/api/rest_v1"
	requestTimeout      = 10 * time.Second
)

var ErrNoSummary = errors.New("no summary available")

type Wikipedia struct {
	baseURL string
	client  *http.Client
}

func NewWikipedia(baseURL string) *Wikipedia {
	if baseURL == "" {
		baseURL = DefaultWikipediaURL
	}
	return &Wikipedia{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

// Summary fetches the plain-text extract for a page title.
func (w *Wikipedia) Summary(ctx context.Context, title string) (string, error) {
	endpoint := fmt.Sprintf("%s/page/summary/%s", w.baseURL, url.PathEscape(title))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travelsathi/1.0")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("wikipedia request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia status %d: %w", resp.StatusCode, ErrNoSummary)
	}
	var body summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode wikipedia summary: %w", err)
	}
	if body.Extract == "" {
		return "", ErrNoSummary
	}
	return body.Extract, nil
}
