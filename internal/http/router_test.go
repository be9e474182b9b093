package http

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"travelsathi/internal/ai"
	"travelsathi/internal/http/middleware"
	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/cache"
	"travelsathi/internal/modules/catalog"
	"travelsathi/internal/modules/classifier"
	"travelsathi/internal/modules/planner"
	"travelsathi/internal/service"
)

type stubLookup struct{}

func (stubLookup) Search(_ context.Context, query string) string {
	return "guide: " + query
}

func buildTestRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.Default()
	pl := planner.New(cat, budget.DefaultTable(), planner.WithRand(rand.New(rand.NewPCG(1, 2))))
	a := service.NewAssistant(cat, classifier.New(cat.Cities()), pl, stubLookup{}, ai.NewResponder(nil, nil), cache.New(cache.NewMemoryBlob()))
	return NewRouter(a, cfg)
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func TestChat(t *testing.T) {
	r := buildTestRouter(RouterConfig{})
	w := doRequest(r, http.MethodPost, "/api/chat", map[string]any{"message": "Tell me about Jaipur", "sessionId": "abc-123"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	reply := decode[service.Reply](t, w)
	if reply.Type != service.ReplyDestination || reply.Text != "guide: Tell me about Jaipur" {
		t.Errorf("reply = %+v", reply)
	}
	if reply.Context != classifier.ContextJaipur || !reply.ContextChanged {
		t.Errorf("context = %q changed = %v", reply.Context, reply.ContextChanged)
	}

	// online omitted defaults to true, so the reply above was cached.
	offline := doRequest(r, http.MethodPost, "/api/chat", map[string]any{"message": "jaipur", "online": false})
	if got := decode[service.Reply](t, offline); got.Text != "guide: Tell me about Jaipur" || !got.Offline {
		t.Errorf("offline reply = %+v", got)
	}
}

func TestChat_BadRequests(t *testing.T) {
	r := buildTestRouter(RouterConfig{})
	tests := []struct {
		name string
		body any
		want string
	}{
		{name: "invalid json", body: "{", want: "invalid json"},
		{name: "empty message", body: map[string]any{"message": "   "}, want: "missing message"},
		{name: "too long", body: map[string]any{"message": strings.Repeat("a", 2001)}, want: "message too long"},
		{name: "bad session", body: map[string]any{"message": "hi", "sessionId": "a b"}, want: "invalid sessionId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/chat", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if got := decode[map[string]string](t, w)["error"]; got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	r := buildTestRouter(RouterConfig{})
	w := doRequest(r, http.MethodPost, "/api/classify", map[string]any{"message": "Weather in Mumbai"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	got := decode[classifier.Result](t, w)
	want := classifier.Result{Destination: "mumbai", TopicIntent: classifier.IntentWeather, BackgroundContext: classifier.ContextMumbai}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestWelcome(t *testing.T) {
	r := buildTestRouter(RouterConfig{})
	w := doRequest(r, http.MethodGet, "/api/welcome?lang=hi", nil)
	body := decode[welcomeBody](t, w)
	if !strings.HasPrefix(body.Reply.Text, "नमस्ते!") || len(body.QuickReplies) == 0 {
		t.Errorf("welcome = %+v", body)
	}
}

type welcomeBody struct {
	Reply        service.Reply `json:"reply"`
	QuickReplies []string      `json:"quickReplies"`
}

type textBody struct {
	Destination string `json:"destination"`
	Text        string `json:"text"`
}

func TestItinerary(t *testing.T) {
	r := buildTestRouter(RouterConfig{})
	w := doRequest(r, http.MethodPost, "/api/itinerary", map[string]any{"destination": "Jaipur", "budget": "budget", "days": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if got := decode[textBody](t, w); !strings.Contains(got.Text, "2-Day Jaipur Itinerary") {
		t.Errorf("itinerary = %s", got.Text)
	}

	bad := []map[string]any{
		{"budget": "budget"},
		{"destination": "Jaipur", "budget": "cheap"},
		{"destination": "Jaipur", "style": "frantic"},
		{"destination": "Jaipur", "days": 31},
		{"destination": "Jaipur", "travelers": -1},
	}
	for _, body := range bad {
		if w := doRequest(r, http.MethodPost, "/api/itinerary", body); w.Code != http.StatusBadRequest {
			t.Errorf("%v: status = %d, want 400", body, w.Code)
		}
	}
}

func TestBudgetAndExperiences(t *testing.T) {
	r := buildTestRouter(RouterConfig{})

	w := doRequest(r, http.MethodGet, "/api/budget?destination=delhi&days=5&tier=luxury", nil)
	if got := decode[textBody](t, w); !strings.Contains(got.Text, "**5-Day Delhi Budget (Luxury)**") {
		t.Errorf("budget = %s", got.Text)
	}
	for _, path := range []string{"/api/budget", "/api/budget?destination=goa&days=x", "/api/budget?destination=goa&tier=cheap"} {
		if w := doRequest(r, http.MethodGet, path, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}

	w = doRequest(r, http.MethodGet, "/api/experiences/mumbai", nil)
	if got := decode[textBody](t, w); !strings.Contains(got.Text, "Unique Local Experiences in Mumbai") {
		t.Errorf("experiences = %s", got.Text)
	}
}

func TestCacheEndpoints(t *testing.T) {
	r := buildTestRouter(RouterConfig{})
	doRequest(r, http.MethodPost, "/api/chat", map[string]any{"message": "Tell me about Goa"})

	info := decode[cache.Info](t, doRequest(r, http.MethodGet, "/api/cache", nil))
	if info.Size != 1 || info.Keys[0] != "tell me about goa" {
		t.Fatalf("info = %+v", info)
	}
	w := doRequest(r, http.MethodDelete, "/api/cache", nil)
	if w.Code != http.StatusOK || decode[map[string]string](t, w)["status"] != "cleared" {
		t.Fatalf("clear = %d %s", w.Code, w.Body.String())
	}
	if info := decode[cache.Info](t, doRequest(r, http.MethodGet, "/api/cache", nil)); info.Size != 0 {
		t.Errorf("after clear = %+v", info)
	}
}

func TestRateLimitedAPI(t *testing.T) {
	r := buildTestRouter(RouterConfig{Limiter: middleware.NewRateLimiter(1, time.Hour)})
	doRequest(r, http.MethodGet, "/api/languages", nil)
	if w := doRequest(r, http.MethodGet, "/api/languages", nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("health should not be rate limited, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := buildTestRouter(RouterConfig{})
	if w := doRequest(r, http.MethodGet, "/metrics", nil); w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
