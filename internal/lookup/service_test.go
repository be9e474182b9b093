package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travelsathi/internal/maps"
	"travelsathi/internal/modules/catalog"
)

type stubSummarizer struct {
	text   string
	err    error
	titles []string
}

func (s *stubSummarizer) Summary(_ context.Context, title string) (string, error) {
	s.titles = append(s.titles, title)
	return s.text, s.err
}

type stubPlaces struct {
	places []maps.Place
	calls  int
}

func (s *stubPlaces) TopAttractions(context.Context, string) ([]maps.Place, error) {
	s.calls++
	return s.places, nil
}

type stubTransfers struct{}

func (stubTransfers) AirportTransfer(context.Context, string) (time.Duration, string, error) {
	return 44*time.Minute + 40*time.Second, "18.2 km", nil
}

func TestExtractDestination(t *testing.T) {
	tests := []struct{ query, want string }{
		{query: "Tell me about Jaipur", want: "jaipur"},
		{query: "tell me about new delhi?", want: "new delhi"},
		{query: "What is the best of Goa", want: "best goa"},
		{query: "visit Kerala", want: "kerala"},
		{query: "trip to the", want: ""},
		{query: "", want: ""},
	}
	for _, tt := range tests {
		if got := ExtractDestination(tt.query); got != tt.want {
			t.Errorf("ExtractDestination(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestSearch_DestinationPage(t *testing.T) {
	wiki := &stubSummarizer{text: "Jaipur is the capital of Rajasthan."}
	svc := NewService(catalog.Default(), wiki)

	out := svc.Search(context.Background(), "Tell me about Jaipur")
	for _, want := range []string{
		"📍 **JAIPUR**",
		"Jaipur is the capital of Rajasthan.",
		"October to March (pleasant weather)",
		"Amber Fort - Magnificent hilltop fort",
		"**Cultural Etiquette:**",
		"**Getting Around:**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
	if len(wiki.titles) != 1 || wiki.titles[0] != "jaipur" {
		t.Errorf("summary titles = %v", wiki.titles)
	}
}

func TestSearch_OverviewFailureIsEmpty(t *testing.T) {
	svc := NewService(catalog.Default(), &stubSummarizer{err: errors.New("boom")})
	out := svc.Search(context.Background(), "Tell me about Shimla")
	if !strings.HasPrefix(out, "📍 **SHIMLA**\n\n\n\n⏰") {
		t.Errorf("expected empty overview, got:\n%s", out[:80])
	}
	if !strings.Contains(out, defaultBestTime) || !strings.Contains(out, defaultAttractions) {
		t.Errorf("expected default sections for unknown destination")
	}
}

func TestSearch_SpecialPages(t *testing.T) {
	wiki := &stubSummarizer{}
	svc := NewService(catalog.Default(), wiki)
	ctx := context.Background()

	if out := svc.Search(ctx, "Emergency contacts in Delhi"); !strings.Contains(out, "**Police:** 100") {
		t.Errorf("emergency page expected")
	}
	if out := svc.Search(ctx, "Popular destinations in India"); out != popularDestinationsPage {
		t.Errorf("popular destinations page expected")
	}
	if out := svc.Search(ctx, "to the"); !strings.Contains(out, `Travel Information for "to the"`) {
		t.Errorf("fallback page expected, got:\n%s", out)
	}
	if len(wiki.titles) != 0 {
		t.Errorf("special pages should not hit the summarizer")
	}
}

func TestSearch_LiveAttractionsForUnknownCity(t *testing.T) {
	places := &stubPlaces{places: []maps.Place{{Name: "Mall Road", Rating: 4.5, UserRatingsTotal: 1200}}}
	svc := NewService(catalog.Default(), &stubSummarizer{text: "x"}, WithAttractions(places), WithTransfers(stubTransfers{}))
	ctx := context.Background()

	out := svc.Search(ctx, "tell me about shimla")
	if !strings.Contains(out, "📍 Mall Road (★4.5, 1200 reviews)") {
		t.Errorf("live attractions missing:\n%s", out)
	}
	if !strings.Contains(out, "**Airport Transfer:** about 45 min by road (18.2 km)") {
		t.Errorf("airport transfer missing")
	}

	svc.Search(ctx, "tell me about jaipur")
	if places.calls != 1 {
		t.Errorf("catalog attractions should be preferred; places calls = %d", places.calls)
	}
}

func TestWikipedia_Summary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.EscapedPath() {
		case "/page/summary/new%20delhi":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"title":"New Delhi","extract":"New Delhi is the capital of India."}`))
		case "/page/summary/empty":
			w.Write([]byte(`{"extract":""}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	wiki := NewWikipedia(srv.URL + "/")
	ctx := context.Background()

	got, err := wiki.Summary(ctx, "new delhi")
	if err != nil || got != "New Delhi is the capital of India." {
		t.Fatalf("Summary = %q, %v", got, err)
	}
	if _, err := wiki.Summary(ctx, "empty"); !errors.Is(err, ErrNoSummary) {
		t.Errorf("empty extract err = %v, want ErrNoSummary", err)
	}
	if _, err := wiki.Summary(ctx, "nowhere"); !errors.Is(err, ErrNoSummary) {
		t.Errorf("404 err = %v, want ErrNoSummary", err)
	}
}
