// README: Destination lookup; composes overview, seasons, attractions and tips into one guide.
package lookup

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"travelsathi/internal/maps"
	"travelsathi/internal/modules/catalog"
)

type Summarizer interface {
	Summary(ctx context.Context, title string) (string, error)
}

type AttractionSource interface {
	TopAttractions(ctx context.Context, destination string) ([]maps.Place, error)
}

type TransferEstimator interface {
	AirportTransfer(ctx context.Context, destination string) (time.Duration, string, error)
}

type Service struct {
	catalog     *catalog.Catalog
	summarizer  Summarizer
	attractions AttractionSource
	transfers   TransferEstimator
}

type Option func(*Service)

// WithAttractions adds a live source used when the catalog has no attractions for a destination.
func WithAttractions(src AttractionSource) Option {
	return func(s *Service) { s.attractions = src }
}

// WithTransfers adds airport transfer estimates to the transport section.
func WithTransfers(est TransferEstimator) Option {
	return func(s *Service) { s.transfers = est }
}

func NewService(cat *catalog.Catalog, summarizer Summarizer, opts ...Option) *Service {
	s := &Service{catalog: cat, summarizer: summarizer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var stopWords = map[string]bool{
	"tell": true, "me": true, "about": true, "what": true, "is": true, "the": true, "in": true,
	"of": true, "for": true, "visit": true, "travel": true, "to": true, "trip": true,
}

// ExtractDestination strips filler words; text after "tell me about" wins when present.
// A query made only of filler yields "".
func ExtractDestination(query string) string {
	lower := strings.ToLower(strings.TrimSpace(query))
	var kept []string
	for _, w := range strings.Fields(lower) {
		w = strings.Trim(w, "?!.,;:\"'")
		if w == "" || stopWords[w] {
			continue
		}
		kept = append(kept, w)
	}
	dest := strings.Join(kept, " ")

	if _, after, ok := strings.Cut(lower, "tell me about"); ok {
		if after = strings.Trim(strings.TrimSpace(after), "?!.,;:\"'"); after != "" {
			return after
		}
	}
	return dest
}

// Search answers a destination query. It never fails; upstream errors degrade to
// an empty overview or the generic fallback page.
func (s *Service) Search(ctx context.Context, query string) string {
	lower := strings.ToLower(query)
	dest := ExtractDestination(query)
	if dest == "" {
		return fallbackPage(query)
	}

	if strings.Contains(lower, "emergency") || strings.Contains(lower, "contact") {
		return emergencyPage(dest)
	}
	if strings.Contains(lower, "popular destinations") || strings.Contains(lower, "best places") {
		return popularDestinationsPage
	}

	overview := ""
	if s.summarizer != nil {
		text, err := s.summarizer.Summary(ctx, dest)
		if err != nil {
			log.Printf("lookup: overview for %q failed: %v", dest, err)
		} else {
			overview = text
		}
	}

	return destinationPage(dest, overview,
		s.bestTime(dest),
		s.topAttractions(ctx, dest),
		s.culturalTips(dest),
		s.transport(ctx, dest),
	)
}

func (s *Service) bestTime(dest string) string {
	if v, ok := s.catalog.BestTime(dest); ok {
		return v
	}
	return defaultBestTime
}

func (s *Service) topAttractions(ctx context.Context, dest string) string {
	if lines, ok := s.catalog.Attractions(dest); ok && len(lines) > 0 {
		return "**Must-Visit Attractions:**\n" + strings.Join(lines, "\n")
	}
	if s.attractions != nil {
		places, err := s.attractions.TopAttractions(ctx, dest)
		if err != nil {
			log.Printf("lookup: attractions for %q failed: %v", dest, err)
		} else if len(places) > 0 {
			var b strings.Builder
			b.WriteString("**Must-Visit Attractions:**")
			for _, p := range places {
				fmt.Fprintf(&b, "\n📍 %s (★%.1f, %d reviews)", p.Name, p.Rating, p.UserRatingsTotal)
			}
			return b.String()
		}
	}
	return defaultAttractions
}

func (s *Service) culturalTips(dest string) string {
	tip, ok := s.catalog.CulturalTip(dest)
	if !ok {
		return defaultCulturalTips
	}
	return fmt.Sprintf("**Cultural Etiquette:**\n%s\n\n**Dress Code:**\n%s\n\n**Local Languages:**\n%s\n\n**Additional Tips:**\n%s",
		tip.Etiquette, tip.Clothing, tip.Language, tip.Tips)
}

func (s *Service) transport(ctx context.Context, dest string) string {
	if s.transfers == nil {
		return transportInfo
	}
	d, distance, err := s.transfers.AirportTransfer(ctx, dest)
	if err != nil {
		log.Printf("lookup: airport transfer for %q failed: %v", dest, err)
		return transportInfo
	}
	return fmt.Sprintf("%s\n**Airport Transfer:** about %d min by road (%s)", transportInfo, int(d.Round(time.Minute).Minutes()), distance)
}
