package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

const (
	minRating      = 4.0
	maxAttractions = 5
)

// Place is a simplified attraction result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// TopAttractions returns up to five well-rated tourist attractions for a destination in India.
func (s *PlacesService) TopAttractions(ctx context.Context, destination string) ([]Place, error) {
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    fmt.Sprintf("top tourist attractions in %s, India", destination),
		Type:     maps.PlaceTypeTouristAttraction,
		Language: "en",
		Region:   "in",
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	return filterPlaces(resp.Results), nil
}

// filterPlaces drops low-rated and duplicate results and keeps the first five.
func filterPlaces(results []maps.PlacesSearchResult) []Place {
	seen := make(map[string]bool)
	var out []Place
	for _, r := range results {
		if r.Rating < minRating {
			continue
		}
		name := strings.TrimSpace(r.Name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		out = append(out, Place{
			Name:             name,
			Address:          r.FormattedAddress,
			Rating:           r.Rating,
			PlaceID:          r.PlaceID,
			UserRatingsTotal: r.UserRatingsTotal,
		})
		if len(out) >= maxAttractions {
			break
		}
	}
	return out
}
