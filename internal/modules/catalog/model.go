// README: Destination reference data types (profiles, activities, guides).
package catalog

import (
	"travelsathi/internal/modules/budget"
	"travelsathi/internal/types"
)

type Category string

const (
	CategorySightseeing Category = "sightseeing"
	CategoryFood        Category = "food"
	CategoryShopping    Category = "shopping"
	CategoryCulture     Category = "culture"
	CategoryAdventure   Category = "adventure"
	CategoryTransport   Category = "transport"
)

// Activity is one bookable item of a destination profile.
type Activity struct {
	Name          string       `json:"name" yaml:"name"`
	Category      Category     `json:"category" yaml:"category"`
	DurationHours float64      `json:"duration_hours" yaml:"duration_hours"`
	Cost          types.Rupees `json:"cost" yaml:"cost"`
	Description   string       `json:"description" yaml:"description"`
}

// Profile is the planning template for a destination.
type Profile struct {
	Name                 string       `json:"name" yaml:"name"`
	Activities           []Activity   `json:"activities" yaml:"activities"`
	DailyBudget          budget.Rates `json:"daily_budget" yaml:"daily_budget"`
	LocalTransportCost   types.Rupees `json:"local_transport_cost" yaml:"local_transport_cost"`
	AirportTransportCost types.Rupees `json:"airport_transport_cost" yaml:"airport_transport_cost"`
}

// CulturalTip groups the etiquette notes shown on a destination page.
type CulturalTip struct {
	Tips      string `json:"tips" yaml:"tips"`
	Etiquette string `json:"etiquette" yaml:"etiquette"`
	Clothing  string `json:"clothing" yaml:"clothing"`
	Language  string `json:"language" yaml:"language"`
}

// FoodGuide is the food page of a destination.
type FoodGuide struct {
	MustTry []string `json:"must_try" yaml:"must_try"`
	Areas   []string `json:"areas" yaml:"areas"`
	Budget  string   `json:"budget" yaml:"budget"`
	Spice   string   `json:"spice" yaml:"spice"`
}

// Data is the serialisable form of a catalog. Map keys are lowercase city keys.
type Data struct {
	Cities       []string               `yaml:"cities"`
	Profiles     map[string]Profile     `yaml:"profiles"`
	Experiences  map[string][]string    `yaml:"experiences"`
	CulturalTips map[string]CulturalTip `yaml:"cultural_tips"`
	BestTime     map[string]string      `yaml:"best_time"`
	Attractions  map[string][]string    `yaml:"attractions"`
	FoodGuides   map[string]FoodGuide   `yaml:"food_guides"`
}
