// README: Read-only catalog handed to the classifier, planner and lookup at construction.
package catalog

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is immutable after New; accessors return copies of slices.
type Catalog struct {
	cities       []string
	profiles     map[string]Profile
	experiences  map[string][]string
	culturalTips map[string]CulturalTip
	bestTime     map[string]string
	attractions  map[string][]string
	foodGuides   map[string]FoodGuide
}

// New builds a catalog from d. Keys are lowercased and duplicate cities dropped,
// keeping the first occurrence so the list order stays the match priority.
func New(d Data) *Catalog {
	c := &Catalog{
		profiles:     make(map[string]Profile, len(d.Profiles)),
		experiences:  make(map[string][]string, len(d.Experiences)),
		culturalTips: make(map[string]CulturalTip, len(d.CulturalTips)),
		bestTime:     make(map[string]string, len(d.BestTime)),
		attractions:  make(map[string][]string, len(d.Attractions)),
		foodGuides:   make(map[string]FoodGuide, len(d.FoodGuides)),
	}

	seen := make(map[string]bool, len(d.Cities))
	for _, city := range d.Cities {
		key := Key(city)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		c.cities = append(c.cities, key)
	}

	for k, p := range d.Profiles {
		p.Activities = slices.Clone(p.Activities)
		p.DailyBudget = maps.Clone(p.DailyBudget)
		c.profiles[Key(k)] = p
	}
	for k, v := range d.Experiences {
		c.experiences[Key(k)] = slices.Clone(v)
	}
	for k, v := range d.CulturalTips {
		c.culturalTips[Key(k)] = v
	}
	for k, v := range d.BestTime {
		c.bestTime[Key(k)] = v
	}
	for k, v := range d.Attractions {
		c.attractions[Key(k)] = slices.Clone(v)
	}
	for k, v := range d.FoodGuides {
		v.MustTry = slices.Clone(v.MustTry)
		v.Areas = slices.Clone(v.Areas)
		c.foodGuides[Key(k)] = v
	}
	return c
}

// Key normalises a destination name to a catalog key.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayName is the profile name when one exists, else the title-cased key.
func (c *Catalog) DisplayName(key string) string {
	if p, ok := c.profiles[Key(key)]; ok && p.Name != "" {
		return p.Name
	}
	// Casers carry state; build one per call.
	return cases.Title(language.English).String(Key(key))
}

// Cities returns the ordered known-city list.
func (c *Catalog) Cities() []string {
	return slices.Clone(c.cities)
}

// Profile looks up a destination profile. A missing profile is a normal outcome.
func (c *Catalog) Profile(key string) (Profile, bool) {
	p, ok := c.profiles[Key(key)]
	if !ok {
		return Profile{}, false
	}
	p.Activities = slices.Clone(p.Activities)
	p.DailyBudget = maps.Clone(p.DailyBudget)
	return p, true
}

func (c *Catalog) Experiences(key string) ([]string, bool) {
	v, ok := c.experiences[Key(key)]
	return slices.Clone(v), ok
}

func (c *Catalog) CulturalTip(key string) (CulturalTip, bool) {
	v, ok := c.culturalTips[Key(key)]
	return v, ok
}

func (c *Catalog) BestTime(key string) (string, bool) {
	v, ok := c.bestTime[Key(key)]
	return v, ok
}

func (c *Catalog) Attractions(key string) ([]string, bool) {
	v, ok := c.attractions[Key(key)]
	return slices.Clone(v), ok
}

func (c *Catalog) FoodGuide(key string) (FoodGuide, bool) {
	v, ok := c.foodGuides[Key(key)]
	return v, ok
}
