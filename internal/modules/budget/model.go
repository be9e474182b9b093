// README: Budget tiers and the per-tier cost tables used by the planner.
package budget

import (
	"strings"

	"travelsathi/internal/types"
)

type Tier string

const (
	TierBudget   Tier = "budget"
	TierMidRange Tier = "mid-range"
	TierLuxury   Tier = "luxury"
)

// Tiers lists every tier in ascending cost order.
var Tiers = []Tier{TierBudget, TierMidRange, TierLuxury}

// Title returns the tier with its first letter upper-cased ("Mid-range").
func (t Tier) Title() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Rates maps a tier to a daily amount.
type Rates map[Tier]types.Rupees

// Components is one day's fixed cost split for a tier.
type Components struct {
	Accommodation types.Rupees `json:"accommodation" yaml:"accommodation"`
	Food          types.Rupees `json:"food" yaml:"food"`
	Transport     types.Rupees `json:"transport" yaml:"transport"`
	Activities    types.Rupees `json:"activities" yaml:"activities"`
}

// DailyTotal sums the four components.
func (c Components) DailyTotal() types.Rupees {
	return c.Accommodation + c.Food + c.Transport + c.Activities
}

// Breakdown is the result of a pure tier × days computation.
type Breakdown struct {
	Tier       Tier
	Days       int
	Daily      Components
	DailyTotal types.Rupees
	TripTotal  types.Rupees
}
