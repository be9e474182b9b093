// README: Keyword defaults for travel preferences parsed from a query.
package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/planner"
)

const maxTripDays = 30

var (
	explicitDaysRe = regexp.MustCompile(`(\d+)[\s-]*days?\b`)
	travelersRe    = regexp.MustCompile(`(\d+)\s*(?:people|persons|travell?ers|adults)\b`)
)

// PreferencesFromQuery fills preferences from keywords, falling back to
// planner.DefaultPreferences for anything not mentioned.
func PreferencesFromQuery(query string) planner.Preferences {
	lower := strings.ToLower(query)
	prefs := planner.DefaultPreferences()
	prefs.Tier = TierFromQuery(lower)
	prefs.Days = DaysFromQuery(lower)

	switch {
	case strings.Contains(lower, "relaxed"):
		prefs.Style = planner.StyleRelaxed
	case strings.Contains(lower, "packed"):
		prefs.Style = planner.StylePacked
	}

	if m := travelersRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			prefs.Travelers = n
		}
	}
	return prefs
}

func TierFromQuery(query string) budget.Tier {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "luxury"):
		return budget.TierLuxury
	case strings.Contains(lower, "budget"):
		return budget.TierBudget
	default:
		return budget.TierMidRange
	}
}

// DaysFromQuery honours an explicit "N-day"/"N days" count (clamped to 1..30),
// then "weekend" (2) before "week" (7), else 3.
func DaysFromQuery(query string) int {
	lower := strings.ToLower(query)
	if m := explicitDaysRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return min(n, maxTripDays)
		}
	}
	switch {
	case strings.Contains(lower, "weekend"):
		return 2
	case strings.Contains(lower, "week"):
		return 7
	default:
		return 3
	}
}
