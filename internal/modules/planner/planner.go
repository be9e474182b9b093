// README: Itinerary planner; greedy per-day slot filling against the tier budget.
package planner

import (
	"math/rand/v2"
	"sync"

	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/catalog"
	"travelsathi/internal/types"
)

const (
	dayStartHour   = 9.0
	lunchHour      = 12.0
	lunchDuration  = 1.0
	activityShare  = 0.8
	foodMiscShare  = 0.3
	transportShare = 0.2
)

var baseTips = []string{
	"Start early to avoid crowds",
	"Carry water and snacks",
}

var styleTips = map[Style][]string{
	StyleRelaxed:  {"Take breaks between activities", "Enjoy local cafes", "Don't rush the schedule"},
	StyleModerate: {"Balance sightseeing with rest", "Try local transportation", "Book tickets in advance"},
	StylePacked:   {"Optimize travel routes", "Pre-book all attractions", "Carry energy bars"},
}

type Planner struct {
	catalog *catalog.Catalog
	table   *budget.Table

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Planner)

// WithRand injects a random source for reproducible plans.
func WithRand(r *rand.Rand) Option {
	return func(p *Planner) { p.rng = r }
}

func New(cat *catalog.Catalog, table *budget.Table, opts ...Option) *Planner {
	p := &Planner{catalog: cat, table: table}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// intn draws from the injected source, or the unseeded global one.
func (p *Planner) intn(n int) int {
	if p.rng == nil {
		return rand.IntN(n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}

// Plan builds one DayPlan per day from the profile.
func (p *Planner) Plan(profile catalog.Profile, prefs Preferences) []DayPlan {
	rate := profile.DailyBudget[prefs.Tier]
	plans := make([]DayPlan, 0, max(prefs.Days, 0))

	for day := 1; day <= prefs.Days; day++ {
		remaining := rate.Scale(activityShare)
		clock := dayStartHour
		var scheduled []ScheduledActivity
		used := make(map[int]bool)

		add := func(i int) {
			a := profile.Activities[i]
			scheduled = append(scheduled, ScheduledActivity{Activity: a, StartHour: clock})
			used[i] = true
			remaining -= float64(a.Cost)
		}

		morning := p.eligible(profile.Activities, remaining, used, func(a catalog.Activity) bool {
			return a.Category == catalog.CategorySightseeing || a.Category == catalog.CategoryCulture
		})
		if len(morning) > 0 {
			i := morning[p.intn(len(morning))]
			add(i)
			clock += profile.Activities[i].DurationHours
		}

		if clock >= lunchHour {
			lunch := p.eligible(profile.Activities, remaining, used, func(a catalog.Activity) bool {
				return a.Category == catalog.CategoryFood
			})
			if len(lunch) > 0 {
				add(lunch[0])
				clock += lunchDuration
			}
		}

		afternoon := p.eligible(profile.Activities, remaining, used, nil)
		if len(afternoon) > 0 {
			add(afternoon[p.intn(len(afternoon))])
		}

		var cost types.Rupees
		for _, s := range scheduled {
			cost += s.Cost
		}
		plans = append(plans, DayPlan{
			Day:           day,
			Title:         dayTitle(day, profile.Name),
			Activities:    scheduled,
			EstimatedCost: cost,
			Tips:          dayTips(prefs.Style),
		})
	}
	return plans
}

// eligible returns indexes, in catalog order, of unused activities within budget.
func (p *Planner) eligible(acts []catalog.Activity, remaining float64, used map[int]bool, keep func(catalog.Activity) bool) []int {
	var out []int
	for i, a := range acts {
		if used[i] || float64(a.Cost) > remaining {
			continue
		}
		if keep != nil && !keep(a) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func dayTips(style Style) []string {
	tips := append([]string(nil), baseTips...)
	return append(tips, styleTips[style]...)
}

// Generate returns the formatted itinerary, or the generic template when the
// destination has no profile.
func (p *Planner) Generate(destination string, prefs Preferences) string {
	name := p.catalog.DisplayName(destination)
	profile, ok := p.catalog.Profile(destination)
	if !ok {
		return genericItinerary(name, prefs)
	}
	rate := profile.DailyBudget[prefs.Tier]
	return formatItinerary(name, prefs, p.Plan(profile, prefs), rate, profile)
}

// LocalExperiences lists curated experiences, or generic ideas when none are known.
func (p *Planner) LocalExperiences(destination string) string {
	name := p.catalog.DisplayName(destination)
	if exps, ok := p.catalog.Experiences(destination); ok && len(exps) > 0 {
		return formatExperiences(name, exps)
	}
	return genericExperiences(name)
}

// BudgetBreakdown uses only the fixed tier components, never the destination profile.
func (p *Planner) BudgetBreakdown(destination string, days int, tier budget.Tier) string {
	return formatBreakdown(p.catalog.DisplayName(destination), p.table.Breakdown(tier, days))
}
