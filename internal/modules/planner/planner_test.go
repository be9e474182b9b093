package planner

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/catalog"
	"travelsathi/internal/types"
)

func newTestPlanner(seed uint64) *Planner {
	return New(catalog.Default(), budget.DefaultTable(), WithRand(rand.New(rand.NewPCG(seed, seed+1))))
}

var (
	dayCostRe      = regexp.MustCompile(`\*Estimated Cost: ₹([\d,]+)\*`)
	activityCostRe = regexp.MustCompile(`\*Cost: ₹([\d,]+)\*`)
)

func parseRupees(t *testing.T, s string) int64 {
	t.Helper()
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func TestGenerate_JaipurBudget(t *testing.T) {
	prefs := Preferences{Tier: budget.TierBudget, Days: 3, Style: StyleRelaxed, Travelers: 2, Interests: []string{"culture"}}

	for seed := uint64(0); seed < 20; seed++ {
		out := newTestPlanner(seed).Generate("jaipur", prefs)

		sections := strings.Split(out, "**📅 ")[1:]
		if len(sections) != 3 {
			t.Fatalf("seed %d: got %d day sections, want 3", seed, len(sections))
		}
		for i, sec := range sections {
			m := dayCostRe.FindStringSubmatch(sec)
			if m == nil {
				t.Fatalf("seed %d day %d: no estimated cost", seed, i+1)
			}
			var sum int64
			for _, c := range activityCostRe.FindAllStringSubmatch(sec, -1) {
				sum += parseRupees(t, c[1])
			}
			if got := parseRupees(t, m[1]); got != sum {
				t.Errorf("seed %d day %d: estimated %d, activities sum %d", seed, i+1, got, sum)
			}
		}
		if !strings.Contains(out, "(₹4,500 total)") {
			t.Errorf("seed %d: trip total should be rate × days (₹4,500)", seed)
		}
		if !strings.Contains(out, "• Food & Misc: ₹1,350") || !strings.Contains(out, "• Transport: ₹900") {
			t.Errorf("seed %d: share lines missing:\n%s", seed, out)
		}
	}
}

func TestPlan_Invariants(t *testing.T) {
	p := newTestPlanner(7)
	profile, _ := catalog.Default().Profile("mumbai")

	for _, tier := range budget.Tiers {
		prefs := Preferences{Tier: tier, Days: 4, Style: StylePacked, Travelers: 1}
		plans := p.Plan(profile, prefs)
		if len(plans) != prefs.Days {
			t.Fatalf("%s: %d plans, want %d", tier, len(plans), prefs.Days)
		}
		limit := profile.DailyBudget[tier].Scale(activityShare)
		for _, d := range plans {
			var sum types.Rupees
			seen := map[string]bool{}
			for _, a := range d.Activities {
				sum += a.Cost
				if seen[a.Name] {
					t.Errorf("%s day %d: %s scheduled twice", tier, d.Day, a.Name)
				}
				seen[a.Name] = true
			}
			if sum != d.EstimatedCost {
				t.Errorf("%s day %d: EstimatedCost %d != sum %d", tier, d.Day, d.EstimatedCost, sum)
			}
			if float64(sum) > limit {
				t.Errorf("%s day %d: spent %d over budget %.0f", tier, d.Day, sum, limit)
			}
			if len(d.Tips) != 5 {
				t.Errorf("%s day %d: %d tips, want 5", tier, d.Day, len(d.Tips))
			}
		}
	}
}

func TestPlan_LunchAfterLongMorning(t *testing.T) {
	cat := catalog.New(catalog.Data{
		Profiles: map[string]catalog.Profile{
			"fixture": {
				Name: "Fixture",
				Activities: []catalog.Activity{
					{Name: "Fort", Category: catalog.CategorySightseeing, DurationHours: 3.5, Cost: 100},
					{Name: "Thali", Category: catalog.CategoryFood, DurationHours: 1, Cost: 200},
					{Name: "Snacks", Category: catalog.CategoryFood, DurationHours: 1, Cost: 50},
				},
				DailyBudget: budget.Rates{budget.TierBudget: 1000},
			},
		},
	})
	p := New(cat, budget.DefaultTable(), WithRand(rand.New(rand.NewPCG(1, 2))))
	profile, _ := cat.Profile("fixture")

	plans := p.Plan(profile, Preferences{Tier: budget.TierBudget, Days: 1, Style: StyleModerate})
	acts := plans[0].Activities
	if len(acts) != 3 {
		t.Fatalf("got %d activities, want 3", len(acts))
	}
	if acts[0].Name != "Fort" || acts[0].Time() != "9:00 AM" {
		t.Errorf("morning = %s at %s", acts[0].Name, acts[0].Time())
	}
	if acts[1].Name != "Thali" || acts[1].Time() != "12:00 PM" {
		t.Errorf("lunch = %s at %s, want first food item at 12:00 PM", acts[1].Name, acts[1].Time())
	}
	if acts[2].Name != "Snacks" || acts[2].Time() != "1:00 PM" {
		t.Errorf("afternoon = %s at %s", acts[2].Name, acts[2].Time())
	}
	if plans[0].EstimatedCost != 350 {
		t.Errorf("EstimatedCost = %d, want 350", plans[0].EstimatedCost)
	}
}

func TestPlan_NothingAffordable(t *testing.T) {
	cat := catalog.New(catalog.Data{
		Profiles: map[string]catalog.Profile{
			"pricey": {
				Name:        "Pricey",
				Activities:  []catalog.Activity{{Name: "Palace", Category: catalog.CategoryCulture, DurationHours: 2, Cost: 5000}},
				DailyBudget: budget.Rates{budget.TierBudget: 1000},
			},
		},
	})
	p := New(cat, budget.DefaultTable())
	profile, _ := cat.Profile("pricey")

	plans := p.Plan(profile, Preferences{Tier: budget.TierBudget, Days: 2, Style: StyleRelaxed})
	for _, d := range plans {
		if len(d.Activities) != 0 || d.EstimatedCost != 0 {
			t.Errorf("day %d: expected empty plan, got %+v", d.Day, d.Activities)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	prefs := DefaultPreferences()
	a := newTestPlanner(42).Generate("delhi", prefs)
	b := newTestPlanner(42).Generate("delhi", prefs)
	if a != b {
		t.Errorf("same seed produced different itineraries")
	}
}

func TestGenerate_UnknownDestination(t *testing.T) {
	out := newTestPlanner(1).Generate("unknownplace123", DefaultPreferences())
	if !strings.Contains(out, "Travel Plan**") {
		t.Errorf("expected generic template, got:\n%s", out)
	}
	if strings.Contains(out, "Cost:") {
		t.Errorf("generic template should not list per-activity costs")
	}
	if !strings.Contains(out, "**Travelers:** 2 persons") {
		t.Errorf("travelers line missing")
	}
}

func TestBudgetBreakdown_DelhiLuxury(t *testing.T) {
	out := newTestPlanner(1).BudgetBreakdown("delhi", 5, budget.TierLuxury)

	for _, want := range []string{
		"**5-Day Delhi Budget (Luxury)**",
		"🏨 Accommodation: ₹5,000",
		"**Daily Total: ₹9,000**",
		"**5-Day Trip Total: ₹45,000**",
		"Tips & service charges: 10-15%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestLocalExperiences(t *testing.T) {
	p := newTestPlanner(1)

	known := p.LocalExperiences("jaipur")
	if !strings.Contains(known, "Unique Local Experiences in Jaipur") || !strings.Contains(known, "Block Printing Workshop") {
		t.Errorf("unexpected jaipur experiences:\n%s", known)
	}
	generic := p.LocalExperiences("goa")
	if !strings.Contains(generic, "Local Experience Ideas for Goa") {
		t.Errorf("unexpected generic experiences:\n%s", generic)
	}
}

func TestScheduledActivity_Labels(t *testing.T) {
	tests := []struct {
		start    float64
		duration float64
		time     string
		label    string
	}{
		{start: 9, duration: 1, time: "9:00 AM", label: "1 hour"},
		{start: 11.5, duration: 1.5, time: "11:00 AM", label: "1.5 hours"},
		{start: 12, duration: 3, time: "12:00 PM", label: "3 hours"},
		{start: 14.5, duration: 4, time: "2:00 PM", label: "4 hours"},
	}
	for _, tt := range tests {
		s := ScheduledActivity{Activity: catalog.Activity{DurationHours: tt.duration}, StartHour: tt.start}
		if got := s.Time(); got != tt.time {
			t.Errorf("Time(%v) = %q, want %q", tt.start, got, tt.time)
		}
		if got := s.DurationLabel(); got != tt.label {
			t.Errorf("DurationLabel(%v) = %q, want %q", tt.duration, got, tt.label)
		}
	}
}
