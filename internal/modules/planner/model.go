// README: Travel preferences and day-plan types produced by the planner.
package planner

import (
	"fmt"
	"math"

	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/catalog"
	"travelsathi/internal/types"
)

type Style string

const (
	StyleRelaxed  Style = "relaxed"
	StyleModerate Style = "moderate"
	StylePacked   Style = "packed"
)

// Preferences are built per request; Days and Travelers are assumed ≥ 1.
type Preferences struct {
	Tier      budget.Tier `json:"budget"`
	Days      int         `json:"days"`
	Style     Style       `json:"style"`
	Travelers int         `json:"travelers"`
	Interests []string    `json:"interests"`
}

// DefaultPreferences is a 3-day mid-range trip for two.
func DefaultPreferences() Preferences {
	return Preferences{
		Tier:      budget.TierMidRange,
		Days:      3,
		Style:     StyleModerate,
		Travelers: 2,
		Interests: []string{"culture", "food", "sightseeing"},
	}
}

// ScheduledActivity is an activity pinned to a start hour (fractional, 24h).
type ScheduledActivity struct {
	catalog.Activity
	StartHour float64 `json:"start_hour"`
}

// Time renders the start as a whole-hour 12-hour clock label, e.g. "1:00 PM".
func (s ScheduledActivity) Time() string {
	h := int(math.Floor(s.StartHour)) % 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:00 %s", h12, suffix)
}

// DurationLabel renders the duration as "1 hour" or "2.5 hours".
func (s ScheduledActivity) DurationLabel() string {
	if s.DurationHours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%g hours", s.DurationHours)
}

type DayPlan struct {
	Day           int                 `json:"day"`
	Title         string              `json:"title"`
	Activities    []ScheduledActivity `json:"activities"`
	EstimatedCost types.Rupees        `json:"estimated_cost"`
	Tips          []string            `json:"tips"`
}
