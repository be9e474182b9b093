// README: Static component-cost table; lookups only.
package budget

import "travelsathi/internal/types"

// Table holds the fixed daily component costs per tier.
type Table struct {
	components map[Tier]Components
}

// NewTable copies the given components so later mutation of the map has no effect.
func NewTable(components map[Tier]Components) *Table {
	cp := make(map[Tier]Components, len(components))
	for k, v := range components {
		cp[k] = v
	}
	return &Table{components: cp}
}

// DefaultTable returns the standard rupee cost split.
func DefaultTable() *Table {
	return NewTable(map[Tier]Components{
		TierBudget:   {Accommodation: 800, Food: 500, Transport: 300, Activities: 400},
		TierMidRange: {Accommodation: 2000, Food: 800, Transport: 500, Activities: 700},
		TierLuxury:   {Accommodation: 5000, Food: 1500, Transport: 1000, Activities: 1500},
	})
}

// Components returns the split for a tier. Unknown tiers yield zero costs.
func (t *Table) Components(tier Tier) Components {
	return t.components[tier]
}

// Breakdown multiplies the tier's daily total by days. days is not validated.
func (t *Table) Breakdown(tier Tier, days int) Breakdown {
	c := t.Components(tier)
	daily := c.DailyTotal()
	return Breakdown{
		Tier:       tier,
		Days:       days,
		Daily:      c,
		DailyTotal: daily,
		TripTotal:  daily * types.Rupees(days),
	}
}
