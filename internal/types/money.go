// README: Rupee amounts shared by the budget table, planner and formatters.
package types

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Rupees is a whole-rupee amount. Fractions only appear through Scale.
type Rupees int64

var printer = message.NewPrinter(language.English)

// Scale multiplies an amount by a ratio and keeps the fractional part.
func (r Rupees) Scale(ratio float64) float64 {
	return float64(r) * ratio
}

// String formats the amount with the rupee glyph and thousands grouping, e.g. ₹1,500.
func (r Rupees) String() string {
	return printer.Sprintf("₹%d", int64(r))
}

// FormatAmount formats a possibly fractional amount the way String does, dropping
// the decimals when the value is whole.
func FormatAmount(v float64) string {
	v = math.Round(v*100) / 100
	if v == float64(int64(v)) {
		return Rupees(int64(v)).String()
	}
	return printer.Sprintf("₹%.1f", v)
}
