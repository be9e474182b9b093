// README: Ordered keyword rules for background context and topic intent.
package classifier

import "strings"

// Matcher reports whether a lowercase query satisfies a rule.
type Matcher func(lower string) bool

// ContainsAny matches when at least one word occurs as a substring.
func ContainsAny(words ...string) Matcher {
	return func(lower string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}
}

// ContainsAll matches when every word occurs as a substring.
func ContainsAll(words ...string) Matcher {
	return func(lower string) bool {
		for _, w := range words {
			if !strings.Contains(lower, w) {
				return false
			}
		}
		return true
	}
}

type ContextRule struct {
	Name    string
	Match   Matcher
	Context Context
}

type IntentRule struct {
	Name   string
	Match  Matcher
	Intent Intent
}

// DefaultContextRules lists city groups before topics. First match wins.
func DefaultContextRules() []ContextRule {
	return []ContextRule{
		{Name: "jaipur", Match: ContainsAny("jaipur", "pink city", "rajasthan"), Context: ContextJaipur},
		{Name: "delhi", Match: ContainsAny("delhi", "new delhi"), Context: ContextDelhi},
		{Name: "mumbai", Match: ContainsAny("mumbai", "bombay"), Context: ContextMumbai},
		{Name: "kerala", Match: ContainsAny("kerala", "backwater", "kochi", "cochin"), Context: ContextKerala},
		{Name: "goa", Match: ContainsAny("goa", "beach", "panaji"), Context: ContextGoa},
		{Name: "rajasthan", Match: ContainsAny("rajasthan", "desert", "camel", "udaipur", "jodhpur"), Context: ContextRajasthan},
		{Name: "agra", Match: ContainsAny("agra", "taj mahal"), Context: ContextAgra},
		{Name: "varanasi", Match: ContainsAny("varanasi", "benares", "ganga", "ganges"), Context: ContextVaranasi},
		{Name: "bangalore", Match: ContainsAny("bangalore", "bengaluru"), Context: ContextBangalore},
		{Name: "food", Match: ContainsAny("food", "cuisine", "eat", "restaurant", "spice", "dish"), Context: ContextFood},
		{Name: "weather", Match: ContainsAny("weather", "temperature", "climate", "season", "rain", "monsoon"), Context: ContextWeather},
		{Name: "emergency", Match: ContainsAny("emergency", "help", "contact", "police", "hospital", "safety"), Context: ContextEmergency},
	}
}

// DefaultIntentRules is the topic cascade; no match means IntentDestination.
func DefaultIntentRules() []IntentRule {
	return []IntentRule{
		{Name: "weather", Match: ContainsAny("weather"), Intent: IntentWeather},
		{Name: "emergency", Match: ContainsAny("emergency", "contact"), Intent: IntentEmergency},
		{Name: "food", Match: ContainsAny("food", "cuisine"), Intent: IntentFood},
		{Name: "itinerary", Match: ContainsAny("plan", "trip", "itinerary"), Intent: IntentItinerary},
		{Name: "local experience", Match: ContainsAny("local experience", "things to do"), Intent: IntentLocalExperience},
		{Name: "budget breakdown", Match: ContainsAll("budget", "breakdown"), Intent: IntentBudget},
	}
}
