// README: Query classifier; pure keyword matching over injected city list and rules.
package classifier

import (
	"slices"
	"strings"
)

type Classifier struct {
	cities       []string
	contextRules []ContextRule
	intentRules  []IntentRule
}

// New builds a classifier over an ordered city list with the default rules.
// Earlier cities win when a query mentions several.
func New(cities []string) *Classifier {
	return NewWithRules(cities, DefaultContextRules(), DefaultIntentRules())
}

func NewWithRules(cities []string, contextRules []ContextRule, intentRules []IntentRule) *Classifier {
	return &Classifier{
		cities:       slices.Clone(cities),
		contextRules: slices.Clone(contextRules),
		intentRules:  slices.Clone(intentRules),
	}
}

func (c *Classifier) Classify(query string) Result {
	lower := strings.ToLower(query)
	return Result{
		Destination:       c.Destination(lower),
		TopicIntent:       c.Intent(lower),
		BackgroundContext: c.Context(lower),
	}
}

// Destination returns the first listed city contained in the query, or "".
func (c *Classifier) Destination(query string) string {
	lower := strings.ToLower(query)
	if strings.TrimSpace(lower) == "" {
		return ""
	}
	for _, city := range c.cities {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return ""
}

func (c *Classifier) Context(query string) Context {
	lower := strings.ToLower(query)
	for _, r := range c.contextRules {
		if r.Match(lower) {
			return r.Context
		}
	}
	return ContextDefault
}

func (c *Classifier) Intent(query string) Intent {
	lower := strings.ToLower(query)
	for _, r := range c.intentRules {
		if r.Match(lower) {
			return r.Intent
		}
	}
	return IntentDestination
}

// ContextTracker remembers the last emitted context so a change is signalled once.
type ContextTracker struct {
	last Context
}

func NewContextTracker() *ContextTracker {
	return &ContextTracker{last: ContextDefault}
}

// Observe records ctx and reports whether it should be signalled. The default
// context is recorded but never signalled.
func (t *ContextTracker) Observe(ctx Context) bool {
	changed := ctx != t.last
	t.last = ctx
	return changed && ctx != ContextDefault
}

func (t *ContextTracker) Current() Context {
	return t.last
}
