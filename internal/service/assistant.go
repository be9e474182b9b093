// README: Chat orchestration; routes a classified query to the planner, lookup, responders or offline cache.
package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"travelsathi/internal/metrics"
	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/cache"
	"travelsathi/internal/modules/catalog"
	"travelsathi/internal/modules/classifier"
	"travelsathi/internal/modules/planner"
)

var ErrEmptyQuery = errors.New("empty query")

// maxSessions bounds the context trackers kept in memory; the map is reset when full.
const maxSessions = 10000

type ReplyType string

const (
	ReplyText        ReplyType = "text"
	ReplyDestination ReplyType = "destination"
	ReplyEmergency   ReplyType = "emergency"
	ReplyWeather     ReplyType = "weather"
)

type Request struct {
	Text      string
	Online    bool
	Language  string
	SessionID string
}

type Reply struct {
	ID             string             `json:"id"`
	Text           string             `json:"text"`
	Type           ReplyType          `json:"type"`
	Intent         classifier.Intent  `json:"intent"`
	Destination    string             `json:"destination,omitempty"`
	Context        classifier.Context `json:"context"`
	ContextLabel   string             `json:"contextLabel"`
	ContextChanged bool               `json:"contextChanged"`
	Offline        bool               `json:"offline"`
}

// DestinationLookup produces destination pages; it never fails.
type DestinationLookup interface {
	Search(ctx context.Context, query string) string
}

// Responder answers weather queries and translates replies; it never fails.
type Responder interface {
	Weather(ctx context.Context, query string) string
	Translate(ctx context.Context, text, language string) string
}

type Assistant struct {
	classifier *classifier.Classifier
	planner    *planner.Planner
	catalog    *catalog.Catalog
	lookup     DestinationLookup
	responder  Responder

	cacheMu sync.Mutex
	cache   *cache.Cache

	sessionsMu sync.Mutex
	sessions   map[string]*classifier.ContextTracker
}

func NewAssistant(cat *catalog.Catalog, cls *classifier.Classifier, pl *planner.Planner, lookup DestinationLookup, responder Responder, c *cache.Cache) *Assistant {
	return &Assistant{
		classifier: cls,
		planner:    pl,
		catalog:    cat,
		lookup:     lookup,
		responder:  responder,
		cache:      c,
		sessions:   make(map[string]*classifier.ContextTracker),
	}
}

// Respond answers one chat message. The only error is ErrEmptyQuery.
func (a *Assistant) Respond(ctx context.Context, req Request) (Reply, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Reply{}, ErrEmptyQuery
	}

	res := a.classifier.Classify(text)
	metrics.RecordIntent(string(res.TopicIntent))

	reply := Reply{
		ID:             uuid.NewString(),
		Type:           ReplyText,
		Intent:         res.TopicIntent,
		Destination:    res.Destination,
		Context:        res.BackgroundContext,
		ContextLabel:   res.BackgroundContext.Label(),
		ContextChanged: a.observe(req.SessionID, res.BackgroundContext),
	}

	switch res.TopicIntent {
	case classifier.IntentWeather:
		reply.Type = ReplyWeather
		reply.Text = a.responder.Weather(ctx, text)
	case classifier.IntentEmergency:
		reply.Type = ReplyEmergency
		reply.Text = a.lookup.Search(ctx, text)
	case classifier.IntentFood:
		reply.Text = a.foodGuide(res.Destination)
	case classifier.IntentItinerary:
		reply.Text = planningHelp
		if res.Destination != "" {
			reply.Text = a.planner.Generate(res.Destination, classifier.PreferencesFromQuery(text))
		}
	case classifier.IntentLocalExperience:
		reply.Text = experiencesHelp
		if res.Destination != "" {
			reply.Text = a.planner.LocalExperiences(res.Destination)
		}
	case classifier.IntentBudget:
		reply.Text = budgetHelp
		if res.Destination != "" {
			reply.Text = a.planner.BudgetBreakdown(res.Destination, classifier.DaysFromQuery(text), classifier.TierFromQuery(text))
		}
	default:
		if req.Online {
			reply.Type = ReplyDestination
			reply.Text = a.lookup.Search(ctx, text)
			a.cacheStore(ctx, text, reply.Text)
		} else {
			reply.Offline = true
			reply.Text = offlineApology
			if cached, ok := a.cacheLookup(ctx, text); ok {
				reply.Text = cached
			}
		}
	}

	if lang := strings.ToLower(strings.TrimSpace(req.Language)); lang != "" && lang != "en" {
		reply.Text = a.responder.Translate(ctx, reply.Text, lang)
	}
	return reply, nil
}

// Welcome is the opening message, translated when a language is given.
func (a *Assistant) Welcome(ctx context.Context, language string) Reply {
	text := welcomeText
	if lang := strings.ToLower(strings.TrimSpace(language)); lang != "" && lang != "en" {
		text = a.responder.Translate(ctx, text, lang)
	}
	return Reply{
		ID:           uuid.NewString(),
		Text:         text,
		Type:         ReplyText,
		Context:      classifier.ContextDefault,
		ContextLabel: classifier.ContextDefault.Label(),
	}
}

func (a *Assistant) Classify(text string) classifier.Result {
	return a.classifier.Classify(text)
}

func (a *Assistant) CacheInfo(ctx context.Context) cache.Info {
	a.cacheMu.Lock()
	defer a.cacheMu.Unlock()
	return a.cache.Info(ctx)
}

func (a *Assistant) ClearCache(ctx context.Context) {
	a.cacheMu.Lock()
	defer a.cacheMu.Unlock()
	a.cache.Clear(ctx)
}

func (a *Assistant) cacheStore(ctx context.Context, query, response string) {
	a.cacheMu.Lock()
	defer a.cacheMu.Unlock()
	a.cache.Store(ctx, query, response)
}

func (a *Assistant) cacheLookup(ctx context.Context, query string) (string, bool) {
	a.cacheMu.Lock()
	defer a.cacheMu.Unlock()
	return a.cache.Lookup(ctx, query)
}

func (a *Assistant) observe(session string, c classifier.Context) bool {
	a.sessionsMu.Lock()
	defer a.sessionsMu.Unlock()
	tr, ok := a.sessions[session]
	if !ok {
		if len(a.sessions) >= maxSessions {
			a.sessions = make(map[string]*classifier.ContextTracker)
		}
		tr = classifier.NewContextTracker()
		a.sessions[session] = tr
	}
	return tr.Observe(c)
}

func (a *Assistant) foodGuide(destination string) string {
	if destination != "" {
		if g, ok := a.catalog.FoodGuide(destination); ok {
			return formatFoodGuide(a.catalog.DisplayName(destination), g)
		}
	}
	return indiaFoodGuide
}

func (a *Assistant) Itinerary(destination string, prefs planner.Preferences) string {
	return a.planner.Generate(destination, prefs)
}

func (a *Assistant) LocalExperiences(destination string) string {
	return a.planner.LocalExperiences(destination)
}

func (a *Assistant) BudgetBreakdown(destination string, days int, tier budget.Tier) string {
	return a.planner.BudgetBreakdown(destination, days, tier)
}
