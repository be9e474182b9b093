// README: Classification result types and topic/context tags.
package classifier

type Intent string

const (
	// IntentDestination is the generic lookup intent answered by the destination lookup.
	IntentDestination     Intent = "destination"
	IntentWeather         Intent = "weather"
	IntentEmergency       Intent = "emergency"
	IntentFood            Intent = "food"
	IntentItinerary       Intent = "itinerary"
	IntentLocalExperience Intent = "localExperience"
	IntentBudget          Intent = "budget"
)

// Context is the presentation tag for a query.
type Context string

const (
	ContextDefault   Context = "default"
	ContextJaipur    Context = "jaipur"
	ContextDelhi     Context = "delhi"
	ContextMumbai    Context = "mumbai"
	ContextKerala    Context = "kerala"
	ContextGoa       Context = "goa"
	ContextRajasthan Context = "rajasthan"
	ContextAgra      Context = "agra"
	ContextVaranasi  Context = "varanasi"
	ContextBangalore Context = "bangalore"
	ContextFood      Context = "food"
	ContextWeather   Context = "weather"
	ContextEmergency Context = "emergency"
)

var contextLabels = map[Context]string{
	ContextJaipur:    "Jaipur Experience",
	ContextDelhi:     "Delhi Exploration",
	ContextMumbai:    "Mumbai Adventure",
	ContextKerala:    "Kerala Journey",
	ContextGoa:       "Goa Beaches",
	ContextRajasthan: "Rajasthan Heritage",
	ContextAgra:      "Agra Wonders",
	ContextVaranasi:  "Varanasi Spirituality",
	ContextBangalore: "Bangalore Tech Hub",
	ContextFood:      "Culinary Journey",
	ContextWeather:   "Weather Update",
	ContextEmergency: "Safety Information",
	ContextDefault:   "Incredible India",
}

// Label is the display name of a context; unknown tags get the default label.
func (c Context) Label() string {
	if l, ok := contextLabels[c]; ok {
		return l
	}
	return contextLabels[ContextDefault]
}

// Result is the outcome of classifying one query. Destination is empty when no
// known city is mentioned.
type Result struct {
	Destination       string  `json:"destination,omitempty"`
	TopicIntent       Intent  `json:"topicIntent"`
	BackgroundContext Context `json:"backgroundContext"`
}
