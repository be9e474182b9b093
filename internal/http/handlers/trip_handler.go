// README: Trip planning handlers (itinerary, budget breakdown, local experiences).
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/planner"
	"travelsathi/internal/service"
)

type TripHandler struct {
	assistant *service.Assistant
}

func NewTripHandler(assistant *service.Assistant) *TripHandler {
	return &TripHandler{assistant: assistant}
}

// itineraryReq fields left empty take the default preferences.
type itineraryReq struct {
	Destination string   `json:"destination"`
	Budget      string   `json:"budget"`
	Days        int      `json:"days"`
	Style       string   `json:"style"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
}

type textResp struct {
	Destination string `json:"destination"`
	Text        string `json:"text"`
}

func (r itineraryReq) preferences() (planner.Preferences, string) {
	prefs := planner.DefaultPreferences()
	if r.Budget != "" {
		prefs.Tier = budget.Tier(strings.ToLower(r.Budget))
	}
	if r.Style != "" {
		prefs.Style = planner.Style(strings.ToLower(r.Style))
	}
	if r.Days != 0 {
		prefs.Days = r.Days
	}
	if r.Travelers != 0 {
		prefs.Travelers = r.Travelers
	}
	if len(r.Interests) > 0 {
		prefs.Interests = r.Interests
	}

	switch {
	case !isValidTier(prefs.Tier):
		return prefs, "invalid budget"
	case !isValidStyle(prefs.Style):
		return prefs, "invalid style"
	case prefs.Days < 1 || prefs.Days > maxDays:
		return prefs, "days must be between 1 and 30"
	case prefs.Travelers < 1 || prefs.Travelers > maxTravelers:
		return prefs, "travelers must be between 1 and 50"
	}
	return prefs, ""
}

// Itinerary handles POST /api/itinerary.
func (h *TripHandler) Itinerary(c *gin.Context) {
	var req itineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	dest := strings.TrimSpace(req.Destination)
	if dest == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	prefs, msg := req.preferences()
	if msg != "" {
		writeError(c, http.StatusBadRequest, msg)
		return
	}
	writeJSON(c, http.StatusOK, textResp{Destination: dest, Text: h.assistant.Itinerary(dest, prefs)})
}

// Budget handles GET /api/budget?destination=goa&days=3&tier=mid-range.
func (h *TripHandler) Budget(c *gin.Context) {
	dest := strings.TrimSpace(c.Query("destination"))
	if dest == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	days := 3
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxDays {
			writeError(c, http.StatusBadRequest, "days must be between 1 and 30")
			return
		}
		days = n
	}
	tier := budget.Tier(strings.ToLower(c.DefaultQuery("tier", string(budget.TierMidRange))))
	if !isValidTier(tier) {
		writeError(c, http.StatusBadRequest, "invalid tier")
		return
	}
	writeJSON(c, http.StatusOK, textResp{Destination: dest, Text: h.assistant.BudgetBreakdown(dest, days, tier)})
}

// Experiences handles GET /api/experiences/:destination.
func (h *TripHandler) Experiences(c *gin.Context) {
	dest := strings.TrimSpace(c.Param("destination"))
	if dest == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	writeJSON(c, http.StatusOK, textResp{Destination: dest, Text: h.assistant.LocalExperiences(dest)})
}
