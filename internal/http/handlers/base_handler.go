// README: Base handler utilities (JSON helpers, request validation, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/planner"
	"travelsathi/internal/service"
)

const (
	maxMessageRunes = 2000
	maxDays         = 30
	maxTravelers    = 50
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidSessionID accepts client-generated ids such as UUIDs: up to 64 letters, digits or dashes.
func isValidSessionID(v string) bool {
	if len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' {
			continue
		}
		return false
	}
	return true
}

func isValidTier(t budget.Tier) bool {
	return slices.Contains(budget.Tiers, t)
}

func isValidStyle(s planner.Style) bool {
	switch s {
	case planner.StyleRelaxed, planner.StyleModerate, planner.StylePacked:
		return true
	}
	return false
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
