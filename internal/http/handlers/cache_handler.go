// README: Offline cache inspection handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelsathi/internal/service"
)

type CacheHandler struct {
	assistant *service.Assistant
}

func NewCacheHandler(assistant *service.Assistant) *CacheHandler {
	return &CacheHandler{assistant: assistant}
}

// Info handles GET /api/cache.
func (h *CacheHandler) Info(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.assistant.CacheInfo(c.Request.Context()))
}

// Clear handles DELETE /api/cache.
func (h *CacheHandler) Clear(c *gin.Context) {
	h.assistant.ClearCache(c.Request.Context())
	writeJSON(c, http.StatusOK, gin.H{"status": "cleared"})
}
