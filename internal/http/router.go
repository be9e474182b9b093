// README: HTTP router registration.
package http

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelsathi/internal/http/handlers"
	"travelsathi/internal/http/middleware"
	"travelsathi/internal/metrics"
	"travelsathi/internal/service"
)

type RouterConfig struct {
	// CORSOrigins empty or containing "*" allows every origin.
	CORSOrigins []string
	// Limiter guards /api routes; nil disables rate limiting.
	Limiter *middleware.RateLimiter
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type"}
	return cfg
}

func NewRouter(assistant *service.Assistant, cfg RouterConfig) *gin.Engine {
	metrics.Init()

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), cors.New(corsConfig(cfg.CORSOrigins)))

	api := r.Group("/api", middleware.RateLimit(cfg.Limiter))

	chat := handlers.NewChatHandler(assistant)
	api.POST("/chat", chat.Chat)
	api.POST("/classify", chat.Classify)
	api.GET("/welcome", chat.Welcome)
	api.GET("/languages", chat.Languages)

	trip := handlers.NewTripHandler(assistant)
	api.POST("/itinerary", trip.Itinerary)
	api.GET("/budget", trip.Budget)
	api.GET("/experiences/:destination", trip.Experiences)

	cache := handlers.NewCacheHandler(assistant)
	api.GET("/cache", cache.Info)
	api.DELETE("/cache", cache.Clear)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
