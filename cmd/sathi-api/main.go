// README: Entry point; loads config, wires the catalog, cache, responders and lookup, starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelsathi/internal/ai"
	"travelsathi/internal/config"
	httptransport "travelsathi/internal/http"
	"travelsathi/internal/http/middleware"
	"travelsathi/internal/infra"
	"travelsathi/internal/lookup"
	"travelsathi/internal/maps"
	"travelsathi/internal/modules/aiusage"
	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/cache"
	"travelsathi/internal/modules/catalog"
	"travelsathi/internal/modules/classifier"
	"travelsathi/internal/modules/planner"
	"travelsathi/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dbPool *pgxpool.Pool
	if cfg.DB.DSN != "" {
		dbPool, err = infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
	}

	cat, err := loadCatalog(ctx, cfg, dbPool)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("catalog: %d cities", len(cat.Cities()))

	var blob cache.BlobStore = cache.NewMemoryBlob()
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		defer redisClient.Close()
		blob = cache.NewRedisBlob(redisClient, cfg.Redis.CacheKey)
	}

	responder := ai.NewResponder(nil, nil)
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()

		var quota ai.Quota
		if dbPool != nil {
			quota = aiusage.NewService(aiusage.NewStore(dbPool, cfg.AI.MonthlyCalls))
		}
		responder = ai.NewResponder(provider, quota)
	}

	var lookupOpts []lookup.Option
	if cfg.Maps.APIKey != "" {
		places, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
		routes, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("routes init: %v", err)
		}
		lookupOpts = append(lookupOpts, lookup.WithAttractions(places), lookup.WithTransfers(routes))
	}
	lookupSvc := lookup.NewService(cat, lookup.NewWikipedia(lookup.DefaultWikipediaURL), lookupOpts...)

	assistant := service.NewAssistant(
		cat,
		classifier.New(cat.Cities()),
		planner.New(cat, budget.DefaultTable()),
		lookupSvc,
		responder,
		cache.New(blob),
	)

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimit, time.Minute)
	}

	server := httptransport.NewServer(httptransport.ServerDeps{
		Assistant: assistant,
		Router: httptransport.RouterConfig{
			CORSOrigins: cfg.HTTP.CORSOrigins,
			Limiter:     limiter,
		},
	})
	if err := server.ListenAndServe(ctx, cfg.HTTP.Addr); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog layers built-in data, the optional YAML file and stored profiles, in that order.
func loadCatalog(ctx context.Context, cfg config.Config, db *pgxpool.Pool) (*catalog.Catalog, error) {
	data := catalog.DefaultData()
	if cfg.Catalog.File != "" {
		d, err := catalog.ReadYAML(cfg.Catalog.File)
		if err != nil {
			return nil, err
		}
		data = d
	}
	if db == nil {
		return catalog.New(data), nil
	}
	return catalog.NewStore(db).Load(ctx, data)
}
