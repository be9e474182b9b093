// README: One-shot CLI; answers a single message with the same assistant the API uses.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"travelsathi/internal/ai"
	"travelsathi/internal/config"
	"travelsathi/internal/infra"
	"travelsathi/internal/lookup"
	"travelsathi/internal/modules/budget"
	"travelsathi/internal/modules/cache"
	"travelsathi/internal/modules/catalog"
	"travelsathi/internal/modules/classifier"
	"travelsathi/internal/modules/planner"
	"travelsathi/internal/service"
)

func main() {
	offline := flag.Bool("offline", false, "answer from the offline cache only")
	lang := flag.String("lang", "en", "reply language code")
	classifyOnly := flag.Bool("classify", false, "print the classification as JSON and exit")
	flag.Parse()

	msg := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if msg == "" {
		fmt.Fprintln(os.Stderr, `usage: sathi-cli [-offline] [-lang hi] [-classify] "Tell me about Jaipur"`)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	cat := catalog.Default()
	if cfg.Catalog.File != "" {
		if cat, err = catalog.LoadYAML(cfg.Catalog.File); err != nil {
			log.Fatal(err)
		}
	}
	cls := classifier.New(cat.Cities())

	if *classifyOnly {
		out, _ := json.MarshalIndent(cls.Classify(msg), "", "  ")
		fmt.Println(string(out))
		return
	}

	var blob cache.BlobStore = cache.NewMemoryBlob()
	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		defer rdb.Close()
		blob = cache.NewRedisBlob(rdb, cfg.Redis.CacheKey)
	}

	responder := ai.NewResponder(nil, nil)
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		responder = ai.NewResponder(provider, nil)
	}

	assistant := service.NewAssistant(
		cat,
		cls,
		planner.New(cat, budget.DefaultTable()),
		lookup.NewService(cat, lookup.NewWikipedia(lookup.DefaultWikipediaURL)),
		responder,
		cache.New(blob),
	)

	reply, err := assistant.Respond(ctx, service.Request{Text: msg, Online: !*offline, Language: *lang})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[%s / %s]\n\n%s\n", reply.Intent, reply.ContextLabel, reply.Text)
}
