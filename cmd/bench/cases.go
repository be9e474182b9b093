// README: Bench cases: environment, migrations, chat API flows, offline cache and throughput.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Postgres connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Migration: apply (optional)",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: "SKIP", Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				files, err := migrationFiles(r.cfg.MigrationDir)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, f := range files {
					sql, err := os.ReadFile(f)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					for _, s := range splitSQL(string(sql)) {
						if _, err := r.db.Exec(ctx, s); err != nil {
							return Result{Status: "FAIL", Note: fmt.Sprintf("%s: %v", filepath.Base(f), err)}
						}
					}
				}
				return Result{Status: "PASS", Note: fmt.Sprintf("files=%d", len(files))}
			},
		},
		{
			Name: "Migration: tables exist",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "db not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationDir)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					if !exists {
						return Result{Status: "FAIL", Note: "missing table: " + t}
					}
				}
				return Result{Status: "PASS"}
			},
		},

		httpCase("API: health", http.MethodGet, base+"/health", nil, 200, "OK"),
		httpCase("API: metrics", http.MethodGet, base+"/metrics", nil, 200, "travelsathi_intents_total"),
		httpCase("API: welcome", http.MethodGet, base+"/api/welcome", nil, 200, "TravelSathi"),
		httpCase("API: welcome (hindi)", http.MethodGet, base+"/api/welcome?lang=hi", nil, 200, "नमस्ते"),

		// Chat routing
		httpCase("Chat: destination lookup", http.MethodPost, base+"/api/chat", map[string]any{
			"message": "Tell me about Jaipur",
		}, 200, `"type":"destination"`),
		httpCase("Chat: weather", http.MethodPost, base+"/api/chat", map[string]any{
			"message": "Weather in Delhi",
		}, 200, `"type":"weather"`),
		httpCase("Chat: emergency", http.MethodPost, base+"/api/chat", map[string]any{
			"message": "Emergency contacts",
		}, 200, `"type":"emergency"`),
		httpCase("Chat: food guide", http.MethodPost, base+"/api/chat", map[string]any{
			"message": "Best food in Mumbai",
		}, 200, "Mumbai Food Guide"),
		httpCase("Chat: itinerary", http.MethodPost, base+"/api/chat", map[string]any{
			"message": "Plan a 2 day budget trip to Jaipur",
		}, 200, "2-Day Jaipur Itinerary"),
		httpCase("Chat: translated", http.MethodPost, base+"/api/chat", map[string]any{
			"message":  "Tell me about Goa",
			"language": "ta",
		}, 200, "Tamil"),
		httpCase("Chat: empty message -> 400", http.MethodPost, base+"/api/chat", map[string]any{
			"message": "  ",
		}, 400, "missing message"),

		// Offline cache
		httpCase("Offline: cached partial match", http.MethodPost, base+"/api/chat", map[string]any{
			"message": "jaipur",
			"online":  false,
		}, 200, `"offline":true`),
		httpCase("Offline: miss apologises", http.MethodPost, base+"/api/chat", map[string]any{
			"message": "tell me about a place nobody asked for",
			"online":  false,
		}, 200, "internet connection"),
		httpCase("Cache: info", http.MethodGet, base+"/api/cache", nil, 200, "tell me about jaipur"),
		{
			Name: "Cache: blob persisted in Redis",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "SKIP", Note: "redis not configured"}
				}
				raw, err := r.redis.Get(ctx, r.cfg.CacheKey).Bytes()
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				var doc map[string]json.RawMessage
				if err := json.Unmarshal(raw, &doc); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				if _, ok := doc["tell me about jaipur"]; !ok {
					return Result{Status: "FAIL", Note: fmt.Sprintf("keys=%d, jaipur missing", len(doc))}
				}
				return Result{Status: "PASS", Note: fmt.Sprintf("keys=%d", len(doc))}
			},
		},

		// Planner endpoints
		httpCase("Planner: itinerary", http.MethodPost, base+"/api/itinerary", map[string]any{
			"destination": "Delhi",
			"budget":      "luxury",
			"days":        4,
			"style":       "packed",
		}, 200, "4-Day Delhi Itinerary"),
		httpCase("Planner: itinerary invalid budget -> 400", http.MethodPost, base+"/api/itinerary", map[string]any{
			"destination": "Delhi",
			"budget":      "cheap",
		}, 400, "invalid budget"),
		httpCase("Planner: budget breakdown", http.MethodGet, base+"/api/budget?destination=kerala&days=5&tier=budget", nil, 200, "5-Day Kerala Budget"),
		httpCase("Planner: local experiences", http.MethodGet, base+"/api/experiences/goa", nil, 200, "Goa"),
		httpCase("Classify: weather in mumbai", http.MethodPost, base+"/api/classify", map[string]any{
			"message": "Weather in Mumbai",
		}, 200, `"topicIntent":"weather"`),

		// Performance
		{
			Name: "Perf: chat throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/chat", map[string]any{
					"message": "Plan a trip to Jaipur",
				})
			},
		},
	}
}

// httpCase passes when the status matches and the body contains want.
func httpCase(name, method, url string, body any, status int, want string) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = strings.NewReader(string(b))
			}
			req, _ := http.NewRequestWithContext(ctx, method, url, reader)
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			raw, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			latency := time.Since(start)

			if resp.StatusCode != status {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			if want != "" && !strings.Contains(string(raw), want) {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("body missing %q", want)}
			}
			return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount, limited int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				if resp.StatusCode == http.StatusTooManyRequests {
					limited++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d rate_limited=%d", rps, errCount, limited)}
}

func migrationFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migrations in %s", dir)
	}
	slices.Sort(files)
	return files, nil
}

var createTableRe = regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)

func extractTables(dir string) ([]string, error) {
	files, err := migrationFiles(dir)
	if err != nil {
		return nil, err
	}
	var tables []string
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		for _, m := range createTableRe.FindAllStringSubmatch(string(b), -1) {
			tables = append(tables, m[1])
		}
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
