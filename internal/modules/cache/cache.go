// README: Bounded offline response cache with oldest-first eviction.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"

	"travelsathi/internal/metrics"
)

const (
	DefaultKey     = "travelsathi_cache"
	DefaultMaxSize = 50
)

// entry is the persisted shape of one cached answer.
type entry struct {
	Response  string `json:"response"`
	Timestamp int64  `json:"timestamp"`
}

// Info summarises the cache contents in iteration order.
type Info struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

// Cache has no internal locking; callers serialize access.
type Cache struct {
	blob    BlobStore
	maxSize int
	now     func() time.Time
}

type Option func(*Cache)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithMaxSize(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

func New(blob BlobStore, opts ...Option) *Cache {
	c := &Cache{blob: blob, maxSize: DefaultMaxSize, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeKey trims and lowercases a query.
func NormalizeKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Store records a response, overwriting any entry with the same key, then evicts
// the oldest entries until the cache is back at its bound. Write failures are logged.
func (c *Cache) Store(ctx context.Context, query, response string) {
	doc := c.load(ctx)
	key := NormalizeKey(query)
	doc[key] = entry{Response: response, Timestamp: c.now().UnixMilli()}

	if over := len(doc) - c.maxSize; over > 0 {
		for _, k := range orderedKeys(doc)[:over] {
			delete(doc, k)
		}
		metrics.RecordCache("evict", over)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		log.Printf("cache: encode failed: %v", err)
		return
	}
	if err := c.blob.Set(ctx, raw); err != nil {
		log.Printf("cache: write failed: %v", err)
		return
	}
	metrics.RecordCache("store", 1)
	log.Printf("cache: stored %q", key)
}

// Lookup tries an exact key match, then the first key in iteration order that
// contains the query or is contained by it.
func (c *Cache) Lookup(ctx context.Context, query string) (string, bool) {
	doc := c.load(ctx)
	key := NormalizeKey(query)

	if e, ok := doc[key]; ok {
		metrics.RecordCache("hit", 1)
		return e.Response, true
	}
	for _, k := range orderedKeys(doc) {
		if strings.Contains(k, key) || strings.Contains(key, k) {
			metrics.RecordCache("partial", 1)
			return doc[k].Response, true
		}
	}
	metrics.RecordCache("miss", 1)
	return "", false
}

// Clear removes the persisted document. Failures are logged.
func (c *Cache) Clear(ctx context.Context) {
	if err := c.blob.Delete(ctx); err != nil {
		log.Printf("cache: clear failed: %v", err)
		return
	}
	log.Printf("cache: cleared")
}

func (c *Cache) Info(ctx context.Context) Info {
	keys := orderedKeys(c.load(ctx))
	return Info{Size: len(keys), Keys: keys}
}

// load returns the current document. Absent, unreadable or corrupt blobs read as empty.
func (c *Cache) load(ctx context.Context) map[string]entry {
	doc := make(map[string]entry)
	raw, ok, err := c.blob.Get(ctx)
	if err != nil {
		log.Printf("cache: read failed: %v", err)
		return doc
	}
	if !ok {
		return doc
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("cache: corrupt document ignored: %v", err)
		metrics.RecordCache("corrupt", 1)
		return make(map[string]entry)
	}
	if doc == nil {
		doc = make(map[string]entry)
	}
	return doc
}

// orderedKeys sorts by timestamp ascending, ties broken by key.
func orderedKeys(doc map[string]entry) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := doc[keys[i]], doc[keys[j]]
		if a.Timestamp != b.Timestamp {
			return a.Timestamp < b.Timestamp
		}
		return keys[i] < keys[j]
	})
	return keys
}
