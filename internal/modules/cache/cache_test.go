package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// stepClock returns a clock that advances one millisecond per call.
func stepClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func newTestCache() (*Cache, *MemoryBlob) {
	blob := NewMemoryBlob()
	return New(blob, WithClock(stepClock(time.UnixMilli(1_700_000_000_000)))), blob
}

func TestStoreLookup_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	c.Store(ctx, "  Tell me about JAIPUR ", "pink city")
	got, ok := c.Lookup(ctx, "tell me about jaipur")
	if !ok || got != "pink city" {
		t.Fatalf("Lookup = %q, %v; want pink city", got, ok)
	}
}

func TestStore_OverwriteSameKey(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	c.Store(ctx, "goa", "v1")
	c.Store(ctx, "GOA", "v2")
	if info := c.Info(ctx); info.Size != 1 {
		t.Fatalf("Size = %d, want 1", info.Size)
	}
	if got, _ := c.Lookup(ctx, "goa"); got != "v2" {
		t.Errorf("Lookup = %q, want v2", got)
	}
}

func TestStore_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	for i := 0; i < DefaultMaxSize+1; i++ {
		c.Store(ctx, fmt.Sprintf("query-%03d", i), fmt.Sprintf("answer-%d", i))
	}

	info := c.Info(ctx)
	if info.Size != DefaultMaxSize {
		t.Fatalf("Size = %d, want %d", info.Size, DefaultMaxSize)
	}
	for _, k := range info.Keys {
		if k == "query-000" {
			t.Fatalf("oldest entry was not evicted")
		}
	}
	if info.Keys[0] != "query-001" || info.Keys[len(info.Keys)-1] != "query-050" {
		t.Errorf("unexpected key order: first %q last %q", info.Keys[0], info.Keys[len(info.Keys)-1])
	}
}

func TestStore_SmallBound(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryBlob(), WithMaxSize(2), WithClock(stepClock(time.Unix(0, 0))))

	c.Store(ctx, "a", "1")
	c.Store(ctx, "b", "2")
	c.Store(ctx, "c", "3")
	if _, ok := c.Lookup(ctx, "a"); ok {
		t.Errorf("a should have been evicted")
	}
	if got, ok := c.Lookup(ctx, "c"); !ok || got != "3" {
		t.Errorf("Lookup(c) = %q, %v", got, ok)
	}
}

func TestLookup_PartialMatch(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	c.Store(ctx, "tell me about jaipur", "pink city")
	c.Store(ctx, "delhi", "capital")

	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{name: "query contained in key", query: "jaipur", want: "pink city", found: true},
		{name: "key contained in query", query: "what about delhi food", want: "capital", found: true},
		{name: "no overlap", query: "mumbai", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Lookup(ctx, tt.query)
			if ok != tt.found || got != tt.want {
				t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.query, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestLookup_PartialPrefersOldest(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache()

	c.Store(ctx, "goa beaches", "first")
	c.Store(ctx, "goa food", "second")
	if got, _ := c.Lookup(ctx, "goa"); got != "first" {
		t.Errorf("Lookup(goa) = %q, want first", got)
	}
}

func TestCorruptBlob_ReadsEmpty(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		raw  string
	}{
		{name: "garbage", raw: "{not json"},
		{name: "wrong shape", raw: `["a","b"]`},
		{name: "null", raw: "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, blob := newTestCache()
			_ = blob.Set(ctx, []byte(tt.raw))

			if _, ok := c.Lookup(ctx, "anything"); ok {
				t.Errorf("corrupt blob should read as empty")
			}
			c.Store(ctx, "goa", "beaches")
			if info := c.Info(ctx); info.Size != 1 {
				t.Errorf("Size after store = %d, want 1", info.Size)
			}
		})
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c, blob := newTestCache()

	c.Store(ctx, "goa", "beaches")
	c.Clear(ctx)
	if info := c.Info(ctx); info.Size != 0 || len(info.Keys) != 0 {
		t.Errorf("Info after clear = %+v", info)
	}
	if _, ok, _ := blob.Get(ctx); ok {
		t.Errorf("blob should be deleted")
	}
}

func TestPersistedShape(t *testing.T) {
	ctx := context.Background()
	blob := NewMemoryBlob()
	c := New(blob, WithClock(func() time.Time { return time.UnixMilli(42) }))

	c.Store(ctx, "Goa", "beaches")
	raw, _, _ := blob.Get(ctx)
	want := `{"goa":{"response":"beaches","timestamp":42}}`
	if string(raw) != want {
		t.Errorf("blob = %s, want %s", raw, want)
	}
}

func TestRedisBlob(t *testing.T) {
	addr := os.Getenv("SATHI_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SATHI_TEST_REDIS_ADDR not set; skipping integration test")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	key := fmt.Sprintf("travelsathi_cache_test_%d", time.Now().UnixNano())
	defer rdb.Del(ctx, key)

	c := New(NewRedisBlob(rdb, key))
	if info := c.Info(ctx); info.Size != 0 {
		t.Fatalf("fresh key should be empty, got %+v", info)
	}
	c.Store(ctx, "jaipur", "pink city")
	if got, ok := c.Lookup(ctx, "JAIPUR"); !ok || got != "pink city" {
		t.Errorf("Lookup = %q, %v", got, ok)
	}
	c.Clear(ctx)
	if n, _ := rdb.Exists(ctx, key).Result(); n != 0 {
		t.Errorf("key should be deleted after Clear")
	}
}
