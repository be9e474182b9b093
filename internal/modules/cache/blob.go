// README: Blob stores holding the single serialized cache document.
package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// BlobStore persists one opaque document. ok is false when nothing is stored.
type BlobStore interface {
	Get(ctx context.Context) (raw []byte, ok bool, err error)
	Set(ctx context.Context, raw []byte) error
	Delete(ctx context.Context) error
}

// RedisBlob keeps the document under a single Redis key.
type RedisBlob struct {
	rdb *redis.Client
	key string
}

func NewRedisBlob(rdb *redis.Client, key string) *RedisBlob {
	return &RedisBlob{rdb: rdb, key: key}
}

func (b *RedisBlob) Get(ctx context.Context) ([]byte, bool, error) {
	raw, err := b.rdb.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (b *RedisBlob) Set(ctx context.Context, raw []byte) error {
	return b.rdb.Set(ctx, b.key, raw, 0).Err()
}

func (b *RedisBlob) Delete(ctx context.Context) error {
	return b.rdb.Del(ctx, b.key).Err()
}

// MemoryBlob is a process-local BlobStore for tests and the offline CLI.
type MemoryBlob struct {
	mu  sync.Mutex
	raw []byte
	ok  bool
}

func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{}
}

func (b *MemoryBlob) Get(_ context.Context) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ok {
		return nil, false, nil
	}
	out := make([]byte, len(b.raw))
	copy(out, b.raw)
	return out, true, nil
}

func (b *MemoryBlob) Set(_ context.Context, raw []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.raw = append(b.raw[:0], raw...)
	b.ok = true
	return nil
}

func (b *MemoryBlob) Delete(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.raw = nil
	b.ok = false
	return nil
}
