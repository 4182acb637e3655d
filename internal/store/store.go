// Package store persists encoded GeoJSON documents in Redis, with an
// in-process LRU in front of reads.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mohammed-shakir/geojson-validator/internal/observability"
)

// ErrNotFound reports a lookup for a document id that is not stored.
var ErrNotFound = errors.New("store: document not found")

const idSetKey = "geojson:ids"

type Option func(*redis.Options)

func WithPoolSize(n int) Option {
	return func(o *redis.Options) { o.PoolSize = n }
}

func WithDialTimeout(d time.Duration) Option {
	return func(o *redis.Options) { o.DialTimeout = d }
}

type Store struct {
	rdb   *redis.Client
	ttl   time.Duration
	cache *lru.Cache[string, []byte]
}

// New connects to Redis and verifies the connection. A ttl of zero stores
// documents without expiry. lruSize bounds the in-process read cache.
func New(ctx context.Context, addr string, ttl time.Duration, lruSize int, opts ...Option) (*Store, error) {
	if addr == "" {
		return nil, errors.New("redis address is required")
	}
	if lruSize <= 0 {
		lruSize = 1024
	}

	ro := &redis.Options{
		Addr:         addr,
		PoolSize:     64,
		MinIdleConns: 4,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	}
	for _, f := range opts {
		f(ro)
	}

	rdb := redis.NewClient(ro)

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	observability.ObserveStoreOp("ping", err, time.Since(start).Seconds())
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	cache, _ := lru.New[string, []byte](lruSize)
	return &Store{rdb: rdb, ttl: ttl, cache: cache}, nil
}

// Put stores the encoded document under id and registers the id for listing.
func (s *Store) Put(ctx context.Context, id string, doc []byte) error {
	key := docKey(id)
	start := time.Now()
	_, err := s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		if err := p.Set(ctx, key, doc, s.ttl).Err(); err != nil {
			return fmt.Errorf("redis SET %q: %w", key, err)
		}
		if err := p.SAdd(ctx, idSetKey, id).Err(); err != nil {
			return fmt.Errorf("redis SADD %q: %w", id, err)
		}
		return nil
	})
	observability.ObserveStoreOp("put", err, time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("store put %q: %w", id, err)
	}
	s.cache.Add(key, doc)
	return nil
}

// Get returns the encoded document for id, serving from the LRU when
// possible.
func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	key := docKey(id)
	if doc, ok := s.cache.Get(key); ok {
		return doc, nil
	}

	start := time.Now()
	doc, err := s.rdb.Get(ctx, key).Bytes()
	observability.ObserveStoreOp("get", ignoreNil(err), time.Since(start).Seconds())
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store get %q: %w", id, err)
	}
	s.cache.Add(key, doc)
	return doc, nil
}

// Delete removes the document and its id registration.
func (s *Store) Delete(ctx context.Context, id string) error {
	key := docKey(id)
	s.cache.Remove(key)

	start := time.Now()
	n, err := s.rdb.Del(ctx, key).Result()
	if err == nil {
		err = s.rdb.SRem(ctx, idSetKey, id).Err()
	}
	observability.ObserveStoreOp("delete", err, time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("store delete %q: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all stored documents keyed by id. Ids whose documents have
// expired are skipped and unregistered lazily.
func (s *Store) List(ctx context.Context) (map[string][]byte, error) {
	start := time.Now()
	ids, err := s.rdb.SMembers(ctx, idSetKey).Result()
	if err != nil {
		observability.ObserveStoreOp("list", err, time.Since(start).Seconds())
		return nil, fmt.Errorf("store list ids: %w", err)
	}
	out := make(map[string][]byte, len(ids))
	if len(ids) == 0 {
		observability.ObserveStoreOp("list", nil, time.Since(start).Seconds())
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(id)
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	observability.ObserveStoreOp("list", err, time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("store list MGET %d keys: %w", len(keys), err)
	}
	for i, v := range vals {
		if v == nil {
			// expired document, drop the stale id
			_ = s.rdb.SRem(ctx, idSetKey, ids[i]).Err()
			continue
		}
		switch t := v.(type) {
		case string:
			out[ids[i]] = []byte(t)
		case []byte:
			out[ids[i]] = t
		}
	}
	return out, nil
}

func (s *Store) Close() error {
	if err := s.rdb.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

func ignoreNil(err error) error {
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// docKey builds a safe, deterministic Redis key for an id: a sanitized
// prefix for readability plus an xxhash suffix for uniqueness.
func docKey(id string) string {
	norm := strings.TrimSpace(id)
	safe := sanitizeID(norm)
	const maxIDTextLen = 120
	if len(safe) > maxIDTextLen {
		safe = safe[:maxIDTextLen]
	}
	sum := xxhash.Sum64String(norm)
	return fmt.Sprintf("geojson:doc:%s:%016x", safe, sum)
}

func sanitizeID(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		var out rune
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			out = '_'
		case isAlphaNum(r) || r == ':' || r == '_' || r == '-':
			out = r
		default:
			out = '-'
		}
		if (out == '_' || out == '-') && out == prev {
			continue
		}
		b.WriteRune(out)
		prev = out
	}
	return b.String()
}

func isAlphaNum(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		unicode.IsDigit(r)
}
