package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPageTTL is the default TTL for cached rendered pages.
const DefaultPageTTL = 24 * time.Hour

// Store handles Redis operations for the rendered-page cache.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new Redis page store. A non-positive ttl falls back
// to DefaultPageTTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// CachePage stores a rendered page under its request path.
func (s *Store) CachePage(ctx context.Context, path string, html []byte) error {
	if err := s.client.Set(ctx, PageKey(path), html, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache page %s: %w", path, err)
	}
	return nil
}

// GetCachedPage retrieves a cached page. A cache miss returns (nil, nil).
func (s *Store) GetCachedPage(ctx context.Context, path string) ([]byte, error) {
	data, err := s.client.Get(ctx, PageKey(path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get cached page %s: %w", path, err)
	}
	return data, nil
}

// InvalidateAll removes every cached page. Called after each content
// reload so stale renders never outlive their source records.
func (s *Store) InvalidateAll(ctx context.Context) (int, error) {
	var removed int
	iter := s.client.Scan(ctx, 0, PagePattern(), 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to scan page keys: %w", err)
	}
	return removed, nil
}

// Ping reports whether Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
