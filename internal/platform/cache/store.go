// Package cache provides Redis caching decorators for the resource repositories.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a listing may be served after a write made by another process.
const DefaultTTL = 30 * time.Second

// LookupRecorder records cache hits and misses.
type LookupRecorder interface {
	RecordCacheLookup(resource string, hit bool)
}

// store holds the Redis entries of one resource under "<namespace>:".
// A nil client disables caching.
type store struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	rec       LookupRecorder
}

func newStore(rdb *redis.Client, ttl time.Duration, namespace string, rec LookupRecorder) *store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &store{rdb: rdb, ttl: ttl, namespace: namespace, rec: rec}
}

func (s *store) enabled() bool { return s.rdb != nil }

func (s *store) listKey() string {
	return s.namespace + ":list"
}

func (s *store) searchKey(parts ...any) string {
	b := strings.Builder{}
	b.WriteString(s.namespace)
	b.WriteString(":search")
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(safe(fmt.Sprint(p)))
	}
	return b.String()
}

// get decodes the entry at key into v. Corrupted entries are deleted and reported as a miss.
func (s *store) get(ctx context.Context, key string, v any) bool {
	hit := false
	if b, err := s.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		if err := json.Unmarshal(b, v); err == nil {
			hit = true
		} else {
			_ = s.rdb.Del(ctx, key).Err()
		}
	}
	if s.rec != nil {
		s.rec.RecordCacheLookup(s.namespace, hit)
	}
	return hit
}

// set stores v at key (best effort).
func (s *store) set(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = s.rdb.Set(ctx, key, b, s.ttl).Err()
	}
}

// invalidate drops every entry of the namespace (best effort).
func (s *store) invalidate(ctx context.Context) {
	if !s.enabled() {
		return
	}
	_ = s.deleteByPattern(ctx, s.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (s *store) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := s.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			return nil
		}
	}
}

// page is the cached form of a search result.
type page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return strings.ToLower(s)
}
