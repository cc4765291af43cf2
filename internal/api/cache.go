package api

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SuggestionCache memoizes typeahead results: L1 in-memory, optional L2
// redis so repeated queries across processes (CLI + dashboard) share hits.
// Every method degrades silently; suggestions are never worth an error.
type SuggestionCache struct {
	l1  sync.Map // key → *cacheEntry
	rdb *redis.Client
	ttl time.Duration
	max int
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewSuggestionCache builds the cache. redisURL may be empty to run L1-only.
func NewSuggestionCache(redisURL string, ttl time.Duration, maxEntries int) *SuggestionCache {
	c := &SuggestionCache{ttl: ttl, max: maxEntries}
	if ttl <= 0 {
		c.ttl = 5 * time.Minute
	}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("suggestion cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("suggestion cache: redis unreachable, L2 disabled", slog.Any("error", err))
			} else {
				c.rdb = rdb
				slog.Info("suggestion cache: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}
	return c
}

// cacheKey builds a deterministic key from parts.
func cacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("jp:sg:%x", hash[:12])
}

// Get returns cached suggestions for query.
func (c *SuggestionCache) Get(ctx context.Context, query string) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	key := cacheKey(query)

	if val, ok := c.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			var out []string
			if json.Unmarshal(entry.data, &out) == nil {
				return out, true
			}
		}
		c.l1.Delete(key)
	}

	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var out []string
			if json.Unmarshal(data, &out) == nil {
				c.l1.Store(key, &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})
				return out, true
			}
		}
	}
	return nil, false
}

// Set stores suggestions for query in both tiers.
func (c *SuggestionCache) Set(ctx context.Context, query string, suggestions []string) {
	if c == nil {
		return
	}
	data, err := json.Marshal(suggestions)
	if err != nil {
		return
	}
	key := cacheKey(query)

	c.evictIfNeeded()
	c.l1.Store(key, &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Debug("suggestion cache: L2 set failed", slog.Any("error", err))
		}
	}
}

// evictIfNeeded drops expired entries when L1 is over the cap, then the
// oldest entries until back under it.
func (c *SuggestionCache) evictIfNeeded() {
	if c.max <= 0 {
		return
	}

	count := 0
	c.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count < c.max {
		return
	}

	now := time.Now()
	c.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
			c.l1.Delete(key)
			count--
		}
		return count >= c.max
	})

	for count >= c.max {
		var oldestKey any
		oldestAt := now.Add(time.Hour)
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok && entry.expiresAt.Before(oldestAt) {
				oldestKey = key
				oldestAt = entry.expiresAt
			}
			return true
		})
		if oldestKey == nil {
			break
		}
		c.l1.Delete(oldestKey)
		count--
	}
}
