package ytprompt

import (
	"sync"
	"time"
)

// Cache memoizes title and transcript lookups per video ID for the web
// variant. It is bounded and TTL-limited so a long-running process cannot
// grow without limit. Only successful lookups are stored.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	max     int
	ttl     time.Duration
}

type cacheEntry struct {
	value    string
	expireAt time.Time
}

// NewCache creates a cache holding at most maxEntries values, each valid for
// ttl after insertion.
func NewCache(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		max:     maxEntries,
		ttl:     ttl,
	}
}

// Get returns the cached value for key. Expired entries miss.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expireAt) {
		return "", false
	}
	return e.value, true
}

// Set stores value under key, dropping expired entries first and evicting the
// entry closest to expiry if the cache is still at capacity.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expireAt) {
			delete(c.entries, k)
		}
	}
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.max {
		var oldestKey string
		var oldestAt time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.expireAt.Before(oldestAt) {
				oldestKey, oldestAt = k, e.expireAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = cacheEntry{value: value, expireAt: now.Add(c.ttl)}
}

// Len reports the number of stored entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
