package bible

import (
	"sync"
	"time"
)

// passageCache is a TTL cache for remote API responses keyed by reference.
type passageCache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
	ttl   time.Duration
	stop  chan struct{}
}

type cacheItem struct {
	value     any
	expiresAt time.Time
}

func newPassageCache(ttl time.Duration) *passageCache {
	c := &passageCache{
		items: make(map[string]cacheItem),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

func (c *passageCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.value, true
}

func (c *passageCache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{value: value, expiresAt: time.Now().Add(c.ttl)}
}

func (c *passageCache) close() {
	close(c.stop)
}

func (c *passageCache) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
