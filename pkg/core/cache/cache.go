package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
	"time"
)

// Entry is one cached value. A zero Expiration never expires.
type Entry[V any] struct {
	Value      V
	Expiration time.Time
	added      uint64
}

func (e *Entry[V]) IsExpired() bool {
	return !e.Expiration.IsZero() && time.Now().After(e.Expiration)
}

// Cache keeps up to maxItems values in memory. When full, the entry stored
// first is evicted. Expired entries go away when read or by Prune.
type Cache[V any] struct {
	mu       sync.RWMutex
	items    map[string]*Entry[V]
	maxItems int
	ttl      time.Duration
	counter  uint64

	hits   int64
	misses int64
}

type Config struct {
	MaxItems int
	TTL      time.Duration // Zero keeps entries until they are evicted
}

func DefaultConfig() Config {
	return Config{MaxItems: 1024, TTL: 5 * time.Minute}
}

// New creates a cache; a non-positive MaxItems means DefaultConfig's
func New[V any](cfg Config) *Cache[V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	if cfg.TTL < 0 {
		cfg.TTL = 0
	}
	return &Cache[V]{
		items:    make(map[string]*Entry[V]),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
	}
}

// Key derives a fixed-size cache key from an operation name, its input and
// its arguments. Argument order does not matter.
func Key(name, input string, args map[string]string) string {
	pairs := make([]string, 0, len(args))
	for k, v := range args {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)

	hash := sha256.New()
	hash.Write([]byte(name))
	hash.Write([]byte{0})
	hash.Write([]byte(strings.Join(pairs, "\x00")))
	hash.Write([]byte{0})
	hash.Write([]byte(input))
	return name + ":" + hex.EncodeToString(hash.Sum(nil)[:16])
}

// Get counts a hit or a miss; an expired entry is a miss and is dropped
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if exists && entry.IsExpired() {
		delete(c.items, key)
		exists = false
	}
	if !exists {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return entry.Value, true
}

// Set stores value under key with the configured TTL
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key; ttl <= 0 keeps it until evicted
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.evictOldest()
	}

	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.counter++
	c.items[key] = &Entry[V]{Value: value, Expiration: exp, added: c.counter}
}

func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear drops every entry; hit and miss counters are kept
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*Entry[V])
}

// Size counts stored entries, expired ones included until they are pruned
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats reports lookups so far; hitRate is a percentage
func (c *Cache[V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if lookups := c.hits + c.misses; lookups > 0 {
		hitRate = 100 * float64(c.hits) / float64(lookups)
	}
	return c.hits, c.misses, hitRate
}

// evictOldest needs c.mu held
func (c *Cache[V]) evictOldest() {
	victim, found := "", false
	for key, entry := range c.items {
		if !found || entry.added < c.items[victim].added {
			victim, found = key, true
		}
	}
	if found {
		delete(c.items, victim)
	}
}

// Prune drops expired entries and returns their number
func (c *Cache[V]) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.items {
		if entry.IsExpired() {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// GetOrSet returns the cached value or computes and stores it. Errors are
// not cached.
func (c *Cache[V]) GetOrSet(key string, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		return val, err
	}
	c.Set(key, val)
	return val, nil
}
