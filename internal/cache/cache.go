// Package cache keeps rendered pages in memory.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// Cache wraps a ristretto cache with an enable toggle. A disabled cache
// never stores anything.
type Cache struct {
	enabled bool
	ttl     time.Duration
	store   *ristretto.Cache
}

type Config struct {
	Enabled     bool
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	TTL         time.Duration
}

func New(cfg Config) (*Cache, error) {
	if !cfg.Enabled {
		return &Cache{enabled: false}, nil
	}

	rc, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64OrDefault(cfg.NumCounters, 1000),
		MaxCost:     int64OrDefault(cfg.MaxCost, 8<<20),
		BufferItems: int64OrDefault(cfg.BufferItems, 64),
	})
	if err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &Cache{enabled: true, ttl: ttl, store: rc}, nil
}

func (c *Cache) Enabled() bool {
	return c != nil && c.enabled
}

func (c *Cache) Get(key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	if v, ok := c.store.Get(key); ok {
		if b, ok := v.([]byte); ok {
			return b, true
		}
	}
	return nil, false
}

// Set stores val under key. A cost of zero or less uses len(val).
func (c *Cache) Set(key string, val []byte, cost int64) {
	if !c.Enabled() {
		return
	}
	if cost <= 0 {
		cost = int64(len(val))
	}
	c.store.SetWithTTL(key, val, cost, c.ttl)
}

// Wait blocks until buffered writes are applied.
func (c *Cache) Wait() {
	if c.Enabled() {
		c.store.Wait()
	}
}

func (c *Cache) Close() {
	if c.Enabled() {
		c.store.Close()
	}
}

func int64OrDefault(v, def int64) int64 {
	if v <= 0 {
		return def
	}
	return v
}
