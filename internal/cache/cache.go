package cache

import "time"

// Cache is a TTL key-value store that keeps upstream API responses warm
// between dashboard renders. Expired entries behave like misses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Close() error
}
