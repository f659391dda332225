// Package cache provides the short-TTL read-through/write-through store shared
// by all catalog lookups. Cached values are opaque: a result list, a single
// book, or a resolved author name.
package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// DefaultTTL is the absolute lifetime of every entry.
const DefaultTTL = time.Minute

type Store struct {
	items *ttlcache.Cache[string, any]
}

// New creates a store whose entries expire ttl after insertion. Expiration is
// absolute: reads do not extend an entry's lifetime. Expired entries are also
// filtered on Get, so hits never depend on the background cleaner.
func New(ttl time.Duration) *Store {
	items := ttlcache.New(
		ttlcache.WithTTL[string, any](ttl),
		ttlcache.WithDisableTouchOnHit[string, any](),
	)
	go items.Start()
	return &Store{items: items}
}

// Get returns the value stored under key if present and not expired. Absence
// is a cache-miss signal, not an error.
func (s *Store) Get(key string) (any, bool) {
	item := s.items.Get(key)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

// Set stores value under key, replacing any previous entry.
func (s *Store) Set(key string, value any) {
	s.items.Set(key, value, ttlcache.DefaultTTL)
}

// Stop terminates the background cleaner.
func (s *Store) Stop() {
	s.items.Stop()
}
