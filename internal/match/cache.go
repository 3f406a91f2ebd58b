package match

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/metrics"
)

type cachedMatch struct {
	version string
	match   *domain.Match
}

// matchCache keeps recently used matches in memory. Entries are private
// copies; callers always receive another copy.
type matchCache struct {
	lru *expirable.LRU[uuid.UUID, cachedMatch]
}

func newMatchCache(size int, ttl time.Duration) *matchCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &matchCache{lru: expirable.NewLRU[uuid.UUID, cachedMatch](size, nil, ttl)}
}

func (c *matchCache) get(id uuid.UUID) (*domain.Match, bool) {
	entry, ok := c.lru.Get(id)
	if ok && entry.version != CacheSchemaVersion {
		c.lru.Remove(id)
		ok = false
	}
	if !ok {
		metrics.MatchCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}

	m, err := cloneMatch(entry.match)
	if err != nil {
		c.lru.Remove(id)
		metrics.MatchCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	metrics.MatchCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	return m, true
}

func (c *matchCache) set(m *domain.Match) {
	cp, err := cloneMatch(m)
	if err != nil {
		c.lru.Remove(m.ID)
		return
	}
	c.lru.Add(m.ID, cachedMatch{version: CacheSchemaVersion, match: cp})
}

func (c *matchCache) remove(id uuid.UUID) {
	c.lru.Remove(id)
}

func cloneMatch(m *domain.Match) (*domain.Match, error) {
	cp := *m
	if m.State != nil {
		state, err := m.State.Clone()
		if err != nil {
			return nil, err
		}
		cp.State = state
	}
	return &cp, nil
}
