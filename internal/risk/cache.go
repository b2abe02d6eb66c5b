package risk

import (
	"context"
	"sync"
	"time"

	"rugsniffer/internal/domain"
)

// DefaultResultTTL bounds how often repeated lookups of the same token
// (watchlist refresh, export) re-run the full evaluation pipeline.
const DefaultResultTTL = 5 * time.Minute

// Cache memoizes completed assessments per mint. Reads within the TTL
// window return identical content. Entries are superseded lazily on the
// next access past the TTL and never outlive the process.
//
// Concurrent in-flight computations for the same mint are not coalesced;
// the last writer wins. The map is mutex-guarded, and the lock is not held
// while computing.
type Cache struct {
	engine *Engine
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]resultEntry
}

type resultEntry struct {
	assessment domain.RiskAssessment
	fetchedAt  time.Time
}

// NewCache creates a result cache over engine. A non-positive ttl falls
// back to DefaultResultTTL.
func NewCache(engine *Engine, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &Cache{
		engine:  engine,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]resultEntry),
	}
}

// GetOrCompute returns the cached assessment for mint when fresh, otherwise
// runs the full pipeline for a singleton list and caches the result.
func (c *Cache) GetOrCompute(ctx context.Context, mint string) domain.RiskAssessment {
	c.mu.Lock()
	if e, ok := c.entries[mint]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return e.assessment
	}
	c.mu.Unlock()

	assessment := c.engine.Analyze(ctx, []string{mint})[0]

	c.mu.Lock()
	c.entries[mint] = resultEntry{assessment: assessment, fetchedAt: c.now()}
	c.mu.Unlock()

	return assessment
}
