package risk

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rugsniffer/internal/domain"
)

// countingSignals counts security lookups to observe pipeline runs. One
// pipeline run touches the security slice several times (rug gate plus two
// evaluators), so tests compare counts rather than assume per-run totals.
type countingSignals struct {
	stubSignals
	mu       sync.Mutex
	security int
}

func (s *countingSignals) TokenSecurity(ctx context.Context, mint string) domain.TokenSecurity {
	s.mu.Lock()
	s.security++
	s.mu.Unlock()
	return s.stubSignals.TokenSecurity(ctx, mint)
}

func (s *countingSignals) securityCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.security
}

func TestCache_HitWithinTTL(t *testing.T) {
	signals := &countingSignals{}
	cache := NewCache(newTestEngine(signals), time.Minute)

	first := cache.GetOrCompute(context.Background(), testMint)
	afterFirst := signals.securityCalls()
	require.Positive(t, afterFirst)

	second := cache.GetOrCompute(context.Background(), testMint)

	assert.Equal(t, first, second)
	assert.Equal(t, afterFirst, signals.securityCalls(), "cache hit must not re-run the pipeline")
}

func TestCache_ExpiryRecomputes(t *testing.T) {
	signals := &countingSignals{}
	cache := NewCache(newTestEngine(signals), time.Minute)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	cache.GetOrCompute(context.Background(), testMint)
	afterFirst := signals.securityCalls()

	// Still fresh just under the TTL.
	now = now.Add(59 * time.Second)
	cache.GetOrCompute(context.Background(), testMint)
	require.Equal(t, afterFirst, signals.securityCalls())

	now = now.Add(2 * time.Second)
	cache.GetOrCompute(context.Background(), testMint)
	assert.Greater(t, signals.securityCalls(), afterFirst)
}

func TestCache_DistinctMintsDistinctEntries(t *testing.T) {
	signals := &countingSignals{}
	cache := NewCache(newTestEngine(signals), time.Minute)

	other := "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	a := cache.GetOrCompute(context.Background(), testMint)
	afterFirst := signals.securityCalls()
	b := cache.GetOrCompute(context.Background(), other)

	assert.Equal(t, testMint, a.Mint)
	assert.Equal(t, other, b.Mint)
	assert.Greater(t, signals.securityCalls(), afterFirst)
}

func TestCache_NonPositiveTTLDefaults(t *testing.T) {
	cache := NewCache(newTestEngine(&stubSignals{}), 0)
	assert.Equal(t, DefaultResultTTL, cache.ttl)
}
