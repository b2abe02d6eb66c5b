package birdeye

import (
	"context"
	"sync"
	"time"

	"rugsniffer/internal/domain"
)

// DefaultSignalTTL bounds external call volume for the point-in-time
// endpoints (overview, security). The time-ranged endpoints default to live
// fetches because their payload covers a sliding window; set a per-endpoint
// TTL to cache them as well.
const DefaultSignalTTL = 5 * time.Minute

// TTLConfig carries cache lifetimes per endpoint. A TTL of zero disables
// caching for that endpoint. Different endpoints have very different data
// volatility, which is why this is configuration rather than one constant.
type TTLConfig struct {
	Default     time.Duration
	PerEndpoint map[Endpoint]time.Duration
}

// DefaultTTLConfig caches overview and security lookups and fetches the
// windowed endpoints live.
func DefaultTTLConfig() TTLConfig {
	return TTLConfig{
		PerEndpoint: map[Endpoint]time.Duration{
			EndpointTokenOverview: DefaultSignalTTL,
			EndpointTokenSecurity: DefaultSignalTTL,
		},
	}
}

// ttl resolves the lifetime for one endpoint.
func (c TTLConfig) ttl(e Endpoint) time.Duration {
	if d, ok := c.PerEndpoint[e]; ok {
		return d
	}
	return c.Default
}

// cacheEntry is one stored response.
type cacheEntry struct {
	value     interface{}
	fetchedAt time.Time
}

// CachedGateway memoizes Gateway responses per (endpoint, parameters).
// Entries are superseded lazily on the next access past their TTL; there is
// no proactive eviction and nothing outlives the process. Empty responses
// are cached too: a short-lived false negative is the accepted price for a
// bounded external call rate.
//
// The cache is shared by all concurrent evaluations, so access is
// mutex-guarded. Concurrent misses for the same key may fetch redundantly;
// last writer wins.
type CachedGateway struct {
	gw   *Gateway
	ttls TTLConfig
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCachedGateway wraps gw with a TTL cache.
func NewCachedGateway(gw *Gateway, ttls TTLConfig) *CachedGateway {
	return &CachedGateway{
		gw:      gw,
		ttls:    ttls,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// lookup returns a fresh cached value for key, if any.
func (c *CachedGateway) lookup(endpoint Endpoint, mint string) (interface{}, bool) {
	ttl := c.ttls.ttl(endpoint)
	if ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[cacheKey(endpoint, mint)]
	if !ok || c.now().Sub(e.fetchedAt) >= ttl {
		return nil, false
	}
	return e.value, true
}

// store records a fetched value for key.
func (c *CachedGateway) store(endpoint Endpoint, mint string, value interface{}) {
	if c.ttls.ttl(endpoint) <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(endpoint, mint)] = cacheEntry{value: value, fetchedAt: c.now()}
}

func cacheKey(endpoint Endpoint, mint string) string {
	return string(endpoint) + "?address=" + mint
}

// TokenOverview returns the overview slice through the cache.
func (c *CachedGateway) TokenOverview(ctx context.Context, mint string) domain.TokenOverview {
	if v, ok := c.lookup(EndpointTokenOverview, mint); ok {
		return v.(domain.TokenOverview)
	}
	out := c.gw.TokenOverview(ctx, mint)
	c.store(EndpointTokenOverview, mint, out)
	return out
}

// LiquidityHistory returns the liquidity history slice through the cache.
func (c *CachedGateway) LiquidityHistory(ctx context.Context, mint string) domain.LiquidityHistory {
	if v, ok := c.lookup(EndpointLiquidityHistory, mint); ok {
		return v.(domain.LiquidityHistory)
	}
	out := c.gw.LiquidityHistory(ctx, mint)
	c.store(EndpointLiquidityHistory, mint, out)
	return out
}

// TokenSecurity returns the security slice through the cache.
func (c *CachedGateway) TokenSecurity(ctx context.Context, mint string) domain.TokenSecurity {
	if v, ok := c.lookup(EndpointTokenSecurity, mint); ok {
		return v.(domain.TokenSecurity)
	}
	out := c.gw.TokenSecurity(ctx, mint)
	c.store(EndpointTokenSecurity, mint, out)
	return out
}

// WalletActivity returns the wallet activity slice through the cache.
func (c *CachedGateway) WalletActivity(ctx context.Context, mint string) domain.WalletActivity {
	if v, ok := c.lookup(EndpointWalletActivity, mint); ok {
		return v.(domain.WalletActivity)
	}
	out := c.gw.WalletActivity(ctx, mint)
	c.store(EndpointWalletActivity, mint, out)
	return out
}

// HolderData returns the holder slice through the cache.
func (c *CachedGateway) HolderData(ctx context.Context, mint string) domain.HolderData {
	if v, ok := c.lookup(EndpointHolderData, mint); ok {
		return v.(domain.HolderData)
	}
	out := c.gw.HolderData(ctx, mint)
	c.store(EndpointHolderData, mint, out)
	return out
}

// PriceHistory returns the price history slice through the cache.
func (c *CachedGateway) PriceHistory(ctx context.Context, mint string) domain.PriceHistory {
	if v, ok := c.lookup(EndpointPriceHistory, mint); ok {
		return v.(domain.PriceHistory)
	}
	out := c.gw.PriceHistory(ctx, mint)
	c.store(EndpointPriceHistory, mint, out)
	return out
}
