package birdeye

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rugsniffer/internal/domain"
)

// countingProvider counts fetches per endpoint.
type countingProvider struct {
	stubProvider
	overviewCalls int
	securityCalls int
	activityCalls int
}

func (p *countingProvider) TokenOverview(ctx context.Context, mint string) (domain.TokenOverview, error) {
	p.overviewCalls++
	return p.stubProvider.TokenOverview(ctx, mint)
}

func (p *countingProvider) TokenSecurity(ctx context.Context, mint string) (domain.TokenSecurity, error) {
	p.securityCalls++
	return p.stubProvider.TokenSecurity(ctx, mint)
}

func (p *countingProvider) WalletActivity(ctx context.Context, mint, from, to string) (domain.WalletActivity, error) {
	p.activityCalls++
	return p.stubProvider.WalletActivity(ctx, mint, from, to)
}

func TestCachedGateway_CachesWithinTTL(t *testing.T) {
	provider := &countingProvider{}
	cached := NewCachedGateway(NewGateway(provider, nil), DefaultTTLConfig())

	ctx := context.Background()
	cached.TokenOverview(ctx, testMint)
	cached.TokenOverview(ctx, testMint)

	assert.Equal(t, 1, provider.overviewCalls)
}

func TestCachedGateway_EmptyResponsesAreCached(t *testing.T) {
	// A token with no provider data must not be refetched within the TTL.
	provider := &countingProvider{}
	cached := NewCachedGateway(NewGateway(provider, nil), DefaultTTLConfig())

	ctx := context.Background()
	first := cached.TokenSecurity(ctx, testMint)
	second := cached.TokenSecurity(ctx, testMint)

	assert.Zero(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.securityCalls)
}

func TestCachedGateway_ZeroTTLFetchesLive(t *testing.T) {
	// Windowed endpoints default to TTL 0, meaning no caching at all.
	provider := &countingProvider{}
	cached := NewCachedGateway(NewGateway(provider, nil), DefaultTTLConfig())

	ctx := context.Background()
	cached.WalletActivity(ctx, testMint)
	cached.WalletActivity(ctx, testMint)

	assert.Equal(t, 2, provider.activityCalls)
}

func TestCachedGateway_ExpiryRefetches(t *testing.T) {
	provider := &countingProvider{}
	cached := NewCachedGateway(NewGateway(provider, nil), DefaultTTLConfig())

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	cached.now = func() time.Time { return now }

	ctx := context.Background()
	cached.TokenOverview(ctx, testMint)
	require.Equal(t, 1, provider.overviewCalls)

	now = now.Add(DefaultSignalTTL - time.Second)
	cached.TokenOverview(ctx, testMint)
	require.Equal(t, 1, provider.overviewCalls)

	now = now.Add(2 * time.Second)
	cached.TokenOverview(ctx, testMint)
	assert.Equal(t, 2, provider.overviewCalls)
}

func TestCachedGateway_PerMintEntries(t *testing.T) {
	provider := &countingProvider{}
	cached := NewCachedGateway(NewGateway(provider, nil), DefaultTTLConfig())

	ctx := context.Background()
	cached.TokenOverview(ctx, testMint)
	cached.TokenOverview(ctx, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	assert.Equal(t, 2, provider.overviewCalls)
}

func TestTTLConfig_PerEndpointOverridesDefault(t *testing.T) {
	cfg := TTLConfig{
		Default:     time.Minute,
		PerEndpoint: map[Endpoint]time.Duration{EndpointHolderData: time.Hour},
	}

	assert.Equal(t, time.Hour, cfg.ttl(EndpointHolderData))
	assert.Equal(t, time.Minute, cfg.ttl(EndpointTokenOverview))
}
