package birdeye

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"rugsniffer/internal/domain"
)

// stubProvider returns canned slices or a shared error.
type stubProvider struct {
	overview domain.TokenOverview
	security domain.TokenSecurity
	err      error
}

func (p *stubProvider) TokenOverview(context.Context, string) (domain.TokenOverview, error) {
	return p.overview, p.err
}
func (p *stubProvider) LiquidityHistory(context.Context, string, string, string) (domain.LiquidityHistory, error) {
	return domain.LiquidityHistory{}, p.err
}
func (p *stubProvider) TokenSecurity(context.Context, string) (domain.TokenSecurity, error) {
	return p.security, p.err
}
func (p *stubProvider) WalletActivity(context.Context, string, string, string) (domain.WalletActivity, error) {
	return domain.WalletActivity{}, p.err
}
func (p *stubProvider) HolderData(context.Context, string, string, string) (domain.HolderData, error) {
	return domain.HolderData{}, p.err
}
func (p *stubProvider) PriceHistory(context.Context, string, string, string) (domain.PriceHistory, error) {
	return domain.PriceHistory{}, p.err
}

func TestGateway_PassesThroughOnSuccess(t *testing.T) {
	locked := true
	gw := NewGateway(&stubProvider{
		overview: domain.TokenOverview{LiquidityLocked: &locked},
		security: domain.TokenSecurity{Honeypot: true},
	}, nil)

	overview := gw.TokenOverview(context.Background(), testMint)
	assert.NotNil(t, overview.LiquidityLocked)

	security := gw.TokenSecurity(context.Background(), testMint)
	assert.True(t, security.Honeypot)
}

func TestGateway_AbsorbsErrors(t *testing.T) {
	locked := true
	gw := NewGateway(&stubProvider{
		overview: domain.TokenOverview{LiquidityLocked: &locked},
		err:      errors.New("provider down"),
	}, nil)

	ctx := context.Background()
	assert.Zero(t, gw.TokenOverview(ctx, testMint))
	assert.Zero(t, gw.LiquidityHistory(ctx, testMint))
	assert.Zero(t, gw.TokenSecurity(ctx, testMint))
	assert.Zero(t, gw.WalletActivity(ctx, testMint))
	assert.Zero(t, gw.HolderData(ctx, testMint))
	assert.Zero(t, gw.PriceHistory(ctx, testMint))
}
