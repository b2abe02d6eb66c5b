package birdeye

import (
	"context"
	"io"
	"log"

	"rugsniffer/internal/domain"
)

// Evaluation window applied to the time-ranged endpoints.
const (
	windowFrom = "now-6h"
	windowTo   = "now"
)

// Provider is the raw provider surface the gateway absorbs failures for.
type Provider interface {
	TokenOverview(ctx context.Context, mint string) (domain.TokenOverview, error)
	LiquidityHistory(ctx context.Context, mint, timeFrom, timeTo string) (domain.LiquidityHistory, error)
	TokenSecurity(ctx context.Context, mint string) (domain.TokenSecurity, error)
	WalletActivity(ctx context.Context, mint, timeFrom, timeTo string) (domain.WalletActivity, error)
	HolderData(ctx context.Context, mint, timeFrom, timeTo string) (domain.HolderData, error)
	PriceHistory(ctx context.Context, mint, timeFrom, timeTo string) (domain.PriceHistory, error)
}

// Gateway adapts a Provider into the never-failing signal surface the
// scoring engine consumes. A transport or provider failure is logged and
// surfaces as the zero-value slice, which downstream rule tables treat as
// "no signal". Callers cannot distinguish missing data from clean data;
// that is the documented contract, not an accident.
type Gateway struct {
	provider Provider
	logger   *log.Logger
}

// NewGateway creates a Gateway over provider.
func NewGateway(provider Provider, logger *log.Logger) *Gateway {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Gateway{provider: provider, logger: logger}
}

// TokenOverview returns the overview slice, or its zero value on failure.
func (g *Gateway) TokenOverview(ctx context.Context, mint string) domain.TokenOverview {
	out, err := g.provider.TokenOverview(ctx, mint)
	if err != nil {
		g.logger.Printf("fetch %s for %s: %v", EndpointTokenOverview, mint, err)
		return domain.TokenOverview{}
	}
	return out
}

// LiquidityHistory returns the liquidity history slice over the evaluation
// window, or its zero value on failure.
func (g *Gateway) LiquidityHistory(ctx context.Context, mint string) domain.LiquidityHistory {
	out, err := g.provider.LiquidityHistory(ctx, mint, windowFrom, windowTo)
	if err != nil {
		g.logger.Printf("fetch %s for %s: %v", EndpointLiquidityHistory, mint, err)
		return domain.LiquidityHistory{}
	}
	return out
}

// TokenSecurity returns the security slice, or its zero value on failure.
func (g *Gateway) TokenSecurity(ctx context.Context, mint string) domain.TokenSecurity {
	out, err := g.provider.TokenSecurity(ctx, mint)
	if err != nil {
		g.logger.Printf("fetch %s for %s: %v", EndpointTokenSecurity, mint, err)
		return domain.TokenSecurity{}
	}
	return out
}

// WalletActivity returns the wallet activity slice over the evaluation
// window, or its zero value on failure.
func (g *Gateway) WalletActivity(ctx context.Context, mint string) domain.WalletActivity {
	out, err := g.provider.WalletActivity(ctx, mint, windowFrom, windowTo)
	if err != nil {
		g.logger.Printf("fetch %s for %s: %v", EndpointWalletActivity, mint, err)
		return domain.WalletActivity{}
	}
	return out
}

// HolderData returns the holder slice over the evaluation window, or its
// zero value on failure.
func (g *Gateway) HolderData(ctx context.Context, mint string) domain.HolderData {
	out, err := g.provider.HolderData(ctx, mint, windowFrom, windowTo)
	if err != nil {
		g.logger.Printf("fetch %s for %s: %v", EndpointHolderData, mint, err)
		return domain.HolderData{}
	}
	return out
}

// PriceHistory returns the price history slice over the evaluation window,
// or its zero value on failure.
func (g *Gateway) PriceHistory(ctx context.Context, mint string) domain.PriceHistory {
	out, err := g.provider.PriceHistory(ctx, mint, windowFrom, windowTo)
	if err != nil {
		g.logger.Printf("fetch %s for %s: %v", EndpointPriceHistory, mint, err)
		return domain.PriceHistory{}
	}
	return out
}
