package risk

import (
	"context"

	"rugsniffer/internal/domain"
)

// priceVolumeRisk scores pump/dump shapes and wash-trading volume. The
// holder sell-through rule reads the overview slice, not price history.
func (e *Engine) priceVolumeRisk(ctx context.Context, mint string) domain.FactorResult {
	var r domain.FactorResult

	overview := e.signals.TokenOverview(ctx, mint)
	prices := e.signals.PriceHistory(ctx, mint)

	if prices.Change != nil && prices.Change.M15 > 500 {
		r.Add(30, "Price pump of +500% in less than 15 minutes")
	}
	if prices.Change != nil && prices.Change.H1 != nil && *prices.Change.H1 < -80 {
		r.Add(35, "Price dump of -80% in less than 1 hour")
	}
	if prices.VolumeToLiquidity1h > 10 {
		r.Add(10, "Detected wash trading (volume 10x greater than liquidity in 1h)")
	}
	if prices.StableMinutes != nil && *prices.StableMinutes < 3 {
		r.Add(30, "Token stable for less than 3 minutes before a pump")
	}

	if overview.SuccessfulSellsPct != nil && *overview.SuccessfulSellsPct < 5 {
		r.Add(15, "Less than 5% of holders have sold in the first 6 hours")
	}

	return r
}
