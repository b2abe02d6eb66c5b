package risk

import (
	"context"

	"rugsniffer/internal/domain"
)

// farmingSybilRisk scores coordinated wallet behavior: synchronized buys,
// fresh-wallet volume, fan-out distribution and later consolidation.
func (e *Engine) farmingSybilRisk(ctx context.Context, mint string) domain.FactorResult {
	var r domain.FactorResult

	activity := e.signals.WalletActivity(ctx, mint)

	if activity.IdenticalBuys > 5 {
		r.Add(20, "Multiple wallets buying exact same amount within seconds")
	}
	if activity.NewWalletBuysPct > 50 {
		r.Add(15, "New wallets (<7 days) buying large amounts")
	}
	if activity.FanOutDistribution {
		r.Add(25, "Wallets buying and distributing tokens to multiple wallets")
	}
	if activity.HoldersNotSelling6h {
		r.Add(10, "Farming holders not selling after 6h")
	}
	if activity.Consolidation {
		r.Add(30, "Many wallets sending tokens to a single address after 6h")
	}

	return r
}
