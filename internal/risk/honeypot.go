package risk

import (
	"context"

	"rugsniffer/internal/domain"
)

// honeypotRisk scores sell-side restrictions: failed sells, punitive or
// dynamic sell fees, and sells limited to a subset of wallets.
func (e *Engine) honeypotRisk(ctx context.Context, mint string) domain.FactorResult {
	var r domain.FactorResult

	security := e.signals.TokenSecurity(ctx, mint)
	activity := e.signals.WalletActivity(ctx, mint)

	if security.Honeypot {
		r.Add(30, "Multiple failed sell transactions (honeypot)")
	}
	if security.SellFeePct > 10 {
		r.Add(20, "Sell fee higher than 10%")
	}
	if security.DynamicSellFee {
		r.Add(30, "Dynamic sell fee increases over time")
	}

	if activity.SlippageIncreasePct > 25 {
		r.Add(25, "Dynamic slippage increasing rapidly")
	}
	if activity.SuccessfulSellsPct != nil && *activity.SuccessfulSellsPct < 5 {
		r.Add(20, "Only certain wallets can sell (<5%)")
	}
	if activity.LimitedSellAmounts {
		r.Add(15, "Sales limited to small amounts")
	}

	return r
}
