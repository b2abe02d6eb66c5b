package risk

import (
	"context"

	"rugsniffer/internal/domain"
)

// holderDistributionRisk scores supply concentration and airdrop patterns.
func (e *Engine) holderDistributionRisk(ctx context.Context, mint string) domain.FactorResult {
	var r domain.FactorResult

	holders := e.signals.HolderData(ctx, mint)

	if holders.Count != nil && *holders.Count < 100 && holders.AgeHours > 1 {
		r.Add(20, "Less than 100 holders after 1 hour of launch")
	}
	if holders.Top5Pct > 50 {
		r.Add(15, "Top 5 wallets hold >50% of tokens")
	}
	if holders.NewWalletPct > 50 {
		r.Add(15, "Majority of tokens in new wallets (<7 days)")
	}
	if holders.MassAirdrop {
		r.Add(20, "Tokens distributed to hundreds of small wallets in minutes")
	}

	return r
}
