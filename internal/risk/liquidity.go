package risk

import (
	"context"

	"rugsniffer/internal/domain"
)

// liquiditySecurityRisk scores pool depth, lock status and deployer
// liquidity behavior. Rules are additive and evaluated unconditionally.
func (e *Engine) liquiditySecurityRisk(ctx context.Context, mint string) domain.FactorResult {
	var r domain.FactorResult

	overview := e.signals.TokenOverview(ctx, mint)
	history := e.signals.LiquidityHistory(ctx, mint)

	if overview.Liquidity != nil && overview.Liquidity.USD < 10000 {
		r.Add(30, "Very low liquidity (<$10K)")
	}
	if overview.LiquidityLocked != nil && !*overview.LiquidityLocked {
		r.Add(25, "Liquidity not locked")
	}

	if history.Drop1hPct > 50 {
		r.Add(35, "Liquidity dropped more than 50% in less than 1h")
	}
	if history.MultiplePools {
		r.Add(20, "Multiple liquidity pools created")
	}
	if history.DeployerActivity != nil && history.DeployerActivity.RapidAddRemove {
		r.Add(30, "Deployer rapidly adds and removes liquidity")
	}

	return r
}
