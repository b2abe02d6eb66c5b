package risk

import (
	"context"

	"rugsniffer/internal/domain"
)

// contractSecurityRisk scores contract verification, permissions,
// upgradability and deployer token movement.
func (e *Engine) contractSecurityRisk(ctx context.Context, mint string) domain.FactorResult {
	var r domain.FactorResult

	security := e.signals.TokenSecurity(ctx, mint)
	activity := e.signals.WalletActivity(ctx, mint)

	if security.Verified != nil && !*security.Verified {
		r.Add(10, "Contract not publicly verified")
	}
	if security.SuspiciousPermissions {
		r.Add(20, "Suspicious permissions (infinite mint, adjustable fees)")
	}
	if security.Upgradable {
		r.Add(25, "Contract is upgradable and allows post-launch modifications")
	}
	if security.UpdatedIn15m {
		r.Add(25, "Contract was updated within the first 15 minutes")
	}

	if activity.DeployerSoldIn6h {
		r.Add(30, "Developer sold tokens within the first 6 hours")
	}
	if activity.DeployerFanOut {
		r.Add(25, "Deployer moved tokens to multiple wallets in the first minutes")
	}

	return r
}
