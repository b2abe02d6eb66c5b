package risk

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"rugsniffer/internal/domain"
)

// InvalidAddressScore is the fixed penalty for a malformed identifier.
// It expresses maximum distrust of unparseable input, not measured risk.
const InvalidAddressScore = 80

// InvalidAddressFinding is the single finding attached to that penalty.
const InvalidAddressFinding = "Invalid Mint Address"

// Factor weights. Liquidity/security and honeypot behavior carry the most
// signal; the weights sum to 1.0 so a single fully-triggered factor cannot
// saturate the composite on its own.
var factorWeights = [...]float64{
	0.20, // liquidity & security
	0.20, // honeypot
	0.15, // farming / sybil
	0.15, // holder distribution
	0.15, // price & volume
	0.15, // contract security
}

// Score computes the weighted composite risk score for one mint, along with
// all negative findings in fixed factor order.
//
// Malformed identifiers short-circuit to InvalidAddressScore without
// touching any evaluator. Otherwise all six evaluators run concurrently;
// results are buffered into fixed slots so that findings are concatenated
// in factor order, never completion order.
func (e *Engine) Score(ctx context.Context, mint string) (int, []string) {
	if !e.validate(mint) {
		return InvalidAddressScore, []string{InvalidAddressFinding}
	}

	evaluators := []func(context.Context, string) domain.FactorResult{
		e.liquiditySecurityRisk,
		e.honeypotRisk,
		e.farmingSybilRisk,
		e.holderDistributionRisk,
		e.priceVolumeRisk,
		e.contractSecurityRisk,
	}

	results := make([]domain.FactorResult, len(evaluators))
	g, gctx := errgroup.WithContext(ctx)
	for i, evaluate := range evaluators {
		g.Go(func() error {
			results[i] = evaluate(gctx, mint)
			return nil
		})
	}
	// Evaluators absorb all failures; Wait only synchronizes.
	_ = g.Wait()

	var weighted float64
	var findings []string
	for i, r := range results {
		weighted += r.Contribution * factorWeights[i]
		findings = append(findings, r.Findings...)
	}

	return clampScore(weighted), findings
}

// clampScore bounds a weighted sum to [0, 100] and rounds to the nearest
// integer. Out-of-range inputs are a contract violation upstream; they are
// clamped rather than rejected.
func clampScore(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}
