package risk

import (
	"context"
	"time"

	"rugsniffer/internal/domain"
)

// StaleAgeHours is the age beyond which the rule tables stop being
// meaningful: they are calibrated for freshly launched tokens.
const StaleAgeHours = 48

// Justifications for the two early-exit states.
const (
	StaleJustification   = "This token has been around for a while (>48h), we do not recommend any specific action."
	RugPullJustification = "This token has already experienced a rug pull. Should have used Rug Sniffer earlier, huh?"
)

// Analyze assesses tokens one at a time, strictly in input order. The outer
// loop is deliberately sequential: it preserves caller-facing ordering and
// avoids burst load on the signal provider; only the per-token factor
// fan-out is concurrent.
func (e *Engine) Analyze(ctx context.Context, mints []string) []domain.RiskAssessment {
	assessments := make([]domain.RiskAssessment, 0, len(mints))
	for _, mint := range mints {
		assessments = append(assessments, e.analyzeOne(ctx, mint))
	}
	return assessments
}

// analyzeOne runs the full per-token pipeline: age gate, rug-pull gate,
// then scoring and classification. The age gate is checked first; when both
// gates would trigger, the token is reported stale, not rugged.
func (e *Engine) analyzeOne(ctx context.Context, mint string) domain.RiskAssessment {
	if age, ok := e.tokenAgeHours(ctx, mint); ok && age > StaleAgeHours {
		return domain.RiskAssessment{
			Mint:          mint,
			Level:         domain.RiskUnknown,
			Justification: StaleJustification,
			Findings:      []string{},
		}
	}

	if e.signals.TokenSecurity(ctx, mint).RugPullDetected {
		return domain.RiskAssessment{
			Mint:          mint,
			Level:         domain.RiskRugPull,
			Justification: RugPullJustification,
			Findings:      []string{},
		}
	}

	score, findings := e.Score(ctx, mint)
	level, justification := Classify(score)
	if findings == nil {
		findings = []string{}
	}
	return domain.RiskAssessment{
		Mint:          mint,
		Score:         &score,
		Level:         level,
		Justification: justification,
		Findings:      findings,
	}
}

// tokenAgeHours derives token age from the pair creation timestamp.
// ok is false when the timestamp is not resolvable; an unresolvable age
// never triggers the stale gate.
func (e *Engine) tokenAgeHours(ctx context.Context, mint string) (float64, bool) {
	overview := e.signals.TokenOverview(ctx, mint)
	if overview.PairCreatedAt == nil {
		return 0, false
	}
	created := time.UnixMilli(*overview.PairCreatedAt)
	return e.now().Sub(created).Hours(), true
}
