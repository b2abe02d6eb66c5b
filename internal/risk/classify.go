package risk

import "rugsniffer/internal/domain"

// Classify maps a composite score to a discrete risk level and its
// justification. Boundaries are inclusive on the high side: 70 is High,
// 40 is Medium.
func Classify(score int) (domain.RiskLevel, string) {
	switch {
	case score >= 70:
		return domain.RiskHigh, "High Risk - Potential scam or rug pull"
	case score >= 40:
		return domain.RiskMedium, "Medium Risk - Suspicious patterns detected"
	default:
		return domain.RiskLow, "Low Risk - Favorable analysis"
	}
}

// ColorIndicator maps a score to one of five presentation tiers. The tier
// boundaries (15/30/50/75) are deliberately finer-grained than the three
// risk levels; they exist purely for display.
func ColorIndicator(score int) string {
	switch {
	case score <= 15:
		return "🟢"
	case score <= 30:
		return "🟡"
	case score <= 50:
		return "🟠"
	case score <= 75:
		return "🔴"
	default:
		return "⚫️"
	}
}

// Recommendation suggests an action for a score.
func Recommendation(score int) string {
	switch {
	case score >= 70:
		return "⚠️ Consider selling immediately!"
	case score >= 40:
		return "🟡 Monitor closely."
	default:
		return "🟢 Safe for now."
	}
}
