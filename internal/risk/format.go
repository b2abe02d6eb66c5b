package risk

import (
	"fmt"
	"strings"

	"rugsniffer/internal/domain"
)

// FormatAssessment renders an assessment as a Markdown message block:
// tier indicator, score, recommendation and bulleted negative points.
// Early-exit assessments (nil score) render only the justification.
func FormatAssessment(a domain.RiskAssessment) string {
	var sb strings.Builder

	if a.Score == nil {
		sb.WriteString(fmt.Sprintf("⚠️ Analysis not applicable: %s\n", a.Justification))
		sb.WriteString(explorerLink(a.Mint))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%s 📊 Risk Score: %d%%\n", ColorIndicator(*a.Score), *a.Score))
	sb.WriteString(Recommendation(*a.Score))
	sb.WriteString("\n")

	if len(a.Findings) > 0 {
		sb.WriteString("⚠️ Negative Points:\n- ")
		sb.WriteString(strings.Join(a.Findings, "\n- "))
		sb.WriteString("\n")
	}

	sb.WriteString(explorerLink(a.Mint))
	return sb.String()
}

// explorerLink renders the provider explorer link for a mint.
func explorerLink(mint string) string {
	return fmt.Sprintf("[View on Birdeye](https://birdeye.so/token/%s)", mint)
}
