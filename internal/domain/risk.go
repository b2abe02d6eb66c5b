package domain

// RiskLevel classifies the outcome of a token risk assessment.
type RiskLevel string

const (
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskRugPull RiskLevel = "Rug Pull"
	RiskUnknown RiskLevel = "Unknown"
)

// FactorResult is the contribution of a single risk factor: accumulated
// points plus the human-readable findings for every rule that fired.
// Produced deterministically from one signal slice; carries no
// cross-factor knowledge.
type FactorResult struct {
	Contribution float64
	Findings     []string
}

// Add records one triggered rule.
func (r *FactorResult) Add(points float64, finding string) {
	r.Contribution += points
	r.Findings = append(r.Findings, finding)
}

// RiskAssessment is the aggregate risk output for one token.
// Score is nil only for the two early-exit states: stale token (Unknown)
// and confirmed prior rug pull (RugPull). In all other cases it is a
// concrete value in [0, 100].
type RiskAssessment struct {
	Mint          string    `json:"mintAddress"`
	Score         *int      `json:"riskScore"`
	Level         RiskLevel `json:"riskLevel"`
	Justification string    `json:"riskJustification"`
	Findings      []string  `json:"negatives"`
}
