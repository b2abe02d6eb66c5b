package domain

import "time"

// AssessmentRecord is one completed risk assessment persisted for history
// and trend queries. Score is nil for early-exit assessments.
type AssessmentRecord struct {
	Mint       string
	Score      *int32
	Level      RiskLevel
	Findings   []string
	AssessedAt time.Time
}

// RecordFromAssessment converts a RiskAssessment into its persisted form.
func RecordFromAssessment(a RiskAssessment, at time.Time) *AssessmentRecord {
	rec := &AssessmentRecord{
		Mint:       a.Mint,
		Level:      a.Level,
		Findings:   a.Findings,
		AssessedAt: at,
	}
	if a.Score != nil {
		score := int32(*a.Score)
		rec.Score = &score
	}
	if rec.Findings == nil {
		rec.Findings = []string{}
	}
	return rec
}
