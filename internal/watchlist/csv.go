package watchlist

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"

	"rugsniffer/internal/domain"
)

var csvHeader = []string{"Mint Address", "Risk Score", "Risk Level"}

// ExportCSV renders assessments as a CSV document and returns it
// base64-encoded, one row per token. Tokens without a numeric score export
// an empty score cell.
func ExportCSV(assessments []domain.RiskAssessment) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, a := range assessments {
		score := ""
		if a.Score != nil {
			score = fmt.Sprintf("%d", *a.Score)
		}
		if err := w.Write([]string{a.Mint, score, string(a.Level)}); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
