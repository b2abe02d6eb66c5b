package clickhouse

import (
	"context"
	"fmt"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/storage"
)

// AssessmentStore implements storage.AssessmentStore using ClickHouse.
type AssessmentStore struct {
	conn *Conn
}

// NewAssessmentStore creates a new AssessmentStore.
func NewAssessmentStore(conn *Conn) *AssessmentStore {
	return &AssessmentStore{conn: conn}
}

// Compile-time interface check.
var _ storage.AssessmentStore = (*AssessmentStore)(nil)

// Insert appends one assessment record.
func (s *AssessmentStore) Insert(ctx context.Context, rec *domain.AssessmentRecord) error {
	if rec == nil || rec.Mint == "" {
		return storage.ErrInvalidInput
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO assessments (
			mint, score, level, findings, assessed_at
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	findings := rec.Findings
	if findings == nil {
		findings = []string{}
	}

	err = batch.Append(
		rec.Mint, rec.Score, string(rec.Level), findings, rec.AssessedAt,
	)
	if err != nil {
		return fmt.Errorf("append to batch: %w", err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByMint retrieves the most recent records for a mint, newest first,
// capped at limit.
func (s *AssessmentStore) GetByMint(ctx context.Context, mint string, limit int) ([]*domain.AssessmentRecord, error) {
	query := `
		SELECT mint, score, level, findings, assessed_at
		FROM assessments
		WHERE mint = ?
		ORDER BY assessed_at DESC
		LIMIT ?
	`
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.conn.Query(ctx, query, mint, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query assessments by mint: %w", err)
	}
	defer rows.Close()

	var records []*domain.AssessmentRecord
	for rows.Next() {
		var rec domain.AssessmentRecord
		var level string

		err := rows.Scan(&rec.Mint, &rec.Score, &level, &rec.Findings, &rec.AssessedAt)
		if err != nil {
			return nil, fmt.Errorf("scan assessment row: %w", err)
		}

		rec.Level = domain.RiskLevel(level)
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessment rows: %w", err)
	}

	return records, nil
}
