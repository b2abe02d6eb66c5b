package memory

import (
	"context"
	"sync"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/storage"
)

// AssessmentStore is an in-memory implementation of storage.AssessmentStore.
type AssessmentStore struct {
	mu     sync.RWMutex
	byMint map[string][]*domain.AssessmentRecord // newest last
}

// NewAssessmentStore creates a new in-memory assessment store.
func NewAssessmentStore() *AssessmentStore {
	return &AssessmentStore{byMint: make(map[string][]*domain.AssessmentRecord)}
}

var _ storage.AssessmentStore = (*AssessmentStore)(nil)

// Insert appends one assessment record.
func (s *AssessmentStore) Insert(_ context.Context, rec *domain.AssessmentRecord) error {
	if rec == nil || rec.Mint == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recCopy := *rec
	s.byMint[rec.Mint] = append(s.byMint[rec.Mint], &recCopy)
	return nil
}

// GetByMint retrieves the most recent records for a mint, newest first,
// capped at limit.
func (s *AssessmentStore) GetByMint(_ context.Context, mint string, limit int) ([]*domain.AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.byMint[mint]
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	out := make([]*domain.AssessmentRecord, 0, limit)
	for i := len(records) - 1; i >= 0 && len(out) < limit; i-- {
		recCopy := *records[i]
		out = append(out, &recCopy)
	}
	return out, nil
}
