package memory

import (
	"context"
	"sync"

	"rugsniffer/internal/storage"
)

// WatchlistStore is an in-memory implementation of storage.WatchlistStore.
type WatchlistStore struct {
	mu     sync.RWMutex
	byChat map[int64][]string // insertion order preserved
}

// NewWatchlistStore creates a new in-memory watchlist store.
func NewWatchlistStore() *WatchlistStore {
	return &WatchlistStore{byChat: make(map[int64][]string)}
}

var _ storage.WatchlistStore = (*WatchlistStore)(nil)

// Tokens returns the mint addresses on a chat's watchlist, oldest first.
func (s *WatchlistStore) Tokens(_ context.Context, chatID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens := make([]string, len(s.byChat[chatID]))
	copy(tokens, s.byChat[chatID])
	return tokens, nil
}

// Add puts a mint on a chat's watchlist.
func (s *WatchlistStore) Add(_ context.Context, chatID int64, mint string) error {
	if mint == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.byChat[chatID] {
		if m == mint {
			return storage.ErrDuplicateKey
		}
	}
	s.byChat[chatID] = append(s.byChat[chatID], mint)
	return nil
}

// Remove takes a mint off a chat's watchlist.
func (s *WatchlistStore) Remove(_ context.Context, chatID int64, mint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens := s.byChat[chatID]
	for i, m := range tokens {
		if m == mint {
			s.byChat[chatID] = append(tokens[:i], tokens[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Count returns the number of tokens on a chat's watchlist.
func (s *WatchlistStore) Count(_ context.Context, chatID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byChat[chatID]), nil
}
