package memory

import (
	"context"
	"sync"
	"time"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/storage"
)

// UserStore is an in-memory implementation of storage.UserStore.
type UserStore struct {
	mu     sync.RWMutex
	byChat map[int64]*domain.User
}

// NewUserStore creates a new in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{byChat: make(map[int64]*domain.User)}
}

var _ storage.UserStore = (*UserStore)(nil)

// Get retrieves a user by chat ID.
func (s *UserStore) Get(_ context.Context, chatID int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.byChat[chatID]
	if !exists {
		return nil, storage.ErrNotFound
	}
	userCopy := *u
	return &userCopy, nil
}

// Upsert inserts or replaces a user record keyed by chat ID.
func (s *UserStore) Upsert(_ context.Context, u *domain.User) error {
	if u == nil || u.ChatID == 0 {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userCopy := *u
	if userCopy.CreatedAt.IsZero() {
		if existing, ok := s.byChat[u.ChatID]; ok {
			userCopy.CreatedAt = existing.CreatedAt
		} else {
			userCopy.CreatedAt = time.Now()
		}
	}
	s.byChat[u.ChatID] = &userCopy
	return nil
}

// SetMembershipStart records the start of a paid membership window.
func (s *UserStore) SetMembershipStart(_ context.Context, chatID int64, start time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.byChat[chatID]
	if !exists {
		return storage.ErrNotFound
	}
	u.MembershipStart = &start
	return nil
}
