package postgres

import (
	"context"
	"fmt"
	"time"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/storage"
)

// UserStore implements storage.UserStore using PostgreSQL.
type UserStore struct {
	pool *Pool
}

// NewUserStore creates a new UserStore.
func NewUserStore(pool *Pool) *UserStore {
	return &UserStore{pool: pool}
}

// Compile-time interface check.
var _ storage.UserStore = (*UserStore)(nil)

// Get retrieves a user by chat ID. Returns ErrNotFound if not registered.
func (s *UserStore) Get(ctx context.Context, chatID int64) (*domain.User, error) {
	query := `
		SELECT chat_id, wallet_address, membership_start, trial_start, created_at
		FROM users
		WHERE chat_id = $1
	`

	var u domain.User
	err := s.pool.QueryRow(ctx, query, chatID).Scan(
		&u.ChatID,
		&u.WalletAddress,
		&u.MembershipStart,
		&u.TrialStart,
		&u.CreatedAt,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Upsert inserts or replaces a user record keyed by chat ID.
func (s *UserStore) Upsert(ctx context.Context, u *domain.User) error {
	if u == nil || u.ChatID == 0 {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO users (chat_id, wallet_address, membership_start, trial_start)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (chat_id) DO UPDATE SET
			wallet_address = EXCLUDED.wallet_address,
			membership_start = EXCLUDED.membership_start,
			trial_start = EXCLUDED.trial_start
	`

	_, err := s.pool.Exec(ctx, query,
		u.ChatID,
		u.WalletAddress,
		u.MembershipStart,
		u.TrialStart,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// SetMembershipStart records the start of a paid membership window.
func (s *UserStore) SetMembershipStart(ctx context.Context, chatID int64, start time.Time) error {
	query := `
		UPDATE users
		SET membership_start = $2
		WHERE chat_id = $1
	`

	tag, err := s.pool.Exec(ctx, query, chatID, start)
	if err != nil {
		return fmt.Errorf("set membership start: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
