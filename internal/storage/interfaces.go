package storage

import (
	"context"
	"time"

	"rugsniffer/internal/domain"
)

// WatchlistStore provides access to per-chat token watchlists.
type WatchlistStore interface {
	// Tokens returns the mint addresses on a chat's watchlist, oldest first.
	Tokens(ctx context.Context, chatID int64) ([]string, error)

	// Add puts a mint on a chat's watchlist. Returns ErrDuplicateKey if it
	// is already present.
	Add(ctx context.Context, chatID int64, mint string) error

	// Remove takes a mint off a chat's watchlist. Returns ErrNotFound if it
	// is not present.
	Remove(ctx context.Context, chatID int64, mint string) error

	// Count returns the number of tokens on a chat's watchlist.
	Count(ctx context.Context, chatID int64) (int, error)
}

// UserStore provides access to registered chat users.
type UserStore interface {
	// Get retrieves a user by chat ID. Returns ErrNotFound if not registered.
	Get(ctx context.Context, chatID int64) (*domain.User, error)

	// Upsert inserts or replaces a user record keyed by chat ID.
	Upsert(ctx context.Context, u *domain.User) error

	// SetMembershipStart records the start of a paid membership window.
	SetMembershipStart(ctx context.Context, chatID int64, start time.Time) error
}

// AssessmentStore records completed risk assessments for history queries.
type AssessmentStore interface {
	// Insert appends one assessment record.
	Insert(ctx context.Context, rec *domain.AssessmentRecord) error

	// GetByMint retrieves the most recent records for a mint, newest first,
	// capped at limit.
	GetByMint(ctx context.Context, mint string, limit int) ([]*domain.AssessmentRecord, error)
}
