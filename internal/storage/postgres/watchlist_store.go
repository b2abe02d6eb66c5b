package postgres

import (
	"context"
	"fmt"

	"rugsniffer/internal/storage"
)

// WatchlistStore implements storage.WatchlistStore using PostgreSQL.
type WatchlistStore struct {
	pool *Pool
}

// NewWatchlistStore creates a new WatchlistStore.
func NewWatchlistStore(pool *Pool) *WatchlistStore {
	return &WatchlistStore{pool: pool}
}

// Compile-time interface check.
var _ storage.WatchlistStore = (*WatchlistStore)(nil)

// Tokens returns the mint addresses on a chat's watchlist, oldest first.
func (s *WatchlistStore) Tokens(ctx context.Context, chatID int64) ([]string, error) {
	query := `
		SELECT mint_address
		FROM watchlists
		WHERE chat_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.pool.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var mint string
		if err := rows.Scan(&mint); err != nil {
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		tokens = append(tokens, mint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watchlist rows: %w", err)
	}
	return tokens, nil
}

// Add puts a mint on a chat's watchlist. Returns ErrDuplicateKey if it is
// already present.
func (s *WatchlistStore) Add(ctx context.Context, chatID int64, mint string) error {
	if mint == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO watchlists (chat_id, mint_address)
		VALUES ($1, $2)
	`

	_, err := s.pool.Exec(ctx, query, chatID, mint)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert watchlist entry: %w", err)
	}
	return nil
}

// Remove takes a mint off a chat's watchlist. Returns ErrNotFound if it is
// not present.
func (s *WatchlistStore) Remove(ctx context.Context, chatID int64, mint string) error {
	query := `
		DELETE FROM watchlists
		WHERE chat_id = $1 AND mint_address = $2
	`

	tag, err := s.pool.Exec(ctx, query, chatID, mint)
	if err != nil {
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Count returns the number of tokens on a chat's watchlist.
func (s *WatchlistStore) Count(ctx context.Context, chatID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM watchlists
		WHERE chat_id = $1
	`

	var count int
	if err := s.pool.QueryRow(ctx, query, chatID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count watchlist entries: %w", err)
	}
	return count, nil
}
