package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rugsniffer/internal/storage"
)

func TestWatchlistStore_AddAndTokens(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewWatchlistStore(pool)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 1, "mintA"))
	require.NoError(t, store.Add(ctx, 1, "mintB"))
	require.NoError(t, store.Add(ctx, 2, "mintC"))

	tokens, err := store.Tokens(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"mintA", "mintB"}, tokens)

	count, err := store.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.Count(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWatchlistStore_AddDuplicate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewWatchlistStore(pool)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 1, "mintA"))

	err := store.Add(ctx, 1, "mintA")
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// Same mint on another chat is a distinct key.
	assert.NoError(t, store.Add(ctx, 2, "mintA"))
}

func TestWatchlistStore_Remove(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewWatchlistStore(pool)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 1, "mintA"))
	require.NoError(t, store.Remove(ctx, 1, "mintA"))

	err := store.Remove(ctx, 1, "mintA")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	tokens, err := store.Tokens(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
