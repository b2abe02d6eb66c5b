package clickhouse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/storage"
)

const testMint = "So11111111111111111111111111111111111111112"

func record(mint string, score *int32, level domain.RiskLevel, findings []string, at time.Time) *domain.AssessmentRecord {
	return &domain.AssessmentRecord{
		Mint:       mint,
		Score:      score,
		Level:      level,
		Findings:   findings,
		AssessedAt: at,
	}
}

func TestAssessmentStore_InsertAndGet(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewAssessmentStore(conn)
	ctx := context.Background()

	at := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	rec := record(testMint, ptr(int32(42)), domain.RiskMedium,
		[]string{"Liquidity not locked", "Top holder owns >30%"}, at)

	require.NoError(t, store.Insert(ctx, rec))

	got, err := store.GetByMint(ctx, testMint, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, testMint, got[0].Mint)
	require.NotNil(t, got[0].Score)
	assert.Equal(t, int32(42), *got[0].Score)
	assert.Equal(t, domain.RiskMedium, got[0].Level)
	assert.Equal(t, []string{"Liquidity not locked", "Top holder owns >30%"}, got[0].Findings)
	assert.True(t, got[0].AssessedAt.Equal(at))
}

func TestAssessmentStore_NullScore(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewAssessmentStore(conn)
	ctx := context.Background()

	at := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Insert(ctx, record(testMint, nil, domain.RiskUnknown, nil, at)))

	got, err := store.GetByMint(ctx, testMint, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Nil(t, got[0].Score)
	assert.Equal(t, domain.RiskUnknown, got[0].Level)
	assert.Empty(t, got[0].Findings)
}

func TestAssessmentStore_NewestFirstWithLimit(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewAssessmentStore(conn)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		score := int32(i * 10)
		rec := record(testMint, &score, domain.RiskLow, []string{}, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, store.Insert(ctx, rec))
	}

	got, err := store.GetByMint(ctx, testMint, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, int32(40), *got[0].Score)
	assert.Equal(t, int32(30), *got[1].Score)
	assert.Equal(t, int32(20), *got[2].Score)

	// limit <= 0 falls back to the default cap.
	all, err := store.GetByMint(ctx, testMint, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestAssessmentStore_UnknownMint(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewAssessmentStore(conn)

	got, err := store.GetByMint(context.Background(), "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAssessmentStore_InvalidInput(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewAssessmentStore(conn)
	ctx := context.Background()

	assert.ErrorIs(t, store.Insert(ctx, nil), storage.ErrInvalidInput)
	assert.ErrorIs(t, store.Insert(ctx, &domain.AssessmentRecord{}), storage.ErrInvalidInput)
}
