package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/solana"
)

const (
	testWallet = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	mintA      = "So11111111111111111111111111111111111111112"
	mintB      = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
)

type fakeRPC struct {
	balances []solana.TokenBalance
	err      error
}

func (f *fakeRPC) GetAccountInfo(context.Context, string) (*solana.AccountInfo, error) {
	return nil, nil
}

func (f *fakeRPC) GetTokenBalances(context.Context, string) ([]solana.TokenBalance, error) {
	return f.balances, f.err
}

type fakeResolver struct {
	names map[string]domain.TokenName
}

func (r *fakeResolver) Resolve(_ context.Context, mint string) (domain.TokenName, error) {
	if name, ok := r.names[mint]; ok {
		return name, nil
	}
	return domain.TokenName{
		Name:   domain.UnknownTokenName,
		Symbol: domain.UnknownTokenSymbol,
	}, nil
}

type fakeAssessor struct{}

func (fakeAssessor) GetOrCompute(_ context.Context, mint string) domain.RiskAssessment {
	score := 10
	return domain.RiskAssessment{Mint: mint, Score: &score, Level: domain.RiskLow, Findings: []string{}}
}

func TestScan(t *testing.T) {
	rpc := &fakeRPC{balances: []solana.TokenBalance{
		{Mint: mintA, Amount: 1.5, Decimals: 9},
		{Mint: mintB, Amount: 200, Decimals: 6},
	}}
	resolver := &fakeResolver{names: map[string]domain.TokenName{
		mintA: {Name: "Wrapped SOL", Symbol: "SOL"},
	}}

	scanner := NewScanner(rpc, resolver, fakeAssessor{}, nil)

	holdings, err := scanner.Scan(context.Background(), testWallet)
	require.NoError(t, err)
	require.Len(t, holdings, 2)

	assert.Equal(t, mintA, holdings[0].Mint)
	assert.Equal(t, "Wrapped SOL", holdings[0].Name)
	assert.Equal(t, "SOL", holdings[0].Symbol)
	assert.Equal(t, 1.5, holdings[0].Balance)
	assert.Equal(t, 9, holdings[0].Decimals)
	require.NotNil(t, holdings[0].Assessment.Score)

	// Unresolvable token keeps the sentinels.
	assert.Equal(t, domain.UnknownTokenName, holdings[1].Name)
	assert.Equal(t, domain.UnknownTokenSymbol, holdings[1].Symbol)
}

func TestScan_SkipsZeroBalances(t *testing.T) {
	rpc := &fakeRPC{balances: []solana.TokenBalance{
		{Mint: mintA, Amount: 0, Decimals: 9},
		{Mint: mintB, Amount: 5, Decimals: 6},
	}}

	scanner := NewScanner(rpc, &fakeResolver{}, fakeAssessor{}, nil)

	holdings, err := scanner.Scan(context.Background(), testWallet)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, mintB, holdings[0].Mint)
}

func TestScan_InvalidWallet(t *testing.T) {
	scanner := NewScanner(&fakeRPC{}, &fakeResolver{}, fakeAssessor{}, nil)

	_, err := scanner.Scan(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidWallet)
}

func TestScan_RPCError(t *testing.T) {
	rpc := &fakeRPC{err: errors.New("rpc unavailable")}
	scanner := NewScanner(rpc, &fakeResolver{}, fakeAssessor{}, nil)

	_, err := scanner.Scan(context.Background(), testWallet)
	assert.Error(t, err)
}

func TestScan_EmptyWallet(t *testing.T) {
	scanner := NewScanner(&fakeRPC{}, &fakeResolver{}, fakeAssessor{}, nil)

	holdings, err := scanner.Scan(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Empty(t, holdings)
}
