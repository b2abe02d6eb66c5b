// Package wallet scans a Solana wallet's token holdings and scores each
// held token.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/names"
	"rugsniffer/internal/solana"
)

// ErrInvalidWallet is returned when the wallet address fails validation.
var ErrInvalidWallet = errors.New("invalid wallet address")

// Assessor produces a risk assessment for a single mint.
type Assessor interface {
	GetOrCompute(ctx context.Context, mint string) domain.RiskAssessment
}

// Holding pairs a wallet token balance with its risk assessment.
type Holding struct {
	domain.TokenHolding
	Assessment domain.RiskAssessment `json:"assessment"`
}

// Scanner enumerates a wallet's SPL token balances, resolves display names
// and scores every held mint.
type Scanner struct {
	rpc      solana.RPCClient
	resolver names.Resolver
	assessor Assessor
	validate func(string) bool
	logger   *log.Logger
}

// NewScanner creates a wallet scanner. A nil logger discards output.
func NewScanner(rpc solana.RPCClient, resolver names.Resolver, assessor Assessor, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Scanner{
		rpc:      rpc,
		resolver: resolver,
		assessor: assessor,
		validate: solana.ValidateAddress,
		logger:   logger,
	}
}

// Scan lists the wallet's non-zero token balances with resolved names and
// per-token assessments, in RPC return order.
func (s *Scanner) Scan(ctx context.Context, wallet string) ([]Holding, error) {
	if !s.validate(wallet) {
		return nil, ErrInvalidWallet
	}

	balances, err := s.rpc.GetTokenBalances(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("get token balances: %w", err)
	}

	holdings := make([]Holding, 0, len(balances))
	for _, b := range balances {
		if b.Amount <= 0 {
			s.logger.Printf("wallet: skipping zero balance mint %s", b.Mint)
			continue
		}

		name, _ := s.resolver.Resolve(ctx, b.Mint)
		holdings = append(holdings, Holding{
			TokenHolding: domain.TokenHolding{
				Mint:     b.Mint,
				Name:     name.Name,
				Symbol:   name.Symbol,
				Balance:  b.Amount,
				Decimals: b.Decimals,
			},
			Assessment: s.assessor.GetOrCompute(ctx, b.Mint),
		})
	}
	return holdings, nil
}
