// Package watchlist manages per-chat token watchlists and their
// aggregate risk view.
package watchlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/solana"
	"rugsniffer/internal/storage"
)

// MaxTokens caps how many tokens a single chat may watch.
const MaxTokens = 3

var (
	// ErrLimitReached is returned when a watchlist already holds MaxTokens.
	ErrLimitReached = errors.New("watchlist limit reached")

	// ErrInvalidMint is returned when the mint address fails validation.
	ErrInvalidMint = errors.New("invalid mint address")
)

// Assessor produces a risk assessment for a single mint, served from cache
// when fresh.
type Assessor interface {
	GetOrCompute(ctx context.Context, mint string) domain.RiskAssessment
}

// Overview is the assessed state of one chat's watchlist.
type Overview struct {
	Assessments []domain.RiskAssessment `json:"assessments"`
	AverageRisk int                     `json:"averageRisk"`
}

// Service coordinates watchlist mutations and assessment fan-out.
type Service struct {
	store    storage.WatchlistStore
	assessor Assessor
	validate func(string) bool
	logger   *log.Logger
}

// NewService creates a watchlist service. A nil logger discards output.
func NewService(store storage.WatchlistStore, assessor Assessor, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		store:    store,
		assessor: assessor,
		validate: solana.ValidateAddress,
		logger:   logger,
	}
}

// Add validates the mint and appends it to the chat's watchlist.
// Returns ErrLimitReached at capacity and storage.ErrDuplicateKey when the
// mint is already watched.
func (s *Service) Add(ctx context.Context, chatID int64, mint string) error {
	if !s.validate(mint) {
		return ErrInvalidMint
	}

	count, err := s.store.Count(ctx, chatID)
	if err != nil {
		return fmt.Errorf("count watchlist: %w", err)
	}
	if count >= MaxTokens {
		return ErrLimitReached
	}

	if err := s.store.Add(ctx, chatID, mint); err != nil {
		return err
	}
	s.logger.Printf("watchlist: chat=%d added %s", chatID, mint)
	return nil
}

// Remove takes a mint off the chat's watchlist.
func (s *Service) Remove(ctx context.Context, chatID int64, mint string) error {
	if err := s.store.Remove(ctx, chatID, mint); err != nil {
		return err
	}
	s.logger.Printf("watchlist: chat=%d removed %s", chatID, mint)
	return nil
}

// Tokens lists the chat's watched mints, oldest first.
func (s *Service) Tokens(ctx context.Context, chatID int64) ([]string, error) {
	return s.store.Tokens(ctx, chatID)
}

// Assess evaluates every watched token in insertion order and computes the
// average risk. Tokens without a numeric score (stale, confirmed rug pull)
// count as zero toward the average, which is rounded and divided by the
// total number of watched tokens.
func (s *Service) Assess(ctx context.Context, chatID int64) (*Overview, error) {
	tokens, err := s.store.Tokens(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}

	overview := &Overview{Assessments: make([]domain.RiskAssessment, 0, len(tokens))}
	if len(tokens) == 0 {
		return overview, nil
	}

	var sum float64
	for _, mint := range tokens {
		a := s.assessor.GetOrCompute(ctx, mint)
		overview.Assessments = append(overview.Assessments, a)
		if a.Score != nil {
			sum += float64(*a.Score)
		}
	}
	overview.AverageRisk = int(math.Round(sum / float64(len(tokens))))
	return overview, nil
}
