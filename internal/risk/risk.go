// Package risk implements the multi-factor token risk scoring engine.
//
// Six independent factor evaluators (liquidity/security, honeypot,
// farming/sybil, holder distribution, price/volume, contract security) each
// apply a fixed table of additive threshold rules to raw provider signals
// and emit a contribution plus human-readable findings. The aggregator
// combines the contributions by fixed weights into one composite score in
// [0, 100]. The rules are calibrated for newly launched tokens; the analyzer
// refuses to score tokens older than 48 hours.
//
// No operation in this package returns an error: missing signal data is
// non-triggering, malformed identifiers score a fixed maximum-distrust
// penalty, and provider failures have already been absorbed by the gateway.
package risk

import (
	"context"
	"io"
	"log"
	"time"

	"rugsniffer/internal/domain"
	"rugsniffer/internal/solana"
)

// SignalSource is the never-failing provider surface the engine evaluates
// against. Zero-value slices mean "no signal" and trigger nothing.
type SignalSource interface {
	TokenOverview(ctx context.Context, mint string) domain.TokenOverview
	LiquidityHistory(ctx context.Context, mint string) domain.LiquidityHistory
	TokenSecurity(ctx context.Context, mint string) domain.TokenSecurity
	WalletActivity(ctx context.Context, mint string) domain.WalletActivity
	HolderData(ctx context.Context, mint string) domain.HolderData
	PriceHistory(ctx context.Context, mint string) domain.PriceHistory
}

// Engine scores tokens against the factor rule tables.
type Engine struct {
	signals  SignalSource
	validate func(string) bool
	now      func() time.Time
	logger   *log.Logger
}

// Options for creating an Engine.
type Options struct {
	// Signals is required.
	Signals SignalSource

	// Validate overrides mint address validation. Defaults to
	// solana.ValidateAddress.
	Validate func(string) bool

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time

	Logger *log.Logger
}

// New creates an Engine.
func New(opts Options) *Engine {
	e := &Engine{
		signals:  opts.Signals,
		validate: opts.Validate,
		now:      opts.Now,
		logger:   opts.Logger,
	}
	if e.validate == nil {
		e.validate = solana.ValidateAddress
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard, "", 0)
	}
	return e
}
