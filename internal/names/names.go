// Package names resolves display metadata for token mints through an
// ordered chain of market-data providers.
package names

import (
	"context"
	"errors"
	"io"
	"log"

	"rugsniffer/internal/domain"
)

// ErrNotResolved is returned when a provider has no metadata for a mint.
var ErrNotResolved = errors.New("token name not resolved")

// Resolver looks up display metadata for one mint.
type Resolver interface {
	// Resolve returns the token's name and symbol, or ErrNotResolved when
	// the provider does not know the mint.
	Resolve(ctx context.Context, mint string) (domain.TokenName, error)
}

// ChainResolver tries each resolver in order and returns the first
// successful result. When every provider fails or declines, it falls back
// to the Unknown sentinels rather than returning an error.
type ChainResolver struct {
	resolvers []Resolver
	logger    *log.Logger
}

// NewChain creates a ChainResolver over the given providers, queried in
// argument order. A nil logger discards output.
func NewChain(logger *log.Logger, resolvers ...Resolver) *ChainResolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ChainResolver{resolvers: resolvers, logger: logger}
}

var _ Resolver = (*ChainResolver)(nil)

// Resolve walks the provider chain. Never returns an error: exhausting the
// chain yields the Unknown sentinels.
func (c *ChainResolver) Resolve(ctx context.Context, mint string) (domain.TokenName, error) {
	for _, r := range c.resolvers {
		name, err := r.Resolve(ctx, mint)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, ErrNotResolved) {
			c.logger.Printf("names: provider failed for %s: %v", mint, err)
		}
	}
	return domain.TokenName{
		Name:   domain.UnknownTokenName,
		Symbol: domain.UnknownTokenSymbol,
	}, nil
}
