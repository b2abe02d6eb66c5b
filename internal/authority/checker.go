// Package authority audits SPL mint accounts for active mint or freeze
// authorities. It is a standalone capability: the result is not part of the
// weighted risk model and is surfaced to callers as a separate check.
package authority

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"io"
	"log"
	"time"

	"rugsniffer/internal/solana"
)

// Audit reasons returned in Result.Reason.
const (
	ReasonInvalidAccount = "Invalid token or unparsed data"
	ReasonMintActive     = "Mint Authority active"
	ReasonFreezeActive   = "Freeze Authority active"
	ReasonCheckFailed    = "Error checking contract"
)

// Default retry configuration.
const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 1 * time.Second
)

// SPL mint account layout offsets.
// mintAuthorityOption(4) | mintAuthority(32) | supply(8) | decimals(1) |
// initialized(1) | freezeAuthorityOption(4) | freezeAuthority(32)
const (
	mintAccountSize        = 82
	mintAuthorityOptionOff = 0
	freezeAuthOptionOff    = 46
)

// Result is the outcome of a mint authority audit.
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// AccountFetcher is the RPC surface the checker needs.
type AccountFetcher interface {
	GetAccountInfo(ctx context.Context, pubkey string) (*solana.AccountInfo, error)
}

// Checker audits mint accounts with bounded retries.
type Checker struct {
	rpc         AccountFetcher
	maxAttempts int
	retryDelay  time.Duration
	logger      *log.Logger
}

// NewChecker creates a Checker with default retry behavior.
func NewChecker(rpc AccountFetcher, logger *log.Logger) *Checker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Checker{
		rpc:         rpc,
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
		logger:      logger,
	}
}

// Check audits the mint account for active authorities. Transient RPC
// failures are retried with linear backoff; exhausting all attempts yields
// a failed audit rather than an error.
func (c *Checker) Check(ctx context.Context, mint string) Result {
	if !solana.ValidateAddress(mint) {
		return Result{OK: false, Reason: ReasonInvalidAccount}
	}

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		info, err := c.rpc.GetAccountInfo(ctx, mint)
		if err != nil {
			c.logger.Printf("authority check attempt %d/%d for %s: %v", attempt, c.maxAttempts, mint, err)
			if attempt == c.maxAttempts {
				return Result{OK: false, Reason: ReasonCheckFailed}
			}
			select {
			case <-ctx.Done():
				return Result{OK: false, Reason: ReasonCheckFailed}
			case <-time.After(time.Duration(attempt) * c.retryDelay):
			}
			continue
		}
		return auditMintAccount(info)
	}

	return Result{OK: false, Reason: ReasonCheckFailed}
}

// auditMintAccount parses raw SPL mint account data and reports active
// authorities. An authority option of 1 means the authority is set.
func auditMintAccount(info *solana.AccountInfo) Result {
	if info == nil || info.Data == "" {
		return Result{OK: false, Reason: ReasonInvalidAccount}
	}

	data, err := base64.StdEncoding.DecodeString(info.Data)
	if err != nil || len(data) < mintAccountSize {
		return Result{OK: false, Reason: ReasonInvalidAccount}
	}

	if binary.LittleEndian.Uint32(data[mintAuthorityOptionOff:]) == 1 {
		return Result{OK: false, Reason: ReasonMintActive}
	}
	if binary.LittleEndian.Uint32(data[freezeAuthOptionOff:]) == 1 {
		return Result{OK: false, Reason: ReasonFreezeActive}
	}
	return Result{OK: true}
}
