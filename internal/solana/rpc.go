package solana

import "context"

// TokenProgramID is the SPL token program that owns fungible token accounts.
const TokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

// RPCClient defines the Solana RPC HTTP interface used by this service.
type RPCClient interface {
	// GetAccountInfo retrieves raw account info by public key.
	// Returns nil if the account does not exist.
	GetAccountInfo(ctx context.Context, pubkey string) (*AccountInfo, error)

	// GetTokenBalances retrieves SPL token balances held by an owner wallet.
	GetTokenBalances(ctx context.Context, owner string) ([]TokenBalance, error)
}

// AccountInfo represents Solana account information.
type AccountInfo struct {
	Lamports   uint64 `json:"lamports"`
	Owner      string `json:"owner"`
	Data       string `json:"data"` // base64 encoded
	Executable bool   `json:"executable"`
	RentEpoch  uint64 `json:"rentEpoch"`
}

// TokenBalance is one SPL token account balance owned by a wallet.
type TokenBalance struct {
	Mint     string
	Amount   float64 // UI amount, decimals applied
	Decimals int
}
