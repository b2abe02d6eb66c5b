package domain

// TokenHolding is one fungible token balance found in a wallet.
// Name and Symbol are best-effort display metadata; UnknownTokenName
// and UnknownTokenSymbol mark tokens no resolver could identify.
type TokenHolding struct {
	Mint     string  `json:"mintAddress"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	Balance  float64 `json:"balance"`
	Decimals int     `json:"decimals"`
}

// Sentinels for unresolvable token display metadata.
const (
	UnknownTokenName   = "Unknown Token"
	UnknownTokenSymbol = "UNKNOWN"
)

// TokenName is resolved display metadata for a mint.
type TokenName struct {
	Name   string
	Symbol string
}
