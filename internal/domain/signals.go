package domain

// Raw signal slices returned by the market/security data provider.
//
// Every field is optional on the wire. Absence means "unknown", not "zero":
// pointer fields are used wherever the zero value would otherwise satisfy a
// scoring rule, so that an unknown value can never trigger one.

// TokenOverview is the provider's token overview slice: liquidity depth,
// lock status and the pair creation timestamp.
type TokenOverview struct {
	Liquidity          *LiquidityInfo `json:"liquidity,omitempty"`
	LiquidityLocked    *bool          `json:"liquidityLocked,omitempty"`
	PairCreatedAt      *int64         `json:"pairCreatedAt,omitempty"` // unix ms
	SuccessfulSellsPct *float64       `json:"successfulSellsPercentage,omitempty"`
}

// LiquidityInfo is the nested liquidity object of TokenOverview.
type LiquidityInfo struct {
	USD float64 `json:"usd"`
}

// LiquidityHistory describes recent pool liquidity movement.
type LiquidityHistory struct {
	Drop1hPct        float64           `json:"drop1h"`
	MultiplePools    bool              `json:"multiplePoolsDetected"`
	DeployerActivity *DeployerActivity `json:"deployerActivity,omitempty"`
}

// DeployerActivity is the nested deployer behavior object of LiquidityHistory.
type DeployerActivity struct {
	RapidAddRemove bool `json:"rapidAddRemove"`
}

// TokenSecurity carries the provider's contract security flags.
type TokenSecurity struct {
	Honeypot              bool    `json:"isHoneypot"`
	SellFeePct            float64 `json:"sellFee"`
	DynamicSellFee        bool    `json:"dynamicSellFee"`
	RugPullDetected       bool    `json:"isRugPullDetected"`
	Verified              *bool   `json:"isVerified,omitempty"`
	SuspiciousPermissions bool    `json:"hasSuspiciousPermissions"`
	Upgradable            bool    `json:"isUpgradable"`
	UpdatedIn15m          bool    `json:"contractUpdatedIn15m"`
}

// WalletActivity summarizes buyer/seller wallet behavior over a time window.
type WalletActivity struct {
	SlippageIncreasePct float64  `json:"slippageIncrease"`
	SuccessfulSellsPct  *float64 `json:"successfulSellsPercentage,omitempty"`
	LimitedSellAmounts  bool     `json:"limitedSellAmounts"`
	IdenticalBuys       int      `json:"identicalBuys"`
	NewWalletBuysPct    float64  `json:"newWalletBuysPercentage"`
	FanOutDistribution  bool     `json:"distributionToMultipleWallets"`
	HoldersNotSelling6h bool     `json:"holdersNoSellsAfter6h"`
	Consolidation       bool     `json:"consolidationToSingleAddress"`
	DeployerSoldIn6h    bool     `json:"deployerSoldIn6h"`
	DeployerFanOut      bool     `json:"deployerDistributedTokens"`
}

// HolderData summarizes the holder distribution of a token.
type HolderData struct {
	Count        *int    `json:"count,omitempty"`
	AgeHours     float64 `json:"ageHours"`
	Top5Pct      float64 `json:"top5Percentage"`
	NewWalletPct float64 `json:"newWalletPercentage"`
	MassAirdrop  bool    `json:"massAirdropDetected"`
}

// PriceHistory describes recent price and volume action.
type PriceHistory struct {
	Change              *PriceChange `json:"priceChange,omitempty"`
	VolumeToLiquidity1h float64      `json:"volumeToLiquidityRatio1h"`
	StableMinutes       *float64     `json:"stableDuration,omitempty"`
}

// PriceChange is the nested per-window price change object of PriceHistory.
type PriceChange struct {
	M15 float64  `json:"m15"`
	H1  *float64 `json:"h1,omitempty"`
}
