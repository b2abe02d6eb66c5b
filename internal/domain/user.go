package domain

import "time"

// User is a registered chat user with an optional wallet and membership state.
type User struct {
	ChatID          int64
	WalletAddress   string
	MembershipStart *time.Time
	TrialStart      *time.Time
	CreatedAt       time.Time
}

// MembershipInfo is the computed standing of a user's paid access.
type MembershipInfo struct {
	Active        bool `json:"active"`
	Lifetime      bool `json:"lifetime"`
	Trial         bool `json:"trial"`
	DaysRemaining int  `json:"daysRemaining"`
}
