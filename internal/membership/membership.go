// Package membership computes paid-access standing from stored start dates.
package membership

import (
	"math"
	"time"

	"rugsniffer/internal/domain"
)

// Access window lengths in days.
const (
	MembershipDays = 31
	TrialDays      = 5
)

// LifetimeSentinel marks a membership that never expires. Stored as the
// membership start date itself.
var LifetimeSentinel = time.Date(1988, time.October, 1, 0, 0, 0, 0, time.UTC)

// Info derives the user's access standing at now. Precedence is lifetime,
// then paid membership, then trial; an exhausted window falls through to
// the next. DaysRemaining is the rounded whole days left in the active
// window, zero when inactive or lifetime.
func Info(membershipStart, trialStart *time.Time, now time.Time) domain.MembershipInfo {
	if membershipStart != nil && membershipStart.Equal(LifetimeSentinel) {
		return domain.MembershipInfo{Active: true, Lifetime: true}
	}

	if membershipStart != nil {
		if remaining := daysRemaining(*membershipStart, MembershipDays, now); remaining > 0 {
			return domain.MembershipInfo{Active: true, DaysRemaining: remaining}
		}
	}

	if trialStart != nil {
		if remaining := daysRemaining(*trialStart, TrialDays, now); remaining > 0 {
			return domain.MembershipInfo{Active: true, Trial: true, DaysRemaining: remaining}
		}
	}

	return domain.MembershipInfo{}
}

func daysRemaining(start time.Time, windowDays int, now time.Time) int {
	elapsed := now.Sub(start).Hours() / 24
	return int(math.Round(float64(windowDays) - elapsed))
}
