// Package entitlement gates premium features for free users.
package entitlement

import (
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

const (
	// FreeLimit is how many gated items a free user gets outside the trial.
	FreeLimit = 3

	// TrialDays is the length of the unlimited window after install.
	TrialDays = 7
)

// CanShowMore reports whether another gated item may be shown. Premium users
// are unlimited. Free users are unlimited during the trial window after
// install; afterwards the first FreeLimit items remain available. An unknown
// install date means no trial can be proven, so the free limit applies.
func CanShowMore(isPremium bool, shownSoFar int, installDate *models.CalendarDate, today models.CalendarDate) bool {
	if isPremium {
		return true
	}
	if installDate != nil {
		days := today.DaysSince(*installDate)
		if days >= 0 && days < TrialDays {
			return true
		}
	}
	return shownSoFar < FreeLimit
}
