package inventory

import (
	"time"

	"github.com/freshalert/freshalert-backend/entities"
)

// ExpiringSoonWindowDays is the number of days before expiry at which an item
// starts counting as expiring_soon. The window is inclusive on both ends.
const ExpiringSoonWindowDays = 3

// DaysUntilExpiry returns the whole days between today and the expiry date,
// negative once the item is past its date. Both arguments are reduced to date
// granularity first, so the hour of the scan never shifts the bucket.
func DaysUntilExpiry(expiryDate, today time.Time) int {
	e := truncateToDate(expiryDate)
	t := truncateToDate(today)
	return int(e.Sub(t).Hours() / 24)
}

// ComputeStatus classifies an expiry date against today. An item expiring
// today or in exactly three days is expiring_soon, not expired or fresh.
func ComputeStatus(expiryDate, today time.Time) string {
	days := DaysUntilExpiry(expiryDate, today)
	switch {
	case days < 0:
		return entities.StatusExpired
	case days <= ExpiringSoonWindowDays:
		return entities.StatusExpiringSoon
	default:
		return entities.StatusFresh
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
