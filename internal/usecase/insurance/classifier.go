package insurance

import (
	"time"

	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
)

// dateLayouts are the accepted end-date formats, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Classify buckets a policy end-date against "today" using the configured
// near-expiry window. Both operands are truncated to midnight, so the
// comparison is day-granular:
//
//	expired       end < today
//	expiring_soon today <= end <= today+windowDays
//	valid         end > today+windowDays
//
// The three buckets partition the date line for any fixed today and window.
func Classify(endDate, today time.Time, windowDays int) domainInsurance.Status {
	end := truncateToDay(endDate)
	day := truncateToDay(today)

	if end.Before(day) {
		return domainInsurance.StatusExpired
	}
	if end.After(day.AddDate(0, 0, windowDays)) {
		return domainInsurance.StatusValid
	}
	return domainInsurance.StatusExpiringSoon
}

// ClassifyDateString is the string-input variant used where end-dates arrive
// from the wire. Missing values, the "-" placeholder, and unparsable strings
// all classify as unknown rather than producing a garbage comparison.
func ClassifyDateString(endDate string, today time.Time, windowDays int) domainInsurance.Status {
	if endDate == "" || endDate == "-" {
		return domainInsurance.StatusUnknown
	}

	for _, layout := range dateLayouts {
		if end, err := time.Parse(layout, endDate); err == nil {
			return Classify(end, today, windowDays)
		}
	}
	return domainInsurance.StatusUnknown
}

// DaysUntilExpiry returns the whole days from today until the end-date,
// negative when already past.
func DaysUntilExpiry(endDate, today time.Time) int {
	end := truncateToDay(endDate)
	day := truncateToDay(today)
	return int(end.Sub(day).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
