package insurance

import (
	"time"

	appErrors "fleet-maintenance-manager/pkg/errors"
)

// ValidateDateOrder enforces the policy date invariant: the end-date must be
// strictly after both the start-date and the issue-date.
func ValidateDateOrder(startDate, endDate, issueDate time.Time) error {
	if !endDate.After(startDate) {
		return appErrors.NewAppError("INVALID_DATE_RANGE", "End date must be after start date", nil)
	}
	if !endDate.After(issueDate) {
		return appErrors.NewAppError("INVALID_DATE_RANGE", "End date must be after issue date", nil)
	}
	return nil
}
