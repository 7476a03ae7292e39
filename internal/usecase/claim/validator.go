package claim

import (
	"fmt"

	domainClaim "fleet-maintenance-manager/internal/domain/claim"
	appErrors "fleet-maintenance-manager/pkg/errors"
)

var validTransitions = map[domainClaim.ClaimStatus][]domainClaim.ClaimStatus{
	domainClaim.StatusPending: {
		domainClaim.StatusApproved,
		domainClaim.StatusRejected,
	},
	// Approved and Rejected are terminal.
	domainClaim.StatusApproved: {},
	domainClaim.StatusRejected: {},
}

// ValidateStatusTransition checks whether a claim may move between statuses.
func ValidateStatusTransition(currentStatus, newStatus domainClaim.ClaimStatus) error {
	allowed, exists := validTransitions[currentStatus]
	if !exists {
		return appErrors.NewAppError(
			"INVALID_STATUS",
			fmt.Sprintf("Unknown current status: %s", currentStatus),
			domainClaim.ErrInvalidStatus,
		)
	}

	for _, status := range allowed {
		if newStatus == status {
			return nil
		}
	}

	return appErrors.NewAppError(
		"INVALID_TRANSITION",
		fmt.Sprintf("Cannot transition claim from %s to %s", currentStatus, newStatus),
		domainClaim.ErrInvalidStatusTransition,
	)
}
