package claim

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus represents the review state of an insurance claim.
type ClaimStatus string

const (
	StatusPending  ClaimStatus = "Pending"
	StatusApproved ClaimStatus = "Approved"
	StatusRejected ClaimStatus = "Rejected"
)

// Claim is an insurance claim filed against a vehicle's active policy.
type Claim struct {
	ID        uuid.UUID
	VehicleID uuid.UUID

	ClaimDate   time.Time
	ClaimAmount float64
	Reason      string
	Status      ClaimStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
