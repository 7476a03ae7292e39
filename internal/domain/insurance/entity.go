package insurance

import (
	"time"

	"github.com/google/uuid"
)

// Status is the display bucket derived from a policy end-date.
type Status string

const (
	StatusValid        Status = "valid"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
	StatusUnknown      Status = "unknown"
)

// Policy is the active insurance policy of a vehicle. At most one active
// policy exists per vehicle; superseding a policy writes a HistoryRow first.
type Policy struct {
	ID        uuid.UUID
	VehicleID uuid.UUID

	PolicyNumber  string
	Insurer       string
	PolicyType    string
	StartDate     time.Time
	EndDate       time.Time
	IssueDate     time.Time
	PremiumAmount float64
	PaymentMode   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HistoryRow is an append-only snapshot of a superseded or expired policy,
// carrying the vehicle identity fields it belonged to at that moment.
type HistoryRow struct {
	ID uuid.UUID

	// Reference is a human-readable key of the form
	// "{vehicleID}-expired-{unix}" for expired rows, or
	// "{vehicleID}-superseded-{unix}" when a policy is overwritten.
	Reference string

	VehicleID          uuid.UUID
	RegistrationNumber string
	Make               string
	Model              string

	PolicyNumber  string
	Insurer       string
	PolicyType    string
	StartDate     time.Time
	EndDate       time.Time
	IssueDate     time.Time
	PremiumAmount float64
	PaymentMode   string

	Status Status

	CreatedAt time.Time
}
