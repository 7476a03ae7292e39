package maintenance

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus represents the lifecycle state of a maintenance record.
type RecordStatus string

const (
	StatusScheduled  RecordStatus = "scheduled"
	StatusInProgress RecordStatus = "in_progress"
	StatusCompleted  RecordStatus = "completed"
	StatusCancelled  RecordStatus = "cancelled"
)

// Record is a single maintenance/service entry for a vehicle.
type Record struct {
	ID        uuid.UUID
	VehicleID uuid.UUID

	ServiceDate time.Time
	ServiceType string
	Description string
	Cost        float64

	OdometerReadingBefore float64
	OdometerReadingAfter  float64

	Status RecordStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
