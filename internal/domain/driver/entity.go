package driver

import (
	"time"

	"github.com/google/uuid"
)

// DriverStatus represents the employment status of a driver.
type DriverStatus string

const (
	StatusActive   DriverStatus = "active"
	StatusInactive DriverStatus = "inactive"
)

// Driver is a fleet driver. Vehicle assignments are many-to-many and carry
// no referential integrity guarantee; readers filter orphaned ids.
type Driver struct {
	ID uuid.UUID

	Name          string
	LicenseNumber string
	Phone         string
	Address       string
	Status        DriverStatus

	AssignedVehicleIDs []uuid.UUID

	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d *Driver) IsDeleted() bool {
	return d.DeletedAt != nil
}
