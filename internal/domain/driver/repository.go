package driver

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for drivers and their vehicle
// assignments.
type Repository interface {
	Create(ctx context.Context, d *Driver) error
	GetByID(ctx context.Context, driverID uuid.UUID) (*Driver, error)
	Update(ctx context.Context, d *Driver) error
	SetDeletedAt(ctx context.Context, driverID uuid.UUID, deletedAt *time.Time) error
	List(ctx context.Context, filter *Filter) ([]*Driver, int64, error)

	Assign(ctx context.Context, driverID, vehicleID uuid.UUID) error
	Unassign(ctx context.Context, driverID, vehicleID uuid.UUID) error
	AssignedVehicleIDs(ctx context.Context, driverID uuid.UUID) ([]uuid.UUID, error)
}

// Filter represents filtering options for listing drivers.
type Filter struct {
	Status         *DriverStatus
	IncludeDeleted bool
	Search         string

	Page     int
	PageSize int
}
