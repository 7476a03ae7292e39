package vehicle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for vehicles.
type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, vehicleID uuid.UUID) (*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) error
	SetDeletedAt(ctx context.Context, vehicleID uuid.UUID, deletedAt *time.Time) error
	HardDelete(ctx context.Context, vehicleID uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Vehicle, int64, error)
	ListAll(ctx context.Context) ([]*Vehicle, error)
	UpdateKilometers(ctx context.Context, vehicleID uuid.UUID, kilometers float64) error
}

// Filter represents filtering options for listing vehicles.
type Filter struct {
	FuelType       *FuelType
	HasInsurance   *bool
	IncludeDeleted bool

	// Search matches make, model, registration number, and owner.
	Search string

	// Pagination
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
