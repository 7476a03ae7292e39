package claim

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for claims.
type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, claimID uuid.UUID) (*Claim, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*Claim, error)
	List(ctx context.Context, filter *Filter) ([]*Claim, int64, error)
	UpdateStatus(ctx context.Context, claimID uuid.UUID, status ClaimStatus) error
}

// Filter represents filtering options for listing claims.
type Filter struct {
	VehicleID *uuid.UUID
	Status    *ClaimStatus

	Page     int
	PageSize int
}
