package insurance

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for insurance policies and the
// append-only history table.
type Repository interface {
	Create(ctx context.Context, p *Policy) error
	GetByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*Policy, error)
	ListActive(ctx context.Context) ([]*Policy, error)
	DeleteByVehicleID(ctx context.Context, vehicleID uuid.UUID) error

	// Supersede atomically appends the history snapshot of the old policy
	// and replaces it with the new one.
	Supersede(ctx context.Context, old *Policy, row *HistoryRow, next *Policy) error

	// Expire atomically appends the history snapshot and removes the
	// active policy. The reconcile job calls this once per expired vehicle.
	Expire(ctx context.Context, p *Policy, row *HistoryRow) error

	AppendHistory(ctx context.Context, row *HistoryRow) error
	ListHistory(ctx context.Context, vehicleID *uuid.UUID) ([]*HistoryRow, error)
}
