package maintenance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for maintenance records.
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByID(ctx context.Context, recordID uuid.UUID) (*Record, error)
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, recordID uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Record, int64, error)
}

// Filter represents filtering options for listing maintenance records.
type Filter struct {
	VehicleID   *uuid.UUID
	Status      *RecordStatus
	ServiceType string

	ServiceAfter  *time.Time
	ServiceBefore *time.Time

	Page     int
	PageSize int
}
