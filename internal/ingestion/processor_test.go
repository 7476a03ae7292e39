package ingestion

import (
	"context"
	"sync"
	"testing"
	"time"

	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"

	"github.com/google/uuid"
)

type recordingVehicleRepo struct {
	mu      sync.Mutex
	updates []float64
	ctxErrs []error
}

func (r *recordingVehicleRepo) Create(_ context.Context, _ *domainVehicle.Vehicle) error { return nil }
func (r *recordingVehicleRepo) GetByID(_ context.Context, _ uuid.UUID) (*domainVehicle.Vehicle, error) {
	return nil, domainVehicle.ErrVehicleNotFound
}
func (r *recordingVehicleRepo) Update(_ context.Context, _ *domainVehicle.Vehicle) error { return nil }
func (r *recordingVehicleRepo) SetDeletedAt(_ context.Context, _ uuid.UUID, _ *time.Time) error {
	return nil
}
func (r *recordingVehicleRepo) HardDelete(_ context.Context, _ uuid.UUID) error { return nil }
func (r *recordingVehicleRepo) List(_ context.Context, _ *domainVehicle.Filter) ([]*domainVehicle.Vehicle, int64, error) {
	return nil, 0, nil
}
func (r *recordingVehicleRepo) ListAll(_ context.Context) ([]*domainVehicle.Vehicle, error) {
	return nil, nil
}
func (r *recordingVehicleRepo) UpdateKilometers(ctx context.Context, _ uuid.UUID, km float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, km)
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	return nil
}

func TestStopDrainsBufferedMessages(t *testing.T) {
	repo := &recordingVehicleRepo{}
	p := NewProcessor(repo, 2, 16)
	p.Start()

	id := uuid.New()
	for i := 1; i <= 5; i++ {
		p.Process(&OdometerMessage{VehicleID: id, Kilometers: float64(i * 100), RecordedAt: time.Now()})
	}

	p.Stop()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.updates) != 5 {
		t.Fatalf("applied %d updates, want 5", len(repo.updates))
	}
	for i, err := range repo.ctxErrs {
		if err != nil {
			t.Fatalf("update %d saw cancelled context: %v", i, err)
		}
	}
}

func TestProcessAfterStopIsDropped(t *testing.T) {
	repo := &recordingVehicleRepo{}
	p := NewProcessor(repo, 1, 4)
	p.Start()
	p.Stop()

	// Must not panic on the closed channel, and must not apply anything.
	p.Process(&OdometerMessage{VehicleID: uuid.New(), Kilometers: 100, RecordedAt: time.Now()})

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.updates) != 0 {
		t.Fatalf("message applied after stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	p := NewProcessor(&recordingVehicleRepo{}, 1, 4)
	p.Start()
	p.Stop()
	p.Stop()
}
