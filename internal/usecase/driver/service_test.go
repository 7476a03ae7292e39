package driver

import (
	"context"
	"testing"
	"time"

	domainDriver "fleet-maintenance-manager/internal/domain/driver"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"

	"github.com/google/uuid"
)

type fakeDriverRepo struct {
	drivers     map[uuid.UUID]*domainDriver.Driver
	assignments map[uuid.UUID][]uuid.UUID
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{
		drivers:     make(map[uuid.UUID]*domainDriver.Driver),
		assignments: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *fakeDriverRepo) Create(_ context.Context, d *domainDriver.Driver) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.drivers[d.ID] = d
	return nil
}

func (r *fakeDriverRepo) GetByID(_ context.Context, id uuid.UUID) (*domainDriver.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return nil, domainDriver.ErrDriverNotFound
	}
	dup := *d
	return &dup, nil
}

func (r *fakeDriverRepo) Update(_ context.Context, d *domainDriver.Driver) error {
	if _, ok := r.drivers[d.ID]; !ok {
		return domainDriver.ErrDriverNotFound
	}
	r.drivers[d.ID] = d
	return nil
}

func (r *fakeDriverRepo) SetDeletedAt(_ context.Context, id uuid.UUID, deletedAt *time.Time) error {
	d, ok := r.drivers[id]
	if !ok {
		return domainDriver.ErrDriverNotFound
	}
	d.DeletedAt = deletedAt
	return nil
}

func (r *fakeDriverRepo) List(_ context.Context, _ *domainDriver.Filter) ([]*domainDriver.Driver, int64, error) {
	out := []*domainDriver.Driver{}
	for _, d := range r.drivers {
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (r *fakeDriverRepo) Assign(_ context.Context, driverID, vehicleID uuid.UUID) error {
	for _, id := range r.assignments[driverID] {
		if id == vehicleID {
			return domainDriver.ErrAlreadyAssigned
		}
	}
	r.assignments[driverID] = append(r.assignments[driverID], vehicleID)
	return nil
}

func (r *fakeDriverRepo) Unassign(_ context.Context, driverID, vehicleID uuid.UUID) error {
	ids := r.assignments[driverID]
	for i, id := range ids {
		if id == vehicleID {
			r.assignments[driverID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return domainDriver.ErrAssignmentNotFound
}

func (r *fakeDriverRepo) AssignedVehicleIDs(_ context.Context, driverID uuid.UUID) ([]uuid.UUID, error) {
	return r.assignments[driverID], nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*domainVehicle.Vehicle
}

func (r *fakeVehicleRepo) Create(_ context.Context, _ *domainVehicle.Vehicle) error { return nil }
func (r *fakeVehicleRepo) GetByID(_ context.Context, id uuid.UUID) (*domainVehicle.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domainVehicle.ErrVehicleNotFound
	}
	return v, nil
}
func (r *fakeVehicleRepo) Update(_ context.Context, _ *domainVehicle.Vehicle) error { return nil }
func (r *fakeVehicleRepo) SetDeletedAt(_ context.Context, _ uuid.UUID, _ *time.Time) error {
	return nil
}
func (r *fakeVehicleRepo) HardDelete(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fakeVehicleRepo) List(_ context.Context, _ *domainVehicle.Filter) ([]*domainVehicle.Vehicle, int64, error) {
	return nil, 0, nil
}
func (r *fakeVehicleRepo) ListAll(_ context.Context) ([]*domainVehicle.Vehicle, error) {
	return nil, nil
}
func (r *fakeVehicleRepo) UpdateKilometers(_ context.Context, _ uuid.UUID, _ float64) error {
	return nil
}

func activeDriver() *domainDriver.Driver {
	return &domainDriver.Driver{
		ID:            uuid.New(),
		Name:          "Suresh Babu",
		LicenseNumber: "DL-0420110012345",
		Phone:         "9876543210",
		Status:        domainDriver.StatusActive,
	}
}

func TestGetFiltersOrphanedAssignments(t *testing.T) {
	driverRepo := newFakeDriverRepo()
	vehicleRepo := &fakeVehicleRepo{vehicles: map[uuid.UUID]*domainVehicle.Vehicle{}}
	svc := NewService(driverRepo, vehicleRepo)

	d := activeDriver()
	driverRepo.drivers[d.ID] = d

	live := &domainVehicle.Vehicle{ID: uuid.New(), RegistrationNumber: "KA01AB1234"}
	deletedAt := time.Now()
	softDeleted := &domainVehicle.Vehicle{ID: uuid.New(), RegistrationNumber: "KA02CD5678", DeletedAt: &deletedAt}
	vanished := uuid.New()

	vehicleRepo.vehicles[live.ID] = live
	vehicleRepo.vehicles[softDeleted.ID] = softDeleted
	driverRepo.assignments[d.ID] = []uuid.UUID{live.ID, softDeleted.ID, vanished}

	resp, err := svc.Get(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(resp.AssignedVehicleIDs) != 1 {
		t.Fatalf("assigned ids = %v, want only the live vehicle", resp.AssignedVehicleIDs)
	}
	if resp.AssignedVehicleIDs[0] != live.ID {
		t.Fatalf("assigned id = %s, want %s", resp.AssignedVehicleIDs[0], live.ID)
	}
}

func TestAssignVehicleRejectsInactiveDriver(t *testing.T) {
	driverRepo := newFakeDriverRepo()
	vehicleRepo := &fakeVehicleRepo{vehicles: map[uuid.UUID]*domainVehicle.Vehicle{}}
	svc := NewService(driverRepo, vehicleRepo)

	d := activeDriver()
	d.Status = domainDriver.StatusInactive
	driverRepo.drivers[d.ID] = d

	v := &domainVehicle.Vehicle{ID: uuid.New(), RegistrationNumber: "KA01AB1234"}
	vehicleRepo.vehicles[v.ID] = v

	if _, err := svc.AssignVehicle(context.Background(), d.ID, v.ID); err != domainDriver.ErrDriverInactive {
		t.Fatalf("AssignVehicle to inactive driver = %v, want ErrDriverInactive", err)
	}
	if len(driverRepo.assignments[d.ID]) != 0 {
		t.Fatalf("assignment was recorded for inactive driver")
	}
}

func TestAssignVehicleRejectsDeletedVehicle(t *testing.T) {
	driverRepo := newFakeDriverRepo()
	vehicleRepo := &fakeVehicleRepo{vehicles: map[uuid.UUID]*domainVehicle.Vehicle{}}
	svc := NewService(driverRepo, vehicleRepo)

	d := activeDriver()
	driverRepo.drivers[d.ID] = d

	deletedAt := time.Now()
	v := &domainVehicle.Vehicle{ID: uuid.New(), RegistrationNumber: "KA01AB1234", DeletedAt: &deletedAt}
	vehicleRepo.vehicles[v.ID] = v

	if _, err := svc.AssignVehicle(context.Background(), d.ID, v.ID); err != domainVehicle.ErrVehicleDeleted {
		t.Fatalf("AssignVehicle with deleted vehicle = %v, want ErrVehicleDeleted", err)
	}
}

func TestAssignAndUnassignRoundTrip(t *testing.T) {
	driverRepo := newFakeDriverRepo()
	vehicleRepo := &fakeVehicleRepo{vehicles: map[uuid.UUID]*domainVehicle.Vehicle{}}
	svc := NewService(driverRepo, vehicleRepo)

	d := activeDriver()
	driverRepo.drivers[d.ID] = d

	v := &domainVehicle.Vehicle{ID: uuid.New(), RegistrationNumber: "KA01AB1234"}
	vehicleRepo.vehicles[v.ID] = v

	resp, err := svc.AssignVehicle(context.Background(), d.ID, v.ID)
	if err != nil {
		t.Fatalf("AssignVehicle: %v", err)
	}
	if len(resp.AssignedVehicleIDs) != 1 || resp.AssignedVehicleIDs[0] != v.ID {
		t.Fatalf("assigned ids = %v, want [%s]", resp.AssignedVehicleIDs, v.ID)
	}

	if _, err := svc.AssignVehicle(context.Background(), d.ID, v.ID); err != domainDriver.ErrAlreadyAssigned {
		t.Fatalf("repeat assign = %v, want ErrAlreadyAssigned", err)
	}

	resp, err = svc.UnassignVehicle(context.Background(), d.ID, v.ID)
	if err != nil {
		t.Fatalf("UnassignVehicle: %v", err)
	}
	if len(resp.AssignedVehicleIDs) != 0 {
		t.Fatalf("assigned ids after unassign = %v, want empty", resp.AssignedVehicleIDs)
	}

	if _, err := svc.UnassignVehicle(context.Background(), d.ID, v.ID); err != domainDriver.ErrAssignmentNotFound {
		t.Fatalf("repeat unassign = %v, want ErrAssignmentNotFound", err)
	}
}
