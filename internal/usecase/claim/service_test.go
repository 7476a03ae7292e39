package claim

import (
	"context"
	"testing"
	"time"

	domainClaim "fleet-maintenance-manager/internal/domain/claim"
	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	appErrors "fleet-maintenance-manager/pkg/errors"

	"github.com/google/uuid"
)

type fakeClaimRepo struct {
	claims      map[uuid.UUID]*domainClaim.Claim
	createCalls int
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{claims: make(map[uuid.UUID]*domainClaim.Claim)}
}

func (r *fakeClaimRepo) Create(_ context.Context, c *domainClaim.Claim) error {
	r.createCalls++
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.claims[c.ID] = c
	return nil
}

func (r *fakeClaimRepo) GetByID(_ context.Context, id uuid.UUID) (*domainClaim.Claim, error) {
	c, ok := r.claims[id]
	if !ok {
		return nil, domainClaim.ErrClaimNotFound
	}
	return c, nil
}

func (r *fakeClaimRepo) ListByVehicle(_ context.Context, vehicleID uuid.UUID) ([]*domainClaim.Claim, error) {
	out := []*domainClaim.Claim{}
	for _, c := range r.claims {
		if c.VehicleID == vehicleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClaimRepo) List(_ context.Context, _ *domainClaim.Filter) ([]*domainClaim.Claim, int64, error) {
	out := []*domainClaim.Claim{}
	for _, c := range r.claims {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeClaimRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domainClaim.ClaimStatus) error {
	c, ok := r.claims[id]
	if !ok {
		return domainClaim.ErrClaimNotFound
	}
	c.Status = status
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*domainVehicle.Vehicle
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *domainVehicle.Vehicle) error { return nil }
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

type fakePolicyRepo struct {
	policies map[uuid.UUID]*domainInsurance.Policy
}

func (r *fakePolicyRepo) Create(_ context.Context, _ *domainInsurance.Policy) error { return nil }
func (r *fakePolicyRepo) GetByVehicleID(_ context.Context, vehicleID uuid.UUID) (*domainInsurance.Policy, error) {
	p, ok := r.policies[vehicleID]
	if !ok {
		return nil, domainInsurance.ErrPolicyNotFound
	}
	return p, nil
}
func (r *fakePolicyRepo) ListActive(_ context.Context) ([]*domainInsurance.Policy, error) {
	return nil, nil
}
func (r *fakePolicyRepo) DeleteByVehicleID(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fakePolicyRepo) Supersede(_ context.Context, _ *domainInsurance.Policy, _ *domainInsurance.HistoryRow, _ *domainInsurance.Policy) error {
	return nil
}
func (r *fakePolicyRepo) Expire(_ context.Context, _ *domainInsurance.Policy, _ *domainInsurance.HistoryRow) error {
	return nil
}
func (r *fakePolicyRepo) AppendHistory(_ context.Context, _ *domainInsurance.HistoryRow) error {
	return nil
}
func (r *fakePolicyRepo) ListHistory(_ context.Context, _ *uuid.UUID) ([]*domainInsurance.HistoryRow, error) {
	return nil, nil
}

func newTestSetup(withPolicy bool) (*Service, *fakeClaimRepo, uuid.UUID) {
	v := &domainVehicle.Vehicle{
		ID:                 uuid.New(),
		RegistrationNumber: "KA01AB1234",
	}
	vehicleRepo := &fakeVehicleRepo{vehicles: map[uuid.UUID]*domainVehicle.Vehicle{v.ID: v}}

	policyRepo := &fakePolicyRepo{policies: map[uuid.UUID]*domainInsurance.Policy{}}
	if withPolicy {
		policyRepo.policies[v.ID] = &domainInsurance.Policy{
			ID:        uuid.New(),
			VehicleID: v.ID,
		}
	}

	claimRepo := newFakeClaimRepo()
	return NewService(claimRepo, vehicleRepo, policyRepo), claimRepo, v.ID
}

func fileRequest(vehicleID uuid.UUID) *FileClaimRequest {
	return &FileClaimRequest{
		VehicleID:   vehicleID,
		ClaimDate:   "2026-01-10",
		ClaimAmount: 25000,
		Reason:      "Front bumper damage in parking lot",
	}
}

func TestFileClaimWithoutInsuranceRejected(t *testing.T) {
	svc, claimRepo, vehicleID := newTestSetup(false)

	_, err := svc.File(context.Background(), fileRequest(vehicleID))
	if err == nil {
		t.Fatalf("expected rejection for uninsured vehicle")
	}

	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "INSURANCE_REQUIRED" {
		t.Fatalf("expected INSURANCE_REQUIRED error, got %v", err)
	}
	if claimRepo.createCalls != 0 {
		t.Fatalf("claim row was created for uninsured vehicle")
	}
}

func TestFileClaimWithInsurance(t *testing.T) {
	svc, claimRepo, vehicleID := newTestSetup(true)

	resp, err := svc.File(context.Background(), fileRequest(vehicleID))
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if resp.Status != string(domainClaim.StatusPending) {
		t.Fatalf("new claim status %q, want Pending", resp.Status)
	}
	if claimRepo.createCalls != 1 {
		t.Fatalf("create calls = %d, want 1", claimRepo.createCalls)
	}
}

func TestFileClaimValidation(t *testing.T) {
	svc, claimRepo, vehicleID := newTestSetup(true)

	req := fileRequest(vehicleID)
	req.ClaimAmount = 0
	if _, err := svc.File(context.Background(), req); err == nil {
		t.Fatalf("zero claim amount should fail")
	}

	req = fileRequest(vehicleID)
	req.Reason = "short"
	if _, err := svc.File(context.Background(), req); err == nil {
		t.Fatalf("short reason should fail")
	}

	req = fileRequest(vehicleID)
	req.ClaimDate = "2999-01-01"
	if _, err := svc.File(context.Background(), req); err == nil {
		t.Fatalf("future claim date should fail")
	}

	if claimRepo.createCalls != 0 {
		t.Fatalf("invalid requests created %d rows", claimRepo.createCalls)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, _, vehicleID := newTestSetup(true)

	resp, err := svc.File(context.Background(), fileRequest(vehicleID))
	if err != nil {
		t.Fatalf("File: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), resp.ID, &UpdateClaimStatusRequest{Status: "Approved"})
	if err != nil {
		t.Fatalf("Pending -> Approved: %v", err)
	}
	if updated.Status != "Approved" {
		t.Fatalf("status %q, want Approved", updated.Status)
	}

	// Approved is terminal.
	if _, err := svc.UpdateStatus(context.Background(), resp.ID, &UpdateClaimStatusRequest{Status: "Rejected"}); err == nil {
		t.Fatalf("Approved -> Rejected should fail")
	}
}

func TestValidateStatusTransition(t *testing.T) {
	if err := ValidateStatusTransition(domainClaim.StatusPending, domainClaim.StatusRejected); err != nil {
		t.Fatalf("Pending -> Rejected: %v", err)
	}
	if err := ValidateStatusTransition(domainClaim.StatusRejected, domainClaim.StatusPending); err == nil {
		t.Fatalf("Rejected -> Pending should fail")
	}
	if err := ValidateStatusTransition("Bogus", domainClaim.StatusApproved); err == nil {
		t.Fatalf("unknown current status should fail")
	}
}
