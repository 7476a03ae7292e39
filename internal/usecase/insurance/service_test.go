package insurance

import (
	"context"
	"strings"
	"testing"
	"time"

	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"

	"github.com/google/uuid"
)

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*domainVehicle.Vehicle
}

func newFakeVehicleRepo(vehicles ...*domainVehicle.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*domainVehicle.Vehicle)}
	for _, v := range vehicles {
		r.vehicles[v.ID] = v
	}
	return r
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *domainVehicle.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *fakeVehicleRepo) GetByID(_ context.Context, id uuid.UUID) (*domainVehicle.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domainVehicle.ErrVehicleNotFound
	}
	return v, nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, v *domainVehicle.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *fakeVehicleRepo) SetDeletedAt(_ context.Context, id uuid.UUID, deletedAt *time.Time) error {
	v, ok := r.vehicles[id]
	if !ok {
		return domainVehicle.ErrVehicleNotFound
	}
	v.DeletedAt = deletedAt
	return nil
}

func (r *fakeVehicleRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	delete(r.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) List(_ context.Context, _ *domainVehicle.Filter) ([]*domainVehicle.Vehicle, int64, error) {
	all, _ := r.ListAll(context.Background())
	return all, int64(len(all)), nil
}

func (r *fakeVehicleRepo) ListAll(_ context.Context) ([]*domainVehicle.Vehicle, error) {
	out := make([]*domainVehicle.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) UpdateKilometers(_ context.Context, id uuid.UUID, km float64) error {
	v, ok := r.vehicles[id]
	if !ok {
		return domainVehicle.ErrVehicleNotFound
	}
	if km < v.Kilometers {
		return domainVehicle.ErrOdometerRegression
	}
	v.Kilometers = km
	return nil
}

type fakePolicyRepo struct {
	policies map[uuid.UUID]*domainInsurance.Policy // keyed by vehicle ID
	history  []*domainInsurance.HistoryRow

	expireCalls    int
	supersedeCalls int
}

func newFakePolicyRepo(policies ...*domainInsurance.Policy) *fakePolicyRepo {
	r := &fakePolicyRepo{policies: make(map[uuid.UUID]*domainInsurance.Policy)}
	for _, p := range policies {
		r.policies[p.VehicleID] = p
	}
	return r
}

func (r *fakePolicyRepo) Create(_ context.Context, p *domainInsurance.Policy) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.policies[p.VehicleID] = p
	return nil
}

func (r *fakePolicyRepo) GetByVehicleID(_ context.Context, vehicleID uuid.UUID) (*domainInsurance.Policy, error) {
	p, ok := r.policies[vehicleID]
	if !ok {
		return nil, domainInsurance.ErrPolicyNotFound
	}
	return p, nil
}

func (r *fakePolicyRepo) ListActive(_ context.Context) ([]*domainInsurance.Policy, error) {
	out := make([]*domainInsurance.Policy, 0, len(r.policies))
	for _, p := range r.policies {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePolicyRepo) DeleteByVehicleID(_ context.Context, vehicleID uuid.UUID) error {
	if _, ok := r.policies[vehicleID]; !ok {
		return domainInsurance.ErrPolicyNotFound
	}
	delete(r.policies, vehicleID)
	return nil
}

func (r *fakePolicyRepo) Supersede(_ context.Context, old *domainInsurance.Policy, row *domainInsurance.HistoryRow, next *domainInsurance.Policy) error {
	r.supersedeCalls++
	if _, ok := r.policies[old.VehicleID]; !ok {
		return domainInsurance.ErrPolicyNotFound
	}
	r.history = append(r.history, row)
	if next.ID == uuid.Nil {
		next.ID = uuid.New()
	}
	r.policies[next.VehicleID] = next
	return nil
}

func (r *fakePolicyRepo) Expire(_ context.Context, p *domainInsurance.Policy, row *domainInsurance.HistoryRow) error {
	r.expireCalls++
	if _, ok := r.policies[p.VehicleID]; !ok {
		return domainInsurance.ErrPolicyNotFound
	}
	delete(r.policies, p.VehicleID)
	r.history = append(r.history, row)
	return nil
}

func (r *fakePolicyRepo) AppendHistory(_ context.Context, row *domainInsurance.HistoryRow) error {
	r.history = append(r.history, row)
	return nil
}

func (r *fakePolicyRepo) ListHistory(_ context.Context, vehicleID *uuid.UUID) ([]*domainInsurance.HistoryRow, error) {
	out := make([]*domainInsurance.HistoryRow, 0, len(r.history))
	for _, row := range r.history {
		if vehicleID != nil && row.VehicleID != *vehicleID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func testVehicle() *domainVehicle.Vehicle {
	return &domainVehicle.Vehicle{
		ID:                 uuid.New(),
		Make:               "Toyota",
		Model:              "Innova",
		RegistrationNumber: "KA01AB1234",
		FuelType:           domainVehicle.FuelDiesel,
	}
}

func testPolicy(vehicleID uuid.UUID, endDate time.Time) *domainInsurance.Policy {
	return &domainInsurance.Policy{
		ID:            uuid.New(),
		VehicleID:     vehicleID,
		PolicyNumber:  "POL-12345",
		Insurer:       "Acme Insurance",
		PolicyType:    "Comprehensive",
		StartDate:     endDate.AddDate(-1, 0, 0),
		EndDate:       endDate,
		IssueDate:     endDate.AddDate(-1, 0, 0),
		PremiumAmount: 12000,
		PaymentMode:   "Annual",
		CreatedAt:     endDate.AddDate(-1, 0, 0),
	}
}

func newTestService(vehicleRepo *fakeVehicleRepo, policyRepo *fakePolicyRepo, today time.Time) *Service {
	svc := NewService(policyRepo, vehicleRepo, 30)
	svc.now = func() time.Time { return today }
	return svc
}

func TestReconcileExpiredMovesPolicyToHistory(t *testing.T) {
	today := date(2026, 8, 15)

	insured := testVehicle()
	uninsured := testVehicle()
	expired := testPolicy(insured.ID, date(2026, 8, 14))

	vehicleRepo := newFakeVehicleRepo(insured, uninsured)
	policyRepo := newFakePolicyRepo(expired)
	svc := newTestService(vehicleRepo, policyRepo, today)

	result, err := svc.ReconcileExpired(context.Background())
	if err != nil {
		t.Fatalf("ReconcileExpired: %v", err)
	}

	if result.ExpiredCount != 1 {
		t.Fatalf("expired count = %d, want 1", result.ExpiredCount)
	}
	if result.FailedCount != 0 {
		t.Fatalf("failed count = %d, want 0", result.FailedCount)
	}
	if len(result.UpdatedVehicles) != 2 {
		t.Fatalf("updated vehicles = %d, want all 2", len(result.UpdatedVehicles))
	}

	if _, err := policyRepo.GetByVehicleID(context.Background(), insured.ID); err != domainInsurance.ErrPolicyNotFound {
		t.Fatalf("active policy should be cleared, got err %v", err)
	}

	if len(policyRepo.history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(policyRepo.history))
	}
	row := policyRepo.history[0]
	if !strings.HasPrefix(row.Reference, insured.ID.String()+"-expired-") {
		t.Fatalf("history reference %q lacks expired prefix", row.Reference)
	}
	if !row.EndDate.Equal(expired.EndDate) {
		t.Fatalf("history end date %v, want original %v", row.EndDate, expired.EndDate)
	}
	if row.Status != domainInsurance.StatusExpired {
		t.Fatalf("history status %s, want expired", row.Status)
	}
	if row.RegistrationNumber != insured.RegistrationNumber {
		t.Fatalf("history registration %q, want %q", row.RegistrationNumber, insured.RegistrationNumber)
	}
}

func TestReconcileExpiredIsIdempotent(t *testing.T) {
	today := date(2026, 8, 15)

	v := testVehicle()
	vehicleRepo := newFakeVehicleRepo(v)
	policyRepo := newFakePolicyRepo(testPolicy(v.ID, date(2026, 8, 1)))
	svc := newTestService(vehicleRepo, policyRepo, today)

	if _, err := svc.ReconcileExpired(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	callsAfterFirst := policyRepo.expireCalls

	result, err := svc.ReconcileExpired(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if policyRepo.expireCalls != callsAfterFirst {
		t.Fatalf("second run issued %d extra expire calls", policyRepo.expireCalls-callsAfterFirst)
	}
	if result.ExpiredCount != 0 {
		t.Fatalf("second run expired count = %d, want 0", result.ExpiredCount)
	}
	if len(policyRepo.history) != 1 {
		t.Fatalf("history rows after second run = %d, want 1", len(policyRepo.history))
	}
}

func TestReconcileLeavesValidPoliciesAlone(t *testing.T) {
	today := date(2026, 8, 15)

	v := testVehicle()
	vehicleRepo := newFakeVehicleRepo(v)
	policyRepo := newFakePolicyRepo(testPolicy(v.ID, date(2027, 8, 15)))
	svc := newTestService(vehicleRepo, policyRepo, today)

	result, err := svc.ReconcileExpired(context.Background())
	if err != nil {
		t.Fatalf("ReconcileExpired: %v", err)
	}
	if result.ExpiredCount != 0 || len(policyRepo.history) != 0 {
		t.Fatalf("valid policy was touched: expired=%d history=%d", result.ExpiredCount, len(policyRepo.history))
	}
	if len(result.UpdatedVehicles) != 1 {
		t.Fatalf("updated vehicles = %d, want 1", len(result.UpdatedVehicles))
	}
	if result.UpdatedVehicles[0].Insurance == nil {
		t.Fatalf("valid policy missing from reconcile output")
	}
}

func TestSetPolicySupersedesExisting(t *testing.T) {
	today := date(2026, 8, 15)

	v := testVehicle()
	vehicleRepo := newFakeVehicleRepo(v)
	policyRepo := newFakePolicyRepo(testPolicy(v.ID, date(2026, 12, 31)))
	svc := newTestService(vehicleRepo, policyRepo, today)

	resp, err := svc.SetPolicy(context.Background(), v.ID, &SetPolicyRequest{
		PolicyNumber:  "POL-99999",
		Insurer:       "New Insurer",
		PolicyType:    "Third Party",
		StartDate:     "2026-08-15",
		EndDate:       "2027-08-15",
		IssueDate:     "2026-08-10",
		PremiumAmount: 9000,
		PaymentMode:   "Annual",
	})
	if err != nil {
		t.Fatalf("SetPolicy: %v", err)
	}

	if policyRepo.supersedeCalls != 1 {
		t.Fatalf("supersede calls = %d, want 1", policyRepo.supersedeCalls)
	}
	if len(policyRepo.history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(policyRepo.history))
	}
	if !strings.Contains(policyRepo.history[0].Reference, "-superseded-") {
		t.Fatalf("history reference %q lacks superseded marker", policyRepo.history[0].Reference)
	}
	if resp.PolicyNumber != "POL-99999" {
		t.Fatalf("response policy number %q", resp.PolicyNumber)
	}
	if resp.Status != domainInsurance.StatusValid {
		t.Fatalf("new policy status %s, want valid", resp.Status)
	}
}

func TestSetPolicyRejectsBadDateOrder(t *testing.T) {
	v := testVehicle()
	svc := newTestService(newFakeVehicleRepo(v), newFakePolicyRepo(), date(2026, 8, 15))

	_, err := svc.SetPolicy(context.Background(), v.ID, &SetPolicyRequest{
		PolicyNumber:  "POL-11111",
		Insurer:       "Acme",
		PolicyType:    "Comprehensive",
		StartDate:     "2027-08-15",
		EndDate:       "2026-08-15",
		IssueDate:     "2026-08-10",
		PremiumAmount: 9000,
		PaymentMode:   "Annual",
	})
	if err == nil {
		t.Fatalf("expected date-order rejection")
	}
}

func TestGetPolicyWithoutInsurance(t *testing.T) {
	v := testVehicle()
	svc := newTestService(newFakeVehicleRepo(v), newFakePolicyRepo(), date(2026, 8, 15))

	resp, err := svc.GetPolicy(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("GetPolicy: %v", err)
	}
	if resp.HasInsurance {
		t.Fatalf("expected has_insurance=false")
	}
	if resp.Status != domainInsurance.StatusUnknown {
		t.Fatalf("status %s, want unknown", resp.Status)
	}
}

func TestHistoryMergesActiveAndPersistedRows(t *testing.T) {
	today := date(2026, 8, 15)

	v := testVehicle()
	active := testPolicy(v.ID, date(2027, 8, 15))
	active.CreatedAt = date(2026, 8, 1)

	vehicleRepo := newFakeVehicleRepo(v)
	policyRepo := newFakePolicyRepo(active)
	policyRepo.history = append(policyRepo.history, &domainInsurance.HistoryRow{
		ID:                 uuid.New(),
		Reference:          v.ID.String() + "-expired-1700000000",
		VehicleID:          v.ID,
		RegistrationNumber: v.RegistrationNumber,
		Make:               v.Make,
		Model:              v.Model,
		PolicyNumber:       "POL-OLD",
		EndDate:            date(2025, 8, 1),
		Status:             domainInsurance.StatusExpired,
		CreatedAt:          date(2025, 8, 2),
	})

	svc := newTestService(vehicleRepo, policyRepo, today)

	rows, err := svc.History(context.Background(), &v.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("history rows = %d, want 2", len(rows))
	}

	// Newest first: the active policy projection precedes the persisted row.
	if rows[0].PolicyNumber != active.PolicyNumber {
		t.Fatalf("first row policy %q, want active %q", rows[0].PolicyNumber, active.PolicyNumber)
	}
	if rows[0].Status != domainInsurance.StatusValid {
		t.Fatalf("active projection status %s, want valid", rows[0].Status)
	}
	if rows[1].PolicyNumber != "POL-OLD" {
		t.Fatalf("second row policy %q, want POL-OLD", rows[1].PolicyNumber)
	}
}

func TestRemovePolicyWritesHistory(t *testing.T) {
	v := testVehicle()
	policyRepo := newFakePolicyRepo(testPolicy(v.ID, date(2027, 1, 1)))
	svc := newTestService(newFakeVehicleRepo(v), policyRepo, date(2026, 8, 15))

	if err := svc.RemovePolicy(context.Background(), v.ID); err != nil {
		t.Fatalf("RemovePolicy: %v", err)
	}
	if len(policyRepo.history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(policyRepo.history))
	}
	if !strings.Contains(policyRepo.history[0].Reference, "-removed-") {
		t.Fatalf("history reference %q lacks removed marker", policyRepo.history[0].Reference)
	}
	if _, err := policyRepo.GetByVehicleID(context.Background(), v.ID); err != domainInsurance.ErrPolicyNotFound {
		t.Fatalf("policy should be gone, got %v", err)
	}
}
