package insurance

import (
	"context"
	"fmt"
	"sort"
	"time"

	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	"fleet-maintenance-manager/internal/logger"
	appErrors "fleet-maintenance-manager/pkg/errors"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements insurance use cases: policy management, expiry
// reconciliation, and the history view.
type Service struct {
	policyRepo  domainInsurance.Repository
	vehicleRepo domainVehicle.Repository

	windowDays int
	now        func() time.Time
}

func NewService(policyRepo domainInsurance.Repository, vehicleRepo domainVehicle.Repository, windowDays int) *Service {
	return &Service{
		policyRepo:  policyRepo,
		vehicleRepo: vehicleRepo,
		windowDays:  windowDays,
		now:         time.Now,
	}
}

// SetPolicy creates or overwrites the active policy of a vehicle. An
// existing policy is snapshotted into the history table before being
// replaced, so no policy ever vanishes without a trace.
func (s *Service) SetPolicy(ctx context.Context, vehicleID uuid.UUID, req *SetPolicyRequest) (*PolicyResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, appErrors.NewAppError("INVALID_DATE", "Invalid start date", err)
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, appErrors.NewAppError("INVALID_DATE", "Invalid end date", err)
	}
	issueDate, err := utils.ParseDate(req.IssueDate)
	if err != nil {
		return nil, appErrors.NewAppError("INVALID_DATE", "Invalid issue date", err)
	}

	if err := ValidateDateOrder(startDate, endDate, issueDate); err != nil {
		return nil, err
	}

	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v.IsDeleted() {
		return nil, domainVehicle.ErrVehicleDeleted
	}

	next := &domainInsurance.Policy{
		VehicleID:     vehicleID,
		PolicyNumber:  req.PolicyNumber,
		Insurer:       utils.SanitizeString(req.Insurer),
		PolicyType:    utils.SanitizeString(req.PolicyType),
		StartDate:     startDate,
		EndDate:       endDate,
		IssueDate:     issueDate,
		PremiumAmount: req.PremiumAmount,
		PaymentMode:   utils.SanitizeString(req.PaymentMode),
	}

	existing, err := s.policyRepo.GetByVehicleID(ctx, vehicleID)
	switch {
	case err == nil:
		row := s.buildHistoryRow(v, existing, "superseded")
		if err := s.policyRepo.Supersede(ctx, existing, row, next); err != nil {
			return nil, err
		}
	case err == domainInsurance.ErrPolicyNotFound:
		if err := s.policyRepo.Create(ctx, next); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	logger.Info("Insurance policy set",
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("policy_number", next.PolicyNumber),
		zap.String("event", "insurance_policy_set"),
	)

	return toPolicyResponse(next, s.now(), s.windowDays), nil
}

// GetPolicy returns the active policy of a vehicle with its classified
// status. Vehicles with no policy get a bare has_insurance=false response.
func (s *Service) GetPolicy(ctx context.Context, vehicleID uuid.UUID) (*PolicyResponse, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	p, err := s.policyRepo.GetByVehicleID(ctx, vehicleID)
	if err == domainInsurance.ErrPolicyNotFound {
		return &PolicyResponse{
			VehicleID:    vehicleID,
			Status:       domainInsurance.StatusUnknown,
			HasInsurance: false,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return toPolicyResponse(p, s.now(), s.windowDays), nil
}

// RemovePolicy deletes the active policy of a vehicle after snapshotting it
// into history.
func (s *Service) RemovePolicy(ctx context.Context, vehicleID uuid.UUID) error {
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}

	p, err := s.policyRepo.GetByVehicleID(ctx, vehicleID)
	if err != nil {
		return err
	}

	row := s.buildHistoryRow(v, p, "removed")
	if err := s.policyRepo.Expire(ctx, p, row); err != nil {
		return err
	}

	logger.Info("Insurance policy removed",
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("event", "insurance_policy_removed"),
	)

	return nil
}

// ReconcileExpired scans every active vehicle, moves expired policies into
// the history table, and clears them from the active set. Each expired
// vehicle is handled in its own transaction; a failure skips that vehicle
// and reconciliation continues. Running it again with no time passing issues
// no further writes.
func (s *Service) ReconcileExpired(ctx context.Context) (*ReconcileResult, error) {
	vehicles, err := s.vehicleRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	policies, err := s.policyRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active policies: %w", err)
	}

	byVehicle := make(map[uuid.UUID]*domainInsurance.Policy, len(policies))
	for _, p := range policies {
		byVehicle[p.VehicleID] = p
	}

	today := s.now()
	result := &ReconcileResult{
		UpdatedVehicles:  make([]VehicleSummary, 0, len(vehicles)),
		InsuranceHistory: make([]HistoryRowResponse, 0),
	}

	for _, v := range vehicles {
		p, ok := byVehicle[v.ID]
		if !ok {
			result.UpdatedVehicles = append(result.UpdatedVehicles, toVehicleSummary(v, nil))
			continue
		}

		if Classify(p.EndDate, today, s.windowDays) != domainInsurance.StatusExpired {
			result.UpdatedVehicles = append(result.UpdatedVehicles, toVehicleSummary(v, toPolicyResponse(p, today, s.windowDays)))
			continue
		}

		row := s.buildHistoryRow(v, p, "expired")
		if err := s.policyRepo.Expire(ctx, p, row); err != nil {
			logger.Error("Failed to expire insurance policy",
				zap.String("vehicle_id", v.ID.String()),
				zap.String("policy_number", p.PolicyNumber),
				zap.Error(err),
			)
			result.FailedCount++
			result.UpdatedVehicles = append(result.UpdatedVehicles, toVehicleSummary(v, toPolicyResponse(p, today, s.windowDays)))
			continue
		}

		result.ExpiredCount++
		result.InsuranceHistory = append(result.InsuranceHistory, toHistoryRowResponse(row))
		result.UpdatedVehicles = append(result.UpdatedVehicles, toVehicleSummary(v, nil))

		logger.Info("Expired insurance moved to history",
			zap.String("vehicle_id", v.ID.String()),
			zap.String("policy_number", p.PolicyNumber),
			zap.Time("end_date", p.EndDate),
			zap.String("event", "insurance_expired"),
		)
	}

	return result, nil
}

// StartReconcileJob runs ReconcileExpired on a fixed cadence until the
// context is cancelled.
func (s *Service) StartReconcileJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Insurance reconcile job started",
		zap.Duration("interval", interval),
	)

	s.runReconcile(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Insurance reconcile job stopped")
			return
		case <-ticker.C:
			s.runReconcile(ctx)
		}
	}
}

func (s *Service) runReconcile(ctx context.Context) {
	result, err := s.ReconcileExpired(ctx)
	if err != nil {
		logger.Error("Insurance reconciliation failed", zap.Error(err))
		return
	}

	if result.ExpiredCount > 0 || result.FailedCount > 0 {
		logger.Info("Insurance reconciliation finished",
			zap.Int("expired", result.ExpiredCount),
			zap.Int("failed", result.FailedCount),
		)
	}
}

// History returns the uniform insurance-history view: persisted history rows
// merged with the active policies projected into the same row shape, sorted
// newest-first. The sort key is created_at, falling back to issue_date, then
// the current time when both are absent.
func (s *Service) History(ctx context.Context, vehicleID *uuid.UUID) ([]HistoryRowResponse, error) {
	rows, err := s.policyRepo.ListHistory(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance history: %w", err)
	}

	today := s.now()
	out := make([]HistoryRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toHistoryRowResponse(row))
	}

	active, err := s.activePolicies(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	for _, p := range active {
		v, err := s.vehicleRepo.GetByID(ctx, p.VehicleID)
		if err != nil {
			// Policy without a resolvable vehicle does not appear in the view.
			continue
		}
		out = append(out, HistoryRowResponse{
			ID:                 p.ID,
			Reference:          p.PolicyNumber,
			VehicleID:          p.VehicleID,
			RegistrationNumber: v.RegistrationNumber,
			Make:               v.Make,
			Model:              v.Model,
			PolicyNumber:       p.PolicyNumber,
			Insurer:            p.Insurer,
			PolicyType:         p.PolicyType,
			StartDate:          p.StartDate,
			EndDate:            p.EndDate,
			IssueDate:          p.IssueDate,
			PremiumAmount:      p.PremiumAmount,
			PaymentMode:        p.PaymentMode,
			Status:             Classify(p.EndDate, today, s.windowDays),
			CreatedAt:          p.CreatedAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return historySortKey(out[i], today).After(historySortKey(out[j], today))
	})

	return out, nil
}

func (s *Service) activePolicies(ctx context.Context, vehicleID *uuid.UUID) ([]*domainInsurance.Policy, error) {
	if vehicleID == nil {
		return s.policyRepo.ListActive(ctx)
	}

	p, err := s.policyRepo.GetByVehicleID(ctx, *vehicleID)
	if err == domainInsurance.ErrPolicyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []*domainInsurance.Policy{p}, nil
}

func historySortKey(row HistoryRowResponse, now time.Time) time.Time {
	if !row.CreatedAt.IsZero() {
		return row.CreatedAt
	}
	if !row.IssueDate.IsZero() {
		return row.IssueDate
	}
	return now
}

func (s *Service) buildHistoryRow(v *domainVehicle.Vehicle, p *domainInsurance.Policy, cause string) *domainInsurance.HistoryRow {
	now := s.now()
	return &domainInsurance.HistoryRow{
		ID:                 uuid.New(),
		Reference:          fmt.Sprintf("%s-%s-%d", v.ID, cause, now.Unix()),
		VehicleID:          v.ID,
		RegistrationNumber: v.RegistrationNumber,
		Make:               v.Make,
		Model:              v.Model,
		PolicyNumber:       p.PolicyNumber,
		Insurer:            p.Insurer,
		PolicyType:         p.PolicyType,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		IssueDate:          p.IssueDate,
		PremiumAmount:      p.PremiumAmount,
		PaymentMode:        p.PaymentMode,
		Status:             Classify(p.EndDate, now, s.windowDays),
		CreatedAt:          now,
	}
}
