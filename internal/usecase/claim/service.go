package claim

import (
	"context"

	domainClaim "fleet-maintenance-manager/internal/domain/claim"
	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	"fleet-maintenance-manager/internal/logger"
	appErrors "fleet-maintenance-manager/pkg/errors"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements claim use cases.
type Service struct {
	claimRepo   domainClaim.Repository
	vehicleRepo domainVehicle.Repository
	policyRepo  domainInsurance.Repository
}

func NewService(claimRepo domainClaim.Repository, vehicleRepo domainVehicle.Repository, policyRepo domainInsurance.Repository) *Service {
	return &Service{
		claimRepo:   claimRepo,
		vehicleRepo: vehicleRepo,
		policyRepo:  policyRepo,
	}
}

// File records a claim against a vehicle's active policy. A vehicle without
// an active policy gets a user-facing rejection and no claim row is created.
func (s *Service) File(ctx context.Context, req *FileClaimRequest) (*ClaimResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	claimDate, err := utils.ParseDate(req.ClaimDate)
	if err != nil {
		return nil, appErrors.NewAppError("INVALID_DATE", "Invalid claim date", err)
	}

	v, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if v.IsDeleted() {
		return nil, domainVehicle.ErrVehicleDeleted
	}

	if _, err := s.policyRepo.GetByVehicleID(ctx, req.VehicleID); err != nil {
		if err == domainInsurance.ErrPolicyNotFound {
			return nil, appErrors.NewAppError(
				"INSURANCE_REQUIRED",
				"Insurance is required to file a claim for this vehicle",
				domainClaim.ErrInsuranceRequired,
			)
		}
		return nil, err
	}

	c := &domainClaim.Claim{
		VehicleID:   req.VehicleID,
		ClaimDate:   claimDate,
		ClaimAmount: req.ClaimAmount,
		Reason:      utils.SanitizeText(req.Reason),
		Status:      domainClaim.StatusPending,
	}

	if err := s.claimRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Claim filed",
		zap.String("claim_id", c.ID.String()),
		zap.String("vehicle_id", c.VehicleID.String()),
		zap.Float64("claim_amount", c.ClaimAmount),
		zap.String("event", "claim_filed"),
	)

	return ToClaimResponse(c), nil
}

func (s *Service) Get(ctx context.Context, claimID uuid.UUID) (*ClaimResponse, error) {
	c, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	return ToClaimResponse(c), nil
}

func (s *Service) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) (*ClaimListResponse, error) {
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	claims, err := s.claimRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	responses := make([]ClaimResponse, len(claims))
	for i, c := range claims {
		responses[i] = *ToClaimResponse(c)
	}

	return &ClaimListResponse{
		Claims: responses,
		Total:  int64(len(responses)),
	}, nil
}

// UpdateStatus moves a claim through Pending -> Approved|Rejected.
func (s *Service) UpdateStatus(ctx context.Context, claimID uuid.UUID, req *UpdateClaimStatusRequest) (*ClaimResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	c, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	newStatus := domainClaim.ClaimStatus(req.Status)
	if err := ValidateStatusTransition(c.Status, newStatus); err != nil {
		return nil, err
	}

	if err := s.claimRepo.UpdateStatus(ctx, claimID, newStatus); err != nil {
		return nil, err
	}

	c.Status = newStatus

	logger.Info("Claim status updated",
		zap.String("claim_id", claimID.String()),
		zap.String("status", string(newStatus)),
		zap.String("event", "claim_status_updated"),
	)

	return ToClaimResponse(c), nil
}
