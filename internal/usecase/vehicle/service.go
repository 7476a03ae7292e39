package vehicle

import (
	"context"
	"time"

	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	"fleet-maintenance-manager/internal/logger"
	appErrors "fleet-maintenance-manager/pkg/errors"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements vehicle use cases.
type Service struct {
	vehicleRepo domainVehicle.Repository
	policyRepo  domainInsurance.Repository
	now         func() time.Time
}

func NewService(vehicleRepo domainVehicle.Repository, policyRepo domainInsurance.Repository) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		policyRepo:  policyRepo,
		now:         time.Now,
	}
}

// Register creates a vehicle from a validated registration form.
func (s *Service) Register(ctx context.Context, req *RegisterVehicleRequest) (*VehicleResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	purchaseDate, err := utils.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, appErrors.NewAppError("INVALID_DATE", "Invalid purchase date", err)
	}

	v := &domainVehicle.Vehicle{
		Make:               utils.SanitizeString(req.Make),
		Model:              utils.SanitizeString(req.Model),
		RegistrationNumber: utils.SanitizeString(req.RegistrationNumber),
		PurchaseDate:       purchaseDate,
		PurchasePrice:      req.PurchasePrice,
		FuelType:           domainVehicle.FuelType(req.FuelType),
		EngineNumber:       utils.SanitizeString(req.EngineNumber),
		ChassisNumber:      utils.SanitizeString(req.ChassisNumber),
		Kilometers:         req.Kilometers,
		Color:              utils.SanitizeString(req.Color),
		Owner:              utils.SanitizeString(req.Owner),
		Phone:              utils.SanitizePhone(req.Phone),
		Address:            utils.SanitizeText(req.Address),
	}

	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	logger.Info("Vehicle registered",
		zap.String("vehicle_id", v.ID.String()),
		zap.String("registration_number", v.RegistrationNumber),
		zap.String("event", "vehicle_registered"),
	)

	return ToVehicleResponse(v), nil
}

func (s *Service) Get(ctx context.Context, vehicleID uuid.UUID) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return ToVehicleResponse(v), nil
}

func (s *Service) List(ctx context.Context, filter *VehicleFilterRequest) (*VehicleListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	vehicles, total, err := s.vehicleRepo.List(ctx, ToDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		responses[i] = *ToVehicleResponse(v)
	}

	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	return &VehicleListResponse{
		Vehicles:   responses,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Update replaces the mutable attributes of a vehicle. Registration number,
// purchase date, and the engine/chassis identity are immutable after
// registration.
func (s *Service) Update(ctx context.Context, vehicleID uuid.UUID, req *UpdateVehicleRequest) (*VehicleResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v.IsDeleted() {
		return nil, domainVehicle.ErrVehicleDeleted
	}

	v.Make = utils.SanitizeString(req.Make)
	v.Model = utils.SanitizeString(req.Model)
	v.PurchasePrice = req.PurchasePrice
	v.FuelType = domainVehicle.FuelType(req.FuelType)
	v.Kilometers = req.Kilometers
	v.Color = utils.SanitizeString(req.Color)
	v.Owner = utils.SanitizeString(req.Owner)
	v.Phone = utils.SanitizePhone(req.Phone)
	v.Address = utils.SanitizeText(req.Address)

	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	logger.Info("Vehicle updated",
		zap.String("vehicle_id", v.ID.String()),
		zap.String("event", "vehicle_updated"),
	)

	return ToVehicleResponse(v), nil
}

// SoftDelete marks the vehicle deleted; the record stays restorable.
func (s *Service) SoftDelete(ctx context.Context, vehicleID uuid.UUID) error {
	now := s.now()
	if err := s.vehicleRepo.SetDeletedAt(ctx, vehicleID, &now); err != nil {
		return err
	}

	logger.Info("Vehicle soft-deleted",
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("event", "vehicle_soft_deleted"),
	)
	return nil
}

// Restore clears the soft-delete marker. Restoring an active vehicle is a
// no-op success.
func (s *Service) Restore(ctx context.Context, vehicleID uuid.UUID) (*VehicleResponse, error) {
	if err := s.vehicleRepo.SetDeletedAt(ctx, vehicleID, nil); err != nil {
		return nil, err
	}

	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	logger.Info("Vehicle restored",
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("event", "vehicle_restored"),
	)

	return ToVehicleResponse(v), nil
}

// HardDelete permanently removes the vehicle record. A vehicle with an
// active policy must have its insurance removed first.
func (s *Service) HardDelete(ctx context.Context, vehicleID uuid.UUID) error {
	if _, err := s.policyRepo.GetByVehicleID(ctx, vehicleID); err == nil {
		return domainVehicle.ErrVehicleHasActiveInsurance
	} else if err != domainInsurance.ErrPolicyNotFound {
		return err
	}

	if err := s.vehicleRepo.HardDelete(ctx, vehicleID); err != nil {
		return err
	}

	logger.Info("Vehicle hard-deleted",
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("event", "vehicle_hard_deleted"),
	)
	return nil
}
