package driver

import (
	"context"
	"time"

	domainDriver "fleet-maintenance-manager/internal/domain/driver"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	"fleet-maintenance-manager/internal/logger"
	appErrors "fleet-maintenance-manager/pkg/errors"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements driver use cases, including vehicle assignment.
type Service struct {
	driverRepo  domainDriver.Repository
	vehicleRepo domainVehicle.Repository
	now         func() time.Time
}

func NewService(driverRepo domainDriver.Repository, vehicleRepo domainVehicle.Repository) *Service {
	return &Service{
		driverRepo:  driverRepo,
		vehicleRepo: vehicleRepo,
		now:         time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateDriverRequest) (*DriverResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	d := &domainDriver.Driver{
		Name:          utils.SanitizeString(req.Name),
		LicenseNumber: utils.SanitizeString(req.LicenseNumber),
		Phone:         utils.SanitizePhone(req.Phone),
		Address:       utils.SanitizeText(req.Address),
		Status:        domainDriver.StatusActive,
	}

	if err := s.driverRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Driver created",
		zap.String("driver_id", d.ID.String()),
		zap.String("license_number", d.LicenseNumber),
		zap.String("event", "driver_created"),
	)

	return ToDriverResponse(d), nil
}

// Get returns the driver with orphaned vehicle assignments filtered out.
// Assignments carry no referential integrity, so ids pointing at vehicles
// that no longer exist (or were soft-deleted) are dropped at read time.
func (s *Service) Get(ctx context.Context, driverID uuid.UUID) (*DriverResponse, error) {
	d, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	d.AssignedVehicleIDs, err = s.resolvedAssignments(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	return ToDriverResponse(d), nil
}

func (s *Service) List(ctx context.Context, filter *DriverFilterRequest) (*DriverListResponse, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid query parameters", err)
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	domainFilter := &domainDriver.Filter{
		IncludeDeleted: filter.IncludeDeleted,
		Search:         filter.Search,
		Page:           filter.Page,
		PageSize:       filter.PageSize,
	}
	if filter.Status != "" {
		status := domainDriver.DriverStatus(filter.Status)
		domainFilter.Status = &status
	}

	drivers, total, err := s.driverRepo.List(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		d.AssignedVehicleIDs, err = s.resolvedAssignments(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		responses[i] = *ToDriverResponse(d)
	}

	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	return &DriverListResponse{
		Drivers:    responses,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) Update(ctx context.Context, driverID uuid.UUID, req *UpdateDriverRequest) (*DriverResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	d, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	d.Name = utils.SanitizeString(req.Name)
	d.Phone = utils.SanitizePhone(req.Phone)
	d.Address = utils.SanitizeText(req.Address)
	d.Status = domainDriver.DriverStatus(req.Status)

	if err := s.driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Driver updated",
		zap.String("driver_id", d.ID.String()),
		zap.String("event", "driver_updated"),
	)

	return ToDriverResponse(d), nil
}

func (s *Service) SoftDelete(ctx context.Context, driverID uuid.UUID) error {
	now := s.now()
	if err := s.driverRepo.SetDeletedAt(ctx, driverID, &now); err != nil {
		return err
	}

	logger.Info("Driver soft-deleted",
		zap.String("driver_id", driverID.String()),
		zap.String("event", "driver_soft_deleted"),
	)
	return nil
}

func (s *Service) Restore(ctx context.Context, driverID uuid.UUID) (*DriverResponse, error) {
	if err := s.driverRepo.SetDeletedAt(ctx, driverID, nil); err != nil {
		return nil, err
	}
	return s.Get(ctx, driverID)
}

// AssignVehicle links a vehicle to a driver. The driver must be active and
// the vehicle must exist and not be soft-deleted.
func (s *Service) AssignVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) (*DriverResponse, error) {
	d, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if d.Status != domainDriver.StatusActive {
		return nil, domainDriver.ErrDriverInactive
	}

	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v.IsDeleted() {
		return nil, domainVehicle.ErrVehicleDeleted
	}

	if err := s.driverRepo.Assign(ctx, driverID, vehicleID); err != nil {
		return nil, err
	}

	logger.Info("Vehicle assigned to driver",
		zap.String("driver_id", driverID.String()),
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("event", "vehicle_assigned"),
	)

	return s.Get(ctx, driverID)
}

func (s *Service) UnassignVehicle(ctx context.Context, driverID, vehicleID uuid.UUID) (*DriverResponse, error) {
	if _, err := s.driverRepo.GetByID(ctx, driverID); err != nil {
		return nil, err
	}

	if err := s.driverRepo.Unassign(ctx, driverID, vehicleID); err != nil {
		return nil, err
	}

	logger.Info("Vehicle unassigned from driver",
		zap.String("driver_id", driverID.String()),
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("event", "vehicle_unassigned"),
	)

	return s.Get(ctx, driverID)
}

// resolvedAssignments drops assignment ids whose vehicle no longer resolves.
func (s *Service) resolvedAssignments(ctx context.Context, driverID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.driverRepo.AssignedVehicleIDs(ctx, driverID)
	if err != nil {
		return nil, err
	}

	resolved := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		v, err := s.vehicleRepo.GetByID(ctx, id)
		if err == domainVehicle.ErrVehicleNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		if v.IsDeleted() {
			continue
		}
		resolved = append(resolved, id)
	}
	return resolved, nil
}
