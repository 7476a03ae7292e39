package maintenance

import (
	"context"

	domainMaintenance "fleet-maintenance-manager/internal/domain/maintenance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	"fleet-maintenance-manager/internal/logger"
	appErrors "fleet-maintenance-manager/pkg/errors"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements maintenance-record use cases.
type Service struct {
	recordRepo  domainMaintenance.Repository
	vehicleRepo domainVehicle.Repository
}

func NewService(recordRepo domainMaintenance.Repository, vehicleRepo domainVehicle.Repository) *Service {
	return &Service{
		recordRepo:  recordRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateRecordRequest) (*RecordResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	serviceDate, err := utils.ParseDate(req.ServiceDate)
	if err != nil {
		return nil, appErrors.NewAppError("INVALID_DATE", "Invalid service date", err)
	}

	if req.OdometerReadingAfter < req.OdometerReadingBefore {
		return nil, domainMaintenance.ErrInvalidOdometerPair
	}

	v, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if v.IsDeleted() {
		return nil, domainVehicle.ErrVehicleDeleted
	}

	status := domainMaintenance.StatusScheduled
	if req.Status != "" {
		status = domainMaintenance.RecordStatus(req.Status)
	}

	rec := &domainMaintenance.Record{
		VehicleID:             req.VehicleID,
		ServiceDate:           serviceDate,
		ServiceType:           utils.SanitizeString(req.ServiceType),
		Description:           utils.SanitizeText(req.Description),
		Cost:                  req.Cost,
		OdometerReadingBefore: req.OdometerReadingBefore,
		OdometerReadingAfter:  req.OdometerReadingAfter,
		Status:                status,
	}

	if err := s.recordRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	logger.Info("Maintenance record created",
		zap.String("record_id", rec.ID.String()),
		zap.String("vehicle_id", rec.VehicleID.String()),
		zap.String("service_type", rec.ServiceType),
		zap.String("event", "maintenance_record_created"),
	)

	return ToRecordResponse(rec), nil
}

func (s *Service) Get(ctx context.Context, recordID uuid.UUID) (*RecordResponse, error) {
	rec, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	return ToRecordResponse(rec), nil
}

func (s *Service) List(ctx context.Context, filter *RecordFilterRequest) (*RecordListResponse, error) {
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

	domainFilter := &domainMaintenance.Filter{
		VehicleID:   filter.VehicleID,
		ServiceType: filter.ServiceType,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
	}
	if filter.Status != "" {
		status := domainMaintenance.RecordStatus(filter.Status)
		domainFilter.Status = &status
	}

	records, total, err := s.recordRepo.List(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]RecordResponse, len(records))
	for i, rec := range records {
		responses[i] = *ToRecordResponse(rec)
	}

	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	return &RecordListResponse{
		Records:    responses,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) ListByVehicle(ctx context.Context, vehicleID uuid.UUID, page, pageSize int) (*RecordListResponse, error) {
	return s.List(ctx, &RecordFilterRequest{
		VehicleID: &vehicleID,
		Page:      page,
		PageSize:  pageSize,
	})
}

func (s *Service) Update(ctx context.Context, recordID uuid.UUID, req *UpdateRecordRequest) (*RecordResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	serviceDate, err := utils.ParseDate(req.ServiceDate)
	if err != nil {
		return nil, appErrors.NewAppError("INVALID_DATE", "Invalid service date", err)
	}

	if req.OdometerReadingAfter < req.OdometerReadingBefore {
		return nil, domainMaintenance.ErrInvalidOdometerPair
	}

	rec, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	rec.ServiceDate = serviceDate
	rec.ServiceType = utils.SanitizeString(req.ServiceType)
	rec.Description = utils.SanitizeText(req.Description)
	rec.Cost = req.Cost
	rec.OdometerReadingBefore = req.OdometerReadingBefore
	rec.OdometerReadingAfter = req.OdometerReadingAfter
	rec.Status = domainMaintenance.RecordStatus(req.Status)

	if err := s.recordRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	logger.Info("Maintenance record updated",
		zap.String("record_id", rec.ID.String()),
		zap.String("event", "maintenance_record_updated"),
	)

	return ToRecordResponse(rec), nil
}

func (s *Service) Delete(ctx context.Context, recordID uuid.UUID) error {
	if err := s.recordRepo.Delete(ctx, recordID); err != nil {
		return err
	}

	logger.Info("Maintenance record deleted",
		zap.String("record_id", recordID.String()),
		zap.String("event", "maintenance_record_deleted"),
	)
	return nil
}
