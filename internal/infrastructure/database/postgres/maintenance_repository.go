package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-maintenance-manager/internal/domain/maintenance"
	"fleet-maintenance-manager/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *DB
}

func NewMaintenanceRepository(db *DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, rec *maintenance.Record) error {
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = time.Now()
	if rec.Status == "" {
		rec.Status = maintenance.StatusScheduled
	}

	dbModel := toMaintenanceModel(rec)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}

	rec.ID = dbModel.ID
	rec.CreatedAt = dbModel.CreatedAt
	rec.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, recordID uuid.UUID) (*maintenance.Record, error) {
	var dbModel models.MaintenanceRecordModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", recordID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, maintenance.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance record: %w", err)
	}

	return toMaintenanceEntity(&dbModel), nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, rec *maintenance.Record) error {
	rec.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.MaintenanceRecordModel{}).
		Where("id = ?", rec.ID).
		Updates(map[string]interface{}{
			"service_date":            rec.ServiceDate,
			"service_type":            rec.ServiceType,
			"description":             rec.Description,
			"cost":                    rec.Cost,
			"odometer_reading_before": rec.OdometerReadingBefore,
			"odometer_reading_after":  rec.OdometerReadingAfter,
			"status":                  string(rec.Status),
			"updated_at":              rec.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update maintenance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return maintenance.ErrRecordNotFound
	}

	return nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", recordID).
		Delete(&models.MaintenanceRecordModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete maintenance record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return maintenance.ErrRecordNotFound
	}

	return nil
}

func (r *MaintenanceRepository) List(ctx context.Context, filter *maintenance.Filter) ([]*maintenance.Record, int64, error) {
	var dbModels []models.MaintenanceRecordModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.MaintenanceRecordModel{})

	if filter.VehicleID != nil {
		db = db.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.ServiceType != "" {
		db = db.Where("service_type ILIKE ?", "%"+filter.ServiceType+"%")
	}
	if filter.ServiceAfter != nil {
		db = db.Where("service_date >= ?", filter.ServiceAfter)
	}
	if filter.ServiceBefore != nil {
		db = db.Where("service_date <= ?", filter.ServiceBefore)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count maintenance records: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	err := db.Order("service_date DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	records := make([]*maintenance.Record, len(dbModels))
	for i := range dbModels {
		records[i] = toMaintenanceEntity(&dbModels[i])
	}

	return records, total, nil
}

// Helper functions to convert between domain entities and database models
func toMaintenanceModel(rec *maintenance.Record) *models.MaintenanceRecordModel {
	return &models.MaintenanceRecordModel{
		ID:                    rec.ID,
		VehicleID:             rec.VehicleID,
		ServiceDate:           rec.ServiceDate,
		ServiceType:           rec.ServiceType,
		Description:           rec.Description,
		Cost:                  rec.Cost,
		OdometerReadingBefore: rec.OdometerReadingBefore,
		OdometerReadingAfter:  rec.OdometerReadingAfter,
		Status:                string(rec.Status),
		CreatedAt:             rec.CreatedAt,
		UpdatedAt:             rec.UpdatedAt,
	}
}

func toMaintenanceEntity(m *models.MaintenanceRecordModel) *maintenance.Record {
	return &maintenance.Record{
		ID:                    m.ID,
		VehicleID:             m.VehicleID,
		ServiceDate:           m.ServiceDate,
		ServiceType:           m.ServiceType,
		Description:           m.Description,
		Cost:                  m.Cost,
		OdometerReadingBefore: m.OdometerReadingBefore,
		OdometerReadingAfter:  m.OdometerReadingAfter,
		Status:                maintenance.RecordStatus(m.Status),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
