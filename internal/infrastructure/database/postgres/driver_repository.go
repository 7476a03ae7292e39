package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleet-maintenance-manager/internal/domain/driver"
	"fleet-maintenance-manager/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DriverRepository struct {
	db *DB
}

func NewDriverRepository(db *DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, d *driver.Driver) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	if d.Status == "" {
		d.Status = driver.StatusActive
	}

	dbModel := toDriverModel(d)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return driver.ErrLicenseNumberInUse
		}
		return fmt.Errorf("failed to create driver: %w", err)
	}

	d.ID = dbModel.ID
	d.CreatedAt = dbModel.CreatedAt
	d.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, driverID uuid.UUID) (*driver.Driver, error) {
	var dbModel models.DriverModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", driverID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, driver.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	d := toDriverEntity(&dbModel)

	assigned, err := r.AssignedVehicleIDs(ctx, driverID)
	if err != nil {
		return nil, err
	}
	d.AssignedVehicleIDs = assigned

	return d, nil
}

func (r *DriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	d.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.DriverModel{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"name":       d.Name,
			"phone":      d.Phone,
			"address":    d.Address,
			"status":     string(d.Status),
			"updated_at": d.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update driver: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return driver.ErrDriverNotFound
	}

	return nil
}

func (r *DriverRepository) SetDeletedAt(ctx context.Context, driverID uuid.UUID, deletedAt *time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.DriverModel{}).
		Where("id = ?", driverID).
		Updates(map[string]interface{}{
			"deleted_at": deletedAt,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set driver deleted_at: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return driver.ErrDriverNotFound
	}

	return nil
}

func (r *DriverRepository) List(ctx context.Context, filter *driver.Filter) ([]*driver.Driver, int64, error) {
	var dbModels []models.DriverModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.DriverModel{})

	if !filter.IncludeDeleted {
		db = db.Where("deleted_at IS NULL")
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR license_number ILIKE ? OR phone ILIKE ?",
			search, search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count drivers: %w", err)
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

	err := db.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list drivers: %w", err)
	}

	drivers := make([]*driver.Driver, len(dbModels))
	for i := range dbModels {
		d := toDriverEntity(&dbModels[i])
		assigned, err := r.AssignedVehicleIDs(ctx, d.ID)
		if err != nil {
			return nil, 0, err
		}
		d.AssignedVehicleIDs = assigned
		drivers[i] = d
	}

	return drivers, total, nil
}

func (r *DriverRepository) Assign(ctx context.Context, driverID, vehicleID uuid.UUID) error {
	assignment := &models.DriverAssignmentModel{
		ID:        uuid.New(),
		DriverID:  driverID,
		VehicleID: vehicleID,
		CreatedAt: time.Now(),
	}

	if err := r.db.DB.WithContext(ctx).Create(assignment).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return driver.ErrAlreadyAssigned
		}
		return fmt.Errorf("failed to assign vehicle: %w", err)
	}

	return nil
}

func (r *DriverRepository) Unassign(ctx context.Context, driverID, vehicleID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("driver_id = ? AND vehicle_id = ?", driverID, vehicleID).
		Delete(&models.DriverAssignmentModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to unassign vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return driver.ErrAssignmentNotFound
	}

	return nil
}

func (r *DriverRepository) AssignedVehicleIDs(ctx context.Context, driverID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.DB.WithContext(ctx).
		Model(&models.DriverAssignmentModel{}).
		Where("driver_id = ?", driverID).
		Order("created_at ASC").
		Pluck("vehicle_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned vehicles: %w", err)
	}

	return ids, nil
}

// Helper functions to convert between domain entities and database models
func toDriverModel(d *driver.Driver) *models.DriverModel {
	return &models.DriverModel{
		ID:            d.ID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		Phone:         d.Phone,
		Address:       d.Address,
		Status:        string(d.Status),
		DeletedAt:     d.DeletedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDriverEntity(m *models.DriverModel) *driver.Driver {
	return &driver.Driver{
		ID:            m.ID,
		Name:          m.Name,
		LicenseNumber: m.LicenseNumber,
		Phone:         m.Phone,
		Address:       m.Address,
		Status:        driver.DriverStatus(m.Status),
		DeletedAt:     m.DeletedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
