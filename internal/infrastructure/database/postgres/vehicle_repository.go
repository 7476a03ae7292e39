package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleet-maintenance-manager/internal/domain/vehicle"
	"fleet-maintenance-manager/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *DB
}

func NewVehicleRepository(db *DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

var allowedVehicleSortColumns = map[string]bool{
	"created_at":     true,
	"updated_at":     true,
	"make":           true,
	"model":          true,
	"purchase_date":  true,
	"purchase_price": true,
	"kilometers":     true,
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	v.ID = uuid.New()
	v.CreatedAt = time.Now()
	v.UpdatedAt = time.Now()

	dbModel := toVehicleModel(v)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return vehicle.ErrRegistrationNumberInUse
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	v.ID = dbModel.ID
	v.CreatedAt = dbModel.CreatedAt
	v.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, vehicleID uuid.UUID) (*vehicle.Vehicle, error) {
	var dbModel models.VehicleModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", vehicleID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, vehicle.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return toVehicleEntity(&dbModel), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	v.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("id = ?", v.ID).
		Updates(map[string]interface{}{
			"make":           v.Make,
			"model":          v.Model,
			"purchase_price": v.PurchasePrice,
			"fuel_type":      string(v.FuelType),
			"kilometers":     v.Kilometers,
			"color":          v.Color,
			"owner":          v.Owner,
			"phone":          v.Phone,
			"address":        v.Address,
			"updated_at":     v.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

func (r *VehicleRepository) SetDeletedAt(ctx context.Context, vehicleID uuid.UUID, deletedAt *time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("id = ?", vehicleID).
		Updates(map[string]interface{}{
			"deleted_at": deletedAt,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set vehicle deleted_at: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

func (r *VehicleRepository) HardDelete(ctx context.Context, vehicleID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", vehicleID).
		Delete(&models.VehicleModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return vehicle.ErrVehicleNotFound
	}

	return nil
}

func (r *VehicleRepository) List(ctx context.Context, filter *vehicle.Filter) ([]*vehicle.Vehicle, int64, error) {
	var dbModels []models.VehicleModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.VehicleModel{})

	if !filter.IncludeDeleted {
		db = db.Where("deleted_at IS NULL")
	}
	if filter.FuelType != nil {
		db = db.Where("fuel_type = ?", string(*filter.FuelType))
	}
	if filter.HasInsurance != nil {
		if *filter.HasInsurance {
			db = db.Where("id IN (SELECT vehicle_id FROM insurance_policies)")
		} else {
			db = db.Where("id NOT IN (SELECT vehicle_id FROM insurance_policies)")
		}
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		db = db.Where("make ILIKE ? OR model ILIKE ? OR registration_number ILIKE ? OR owner ILIKE ?",
			search, search, search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	sortBy := "created_at"
	if allowedVehicleSortColumns[filter.SortBy] {
		sortBy = filter.SortBy
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
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

	err := db.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*vehicle.Vehicle, len(dbModels))
	for i := range dbModels {
		vehicles[i] = toVehicleEntity(&dbModels[i])
	}

	return vehicles, total, nil
}

func (r *VehicleRepository) ListAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dbModels []models.VehicleModel
	err := r.db.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*vehicle.Vehicle, len(dbModels))
	for i := range dbModels {
		vehicles[i] = toVehicleEntity(&dbModels[i])
	}

	return vehicles, nil
}

func (r *VehicleRepository) UpdateKilometers(ctx context.Context, vehicleID uuid.UUID, kilometers float64) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("id = ? AND kilometers <= ?", vehicleID, kilometers).
		Updates(map[string]interface{}{
			"kilometers": kilometers,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle kilometers: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the vehicle is missing or the reading moved backwards.
		var count int64
		if err := r.db.DB.WithContext(ctx).
			Model(&models.VehicleModel{}).
			Where("id = ?", vehicleID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check vehicle: %w", err)
		}
		if count == 0 {
			return vehicle.ErrVehicleNotFound
		}
		return vehicle.ErrOdometerRegression
	}

	return nil
}

// Helper functions to convert between domain entities and database models
func toVehicleModel(v *vehicle.Vehicle) *models.VehicleModel {
	return &models.VehicleModel{
		ID:                 v.ID,
		Make:               v.Make,
		Model:              v.Model,
		RegistrationNumber: v.RegistrationNumber,
		PurchaseDate:       v.PurchaseDate,
		PurchasePrice:      v.PurchasePrice,
		FuelType:           string(v.FuelType),
		EngineNumber:       v.EngineNumber,
		ChassisNumber:      v.ChassisNumber,
		Kilometers:         v.Kilometers,
		Color:              v.Color,
		Owner:              v.Owner,
		Phone:              v.Phone,
		Address:            v.Address,
		DeletedAt:          v.DeletedAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func toVehicleEntity(m *models.VehicleModel) *vehicle.Vehicle {
	return &vehicle.Vehicle{
		ID:                 m.ID,
		Make:               m.Make,
		Model:              m.Model,
		RegistrationNumber: m.RegistrationNumber,
		PurchaseDate:       m.PurchaseDate,
		PurchasePrice:      m.PurchasePrice,
		FuelType:           vehicle.FuelType(m.FuelType),
		EngineNumber:       m.EngineNumber,
		ChassisNumber:      m.ChassisNumber,
		Kilometers:         m.Kilometers,
		Color:              m.Color,
		Owner:              m.Owner,
		Phone:              m.Phone,
		Address:            m.Address,
		DeletedAt:          m.DeletedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
