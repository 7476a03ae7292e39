package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-maintenance-manager/internal/domain/claim"
	"fleet-maintenance-manager/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClaimRepository struct {
	db *DB
}

func NewClaimRepository(db *DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) Create(ctx context.Context, c *claim.Claim) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	if c.Status == "" {
		c.Status = claim.StatusPending
	}

	dbModel := toClaimModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create claim: %w", err)
	}

	c.ID = dbModel.ID
	c.CreatedAt = dbModel.CreatedAt
	c.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ClaimRepository) GetByID(ctx context.Context, claimID uuid.UUID) (*claim.Claim, error) {
	var dbModel models.ClaimModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", claimID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, claim.ErrClaimNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	return toClaimEntity(&dbModel), nil
}

func (r *ClaimRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*claim.Claim, error) {
	var dbModels []models.ClaimModel
	err := r.db.DB.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	claims := make([]*claim.Claim, len(dbModels))
	for i := range dbModels {
		claims[i] = toClaimEntity(&dbModels[i])
	}

	return claims, nil
}

func (r *ClaimRepository) List(ctx context.Context, filter *claim.Filter) ([]*claim.Claim, int64, error) {
	var dbModels []models.ClaimModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.ClaimModel{})

	if filter.VehicleID != nil {
		db = db.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
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
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}

	claims := make([]*claim.Claim, len(dbModels))
	for i := range dbModels {
		claims[i] = toClaimEntity(&dbModels[i])
	}

	return claims, total, nil
}

func (r *ClaimRepository) UpdateStatus(ctx context.Context, claimID uuid.UUID, status claim.ClaimStatus) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ClaimModel{}).
		Where("id = ?", claimID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update claim status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return claim.ErrClaimNotFound
	}

	return nil
}

// Helper functions to convert between domain entities and database models
func toClaimModel(c *claim.Claim) *models.ClaimModel {
	return &models.ClaimModel{
		ID:          c.ID,
		VehicleID:   c.VehicleID,
		ClaimDate:   c.ClaimDate,
		ClaimAmount: c.ClaimAmount,
		Reason:      c.Reason,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toClaimEntity(m *models.ClaimModel) *claim.Claim {
	return &claim.Claim{
		ID:          m.ID,
		VehicleID:   m.VehicleID,
		ClaimDate:   m.ClaimDate,
		ClaimAmount: m.ClaimAmount,
		Reason:      m.Reason,
		Status:      claim.ClaimStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
