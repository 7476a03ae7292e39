package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-maintenance-manager/internal/domain/insurance"
	"fleet-maintenance-manager/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InsuranceRepository struct {
	db *DB
}

func NewInsuranceRepository(db *DB) *InsuranceRepository {
	return &InsuranceRepository{db: db}
}

func (r *InsuranceRepository) Create(ctx context.Context, p *insurance.Policy) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	dbModel := toPolicyModel(p)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create insurance policy: %w", err)
	}

	p.ID = dbModel.ID
	p.CreatedAt = dbModel.CreatedAt
	p.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *InsuranceRepository) GetByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*insurance.Policy, error) {
	var dbModel models.InsurancePolicyModel
	err := r.db.DB.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, insurance.ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get insurance policy: %w", err)
	}

	return toPolicyEntity(&dbModel), nil
}

func (r *InsuranceRepository) ListActive(ctx context.Context) ([]*insurance.Policy, error) {
	var dbModels []models.InsurancePolicyModel
	err := r.db.DB.WithContext(ctx).
		Order("end_date ASC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance policies: %w", err)
	}

	policies := make([]*insurance.Policy, len(dbModels))
	for i := range dbModels {
		policies[i] = toPolicyEntity(&dbModels[i])
	}

	return policies, nil
}

func (r *InsuranceRepository) DeleteByVehicleID(ctx context.Context, vehicleID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Delete(&models.InsurancePolicyModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete insurance policy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return insurance.ErrPolicyNotFound
	}

	return nil
}

// Supersede replaces the active policy of a vehicle inside one transaction so
// readers never observe a vehicle with two policies or a lost history row.
func (r *InsuranceRepository) Supersede(ctx context.Context, old *insurance.Policy, row *insurance.HistoryRow, next *insurance.Policy) error {
	next.ID = uuid.New()
	next.CreatedAt = time.Now()
	next.UpdatedAt = time.Now()
	row.ID = uuid.New()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(toHistoryModel(row)).Error; err != nil {
			return fmt.Errorf("failed to append insurance history: %w", err)
		}

		result := tx.Where("id = ?", old.ID).Delete(&models.InsurancePolicyModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to remove superseded policy: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return insurance.ErrPolicyNotFound
		}

		if err := tx.Create(toPolicyModel(next)).Error; err != nil {
			return fmt.Errorf("failed to create replacement policy: %w", err)
		}

		return nil
	})
}

// Expire removes an expired policy and appends its history snapshot in one
// transaction. A policy already removed by a concurrent run is not an error
// for the caller to retry; the history row was written by whoever won.
func (r *InsuranceRepository) Expire(ctx context.Context, p *insurance.Policy, row *insurance.HistoryRow) error {
	row.ID = uuid.New()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", p.ID).Delete(&models.InsurancePolicyModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to remove expired policy: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return insurance.ErrPolicyNotFound
		}

		if err := tx.Create(toHistoryModel(row)).Error; err != nil {
			return fmt.Errorf("failed to append insurance history: %w", err)
		}

		return nil
	})
}

func (r *InsuranceRepository) AppendHistory(ctx context.Context, row *insurance.HistoryRow) error {
	row.ID = uuid.New()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	if err := r.db.DB.WithContext(ctx).Create(toHistoryModel(row)).Error; err != nil {
		return fmt.Errorf("failed to append insurance history: %w", err)
	}

	return nil
}

func (r *InsuranceRepository) ListHistory(ctx context.Context, vehicleID *uuid.UUID) ([]*insurance.HistoryRow, error) {
	var dbModels []models.InsuranceHistoryModel

	db := r.db.DB.WithContext(ctx).Model(&models.InsuranceHistoryModel{})
	if vehicleID != nil {
		db = db.Where("vehicle_id = ?", *vehicleID)
	}

	err := db.Order("created_at DESC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance history: %w", err)
	}

	rows := make([]*insurance.HistoryRow, len(dbModels))
	for i := range dbModels {
		rows[i] = toHistoryEntity(&dbModels[i])
	}

	return rows, nil
}

// Helper functions to convert between domain entities and database models
func toPolicyModel(p *insurance.Policy) *models.InsurancePolicyModel {
	return &models.InsurancePolicyModel{
		ID:            p.ID,
		VehicleID:     p.VehicleID,
		PolicyNumber:  p.PolicyNumber,
		Insurer:       p.Insurer,
		PolicyType:    p.PolicyType,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		IssueDate:     p.IssueDate,
		PremiumAmount: p.PremiumAmount,
		PaymentMode:   p.PaymentMode,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPolicyEntity(m *models.InsurancePolicyModel) *insurance.Policy {
	return &insurance.Policy{
		ID:            m.ID,
		VehicleID:     m.VehicleID,
		PolicyNumber:  m.PolicyNumber,
		Insurer:       m.Insurer,
		PolicyType:    m.PolicyType,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		IssueDate:     m.IssueDate,
		PremiumAmount: m.PremiumAmount,
		PaymentMode:   m.PaymentMode,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toHistoryModel(row *insurance.HistoryRow) *models.InsuranceHistoryModel {
	return &models.InsuranceHistoryModel{
		ID:                 row.ID,
		Reference:          row.Reference,
		VehicleID:          row.VehicleID,
		RegistrationNumber: row.RegistrationNumber,
		Make:               row.Make,
		Model:              row.Model,
		PolicyNumber:       row.PolicyNumber,
		Insurer:            row.Insurer,
		PolicyType:         row.PolicyType,
		StartDate:          row.StartDate,
		EndDate:            row.EndDate,
		IssueDate:          row.IssueDate,
		PremiumAmount:      row.PremiumAmount,
		PaymentMode:        row.PaymentMode,
		Status:             string(row.Status),
		CreatedAt:          row.CreatedAt,
	}
}

func toHistoryEntity(m *models.InsuranceHistoryModel) *insurance.HistoryRow {
	return &insurance.HistoryRow{
		ID:                 m.ID,
		Reference:          m.Reference,
		VehicleID:          m.VehicleID,
		RegistrationNumber: m.RegistrationNumber,
		Make:               m.Make,
		Model:              m.Model,
		PolicyNumber:       m.PolicyNumber,
		Insurer:            m.Insurer,
		PolicyType:         m.PolicyType,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		IssueDate:          m.IssueDate,
		PremiumAmount:      m.PremiumAmount,
		PaymentMode:        m.PaymentMode,
		Status:             insurance.Status(m.Status),
		CreatedAt:          m.CreatedAt,
	}
}
