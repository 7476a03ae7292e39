package postgres

import (
	"context"
	"fmt"

	"fleet-maintenance-manager/internal/infrastructure/database/postgres/models"
)

// StatsRepository runs the aggregate queries behind the dashboard.
type StatsRepository struct {
	db *DB
}

func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) VehicleCounts(ctx context.Context) (int64, int64, error) {
	var total, deleted int64

	if err := r.db.DB.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	if err := r.db.DB.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("deleted_at IS NOT NULL").
		Count(&deleted).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count deleted vehicles: %w", err)
	}

	return total, deleted, nil
}

func (r *StatsRepository) ClaimCountsByStatus(ctx context.Context) (map[string]int64, error) {
	var statusCounts []struct {
		Status string
		Count  int64
	}
	err := r.db.DB.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM claims
		GROUP BY status
	`).Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get claim counts: %w", err)
	}

	counts := make(map[string]int64, len(statusCounts))
	for _, sc := range statusCounts {
		counts[sc.Status] = sc.Count
	}

	return counts, nil
}

func (r *StatsRepository) MaintenanceCostTotals(ctx context.Context) (int64, float64, error) {
	var row struct {
		RecordCount int64
		TotalCost   float64
	}
	err := r.db.DB.WithContext(ctx).Raw(`
		SELECT COUNT(*) as record_count, COALESCE(SUM(cost), 0) as total_cost
		FROM maintenance_records
		WHERE status != 'cancelled'
	`).Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get maintenance cost totals: %w", err)
	}

	return row.RecordCount, row.TotalCost, nil
}

func (r *StatsRepository) DriverCounts(ctx context.Context) (int64, int64, error) {
	var total, active int64

	if err := r.db.DB.WithContext(ctx).
		Model(&models.DriverModel{}).
		Where("deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	if err := r.db.DB.WithContext(ctx).
		Model(&models.DriverModel{}).
		Where("deleted_at IS NULL AND status = 'active'").
		Count(&active).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count active drivers: %w", err)
	}

	return total, active, nil
}
