package dashboard

import (
	"context"
	"time"

	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	usecaseInsurance "fleet-maintenance-manager/internal/usecase/insurance"
)

// StatsRepository exposes the aggregate queries backing the dashboard.
type StatsRepository interface {
	VehicleCounts(ctx context.Context) (total, deleted int64, err error)
	ClaimCountsByStatus(ctx context.Context) (map[string]int64, error)
	MaintenanceCostTotals(ctx context.Context) (recordCount int64, totalCost float64, err error)
	DriverCounts(ctx context.Context) (total, active int64, err error)
}

type Service struct {
	statsRepo   StatsRepository
	vehicleRepo domainVehicle.Repository
	policyRepo  domainInsurance.Repository

	windowDays int
	now        func() time.Time
}

func NewService(statsRepo StatsRepository, vehicleRepo domainVehicle.Repository, policyRepo domainInsurance.Repository, windowDays int) *Service {
	return &Service{
		statsRepo:   statsRepo,
		vehicleRepo: vehicleRepo,
		policyRepo:  policyRepo,
		windowDays:  windowDays,
		now:         time.Now,
	}
}

// Stats assembles the dashboard snapshot. Insurance statuses are classified
// at read time so the breakdown never lags behind policy end dates.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	totalVehicles, deletedVehicles, err := s.statsRepo.VehicleCounts(ctx)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	policies, err := s.policyRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	policyByVehicle := make(map[string]*domainInsurance.Policy, len(policies))
	for _, p := range policies {
		policyByVehicle[p.VehicleID.String()] = p
	}

	today := s.now()
	var breakdown InsuranceBreakdown
	for _, v := range vehicles {
		if v.IsDeleted() {
			continue
		}
		p, ok := policyByVehicle[v.ID.String()]
		if !ok {
			breakdown.Uninsured++
			continue
		}
		switch usecaseInsurance.Classify(p.EndDate, today, s.windowDays) {
		case domainInsurance.StatusValid:
			breakdown.Valid++
		case domainInsurance.StatusExpiringSoon:
			breakdown.ExpiringSoon++
		case domainInsurance.StatusExpired:
			breakdown.Expired++
		default:
			breakdown.Uninsured++
		}
	}

	claimCounts, err := s.statsRepo.ClaimCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recordCount, totalCost, err := s.statsRepo.MaintenanceCostTotals(ctx)
	if err != nil {
		return nil, err
	}

	totalDrivers, activeDrivers, err := s.statsRepo.DriverCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalVehicles:   totalVehicles,
		DeletedVehicles: deletedVehicles,
		Insurance:       breakdown,
		Claims: ClaimBreakdown{
			Pending:  claimCounts["Pending"],
			Approved: claimCounts["Approved"],
			Rejected: claimCounts["Rejected"],
		},
		Maintenance: MaintenanceSummary{
			RecordCount: recordCount,
			TotalCost:   totalCost,
		},
		Drivers: DriverSummary{
			Total:  totalDrivers,
			Active: activeDrivers,
		},
	}, nil
}
