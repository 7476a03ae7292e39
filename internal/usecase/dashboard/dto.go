package dashboard

type InsuranceBreakdown struct {
	Valid        int `json:"valid"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
	Uninsured    int `json:"uninsured"`
}

type ClaimBreakdown struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type MaintenanceSummary struct {
	RecordCount int64   `json:"record_count"`
	TotalCost   float64 `json:"total_cost"`
}

type DriverSummary struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type StatsResponse struct {
	TotalVehicles   int64 `json:"total_vehicles"`
	DeletedVehicles int64 `json:"deleted_vehicles"`

	Insurance   InsuranceBreakdown `json:"insurance"`
	Claims      ClaimBreakdown     `json:"claims"`
	Maintenance MaintenanceSummary `json:"maintenance"`
	Drivers     DriverSummary      `json:"drivers"`
}
