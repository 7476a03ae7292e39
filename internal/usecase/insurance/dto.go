package insurance

import (
	"time"

	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Request DTOs

type SetPolicyRequest struct {
	PolicyNumber  string  `json:"policy_number" validate:"required,min=5,policy_number"`
	Insurer       string  `json:"insurer" validate:"required,trimmed_min=2"`
	PolicyType    string  `json:"policy_type" validate:"required"`
	StartDate     string  `json:"start_date" validate:"required,date"`
	EndDate       string  `json:"end_date" validate:"required,date"`
	IssueDate     string  `json:"issue_date" validate:"required,date"`
	PremiumAmount float64 `json:"premium_amount" validate:"required,gt=0"`
	PaymentMode   string  `json:"payment_mode" validate:"required"`
}

// Response DTOs

type PolicyResponse struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicle_id"`

	PolicyNumber  string    `json:"policy_number"`
	Insurer       string    `json:"insurer"`
	PolicyType    string    `json:"policy_type"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IssueDate     time.Time `json:"issue_date"`
	PremiumAmount float64   `json:"premium_amount"`
	PaymentMode   string    `json:"payment_mode"`

	Status          domainInsurance.Status `json:"status"`
	DaysUntilExpiry int                    `json:"days_until_expiry"`
	HasInsurance    bool                   `json:"has_insurance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HistoryRowResponse struct {
	ID        uuid.UUID `json:"id"`
	Reference string    `json:"reference"`

	VehicleID          uuid.UUID `json:"vehicle_id"`
	RegistrationNumber string    `json:"registration_number"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`

	PolicyNumber  string    `json:"policy_number"`
	Insurer       string    `json:"insurer"`
	PolicyType    string    `json:"policy_type"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	IssueDate     time.Time `json:"issue_date"`
	PremiumAmount float64   `json:"premium_amount"`
	PaymentMode   string    `json:"payment_mode"`

	Status domainInsurance.Status `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// VehicleSummary carries the vehicle identity fields reported by the
// reconciler next to the (possibly cleared) policy.
type VehicleSummary struct {
	ID                 uuid.UUID       `json:"id"`
	Make               string          `json:"make"`
	Model              string          `json:"model"`
	RegistrationNumber string          `json:"registration_number"`
	Insurance          *PolicyResponse `json:"insurance"`
}

type ReconcileResult struct {
	UpdatedVehicles  []VehicleSummary     `json:"updated_vehicles"`
	InsuranceHistory []HistoryRowResponse `json:"insurance_history"`
	ExpiredCount     int                  `json:"expired_count"`
	FailedCount      int                  `json:"failed_count"`
}

// Conversion helpers

func toPolicyResponse(p *domainInsurance.Policy, today time.Time, windowDays int) *PolicyResponse {
	if p == nil {
		return nil
	}
	return &PolicyResponse{
		ID:              p.ID,
		VehicleID:       p.VehicleID,
		PolicyNumber:    p.PolicyNumber,
		Insurer:         p.Insurer,
		PolicyType:      p.PolicyType,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		IssueDate:       p.IssueDate,
		PremiumAmount:   p.PremiumAmount,
		PaymentMode:     p.PaymentMode,
		Status:          Classify(p.EndDate, today, windowDays),
		DaysUntilExpiry: DaysUntilExpiry(p.EndDate, today),
		HasInsurance:    true,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toHistoryRowResponse(row *domainInsurance.HistoryRow) HistoryRowResponse {
	return HistoryRowResponse{
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
		Status:             row.Status,
		CreatedAt:          row.CreatedAt,
	}
}

func toVehicleSummary(v *domainVehicle.Vehicle, policy *PolicyResponse) VehicleSummary {
	return VehicleSummary{
		ID:                 v.ID,
		Make:               v.Make,
		Model:              v.Model,
		RegistrationNumber: v.RegistrationNumber,
		Insurance:          policy,
	}
}
