package models

import (
	"time"

	"github.com/google/uuid"
)

// InsurancePolicyModel represents the database model for active insurance
// policies. The unique index on vehicle_id enforces at most one active policy.
type InsurancePolicyModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VehicleID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PolicyNumber  string    `gorm:"type:varchar(100);not null"`
	Insurer       string    `gorm:"type:varchar(100);not null"`
	PolicyType    string    `gorm:"type:varchar(50);not null"`
	StartDate     time.Time `gorm:"type:date;not null"`
	EndDate       time.Time `gorm:"type:date;not null;index"`
	IssueDate     time.Time `gorm:"type:date;not null"`
	PremiumAmount float64   `gorm:"type:decimal(12,2);not null"`
	PaymentMode   string    `gorm:"type:varchar(50);not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID"`
}

func (InsurancePolicyModel) TableName() string {
	return "insurance_policies"
}

// InsuranceHistoryModel represents the append-only insurance history.
type InsuranceHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Reference string    `gorm:"type:varchar(120);not null;uniqueIndex"`

	VehicleID          uuid.UUID `gorm:"type:uuid;not null;index"`
	RegistrationNumber string    `gorm:"type:varchar(50);not null"`
	Make               string    `gorm:"type:varchar(100);not null"`
	Model              string    `gorm:"type:varchar(100);not null"`

	PolicyNumber  string    `gorm:"type:varchar(100);not null"`
	Insurer       string    `gorm:"type:varchar(100);not null"`
	PolicyType    string    `gorm:"type:varchar(50);not null"`
	StartDate     time.Time `gorm:"type:date;not null"`
	EndDate       time.Time `gorm:"type:date;not null"`
	IssueDate     time.Time `gorm:"type:date;not null"`
	PremiumAmount float64   `gorm:"type:decimal(12,2);not null"`
	PaymentMode   string    `gorm:"type:varchar(50);not null"`

	Status string `gorm:"type:varchar(20);not null"`

	CreatedAt time.Time `gorm:"not null;index"`
}

func (InsuranceHistoryModel) TableName() string {
	return "insurance_history"
}
