package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimModel represents the database model for insurance claims
type ClaimModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index"`

	ClaimDate   time.Time `gorm:"type:date;not null"`
	ClaimAmount float64   `gorm:"type:decimal(12,2);not null"`
	Reason      string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending';index"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID"`
}

func (ClaimModel) TableName() string {
	return "claims"
}
