package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel represents the database model for Vehicles
type VehicleModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Make               string     `gorm:"type:varchar(100);not null"`
	Model              string     `gorm:"type:varchar(100);not null"`
	RegistrationNumber string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	PurchaseDate       time.Time  `gorm:"type:date;not null"`
	PurchasePrice      float64    `gorm:"type:decimal(12,2);not null"`
	FuelType           string     `gorm:"type:varchar(20);not null;index"`
	EngineNumber       string     `gorm:"type:varchar(50);not null"`
	ChassisNumber      string     `gorm:"type:varchar(50);not null"`
	Kilometers         float64    `gorm:"type:decimal(12,1);not null;default:0"`
	Color              string     `gorm:"type:varchar(50);not null"`
	Owner              string     `gorm:"type:varchar(100);not null"`
	Phone              string     `gorm:"type:varchar(20);not null"`
	Address            string     `gorm:"type:text;not null"`
	DeletedAt          *time.Time `gorm:"type:timestamptz;index"`
	CreatedAt          time.Time  `gorm:"not null;index"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}
