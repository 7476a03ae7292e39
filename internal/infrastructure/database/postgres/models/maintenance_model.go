package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRecordModel represents the database model for maintenance records
type MaintenanceRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index"`

	ServiceDate time.Time `gorm:"type:date;not null;index"`
	ServiceType string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text;not null"`
	Cost        float64   `gorm:"type:decimal(12,2);not null;default:0"`

	OdometerReadingBefore float64 `gorm:"type:decimal(12,1);not null"`
	OdometerReadingAfter  float64 `gorm:"type:decimal(12,1);not null;check:odometer_reading_after >= odometer_reading_before"`

	Status string `gorm:"type:varchar(20);not null;default:'scheduled';index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID"`
}

func (MaintenanceRecordModel) TableName() string {
	return "maintenance_records"
}
