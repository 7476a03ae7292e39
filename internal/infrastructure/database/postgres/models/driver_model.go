package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverModel represents the database model for Drivers
type DriverModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string     `gorm:"type:varchar(100);not null"`
	LicenseNumber string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Phone         string     `gorm:"type:varchar(20);not null"`
	Address       string     `gorm:"type:text;not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'active';index"`
	DeletedAt     *time.Time `gorm:"type:timestamptz;index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (DriverModel) TableName() string {
	return "drivers"
}

// DriverAssignmentModel links a driver to a vehicle. Assignments carry no
// foreign key to vehicles on purpose; readers filter orphaned rows.
type DriverAssignmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_driver_vehicle"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_driver_vehicle"`
	CreatedAt time.Time `gorm:"not null"`

	Driver *DriverModel `gorm:"foreignKey:DriverID"`
}

func (DriverAssignmentModel) TableName() string {
	return "driver_assignments"
}
