package vehicle

import (
	"time"

	"github.com/google/uuid"
)

// FuelType is the fixed set of accepted fuel types.
type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
	FuelCNG      FuelType = "CNG"
)

// ValidFuelTypes lists every accepted fuel type.
var ValidFuelTypes = []FuelType{FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid, FuelCNG}

// IsValidFuelType reports whether s is one of the accepted fuel types.
func IsValidFuelType(s string) bool {
	for _, ft := range ValidFuelTypes {
		if s == string(ft) {
			return true
		}
	}
	return false
}

// Vehicle is a registered fleet vehicle. A nil DeletedAt means the vehicle
// is active; soft-deleted vehicles are restorable.
type Vehicle struct {
	ID uuid.UUID

	// Descriptive attributes
	Make               string
	Model              string
	RegistrationNumber string
	PurchaseDate       time.Time
	PurchasePrice      float64
	FuelType           FuelType
	EngineNumber       string
	ChassisNumber      string
	Kilometers         float64
	Color              string

	// Owner attributes
	Owner   string
	Phone   string
	Address string

	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted reports whether the vehicle carries a soft-delete marker.
func (v *Vehicle) IsDeleted() bool {
	return v.DeletedAt != nil
}
