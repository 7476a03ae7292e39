package driver

import (
	"time"

	domainDriver "fleet-maintenance-manager/internal/domain/driver"

	"github.com/google/uuid"
)

type CreateDriverRequest struct {
	Name          string `json:"name" validate:"required,trimmed_min=2"`
	LicenseNumber string `json:"license_number" validate:"required,trimmed_min=5"`
	Phone         string `json:"phone" validate:"required,mobile_number"`
	Address       string `json:"address" validate:"required,trimmed_min=10"`
}

type UpdateDriverRequest struct {
	Name    string `json:"name" validate:"required,trimmed_min=2"`
	Phone   string `json:"phone" validate:"required,mobile_number"`
	Address string `json:"address" validate:"required,trimmed_min=10"`
	Status  string `json:"status" validate:"required,oneof=active inactive"`
}

type DriverFilterRequest struct {
	Status         string `form:"status" validate:"omitempty,oneof=active inactive"`
	IncludeDeleted bool   `form:"include_deleted"`
	Search         string `form:"search"`

	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type DriverResponse struct {
	ID uuid.UUID `json:"id"`

	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status"`

	AssignedVehicleIDs []uuid.UUID `json:"assigned_vehicle_ids"`

	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type DriverListResponse struct {
	Drivers    []DriverResponse `json:"drivers"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

func ToDriverResponse(d *domainDriver.Driver) *DriverResponse {
	if d == nil {
		return nil
	}
	assigned := d.AssignedVehicleIDs
	if assigned == nil {
		assigned = []uuid.UUID{}
	}
	return &DriverResponse{
		ID:                 d.ID,
		Name:               d.Name,
		LicenseNumber:      d.LicenseNumber,
		Phone:              d.Phone,
		Address:            d.Address,
		Status:             string(d.Status),
		AssignedVehicleIDs: assigned,
		DeletedAt:          d.DeletedAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
