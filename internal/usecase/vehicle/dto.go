package vehicle

import (
	"time"

	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Request DTOs. Dates travel as YYYY-MM-DD strings and are parsed at this
// boundary; the validate tags mirror the registration form rules.

type RegisterVehicleRequest struct {
	Make               string  `json:"make" validate:"required,trimmed_min=2"`
	Model              string  `json:"model" validate:"required,trimmed_min=1"`
	RegistrationNumber string  `json:"registration_number" validate:"required,trimmed_min=5"`
	PurchaseDate       string  `json:"purchase_date" validate:"required,date,pastdate"`
	PurchasePrice      float64 `json:"purchase_price" validate:"required,gte=45000"`
	FuelType           string  `json:"fuel_type" validate:"required,fuel_type"`
	EngineNumber       string  `json:"engine_number" validate:"required,trimmed_min=5"`
	ChassisNumber      string  `json:"chassis_number" validate:"required,trimmed_min=10"`
	Kilometers         float64 `json:"kilometers" validate:"gte=0"`
	Color              string  `json:"color" validate:"required,trimmed_min=2"`
	Owner              string  `json:"owner" validate:"required,trimmed_min=2"`
	Phone              string  `json:"phone" validate:"required,mobile_number"`
	Address            string  `json:"address" validate:"required,trimmed_min=10"`
}

type UpdateVehicleRequest struct {
	Make          string  `json:"make" validate:"required,trimmed_min=2"`
	Model         string  `json:"model" validate:"required,trimmed_min=1"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gte=45000"`
	FuelType      string  `json:"fuel_type" validate:"required,fuel_type"`
	Kilometers    float64 `json:"kilometers" validate:"gte=0"`
	Color         string  `json:"color" validate:"required,trimmed_min=2"`
	Owner         string  `json:"owner" validate:"required,trimmed_min=2"`
	Phone         string  `json:"phone" validate:"required,mobile_number"`
	Address       string  `json:"address" validate:"required,trimmed_min=10"`
}

type VehicleFilterRequest struct {
	FuelType       string `form:"fuel_type"`
	HasInsurance   *bool  `form:"has_insurance"`
	IncludeDeleted bool   `form:"include_deleted"`
	Search         string `form:"search"`

	Page      int    `form:"page" validate:"omitempty,min=1"`
	PageSize  int    `form:"page_size" validate:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by" validate:"omitempty,oneof=created_at updated_at purchase_date purchase_price kilometers"`
	SortOrder string `form:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// Response DTOs

type VehicleResponse struct {
	ID uuid.UUID `json:"id"`

	Make               string  `json:"make"`
	Model              string  `json:"model"`
	RegistrationNumber string  `json:"registration_number"`
	PurchaseDate       string  `json:"purchase_date"`
	PurchasePrice      float64 `json:"purchase_price"`
	FuelType           string  `json:"fuel_type"`
	EngineNumber       string  `json:"engine_number"`
	ChassisNumber      string  `json:"chassis_number"`
	Kilometers         float64 `json:"kilometers"`
	Color              string  `json:"color"`

	Owner   string `json:"owner"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	DeletedAt *time.Time `json:"deleted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VehicleListResponse struct {
	Vehicles   []VehicleResponse `json:"vehicles"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// Conversion functions

func ToVehicleResponse(v *domainVehicle.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}
	return &VehicleResponse{
		ID:                 v.ID,
		Make:               v.Make,
		Model:              v.Model,
		RegistrationNumber: v.RegistrationNumber,
		PurchaseDate:       v.PurchaseDate.Format("2006-01-02"),
		PurchasePrice:      v.PurchasePrice,
		FuelType:           string(v.FuelType),
		EngineNumber:       v.EngineNumber,
		ChassisNumber:      v.ChassisNumber,
		Kilometers:         v.Kilometers,
		Color:              v.Color,
		Owner:              v.Owner,
		Phone:              v.Phone,
		Address:            v.Address,
		DeletedAt:          v.DeletedAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func ToDomainFilter(req *VehicleFilterRequest) *domainVehicle.Filter {
	if req == nil {
		return &domainVehicle.Filter{}
	}
	filter := &domainVehicle.Filter{
		HasInsurance:   req.HasInsurance,
		IncludeDeleted: req.IncludeDeleted,
		Search:         req.Search,
		Page:           req.Page,
		PageSize:       req.PageSize,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
	}
	if req.FuelType != "" {
		ft := domainVehicle.FuelType(req.FuelType)
		filter.FuelType = &ft
	}
	return filter
}
