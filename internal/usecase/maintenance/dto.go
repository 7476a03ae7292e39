package maintenance

import (
	"time"

	domainMaintenance "fleet-maintenance-manager/internal/domain/maintenance"

	"github.com/google/uuid"
)

type CreateRecordRequest struct {
	VehicleID             uuid.UUID `json:"vehicle_id" validate:"required"`
	ServiceDate           string    `json:"service_date" validate:"required,date"`
	ServiceType           string    `json:"service_type" validate:"required,trimmed_min=2"`
	Description           string    `json:"description" validate:"required,trimmed_min=5"`
	Cost                  float64   `json:"cost" validate:"gte=0"`
	OdometerReadingBefore float64   `json:"odometer_reading_before" validate:"gte=0"`
	OdometerReadingAfter  float64   `json:"odometer_reading_after" validate:"gte=0"`
	Status                string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
}

type UpdateRecordRequest struct {
	ServiceDate           string  `json:"service_date" validate:"required,date"`
	ServiceType           string  `json:"service_type" validate:"required,trimmed_min=2"`
	Description           string  `json:"description" validate:"required,trimmed_min=5"`
	Cost                  float64 `json:"cost" validate:"gte=0"`
	OdometerReadingBefore float64 `json:"odometer_reading_before" validate:"gte=0"`
	OdometerReadingAfter  float64 `json:"odometer_reading_after" validate:"gte=0"`
	Status                string  `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

type RecordFilterRequest struct {
	VehicleID   *uuid.UUID `form:"vehicle_id"`
	Status      string     `form:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	ServiceType string     `form:"service_type"`

	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type RecordResponse struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicle_id"`

	ServiceDate string  `json:"service_date"`
	ServiceType string  `json:"service_type"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`

	OdometerReadingBefore float64 `json:"odometer_reading_before"`
	OdometerReadingAfter  float64 `json:"odometer_reading_after"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RecordListResponse struct {
	Records    []RecordResponse `json:"records"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

func ToRecordResponse(rec *domainMaintenance.Record) *RecordResponse {
	if rec == nil {
		return nil
	}
	return &RecordResponse{
		ID:                    rec.ID,
		VehicleID:             rec.VehicleID,
		ServiceDate:           rec.ServiceDate.Format("2006-01-02"),
		ServiceType:           rec.ServiceType,
		Description:           rec.Description,
		Cost:                  rec.Cost,
		OdometerReadingBefore: rec.OdometerReadingBefore,
		OdometerReadingAfter:  rec.OdometerReadingAfter,
		Status:                string(rec.Status),
		CreatedAt:             rec.CreatedAt,
		UpdatedAt:             rec.UpdatedAt,
	}
}
