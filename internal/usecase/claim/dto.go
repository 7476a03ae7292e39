package claim

import (
	"time"

	domainClaim "fleet-maintenance-manager/internal/domain/claim"

	"github.com/google/uuid"
)

type FileClaimRequest struct {
	VehicleID   uuid.UUID `json:"vehicle_id" validate:"required"`
	ClaimDate   string    `json:"claim_date" validate:"required,date,pastdate"`
	ClaimAmount float64   `json:"claim_amount" validate:"required,gt=0"`
	Reason      string    `json:"reason" validate:"required,trimmed_min=10"`
}

type UpdateClaimStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

type ClaimResponse struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicle_id"`

	ClaimDate   string  `json:"claim_date"`
	ClaimAmount float64 `json:"claim_amount"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClaimListResponse struct {
	Claims []ClaimResponse `json:"claims"`
	Total  int64           `json:"total"`
}

func ToClaimResponse(c *domainClaim.Claim) *ClaimResponse {
	if c == nil {
		return nil
	}
	return &ClaimResponse{
		ID:          c.ID,
		VehicleID:   c.VehicleID,
		ClaimDate:   c.ClaimDate.Format("2006-01-02"),
		ClaimAmount: c.ClaimAmount,
		Reason:      c.Reason,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
