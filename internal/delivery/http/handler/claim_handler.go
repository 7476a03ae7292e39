package handler

import (
	"net/http"

	"fleet-maintenance-manager/internal/usecase/claim"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	service *claim.Service
}

func NewClaimHandler(service *claim.Service) *ClaimHandler {
	return &ClaimHandler{service: service}
}

func (h *ClaimHandler) RegisterRoutes(router *gin.RouterGroup) {
	claims := router.Group("/claims")
	{
		claims.POST("", h.FileClaim)
		claims.GET("/:id", h.GetClaim)
		claims.PUT("/:id/status", h.UpdateClaimStatus)
	}

	router.GET("/vehicles/:id/claims", h.ListVehicleClaims)
}

func (h *ClaimHandler) FileClaim(c *gin.Context) {
	var req claim.FileClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.File(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Claim filed successfully", result)
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	result, err := h.service.Get(c.Request.Context(), claimID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Claim retrieved successfully", result)
}

func (h *ClaimHandler) ListVehicleClaims(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	result, err := h.service.ListByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Claims retrieved successfully", result)
}

func (h *ClaimHandler) UpdateClaimStatus(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	var req claim.UpdateClaimStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), claimID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Claim status updated successfully", result)
}
