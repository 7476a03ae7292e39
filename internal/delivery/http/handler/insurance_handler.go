package handler

import (
	"net/http"

	"fleet-maintenance-manager/internal/usecase/insurance"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InsuranceHandler struct {
	service *insurance.Service
}

func NewInsuranceHandler(service *insurance.Service) *InsuranceHandler {
	return &InsuranceHandler{service: service}
}

func (h *InsuranceHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles")
	{
		vehicles.PUT("/:id/insurance", h.SetPolicy)
		vehicles.GET("/:id/insurance", h.GetPolicy)
		vehicles.DELETE("/:id/insurance", h.RemovePolicy)
		vehicles.GET("/:id/insurance/history", h.VehicleHistory)
	}

	insuranceGroup := router.Group("/insurance")
	{
		insuranceGroup.GET("/history", h.History)
		insuranceGroup.POST("/reconcile", h.Reconcile)
	}
}

func (h *InsuranceHandler) SetPolicy(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	var req insurance.SetPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.SetPolicy(c.Request.Context(), vehicleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance policy set successfully", result)
}

func (h *InsuranceHandler) GetPolicy(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	result, err := h.service.GetPolicy(c.Request.Context(), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance policy retrieved successfully", result)
}

func (h *InsuranceHandler) RemovePolicy(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	if err := h.service.RemovePolicy(c.Request.Context(), vehicleID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance policy removed successfully", nil)
}

// VehicleHistory returns the history view scoped to one vehicle.
func (h *InsuranceHandler) VehicleHistory(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	result, err := h.service.History(c.Request.Context(), &vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance history retrieved successfully", result)
}

// History returns the fleet-wide history view, optionally filtered by the
// vehicle_id query parameter.
func (h *InsuranceHandler) History(c *gin.Context) {
	var vehicleID *uuid.UUID
	if raw := c.Query("vehicle_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
			return
		}
		vehicleID = &id
	}

	result, err := h.service.History(c.Request.Context(), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance history retrieved successfully", result)
}

// Reconcile runs the expiry sweep on demand and returns the full result,
// including the untouched vehicles.
func (h *InsuranceHandler) Reconcile(c *gin.Context) {
	result, err := h.service.ReconcileExpired(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Insurance reconciliation completed", result)
}
