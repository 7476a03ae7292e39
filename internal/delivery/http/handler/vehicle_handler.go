package handler

import (
	"net/http"

	"fleet-maintenance-manager/internal/usecase/vehicle"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	service *vehicle.Service
}

func NewVehicleHandler(service *vehicle.Service) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", h.RegisterVehicle)
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
		vehicles.POST("/:id/restore", h.RestoreVehicle)
		vehicles.DELETE("/:id/permanent", h.HardDeleteVehicle)
	}
}

func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	var req vehicle.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", result)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	result, err := h.service.Get(c.Request.Context(), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", result)
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var filter vehicle.VehicleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", result)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	var req vehicle.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), vehicleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", result)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), vehicleID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted successfully", nil)
}

func (h *VehicleHandler) RestoreVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	result, err := h.service.Restore(c.Request.Context(), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle restored successfully", result)
}

func (h *VehicleHandler) HardDeleteVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	if err := h.service.HardDelete(c.Request.Context(), vehicleID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle permanently deleted", nil)
}
