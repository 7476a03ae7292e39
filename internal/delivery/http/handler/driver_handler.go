package handler

import (
	"net/http"

	"fleet-maintenance-manager/internal/usecase/driver"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DriverHandler struct {
	service *driver.Service
}

func NewDriverHandler(service *driver.Service) *DriverHandler {
	return &DriverHandler{service: service}
}

func (h *DriverHandler) RegisterRoutes(router *gin.RouterGroup) {
	drivers := router.Group("/drivers")
	{
		drivers.POST("", h.CreateDriver)
		drivers.GET("", h.ListDrivers)
		drivers.GET("/:id", h.GetDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)
		drivers.POST("/:id/restore", h.RestoreDriver)
		drivers.POST("/:id/vehicles/:vehicleId", h.AssignVehicle)
		drivers.DELETE("/:id/vehicles/:vehicleId", h.UnassignVehicle)
	}
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req driver.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Driver created successfully", result)
}

func (h *DriverHandler) GetDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	result, err := h.service.Get(c.Request.Context(), driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", result)
}

func (h *DriverHandler) ListDrivers(c *gin.Context) {
	var filter driver.DriverFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", result)
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	var req driver.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), driverID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver updated successfully", result)
}

func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	if err := h.service.SoftDelete(c.Request.Context(), driverID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver deleted successfully", nil)
}

func (h *DriverHandler) RestoreDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	result, err := h.service.Restore(c.Request.Context(), driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver restored successfully", result)
}

func (h *DriverHandler) AssignVehicle(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	result, err := h.service.AssignVehicle(c.Request.Context(), driverID, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle assigned successfully", result)
}

func (h *DriverHandler) UnassignVehicle(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	result, err := h.service.UnassignVehicle(c.Request.Context(), driverID, vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle unassigned successfully", result)
}
