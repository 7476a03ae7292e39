package handler

import (
	"net/http"
	"strconv"

	"fleet-maintenance-manager/internal/usecase/maintenance"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	service *maintenance.Service
}

func NewMaintenanceHandler(service *maintenance.Service) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

func (h *MaintenanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/maintenance")
	{
		records.POST("", h.CreateRecord)
		records.GET("", h.ListRecords)
		records.GET("/:id", h.GetRecord)
		records.PUT("/:id", h.UpdateRecord)
		records.DELETE("/:id", h.DeleteRecord)
	}

	router.GET("/vehicles/:id/maintenance", h.ListVehicleRecords)
}

func (h *MaintenanceHandler) CreateRecord(c *gin.Context) {
	var req maintenance.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Maintenance record created successfully", result)
}

func (h *MaintenanceHandler) GetRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	result, err := h.service.Get(c.Request.Context(), recordID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance record retrieved successfully", result)
}

func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	var filter maintenance.RecordFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance records retrieved successfully", result)
}

func (h *MaintenanceHandler) ListVehicleRecords(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.service.ListByVehicle(c.Request.Context(), vehicleID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance records retrieved successfully", result)
}

func (h *MaintenanceHandler) UpdateRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var req maintenance.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), recordID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance record updated successfully", result)
}

func (h *MaintenanceHandler) DeleteRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid record ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), recordID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance record deleted successfully", nil)
}
