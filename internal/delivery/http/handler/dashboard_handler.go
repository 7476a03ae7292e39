package handler

import (
	"net/http"

	"fleet-maintenance-manager/internal/usecase/dashboard"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetStats)
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard statistics retrieved successfully", result)
}
