package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
	pkgutils "github.com/demohealth/privacy-governance-api/pkg/utils"
)

// MetricsHandler handles audit trail and metrics HTTP requests
type MetricsHandler struct {
	metricsService *service.MetricsService
}

// NewMetricsHandler creates a new metrics handler instance
func NewMetricsHandler(metricsService *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// ListLogs handles GET /logs
func (h *MetricsHandler) ListLogs(c *gin.Context) {
	filter := &models.AccessLogFilter{}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.SendBadRequestError(c, "Invalid user_id parameter", "user_id must be an integer")
			return
		}
		filter.UserID = &userID
	}

	if raw := c.Query("patient_id"); raw != "" {
		patientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.SendBadRequestError(c, "Invalid patient_id parameter", "patient_id must be an integer")
			return
		}
		filter.PatientID = &patientID
	}

	filter.Action = c.Query("action")

	sinceMinutes, err := strconv.Atoi(c.DefaultQuery("since_minutes", strconv.Itoa(service.DefaultSinceMinutes)))
	if err != nil || sinceMinutes < 0 {
		utils.SendBadRequestError(c, "Invalid since_minutes parameter", "since_minutes must be a non-negative integer")
		return
	}
	filter.Since = pkgutils.SinceWindow(sinceMinutes)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		utils.SendBadRequestError(c, "Invalid limit parameter", "limit must be a non-negative integer")
		return
	}
	filter.Limit = limit

	logs, err := h.metricsService.Logs(c.Request.Context(), filter)
	if err != nil {
		utils.SendInternalServerError(c, "Failed to list access logs", err.Error())
		return
	}

	utils.SendOKResponse(c, logs)
}

// Overview handles GET /metrics/overview
func (h *MetricsHandler) Overview(c *gin.Context) {
	sinceMinutes, err := strconv.Atoi(c.DefaultQuery("since_minutes", strconv.Itoa(service.DefaultSinceMinutes)))
	if err != nil || sinceMinutes < 0 {
		utils.SendBadRequestError(c, "Invalid since_minutes parameter", "since_minutes must be a non-negative integer")
		return
	}

	overview, err := h.metricsService.Overview(c.Request.Context(), sinceMinutes)
	if err != nil {
		utils.SendInternalServerError(c, "Failed to compute metrics overview", err.Error())
		return
	}

	utils.SendOKResponse(c, overview)
}
