package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/dao"
	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
	pkgutils "github.com/demohealth/privacy-governance-api/pkg/utils"
)

// AlertHandler handles breach alert HTTP requests
type AlertHandler struct {
	alertService *service.AlertService
}

// NewAlertHandler creates a new alert handler instance
func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// ListAlerts handles GET /alerts
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		utils.SendBadRequestError(c, "Invalid limit parameter", "limit must be a non-negative integer")
		return
	}

	unresolvedOnly, err := strconv.ParseBool(c.DefaultQuery("unresolved_only", "false"))
	if err != nil {
		utils.SendBadRequestError(c, "Invalid unresolved_only parameter", "unresolved_only must be a boolean")
		return
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), limit, unresolvedOnly)
	if err != nil {
		utils.SendInternalServerError(c, "Failed to list alerts", err.Error())
		return
	}

	utils.SendOKResponse(c, alerts)
}

// CreateAlert handles POST /alerts. Manual alerts are raised by compliance
// staff outside of the access evaluation path.
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var request models.AlertCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	alert, err := h.alertService.CreateAlert(c.Request.Context(), &request)
	if err != nil {
		var validationErr *pkgutils.ValidationError
		if errors.As(err, &validationErr) {
			utils.SendValidationError(c, validationErr.Error())
			return
		}
		utils.SendInternalServerError(c, "Failed to create alert", err.Error())
		return
	}

	utils.SendCreatedResponse(c, alert)
}

// ResolveAlert handles PATCH /alerts/:alertId/resolve
func (h *AlertHandler) ResolveAlert(c *gin.Context) {
	alertID, err := strconv.ParseInt(c.Param("alertId"), 10, 64)
	if err != nil {
		utils.SendBadRequestError(c, "Invalid alert ID", "alertId must be an integer")
		return
	}

	if err := h.alertService.ResolveAlert(c.Request.Context(), alertID); err != nil {
		if errors.Is(err, dao.ErrAlertNotFound) {
			utils.SendNotFoundError(c, "Alert not found")
			return
		}
		utils.SendInternalServerError(c, "Failed to resolve alert", err.Error())
		return
	}

	utils.SendOKResponse(c, gin.H{
		"message":  "Alert resolved",
		"alert_id": alertID,
	})
}
