package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
)

// IncidentHandler handles incident summary HTTP requests
type IncidentHandler struct {
	incidentService *service.IncidentService
}

// NewIncidentHandler creates a new incident handler instance
func NewIncidentHandler(incidentService *service.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

// Summaries handles GET /incidents/summaries
func (h *IncidentHandler) Summaries(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		utils.SendBadRequestError(c, "Invalid limit parameter", "limit must be a non-negative integer")
		return
	}

	summaries, err := h.incidentService.Summaries(c.Request.Context(), limit)
	if err != nil {
		utils.SendInternalServerError(c, "Failed to summarize incidents", err.Error())
		return
	}

	utils.SendOKResponse(c, summaries)
}
