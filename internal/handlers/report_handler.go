package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
)

// ReportHandler handles compliance report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// AuditReport handles GET /reports/audit
func (h *ReportHandler) AuditReport(c *gin.Context) {
	report, err := h.reportService.AuditReport(c.Request.Context())
	if err != nil {
		utils.SendInternalServerError(c, "Failed to build audit report", err.Error())
		return
	}

	utils.SendOKResponse(c, report)
}
