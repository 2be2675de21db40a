package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
)

// ExportHandler handles anonymized CSV export HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler instance
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportPatients handles GET /export/anonymized/patients
func (h *ExportHandler) ExportPatients(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.WritePatientsCSV(c.Request.Context(), &buf); err != nil {
		utils.SendInternalServerError(c, "Failed to export patients", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="anonymized_patients.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportAccessLogs handles GET /export/anonymized/logs
func (h *ExportHandler) ExportAccessLogs(c *gin.Context) {
	sinceMinutes, err := strconv.Atoi(c.DefaultQuery("since_minutes", strconv.Itoa(service.DefaultSinceMinutes)))
	if err != nil || sinceMinutes < 0 {
		utils.SendBadRequestError(c, "Invalid since_minutes parameter", "since_minutes must be a non-negative integer")
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WriteAccessLogsCSV(c.Request.Context(), &buf, sinceMinutes); err != nil {
		utils.SendInternalServerError(c, "Failed to export access logs", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="anonymized_access_logs.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
