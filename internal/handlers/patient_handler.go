package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
	pkgutils "github.com/demohealth/privacy-governance-api/pkg/utils"
)

// PatientHandler handles patient-related HTTP requests
type PatientHandler struct {
	directoryService *service.DirectoryService
}

// NewPatientHandler creates a new patient handler instance
func NewPatientHandler(directoryService *service.DirectoryService) *PatientHandler {
	return &PatientHandler{directoryService: directoryService}
}

// CreatePatient handles POST /patients
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var request models.PatientCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	patient, err := h.directoryService.RegisterPatient(c.Request.Context(), &request)
	if err != nil {
		var validationErr *pkgutils.ValidationError
		if errors.As(err, &validationErr) {
			utils.SendValidationError(c, validationErr.Error())
			return
		}
		utils.SendInternalServerError(c, "Failed to create patient", err.Error())
		return
	}

	utils.SendCreatedResponse(c, patient)
}

// ListPatients handles GET /patients
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.directoryService.ListPatients(c.Request.Context())
	if err != nil {
		utils.SendInternalServerError(c, "Failed to list patients", err.Error())
		return
	}

	utils.SendOKResponse(c, patients)
}
