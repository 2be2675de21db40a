package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
	pkgutils "github.com/demohealth/privacy-governance-api/pkg/utils"
)

// ConsentHandler handles consent-related HTTP requests
type ConsentHandler struct {
	consentService *service.ConsentService
}

// NewConsentHandler creates a new consent handler instance
func NewConsentHandler(consentService *service.ConsentService) *ConsentHandler {
	return &ConsentHandler{consentService: consentService}
}

// CreateConsent handles POST /consents
func (h *ConsentHandler) CreateConsent(c *gin.Context) {
	var request models.ConsentCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	consent, err := h.consentService.CreateConsent(c.Request.Context(), &request)
	if err != nil {
		var validationErr *pkgutils.ValidationError
		if errors.As(err, &validationErr) {
			utils.SendValidationError(c, validationErr.Error())
			return
		}
		utils.SendInternalServerError(c, "Failed to create consent", err.Error())
		return
	}

	utils.SendCreatedResponse(c, consent)
}

// ListConsents handles GET /consents
func (h *ConsentHandler) ListConsents(c *gin.Context) {
	consents, err := h.consentService.ListConsents(c.Request.Context())
	if err != nil {
		utils.SendInternalServerError(c, "Failed to list consents", err.Error())
		return
	}

	utils.SendOKResponse(c, consents)
}

// ConsentMatrix handles GET /consent-matrix
func (h *ConsentHandler) ConsentMatrix(c *gin.Context) {
	matrix, err := h.consentService.ConsentMatrix(c.Request.Context())
	if err != nil {
		utils.SendInternalServerError(c, "Failed to build consent matrix", err.Error())
		return
	}

	utils.SendOKResponse(c, matrix)
}
