package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
	pkgutils "github.com/demohealth/privacy-governance-api/pkg/utils"
)

// AccessHandler handles access evaluation HTTP requests
type AccessHandler struct {
	accessService *service.AccessService
}

// NewAccessHandler creates a new access handler instance
func NewAccessHandler(accessService *service.AccessService) *AccessHandler {
	return &AccessHandler{accessService: accessService}
}

// EvaluateAccess handles POST /access. The attempt is always recorded, a
// denial additionally raises a breach alert before the 403 goes out.
func (h *AccessHandler) EvaluateAccess(c *gin.Context) {
	var request models.AccessRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.accessService.EvaluateAccess(c.Request.Context(), &request)
	if err != nil {
		var validationErr *pkgutils.ValidationError
		if errors.As(err, &validationErr) {
			utils.SendValidationError(c, validationErr.Error())
			return
		}
		utils.SendInternalServerError(c, "Failed to evaluate access", err.Error())
		return
	}

	if !result.Authorized {
		utils.SendForbiddenError(c, "Access denied. "+result.Reason)
		return
	}

	utils.SendOKResponse(c, gin.H{
		"message":    "Access granted",
		"authorized": true,
	})
}
