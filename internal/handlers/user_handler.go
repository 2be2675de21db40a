package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/demohealth/privacy-governance-api/internal/dao"
	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/utils"
	pkgutils "github.com/demohealth/privacy-governance-api/pkg/utils"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	directoryService *service.DirectoryService
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(directoryService *service.DirectoryService) *UserHandler {
	return &UserHandler{directoryService: directoryService}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var request models.UserCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.directoryService.RegisterUser(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, dao.ErrDuplicateEmail) {
			utils.SendConflictError(c, "User with this email already exists.")
			return
		}
		var validationErr *pkgutils.ValidationError
		if errors.As(err, &validationErr) {
			utils.SendValidationError(c, validationErr.Error())
			return
		}
		utils.SendInternalServerError(c, "Failed to create user", err.Error())
		return
	}

	utils.SendCreatedResponse(c, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.directoryService.ListUsers(c.Request.Context())
	if err != nil {
		utils.SendInternalServerError(c, "Failed to list users", err.Error())
		return
	}

	utils.SendOKResponse(c, users)
}
