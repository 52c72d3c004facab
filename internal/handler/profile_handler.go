package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nutriscan-api/internal/middleware"
	"github.com/nutriscan-api/internal/repository"
	"github.com/nutriscan-api/internal/service"
	"github.com/nutriscan-api/pkg/response"
)

// ProfileHandler handles profile requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns the caller's profile
// GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	profile, err := h.profileService.Get(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to load profile")
		return
	}

	response.Success(c, profile)
}

// UpdateProfile applies a partial update to nickname and avatar
// PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.profileService.Update(userID, &req); err != nil {
		response.InternalError(c, "failed to update profile")
		return
	}

	response.Message(c, "profile updated")
}

// RegisterRoutes registers profile routes behind the auth middleware
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	profile := rg.Group("/profile")
	profile.Use(authMiddleware)
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}
