package handler

import (
	identityapp "github.com/dms/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles profile endpoints within a dealer
type ProfileHandler struct {
	BaseHandler
	profileService *identityapp.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *identityapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Create binds a user to the caller's dealer
func (h *ProfileHandler) Create(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var req identityapp.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), dealerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, profile)
}

// GetMe returns the caller's own profile
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User context required")
		return
	}

	profile, err := h.profileService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// List retrieves all profiles of the caller's dealer
func (h *ProfileHandler) List(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	profiles, err := h.profileService.List(c.Request.Context(), dealerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profiles)
}

// ChangeRole switches a profile between admin and user
func (h *ProfileHandler) ChangeRole(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	var req identityapp.ChangeProfileRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.ChangeRole(c.Request.Context(), dealerID, profileID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// Disable deactivates a profile
func (h *ProfileHandler) Disable(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	profile, err := h.profileService.Disable(c.Request.Context(), dealerID, profileID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// Enable reactivates a profile
func (h *ProfileHandler) Enable(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	profile, err := h.profileService.Enable(c.Request.Context(), dealerID, profileID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// Delete removes a profile from the dealer
func (h *ProfileHandler) Delete(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), dealerID, profileID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
