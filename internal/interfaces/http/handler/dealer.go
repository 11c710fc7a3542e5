package handler

import (
	identityapp "github.com/dms/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DealerHandler handles dealer administration endpoints. These routes are
// platform-level: they manage the tenants themselves rather than data
// inside one.
type DealerHandler struct {
	BaseHandler
	dealerService *identityapp.DealerService
}

// NewDealerHandler creates a new DealerHandler
func NewDealerHandler(dealerService *identityapp.DealerService) *DealerHandler {
	return &DealerHandler{dealerService: dealerService}
}

// Create registers a new dealer
func (h *DealerHandler) Create(c *gin.Context) {
	var req identityapp.CreateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dealer, err := h.dealerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, dealer)
}

// GetByID retrieves a dealer by ID. Non-admin callers can only read their
// own dealer record; any other id reads as missing.
func (h *DealerHandler) GetByID(c *gin.Context) {
	dealerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid dealer ID format")
		return
	}

	if !isAdmin(c) {
		callerDealerID, err := getDealerID(c)
		if err != nil {
			h.Unauthorized(c, "Dealer context required")
			return
		}
		if callerDealerID != dealerID {
			h.NotFound(c, "Dealer not found")
			return
		}
	}

	dealer, err := h.dealerService.GetByID(c.Request.Context(), dealerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dealer)
}

// List retrieves a paginated list of dealers
func (h *DealerHandler) List(c *gin.Context) {
	var filter identityapp.DealerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	dealers, total, err := h.dealerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, dealers, total, filter.Page, filter.PageSize)
}

// Update modifies a dealer's contact details
func (h *DealerHandler) Update(c *gin.Context) {
	dealerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid dealer ID format")
		return
	}

	var req identityapp.UpdateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dealer, err := h.dealerService.Update(c.Request.Context(), dealerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dealer)
}

// Suspend blocks all activity for a dealer
func (h *DealerHandler) Suspend(c *gin.Context) {
	dealerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid dealer ID format")
		return
	}

	dealer, err := h.dealerService.Suspend(c.Request.Context(), dealerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dealer)
}

// Activate re-enables a suspended dealer
func (h *DealerHandler) Activate(c *gin.Context) {
	dealerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid dealer ID format")
		return
	}

	dealer, err := h.dealerService.Activate(c.Request.Context(), dealerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dealer)
}

// Delete removes a dealer that holds no data
func (h *DealerHandler) Delete(c *gin.Context) {
	dealerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid dealer ID format")
		return
	}

	if err := h.dealerService.Delete(c.Request.Context(), dealerID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
