package handler

import (
	partnerapp "github.com/dms/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConcesionarioHandler handles consignment partner endpoints
type ConcesionarioHandler struct {
	BaseHandler
	concesionarioService *partnerapp.ConcesionarioService
}

// NewConcesionarioHandler creates a new ConcesionarioHandler
func NewConcesionarioHandler(concesionarioService *partnerapp.ConcesionarioService) *ConcesionarioHandler {
	return &ConcesionarioHandler{concesionarioService: concesionarioService}
}

// Create registers a new concesionario
func (h *ConcesionarioHandler) Create(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var req partnerapp.CreateConcesionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	concesionario, err := h.concesionarioService.Create(c.Request.Context(), dealerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, concesionario)
}

// GetByID retrieves a concesionario by ID
func (h *ConcesionarioHandler) GetByID(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	concesionarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid concesionario ID format")
		return
	}

	concesionario, err := h.concesionarioService.GetByID(c.Request.Context(), dealerID, concesionarioID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, concesionario)
}

// List retrieves a paginated list of concesionarios
func (h *ConcesionarioHandler) List(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var filter partnerapp.ConcesionarioListFilter
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

	concesionarios, total, err := h.concesionarioService.List(c.Request.Context(), dealerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, concesionarios, total, filter.Page, filter.PageSize)
}

// Update modifies a concesionario's contact details
func (h *ConcesionarioHandler) Update(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	concesionarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid concesionario ID format")
		return
	}

	var req partnerapp.UpdateConcesionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	concesionario, err := h.concesionarioService.Update(c.Request.Context(), dealerID, concesionarioID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, concesionario)
}

// Deactivate marks a concesionario as inactive
func (h *ConcesionarioHandler) Deactivate(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	concesionarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid concesionario ID format")
		return
	}

	concesionario, err := h.concesionarioService.Deactivate(c.Request.Context(), dealerID, concesionarioID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, concesionario)
}

// Activate re-enables a concesionario
func (h *ConcesionarioHandler) Activate(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	concesionarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid concesionario ID format")
		return
	}

	concesionario, err := h.concesionarioService.Activate(c.Request.Context(), dealerID, concesionarioID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, concesionario)
}

// ReleaseVehicles returns every vehicle held by the concesionario to
// dealer-owned stock in one transaction
func (h *ConcesionarioHandler) ReleaseVehicles(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	concesionarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid concesionario ID format")
		return
	}

	result, err := h.concesionarioService.ReleaseVehicles(c.Request.Context(), dealerID, concesionarioID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a concesionario
func (h *ConcesionarioHandler) Delete(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	concesionarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid concesionario ID format")
		return
	}

	if err := h.concesionarioService.Delete(c.Request.Context(), dealerID, concesionarioID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
