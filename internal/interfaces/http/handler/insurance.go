package handler

import (
	coverageapp "github.com/dms/backend/internal/application/coverage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InsuranceHandler handles insurance policy endpoints
type InsuranceHandler struct {
	BaseHandler
	insuranceService *coverageapp.InsuranceService
}

// NewInsuranceHandler creates a new InsuranceHandler
func NewInsuranceHandler(insuranceService *coverageapp.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{insuranceService: insuranceService}
}

// Create issues a policy for a vehicle
func (h *InsuranceHandler) Create(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var req coverageapp.CreateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	policy, err := h.insuranceService.Create(c.Request.Context(), dealerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, policy)
}

// GetByID retrieves a policy by ID
func (h *InsuranceHandler) GetByID(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	insuranceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid insurance ID format")
		return
	}

	policy, err := h.insuranceService.GetByID(c.Request.Context(), dealerID, insuranceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, policy)
}

// List retrieves a paginated list of policies. Supports expiring_in_days
// for renewal follow-up queues.
func (h *InsuranceHandler) List(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var filter coverageapp.InsuranceListFilter
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

	policies, total, err := h.insuranceService.List(c.Request.Context(), dealerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, policies, total, filter.Page, filter.PageSize)
}

// Update reschedules coverage or changes its terms
func (h *InsuranceHandler) Update(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	insuranceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid insurance ID format")
		return
	}

	var req coverageapp.UpdateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	policy, err := h.insuranceService.Update(c.Request.Context(), dealerID, insuranceID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, policy)
}

// Cancel terminates a policy
func (h *InsuranceHandler) Cancel(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	insuranceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid insurance ID format")
		return
	}

	policy, err := h.insuranceService.Cancel(c.Request.Context(), dealerID, insuranceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, policy)
}

// Delete removes a cancelled policy
func (h *InsuranceHandler) Delete(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	insuranceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid insurance ID format")
		return
	}

	if err := h.insuranceService.Delete(c.Request.Context(), dealerID, insuranceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
