package handler

import (
	tradeapp "github.com/dms/backend/internal/application/trade"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles sale contract endpoints
type ContractHandler struct {
	BaseHandler
	contractService *tradeapp.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *tradeapp.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// Create opens a contract and reserves the vehicle atomically
func (h *ContractHandler) Create(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var req tradeapp.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, uerr := getUserID(c); uerr == nil && userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	contract, err := h.contractService.Create(c.Request.Context(), dealerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, contract)
}

// GetByID retrieves a contract by ID
func (h *ContractHandler) GetByID(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	contract, err := h.contractService.GetByID(c.Request.Context(), dealerID, contractID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contract)
}

// List retrieves a paginated list of contracts
func (h *ContractHandler) List(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var filter tradeapp.ContractListFilter
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

	contracts, total, err := h.contractService.List(c.Request.Context(), dealerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, contracts, total, filter.Page, filter.PageSize)
}

// ChangeStatus moves a contract through its lifecycle and cascades the
// vehicle status in the same transaction
func (h *ContractHandler) ChangeStatus(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	var req tradeapp.ChangeContractStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contract, err := h.contractService.ChangeStatus(c.Request.Context(), dealerID, contractID, trade.ContractStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contract)
}
