package handler

import (
	partyapp "github.com/dms/backend/internal/application/party"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler handles client (buyer) endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partyapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partyapp.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var req partyapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), dealerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, client)
}

// GetByID retrieves a client by ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), dealerID, clientID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// List retrieves a paginated list of clients
func (h *ClientHandler) List(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	var filter partyapp.ClientListFilter
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

	clients, total, err := h.clientService.List(c.Request.Context(), dealerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, clients, total, filter.Page, filter.PageSize)
}

// Update modifies a client's details
func (h *ClientHandler) Update(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	var req partyapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), dealerID, clientID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete removes a client with no contracts
func (h *ClientHandler) Delete(c *gin.Context) {
	dealerID, err := getDealerID(c)
	if err != nil {
		h.Unauthorized(c, "Dealer context required")
		return
	}

	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), dealerID, clientID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
