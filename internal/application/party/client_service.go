package party

import (
	"context"
	"errors"

	"github.com/dms/backend/internal/domain/party"
	"github.com/dms/backend/internal/domain/shared"
	"github.com/dms/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// ClientService handles client registry operations
type ClientService struct {
	clientRepo   party.ClientRepository
	contractRepo trade.ContractRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo party.ClientRepository, contractRepo trade.ContractRepository) *ClientService {
	return &ClientService{
		clientRepo:   clientRepo,
		contractRepo: contractRepo,
	}
}

// Create registers a new client. The cedula must be unique across all
// dealers, not only the caller's.
func (s *ClientService) Create(ctx context.Context, dealerID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	exists, err := s.clientRepo.ExistsByCedula(ctx, req.Cedula)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("UNIQUENESS_CONFLICT", "Client with this cedula already exists")
	}

	client, err := party.NewClient(dealerID, req.Cedula, req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		client.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, dealerID, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForDealer(ctx, dealerID, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, dealerID uuid.UUID, filter ClientListFilter) ([]ClientResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	clients, err := s.clientRepo.FindAllForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.CountForDealer(ctx, dealerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientListResponses(clients), total, nil
}

// Update updates a client. A cedula change re-checks global uniqueness.
func (s *ClientService) Update(ctx context.Context, dealerID, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByIDForDealer(ctx, dealerID, clientID)
	if err != nil {
		return nil, err
	}

	cedula := client.Cedula
	if req.Cedula != nil && *req.Cedula != client.Cedula {
		cedula = *req.Cedula
		existing, err := s.clientRepo.FindByCedula(ctx, cedula)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != client.ID {
			return nil, shared.NewDomainError("UNIQUENESS_CONFLICT", "Client with this cedula already exists")
		}
	}
	name := client.Name
	if req.Name != nil {
		name = *req.Name
	}
	phone := client.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	email := client.Email
	if req.Email != nil {
		email = *req.Email
	}
	address := client.Address
	if req.Address != nil {
		address = *req.Address
	}

	if err := client.Update(cedula, name, phone, email, address); err != nil {
		return nil, err
	}
	if err := s.clientRepo.SaveWithLock(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client. Blocked while contracts reference the client.
func (s *ClientService) Delete(ctx context.Context, dealerID, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByIDForDealer(ctx, dealerID, clientID); err != nil {
		return err
	}

	contracts, err := s.contractRepo.CountByClient(ctx, dealerID, clientID)
	if err != nil {
		return err
	}
	if contracts > 0 {
		return shared.NewValidationError("Client has contracts and cannot be deleted")
	}

	return s.clientRepo.DeleteForDealer(ctx, dealerID, clientID)
}
