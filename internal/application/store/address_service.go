package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/store"
)

// AddressService handles customer address operations
type AddressService struct {
	addressRepo  store.AddressRepository
	customerRepo store.CustomerRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo store.AddressRepository, customerRepo store.CustomerRepository) *AddressService {
	return &AddressService{
		addressRepo:  addressRepo,
		customerRepo: customerRepo,
	}
}

// Create adds an address to a customer
func (s *AddressService) Create(ctx context.Context, customerID uuid.UUID, req AddressRequest) (*AddressResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	address, err := store.NewAddress(customerID, store.AddressType(req.Type), req.Fields())
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	return ToAddressResponse(address), nil
}

// Get retrieves an address by ID
func (s *AddressService) Get(ctx context.Context, id uuid.UUID) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAddressResponse(address), nil
}

// ListByCustomer retrieves all addresses of a customer
func (s *AddressService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]AddressResponse, error) {
	addresses, err := s.addressRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = *ToAddressResponse(&addresses[i])
	}
	return responses, nil
}

// Update overwrites the fields of an address
func (s *AddressService) Update(ctx context.Context, id uuid.UUID, req AddressRequest) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := address.Update(req.Fields()); err != nil {
		return nil, err
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	return ToAddressResponse(address), nil
}

// Delete removes an address
func (s *AddressService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.addressRepo.Delete(ctx, id)
}
