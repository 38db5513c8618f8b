package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/domain/store"
)

// CustomerService handles store customer operations
type CustomerService struct {
	customerRepo store.CustomerRepository
	eventBus     shared.EventBus
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo store.CustomerRepository, eventBus shared.EventBus) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		eventBus:     eventBus,
	}
}

// EnsureForUser returns the customer owned by the user, creating it if it
// does not exist yet. Calling it repeatedly for the same user is safe.
func (s *CustomerService) EnsureForUser(ctx context.Context, userID uuid.UUID) (*CustomerResponse, error) {
	existing, err := s.customerRepo.FindByUserID(ctx, userID)
	if err == nil {
		return ToCustomerResponse(existing), nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	customer, err := store.NewCustomer(userID)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, customer)

	return ToCustomerResponse(customer), nil
}

// Get retrieves a customer by ID
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// GetByUser retrieves the customer owned by a user
func (s *CustomerService) GetByUser(ctx context.Context, userID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// Update changes customer settings
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ShippingSameAsBilling != nil {
		customer.SetShippingSameAsBilling(*req.ShippingSameAsBilling)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

func (s *CustomerService) publishEvents(ctx context.Context, customer *store.Customer) {
	if s.eventBus == nil {
		return
	}
	events := customer.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventBus.Publish(ctx, events...)
	customer.ClearDomainEvents()
}
