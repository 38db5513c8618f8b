package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/store"
)

// InvoiceService handles invoice operations
type InvoiceService struct {
	invoiceRepo  store.InvoiceRepository
	customerRepo store.CustomerRepository
	itemRepo     store.ItemRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo store.InvoiceRepository, customerRepo store.CustomerRepository, itemRepo store.ItemRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
	}
}

// Create creates an invoice linking a customer and an item. Both must
// already exist.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	if _, err := s.itemRepo.FindByID(ctx, req.ItemID); err != nil {
		return nil, err
	}

	invoice, err := store.NewInvoice(req.CustomerID, req.ItemID)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	return ToInvoiceResponse(invoice), nil
}

// Get retrieves an invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(invoice), nil
}

// ListByCustomer retrieves all invoices of a customer
func (s *InvoiceService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = *ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, id)
}
