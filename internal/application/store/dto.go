package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samplestore/backend/internal/domain/store"
)

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                    uuid.UUID `json:"id"`
	UserID                uuid.UUID `json:"user_id"`
	ShippingSameAsBilling bool      `json:"shipping_same_as_billing"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain Customer to a CustomerResponse
func ToCustomerResponse(customer *store.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:                    customer.ID,
		UserID:                customer.UserID,
		ShippingSameAsBilling: customer.ShippingSameAsBilling,
		CreatedAt:             customer.CreatedAt,
		UpdatedAt:             customer.UpdatedAt,
	}
}

// UpdateCustomerRequest represents a request to update customer settings
type UpdateCustomerRequest struct {
	ShippingSameAsBilling *bool `json:"shipping_same_as_billing" binding:"required"`
}

// AddressRequest represents a request to create or update an address
type AddressRequest struct {
	Type      string `json:"type" binding:"required,oneof=billing shipping"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Company   string `json:"company" binding:"max=50"`
	Street    string `json:"street" binding:"required,max=60"`
	City      string `json:"city" binding:"required,max=40"`
	State     string `json:"state" binding:"required,len=2"`
	ZipCode   string `json:"zip_code" binding:"required,max=20"`
	Phone     string `json:"phone" binding:"max=25"`
	Fax       string `json:"fax" binding:"max=25"`
}

// Fields converts the request body to domain address fields
func (r AddressRequest) Fields() store.AddressFields {
	return store.AddressFields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Company:   r.Company,
		Street:    r.Street,
		City:      r.City,
		State:     r.State,
		ZipCode:   r.ZipCode,
		Phone:     r.Phone,
		Fax:       r.Fax,
	}
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Type       string    `json:"type"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Company    string    `json:"company"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	Phone      string    `json:"phone"`
	Fax        string    `json:"fax"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToAddressResponse converts a domain Address to an AddressResponse
func ToAddressResponse(address *store.Address) *AddressResponse {
	return &AddressResponse{
		ID:         address.ID,
		CustomerID: address.CustomerID,
		Type:       string(address.Type),
		FirstName:  address.FirstName,
		LastName:   address.LastName,
		Company:    address.Company,
		Street:     address.Street,
		City:       address.City,
		State:      address.State,
		ZipCode:    address.ZipCode,
		Phone:      address.Phone,
		Fax:        address.Fax,
		CreatedAt:  address.CreatedAt,
		UpdatedAt:  address.UpdatedAt,
	}
}

// ItemRequest represents a request to create or update an item
type ItemRequest struct {
	Title string          `json:"title" binding:"required,max=55"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToItemResponse converts a domain Item to an ItemResponse
func ToItemResponse(item *store.Item) *ItemResponse {
	return &ItemResponse{
		ID:        item.ID,
		Title:     item.Title,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	ItemID     uuid.UUID `json:"item_id" binding:"required"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	ItemID     uuid.UUID `json:"item_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToInvoiceResponse converts a domain Invoice to an InvoiceResponse
func ToInvoiceResponse(invoice *store.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		ItemID:     invoice.ItemID,
		CreatedAt:  invoice.CreatedAt,
	}
}
