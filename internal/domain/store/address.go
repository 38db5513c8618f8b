package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// AddressType distinguishes billing from shipping addresses
type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

// Address is a postal address attached to a customer
type Address struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Type       AddressType `gorm:"type:varchar(10);not null"`
	FirstName  string      `gorm:"type:varchar(50);not null"`
	LastName   string      `gorm:"type:varchar(50);not null"`
	Company    string      `gorm:"type:varchar(50)"`
	Street     string      `gorm:"type:varchar(60);not null"`
	City       string      `gorm:"type:varchar(40);not null"`
	State      string      `gorm:"type:varchar(2);not null"`
	ZipCode    string      `gorm:"type:varchar(20);not null"`
	Phone      string      `gorm:"type:varchar(25)"`
	Fax        string      `gorm:"type:varchar(25)"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// AddressFields groups the mutable fields of an address
type AddressFields struct {
	FirstName string
	LastName  string
	Company   string
	Street    string
	City      string
	State     string
	ZipCode   string
	Phone     string
	Fax       string
}

// NewAddress creates a new address for a customer
func NewAddress(customerID uuid.UUID, addrType AddressType, fields AddressFields) (*Address, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if err := validateAddressType(addrType); err != nil {
		return nil, err
	}
	if err := validateAddressFields(fields); err != nil {
		return nil, err
	}

	return &Address{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Type:              addrType,
		FirstName:         fields.FirstName,
		LastName:          fields.LastName,
		Company:           fields.Company,
		Street:            fields.Street,
		City:              fields.City,
		State:             fields.State,
		ZipCode:           fields.ZipCode,
		Phone:             fields.Phone,
		Fax:               fields.Fax,
	}, nil
}

// Update overwrites the address fields
func (a *Address) Update(fields AddressFields) error {
	if err := validateAddressFields(fields); err != nil {
		return err
	}

	a.FirstName = fields.FirstName
	a.LastName = fields.LastName
	a.Company = fields.Company
	a.Street = fields.Street
	a.City = fields.City
	a.State = fields.State
	a.ZipCode = fields.ZipCode
	a.Phone = fields.Phone
	a.Fax = fields.Fax
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

func validateAddressType(t AddressType) error {
	switch t {
	case AddressTypeBilling, AddressTypeShipping:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Address type must be 'billing' or 'shipping'")
	}
}

func validateAddressFields(f AddressFields) error {
	if f.FirstName == "" || len(f.FirstName) > 50 {
		return shared.NewDomainError("INVALID_NAME", "First name is required and cannot exceed 50 characters")
	}
	if f.LastName == "" || len(f.LastName) > 50 {
		return shared.NewDomainError("INVALID_NAME", "Last name is required and cannot exceed 50 characters")
	}
	if f.Street == "" || len(f.Street) > 60 {
		return shared.NewDomainError("INVALID_ADDRESS", "Street is required and cannot exceed 60 characters")
	}
	if f.City == "" || len(f.City) > 40 {
		return shared.NewDomainError("INVALID_CITY", "City is required and cannot exceed 40 characters")
	}
	if len(f.State) != 2 {
		return shared.NewDomainError("INVALID_STATE", "State must be a two-letter code")
	}
	if f.ZipCode == "" || len(f.ZipCode) > 20 {
		return shared.NewDomainError("INVALID_ZIP", "ZIP code is required and cannot exceed 20 characters")
	}
	return nil
}
