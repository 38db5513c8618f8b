package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samplestore/backend/internal/domain/store"
)

// CustomerModel is the persistence model for store.Customer
type CustomerModel struct {
	AggregateModel
	UserID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ShippingSameAsBilling bool      `gorm:"not null;default:true"`
}

// TableName returns the table name
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to a domain Customer
func (m *CustomerModel) ToDomain() *store.Customer {
	customer := &store.Customer{
		UserID:                m.UserID,
		ShippingSameAsBilling: m.ShippingSameAsBilling,
	}
	m.PopulateAggregateRoot(&customer.BaseAggregateRoot)
	return customer
}

// CustomerModelFromDomain converts a domain Customer to a persistence model
func CustomerModelFromDomain(c *store.Customer) *CustomerModel {
	model := &CustomerModel{
		UserID:                c.UserID,
		ShippingSameAsBilling: c.ShippingSameAsBilling,
	}
	model.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return model
}

// AddressModel is the persistence model for store.Address
type AddressModel struct {
	AggregateModel
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(10);not null"`
	FirstName  string    `gorm:"type:varchar(50);not null"`
	LastName   string    `gorm:"type:varchar(50);not null"`
	Company    string    `gorm:"type:varchar(50)"`
	Street     string    `gorm:"type:varchar(60);not null"`
	City       string    `gorm:"type:varchar(40);not null"`
	State      string    `gorm:"type:varchar(2);not null"`
	ZipCode    string    `gorm:"type:varchar(20);not null"`
	Phone      string    `gorm:"type:varchar(25)"`
	Fax        string    `gorm:"type:varchar(25)"`
}

// TableName returns the table name
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the model to a domain Address
func (m *AddressModel) ToDomain() *store.Address {
	address := &store.Address{
		CustomerID: m.CustomerID,
		Type:       store.AddressType(m.Type),
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Company:    m.Company,
		Street:     m.Street,
		City:       m.City,
		State:      m.State,
		ZipCode:    m.ZipCode,
		Phone:      m.Phone,
		Fax:        m.Fax,
	}
	m.PopulateAggregateRoot(&address.BaseAggregateRoot)
	return address
}

// AddressModelFromDomain converts a domain Address to a persistence model
func AddressModelFromDomain(a *store.Address) *AddressModel {
	model := &AddressModel{
		CustomerID: a.CustomerID,
		Type:       string(a.Type),
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Company:    a.Company,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		Phone:      a.Phone,
		Fax:        a.Fax,
	}
	model.FromDomainAggregateRoot(a.BaseAggregateRoot)
	return model
}

// ItemModel is the persistence model for store.Item
type ItemModel struct {
	AggregateModel
	Title string          `gorm:"type:varchar(55);not null"`
	Price decimal.Decimal `gorm:"type:decimal(8,2);not null"`
}

// TableName returns the table name
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the model to a domain Item
func (m *ItemModel) ToDomain() *store.Item {
	item := &store.Item{
		Title: m.Title,
		Price: m.Price,
	}
	m.PopulateAggregateRoot(&item.BaseAggregateRoot)
	return item
}

// ItemModelFromDomain converts a domain Item to a persistence model
func ItemModelFromDomain(i *store.Item) *ItemModel {
	model := &ItemModel{
		Title: i.Title,
		Price: i.Price,
	}
	model.FromDomainAggregateRoot(i.BaseAggregateRoot)
	return model
}

// InvoiceModel is the persistence model for store.Invoice
type InvoiceModel struct {
	AggregateModel
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain Invoice
func (m *InvoiceModel) ToDomain() *store.Invoice {
	invoice := &store.Invoice{
		CustomerID: m.CustomerID,
		ItemID:     m.ItemID,
	}
	m.PopulateAggregateRoot(&invoice.BaseAggregateRoot)
	return invoice
}

// InvoiceModelFromDomain converts a domain Invoice to a persistence model
func InvoiceModelFromDomain(i *store.Invoice) *InvoiceModel {
	model := &InvoiceModel{
		CustomerID: i.CustomerID,
		ItemID:     i.ItemID,
	}
	model.FromDomainAggregateRoot(i.BaseAggregateRoot)
	return model
}
