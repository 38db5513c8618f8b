package models

import (
	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/billing"
)

// CustomerProfileModel is the persistence model for billing.CustomerProfile
type CustomerProfileModel struct {
	AggregateModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProfileID string    `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// ToDomain converts the model to a domain CustomerProfile
func (m *CustomerProfileModel) ToDomain() *billing.CustomerProfile {
	profile := &billing.CustomerProfile{
		UserID:    m.UserID,
		ProfileID: m.ProfileID,
	}
	m.PopulateAggregateRoot(&profile.BaseAggregateRoot)
	return profile
}

// CustomerProfileModelFromDomain converts a domain CustomerProfile to a persistence model
func CustomerProfileModelFromDomain(p *billing.CustomerProfile) *CustomerProfileModel {
	model := &CustomerProfileModel{
		UserID:    p.UserID,
		ProfileID: p.ProfileID,
	}
	model.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return model
}

// PaymentProfileModel is the persistence model for billing.CustomerPaymentProfile.
// Card numbers are stored in masked form only; expiration dates and card
// codes have no columns.
type PaymentProfileModel struct {
	AggregateModel
	CustomerProfileID uuid.UUID `gorm:"type:uuid;not null;index:idx_payment_profile_remote,unique,priority:1"`
	PaymentProfileID  string    `gorm:"type:varchar(50);not null;index:idx_payment_profile_remote,unique,priority:2"`
	FirstName         string    `gorm:"type:varchar(50)"`
	LastName          string    `gorm:"type:varchar(50)"`
	Company           string    `gorm:"type:varchar(50)"`
	Address           string    `gorm:"type:varchar(60)"`
	City              string    `gorm:"type:varchar(40)"`
	State             string    `gorm:"type:varchar(40)"`
	Zip               string    `gorm:"type:varchar(20)"`
	Country           string    `gorm:"type:varchar(60)"`
	Phone             string    `gorm:"type:varchar(25)"`
	Fax               string    `gorm:"type:varchar(25)"`
	CardNumber        string    `gorm:"type:varchar(16)"`
}

// TableName returns the table name
func (PaymentProfileModel) TableName() string {
	return "customer_payment_profiles"
}

// ToDomain converts the model to a domain CustomerPaymentProfile
func (m *PaymentProfileModel) ToDomain() *billing.CustomerPaymentProfile {
	profile := &billing.CustomerPaymentProfile{
		CustomerProfileID: m.CustomerProfileID,
		PaymentProfileID:  m.PaymentProfileID,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Company:           m.Company,
		Address:           m.Address,
		City:              m.City,
		State:             m.State,
		Zip:               m.Zip,
		Country:           m.Country,
		Phone:             m.Phone,
		Fax:               m.Fax,
		CardNumber:        m.CardNumber,
	}
	m.PopulateAggregateRoot(&profile.BaseAggregateRoot)
	return profile
}

// PaymentProfileModelFromDomain converts a domain CustomerPaymentProfile to a persistence model
func PaymentProfileModelFromDomain(p *billing.CustomerPaymentProfile) *PaymentProfileModel {
	model := &PaymentProfileModel{
		CustomerProfileID: p.CustomerProfileID,
		PaymentProfileID:  p.PaymentProfileID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Company:           p.Company,
		Address:           p.Address,
		City:              p.City,
		State:             p.State,
		Zip:               p.Zip,
		Country:           p.Country,
		Phone:             p.Phone,
		Fax:               p.Fax,
		CardNumber:        p.CardNumber,
	}
	model.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return model
}
