package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
)

// CustomerPaymentProfile mirrors one stored payment instrument under a
// customer profile. The card number is only ever held in masked form;
// expiration date and card code are never written to this type.
type CustomerPaymentProfile struct {
	shared.BaseAggregateRoot
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

// TableName returns the table name for GORM
func (CustomerPaymentProfile) TableName() string {
	return "customer_payment_profiles"
}

// NewCustomerPaymentProfile creates a local mirror of a remote payment
// sub-profile. The payment data is reduced to the masked card number here;
// expiration and card code are dropped.
func NewCustomerPaymentProfile(customerProfileID uuid.UUID, paymentProfileID string, payment PaymentData, billingData BillingData) (*CustomerPaymentProfile, error) {
	if customerProfileID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROFILE", "Customer profile ID cannot be empty")
	}
	if paymentProfileID == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_PROFILE_ID", "Remote payment profile ID cannot be empty")
	}

	p := &CustomerPaymentProfile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerProfileID: customerProfileID,
		PaymentProfileID:  paymentProfileID,
		CardNumber:        MaskCardNumber(payment.CardNumber),
	}
	p.applyBilling(billingData)

	return p, nil
}

// newEmptyPaymentProfile creates a shell row for sync find-or-create
func newEmptyPaymentProfile(customerProfileID uuid.UUID, paymentProfileID string) *CustomerPaymentProfile {
	return &CustomerPaymentProfile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerProfileID: customerProfileID,
		PaymentProfileID:  paymentProfileID,
	}
}

// NewPaymentProfileFromRemote builds a local row for a remote sub-profile
// discovered during sync
func NewPaymentProfileFromRemote(customerProfileID uuid.UUID, remote RemotePaymentProfile) *CustomerPaymentProfile {
	p := newEmptyPaymentProfile(customerProfileID, remote.PaymentProfileID)
	p.SyncFromRemote(remote)
	return p
}

// ApplyUpdate mirrors a successful remote update into the local row.
// Billing fields are overwritten; payment data contributes only the masked
// card number.
func (p *CustomerPaymentProfile) ApplyUpdate(payment PaymentData, billingData BillingData) {
	p.applyBilling(billingData)
	if payment.CardNumber != "" {
		p.CardNumber = MaskCardNumber(payment.CardNumber)
	}
	p.touch()
}

// SyncFromRemote overwrites local fields with remote state. Only fields
// present in the remote payload are written; everything else keeps its
// prior value.
func (p *CustomerPaymentProfile) SyncFromRemote(remote RemotePaymentProfile) {
	if remote.Billing != nil {
		p.applyBilling(*remote.Billing)
	}
	if remote.CreditCard != nil && remote.CreditCard.CardNumber != "" {
		p.CardNumber = remote.CreditCard.CardNumber
	}
	p.touch()
}

func (p *CustomerPaymentProfile) applyBilling(b BillingData) {
	if b.FirstName != "" {
		p.FirstName = b.FirstName
	}
	if b.LastName != "" {
		p.LastName = b.LastName
	}
	if b.Company != "" {
		p.Company = b.Company
	}
	if b.Address != "" {
		p.Address = b.Address
	}
	if b.City != "" {
		p.City = b.City
	}
	if b.State != "" {
		p.State = b.State
	}
	if b.Zip != "" {
		p.Zip = b.Zip
	}
	if b.Country != "" {
		p.Country = b.Country
	}
	if b.Phone != "" {
		p.Phone = b.Phone
	}
	if b.Fax != "" {
		p.Fax = b.Fax
	}
}

func (p *CustomerPaymentProfile) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// BillingFields returns the stored billing identity, suitable for
// pre-filling payment forms
func (p *CustomerPaymentProfile) BillingFields() BillingData {
	return BillingData{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Company:   p.Company,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		Zip:       p.Zip,
		Country:   p.Country,
		Phone:     p.Phone,
		Fax:       p.Fax,
	}
}
