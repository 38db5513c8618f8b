package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/samplestore/backend/internal/domain/billing"
)

// PaymentInput carries raw card data from the client. It is forwarded to
// the gateway and never stored; only the masked card number survives.
type PaymentInput struct {
	CardNumber     string `json:"card_number" binding:"required,cardnumber"`
	ExpirationDate string `json:"expiration_date" binding:"required"`
	CardCode       string `json:"card_code" binding:"omitempty,min=3,max=4"`
}

// ToPaymentData converts the input to the domain payment payload
func (p PaymentInput) ToPaymentData() billing.PaymentData {
	return billing.PaymentData{
		CardNumber:     p.CardNumber,
		ExpirationDate: p.ExpirationDate,
		CardCode:       p.CardCode,
	}
}

// BillingInput carries the billing identity attached to a card
type BillingInput struct {
	FirstName string `json:"first_name" binding:"max=50"`
	LastName  string `json:"last_name" binding:"max=50"`
	Company   string `json:"company" binding:"max=50"`
	Address   string `json:"address" binding:"max=60"`
	City      string `json:"city" binding:"max=40"`
	State     string `json:"state" binding:"max=40"`
	Zip       string `json:"zip" binding:"max=20"`
	Country   string `json:"country" binding:"max=60"`
	Phone     string `json:"phone" binding:"max=25"`
	Fax       string `json:"fax" binding:"max=25"`
}

// ToBillingData converts the input to the domain billing payload
func (b BillingInput) ToBillingData() billing.BillingData {
	return billing.BillingData{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Company:   b.Company,
		Address:   b.Address,
		City:      b.City,
		State:     b.State,
		Zip:       b.Zip,
		Country:   b.Country,
		Phone:     b.Phone,
		Fax:       b.Fax,
	}
}

// CreateProfileRequest represents a request to register a customer profile
// with the gateway
type CreateProfileRequest struct {
	UserID  uuid.UUID     `json:"user_id" binding:"required"`
	Payment *PaymentInput `json:"payment"`
	Billing BillingInput  `json:"billing"`
}

// CreatePaymentProfileRequest represents a request to add a payment
// profile. When Remote is false the remote sub-profile already exists and
// only the local mirror is written; PaymentProfileID must then be set.
type CreatePaymentProfileRequest struct {
	Remote           bool         `json:"remote"`
	PaymentProfileID string       `json:"payment_profile_id" binding:"required_if=Remote false"`
	Payment          PaymentInput `json:"payment" binding:"required"`
	Billing          BillingInput `json:"billing"`
}

// UpdatePaymentProfileRequest represents a request to replace the card and
// billing data of a payment profile
type UpdatePaymentProfileRequest struct {
	Payment PaymentInput `json:"payment" binding:"required"`
	Billing BillingInput `json:"billing"`
}

// PaymentNotificationRequest is the gateway's payment result callback
type PaymentNotificationRequest struct {
	TransactionID string          `form:"x_trans_id" json:"transaction_id"`
	Amount        decimal.Decimal `form:"x_amount" json:"amount"`
	ResponseCode  string          `form:"x_response_code" json:"response_code"`
}

// ProfileResponse represents a customer profile in API responses
type ProfileResponse struct {
	ID              uuid.UUID                `json:"id"`
	UserID          uuid.UUID                `json:"user_id"`
	ProfileID       string                   `json:"profile_id"`
	PaymentProfiles []PaymentProfileResponse `json:"payment_profiles,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// ToProfileResponse converts a domain CustomerProfile to a ProfileResponse
func ToProfileResponse(profile *billing.CustomerProfile, paymentProfiles []billing.CustomerPaymentProfile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:        profile.ID,
		UserID:    profile.UserID,
		ProfileID: profile.ProfileID,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
	for i := range paymentProfiles {
		resp.PaymentProfiles = append(resp.PaymentProfiles, *ToPaymentProfileResponse(&paymentProfiles[i]))
	}
	return resp
}

// PaymentProfileResponse represents a payment profile in API responses.
// CardNumber is always masked.
type PaymentProfileResponse struct {
	ID                uuid.UUID `json:"id"`
	CustomerProfileID uuid.UUID `json:"customer_profile_id"`
	PaymentProfileID  string    `json:"payment_profile_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Company           string    `json:"company"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Zip               string    `json:"zip"`
	Country           string    `json:"country"`
	Phone             string    `json:"phone"`
	Fax               string    `json:"fax"`
	CardNumber        string    `json:"card_number"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToPaymentProfileResponse converts a domain CustomerPaymentProfile to a
// PaymentProfileResponse
func ToPaymentProfileResponse(p *billing.CustomerPaymentProfile) *PaymentProfileResponse {
	return &PaymentProfileResponse{
		ID:                p.ID,
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
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
