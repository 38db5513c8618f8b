package authorizenet

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/billing"
)

const defaultTimeout = 30 * time.Second

// Adapter implements billing.Gateway against the Authorize.Net CIM API
type Adapter struct {
	config     *Config
	httpClient *http.Client
}

// NewAdapter creates a new Authorize.Net CIM adapter
func NewAdapter(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// AddProfile registers a customer profile keyed by the user ID. When card
// data is present an initial payment sub-profile is created in the same
// call.
func (a *Adapter) AddProfile(ctx context.Context, userID uuid.UUID, payment billing.PaymentData, billingData billing.BillingData) (string, []string, error) {
	req := createCustomerProfileRequest{
		XMLNS:                  anetXMLNS,
		MerchantAuthentication: a.auth(),
		Profile: customerProfile{
			MerchantCustomerID: userID.String(),
		},
	}
	if payment.CardNumber != "" {
		req.Profile.PaymentProfiles = []paymentProfile{
			{
				BillTo:  toBillTo(billingData),
				Payment: toPayment(payment),
			},
		}
	}

	var resp createCustomerProfileResponse
	if err := a.do(ctx, req, &resp); err != nil {
		return "", nil, err
	}
	if err := checkMessages(resp.Messages); err != nil {
		return "", nil, err
	}

	return resp.CustomerProfileID, resp.CustomerPaymentProfileIDList.NumericString, nil
}

// GetProfile fetches the remote profile and its payment sub-profiles
func (a *Adapter) GetProfile(ctx context.Context, profileID string) ([]billing.RemotePaymentProfile, error) {
	req := getCustomerProfileRequest{
		XMLNS:                  anetXMLNS,
		MerchantAuthentication: a.auth(),
		CustomerProfileID:      profileID,
	}

	var resp getCustomerProfileResponse
	if err := a.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	if err := checkMessages(resp.Messages); err != nil {
		return nil, err
	}

	profiles := make([]billing.RemotePaymentProfile, len(resp.Profile.PaymentProfiles))
	for i, remote := range resp.Profile.PaymentProfiles {
		profiles[i] = toDomainPaymentProfile(remote)
	}
	return profiles, nil
}

// CreatePaymentProfile creates a payment sub-profile under an existing
// remote profile
func (a *Adapter) CreatePaymentProfile(ctx context.Context, profileID string, payment billing.PaymentData, billingData billing.BillingData) (string, error) {
	req := createCustomerPaymentProfileRequest{
		XMLNS:                  anetXMLNS,
		MerchantAuthentication: a.auth(),
		CustomerProfileID:      profileID,
		PaymentProfile: paymentProfile{
			BillTo:  toBillTo(billingData),
			Payment: toPayment(payment),
		},
	}

	var resp createCustomerPaymentProfileResponse
	if err := a.do(ctx, req, &resp); err != nil {
		return "", err
	}
	if err := checkMessages(resp.Messages); err != nil {
		return "", err
	}

	return resp.CustomerPaymentProfileID, nil
}

// UpdatePaymentProfile replaces the stored card and billing data of a
// remote payment sub-profile
func (a *Adapter) UpdatePaymentProfile(ctx context.Context, profileID, paymentProfileID string, payment billing.PaymentData, billingData billing.BillingData) error {
	req := updateCustomerPaymentProfileRequest{
		XMLNS:                  anetXMLNS,
		MerchantAuthentication: a.auth(),
		CustomerProfileID:      profileID,
		PaymentProfile: paymentProfileWithID{
			BillTo:                   toBillTo(billingData),
			Payment:                  toPayment(payment),
			CustomerPaymentProfileID: paymentProfileID,
		},
	}

	var resp updateCustomerPaymentProfileResponse
	if err := a.do(ctx, req, &resp); err != nil {
		return err
	}
	return checkMessages(resp.Messages)
}

// DeletePaymentProfile removes a remote payment sub-profile
func (a *Adapter) DeletePaymentProfile(ctx context.Context, profileID, paymentProfileID string) error {
	req := deleteCustomerPaymentProfileRequest{
		XMLNS:                    anetXMLNS,
		MerchantAuthentication:   a.auth(),
		CustomerProfileID:        profileID,
		CustomerPaymentProfileID: paymentProfileID,
	}

	var resp deleteCustomerPaymentProfileResponse
	if err := a.do(ctx, req, &resp); err != nil {
		return err
	}
	return checkMessages(resp.Messages)
}

func (a *Adapter) auth() merchantAuthentication {
	return merchantAuthentication{
		Name:           a.config.LoginID,
		TransactionKey: a.config.TransactionKey,
	}
}

// do posts the XML request and decodes the response into out
func (a *Adapter) do(ctx context.Context, request any, out any) error {
	body, err := xml.Marshal(request)
	if err != nil {
		return fmt.Errorf("authorizenet: failed to marshal request: %w", err)
	}
	body = append([]byte(xml.Header), body...)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.URL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("authorizenet: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml")

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("authorizenet: request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("authorizenet: failed to read response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("authorizenet: unexpected status %d", httpResp.StatusCode)
	}

	if err := xml.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("authorizenet: failed to parse response: %w", err)
	}
	return nil
}

// checkMessages converts an Error result into a BillingError carrying the
// gateway's code and text
func checkMessages(m messages) error {
	if m.ResultCode == resultCodeOk {
		return nil
	}

	code, text := "", ""
	if len(m.Messages) > 0 {
		code = m.Messages[0].Code
		text = m.Messages[0].Text
	}
	return billing.NewBillingError(code, text)
}

func toBillTo(b billing.BillingData) *billTo {
	bt := billTo{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Company:     b.Company,
		Address:     b.Address,
		City:        b.City,
		State:       b.State,
		Zip:         b.Zip,
		Country:     b.Country,
		PhoneNumber: b.Phone,
		FaxNumber:   b.Fax,
	}
	if bt == (billTo{}) {
		return nil
	}
	return &bt
}

func toPayment(p billing.PaymentData) *paymentType {
	if p.CardNumber == "" {
		return nil
	}
	return &paymentType{
		CreditCard: creditCard{
			CardNumber:     p.CardNumber,
			ExpirationDate: p.ExpirationDate,
			CardCode:       p.CardCode,
		},
	}
}

func toDomainPaymentProfile(remote remotePaymentProfile) billing.RemotePaymentProfile {
	profile := billing.RemotePaymentProfile{
		PaymentProfileID: remote.CustomerPaymentProfileID,
	}
	if remote.BillTo != nil {
		profile.Billing = &billing.BillingData{
			FirstName: remote.BillTo.FirstName,
			LastName:  remote.BillTo.LastName,
			Company:   remote.BillTo.Company,
			Address:   remote.BillTo.Address,
			City:      remote.BillTo.City,
			State:     remote.BillTo.State,
			Zip:       remote.BillTo.Zip,
			Country:   remote.BillTo.Country,
			Phone:     remote.BillTo.PhoneNumber,
			Fax:       remote.BillTo.FaxNumber,
		}
	}
	if remote.Payment != nil && remote.Payment.CreditCard.CardNumber != "" {
		profile.CreditCard = &billing.RemoteCreditCard{
			CardNumber: remote.Payment.CreditCard.CardNumber,
		}
	}
	return profile
}

// Ensure Adapter implements billing.Gateway
var _ billing.Gateway = (*Adapter)(nil)
