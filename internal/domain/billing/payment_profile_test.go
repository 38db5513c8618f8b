package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaymentData() PaymentData {
	return PaymentData{
		CardNumber:     "4111111111111111",
		ExpirationDate: "2027-11",
		CardCode:       "123",
	}
}

func testBillingData() BillingData {
	return BillingData{
		FirstName: "Danielle",
		LastName:  "Thompson",
		Company:   "Acme",
		Address:   "101 Broadway",
		City:      "New York",
		State:     "NY",
		Zip:       "10001",
		Country:   "USA",
		Phone:     "212-555-0100",
	}
}

func TestNewCustomerPaymentProfile(t *testing.T) {
	profileID := uuid.New()

	t.Run("masks card number and keeps billing fields", func(t *testing.T) {
		p, err := NewCustomerPaymentProfile(profileID, "2001", testPaymentData(), testBillingData())
		require.NoError(t, err)

		assert.Equal(t, "XXXX1111", p.CardNumber)
		assert.Equal(t, "2001", p.PaymentProfileID)
		assert.Equal(t, "Danielle", p.FirstName)
		assert.Equal(t, "NY", p.State)
	})

	t.Run("rejects missing parent profile", func(t *testing.T) {
		_, err := NewCustomerPaymentProfile(uuid.Nil, "2001", testPaymentData(), testBillingData())
		assert.Error(t, err)
	})

	t.Run("rejects missing remote id", func(t *testing.T) {
		_, err := NewCustomerPaymentProfile(profileID, "", testPaymentData(), testBillingData())
		assert.Error(t, err)
	})
}

func TestCustomerPaymentProfile_ApplyUpdate(t *testing.T) {
	p, err := NewCustomerPaymentProfile(uuid.New(), "2001", testPaymentData(), testBillingData())
	require.NoError(t, err)

	p.ApplyUpdate(
		PaymentData{CardNumber: "5424000000000015", ExpirationDate: "2028-01", CardCode: "999"},
		BillingData{FirstName: "Dana", City: "Brooklyn"},
	)

	assert.Equal(t, "XXXX0015", p.CardNumber)
	assert.Equal(t, "Dana", p.FirstName)
	assert.Equal(t, "Brooklyn", p.City)
	// Fields absent from the update keep their prior values
	assert.Equal(t, "Thompson", p.LastName)
	assert.Equal(t, "10001", p.Zip)
}

func TestCustomerPaymentProfile_SyncFromRemote(t *testing.T) {
	t.Run("overwrites only fields present in remote payload", func(t *testing.T) {
		p, err := NewCustomerPaymentProfile(uuid.New(), "2001", testPaymentData(), testBillingData())
		require.NoError(t, err)

		p.SyncFromRemote(RemotePaymentProfile{
			PaymentProfileID: "2001",
			Billing:          &BillingData{FirstName: "Remote", Zip: "94105"},
			CreditCard:       &RemoteCreditCard{CardNumber: "XXXX0015"},
		})

		assert.Equal(t, "Remote", p.FirstName)
		assert.Equal(t, "94105", p.Zip)
		assert.Equal(t, "XXXX0015", p.CardNumber)
		assert.Equal(t, "Thompson", p.LastName)
		assert.Equal(t, "New York", p.City)
	})

	t.Run("nil sections leave local state untouched", func(t *testing.T) {
		p, err := NewCustomerPaymentProfile(uuid.New(), "2001", testPaymentData(), testBillingData())
		require.NoError(t, err)

		p.SyncFromRemote(RemotePaymentProfile{PaymentProfileID: "2001"})

		assert.Equal(t, "XXXX1111", p.CardNumber)
		assert.Equal(t, "Danielle", p.FirstName)
	})
}

func TestNewPaymentProfileFromRemote(t *testing.T) {
	profileID := uuid.New()
	p := NewPaymentProfileFromRemote(profileID, RemotePaymentProfile{
		PaymentProfileID: "3003",
		Billing:          &BillingData{LastName: "Nguyen"},
		CreditCard:       &RemoteCreditCard{CardNumber: "XXXX4444"},
	})

	assert.Equal(t, profileID, p.CustomerProfileID)
	assert.Equal(t, "3003", p.PaymentProfileID)
	assert.Equal(t, "Nguyen", p.LastName)
	assert.Equal(t, "XXXX4444", p.CardNumber)
}
