package authorizenet

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplestore/backend/internal/domain/billing"
)

// newTestAdapter points the adapter at a local server returning the given
// XML body, and captures each request body for inspection
func newTestAdapter(t *testing.T, responseXML string, captured *[]string) *Adapter {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if captured != nil {
			*captured = append(*captured, string(body))
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(responseXML))
	}))
	t.Cleanup(server.Close)

	adapter, err := NewAdapter(&Config{
		LoginID:        "login",
		TransactionKey: "key",
		Endpoint:       server.URL,
	})
	require.NoError(t, err)
	return adapter
}

func TestNewAdapter(t *testing.T) {
	t.Run("rejects missing credentials", func(t *testing.T) {
		_, err := NewAdapter(&Config{TransactionKey: "key"})
		assert.Equal(t, ErrMissingLoginID, err)

		_, err = NewAdapter(&Config{LoginID: "login"})
		assert.Equal(t, ErrMissingTransactionKey, err)
	})

	t.Run("sandbox flag selects test endpoint", func(t *testing.T) {
		cfg := &Config{LoginID: "login", TransactionKey: "key", Sandbox: true}
		assert.Equal(t, SandboxEndpoint, cfg.URL())

		cfg.Sandbox = false
		assert.Equal(t, ProductionEndpoint, cfg.URL())
	})
}

func TestAdapter_AddProfile(t *testing.T) {
	t.Run("returns remote identifiers on success", func(t *testing.T) {
		var captured []string
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<createCustomerProfileResponse xmlns="AnetApi/xml/v1/schema/AnetApiSchema.xsd">
  <messages>
    <resultCode>Ok</resultCode>
    <message><code>I00001</code><text>Successful.</text></message>
  </messages>
  <customerProfileId>10001</customerProfileId>
  <customerPaymentProfileIdList>
    <numericString>20001</numericString>
  </customerPaymentProfileIdList>
</createCustomerProfileResponse>`, &captured)

		userID := uuid.New()
		profileID, paymentProfileIDs, err := adapter.AddProfile(context.Background(), userID,
			billing.PaymentData{CardNumber: "4111111111111111", ExpirationDate: "2029-12", CardCode: "123"},
			billing.BillingData{FirstName: "Jane", LastName: "Doe"},
		)

		require.NoError(t, err)
		assert.Equal(t, "10001", profileID)
		assert.Equal(t, []string{"20001"}, paymentProfileIDs)

		require.Len(t, captured, 1)
		assert.Contains(t, captured[0], "<merchantCustomerId>"+userID.String()+"</merchantCustomerId>")
		assert.Contains(t, captured[0], "<cardNumber>4111111111111111</cardNumber>")
		assert.Contains(t, captured[0], "<name>login</name>")
	})

	t.Run("omits payment profile when no card data given", func(t *testing.T) {
		var captured []string
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<createCustomerProfileResponse>
  <messages><resultCode>Ok</resultCode></messages>
  <customerProfileId>10002</customerProfileId>
</createCustomerProfileResponse>`, &captured)

		profileID, paymentProfileIDs, err := adapter.AddProfile(context.Background(), uuid.New(),
			billing.PaymentData{}, billing.BillingData{})

		require.NoError(t, err)
		assert.Equal(t, "10002", profileID)
		assert.Empty(t, paymentProfileIDs)
		assert.NotContains(t, captured[0], "<paymentProfiles>")
	})

	t.Run("declined response yields BillingError", func(t *testing.T) {
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<createCustomerProfileResponse>
  <messages>
    <resultCode>Error</resultCode>
    <message><code>E00027</code><text>The transaction was unsuccessful.</text></message>
  </messages>
</createCustomerProfileResponse>`, nil)

		_, _, err := adapter.AddProfile(context.Background(), uuid.New(),
			billing.PaymentData{CardNumber: "4111111111111111"}, billing.BillingData{})

		require.Error(t, err)
		assert.True(t, billing.IsBillingError(err))

		var billingErr *billing.BillingError
		require.ErrorAs(t, err, &billingErr)
		assert.Equal(t, "E00027", billingErr.Code)
	})
}

func TestAdapter_GetProfile(t *testing.T) {
	t.Run("maps payment profiles to domain payloads", func(t *testing.T) {
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<getCustomerProfileResponse>
  <messages><resultCode>Ok</resultCode></messages>
  <profile>
    <merchantCustomerId>abc</merchantCustomerId>
    <customerProfileId>10001</customerProfileId>
    <paymentProfiles>
      <customerPaymentProfileId>20001</customerPaymentProfileId>
      <billTo>
        <firstName>Jane</firstName>
        <lastName>Doe</lastName>
        <city>Portland</city>
      </billTo>
      <payment>
        <creditCard><cardNumber>XXXX1111</cardNumber></creditCard>
      </payment>
    </paymentProfiles>
    <paymentProfiles>
      <customerPaymentProfileId>20002</customerPaymentProfileId>
    </paymentProfiles>
  </profile>
</getCustomerProfileResponse>`, nil)

		profiles, err := adapter.GetProfile(context.Background(), "10001")

		require.NoError(t, err)
		require.Len(t, profiles, 2)

		assert.Equal(t, "20001", profiles[0].PaymentProfileID)
		require.NotNil(t, profiles[0].Billing)
		assert.Equal(t, "Jane", profiles[0].Billing.FirstName)
		require.NotNil(t, profiles[0].CreditCard)
		assert.Equal(t, "XXXX1111", profiles[0].CreditCard.CardNumber)

		assert.Equal(t, "20002", profiles[1].PaymentProfileID)
		assert.Nil(t, profiles[1].CreditCard)
	})

	t.Run("error result yields BillingError", func(t *testing.T) {
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<getCustomerProfileResponse>
  <messages>
    <resultCode>Error</resultCode>
    <message><code>E00040</code><text>The record cannot be found.</text></message>
  </messages>
</getCustomerProfileResponse>`, nil)

		_, err := adapter.GetProfile(context.Background(), "99999")
		assert.True(t, billing.IsBillingError(err))
	})
}

func TestAdapter_CreatePaymentProfile(t *testing.T) {
	t.Run("returns new sub-profile id", func(t *testing.T) {
		var captured []string
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<createCustomerPaymentProfileResponse>
  <messages><resultCode>Ok</resultCode></messages>
  <customerPaymentProfileId>20003</customerPaymentProfileId>
</createCustomerPaymentProfileResponse>`, &captured)

		paymentProfileID, err := adapter.CreatePaymentProfile(context.Background(), "10001",
			billing.PaymentData{CardNumber: "4242424242424242", ExpirationDate: "2030-01"},
			billing.BillingData{FirstName: "Jane"},
		)

		require.NoError(t, err)
		assert.Equal(t, "20003", paymentProfileID)
		assert.Contains(t, captured[0], "<customerProfileId>10001</customerProfileId>")
	})
}

func TestAdapter_UpdatePaymentProfile(t *testing.T) {
	t.Run("sends sub-profile id with new payment data", func(t *testing.T) {
		var captured []string
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<updateCustomerPaymentProfileResponse>
  <messages><resultCode>Ok</resultCode></messages>
</updateCustomerPaymentProfileResponse>`, &captured)

		err := adapter.UpdatePaymentProfile(context.Background(), "10001", "20001",
			billing.PaymentData{CardNumber: "4242424242424242", ExpirationDate: "2030-01"},
			billing.BillingData{LastName: "Smith"},
		)

		require.NoError(t, err)
		assert.Contains(t, captured[0], "<customerPaymentProfileId>20001</customerPaymentProfileId>")
		assert.Contains(t, captured[0], "<lastName>Smith</lastName>")
	})

	t.Run("declined update yields BillingError", func(t *testing.T) {
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<updateCustomerPaymentProfileResponse>
  <messages>
    <resultCode>Error</resultCode>
    <message><code>E00027</code><text>The transaction was unsuccessful.</text></message>
  </messages>
</updateCustomerPaymentProfileResponse>`, nil)

		err := adapter.UpdatePaymentProfile(context.Background(), "10001", "20001",
			billing.PaymentData{CardNumber: "4242424242424242"}, billing.BillingData{})

		assert.True(t, billing.IsBillingError(err))
	})
}

func TestAdapter_DeletePaymentProfile(t *testing.T) {
	t.Run("succeeds on Ok result", func(t *testing.T) {
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<deleteCustomerPaymentProfileResponse>
  <messages><resultCode>Ok</resultCode></messages>
</deleteCustomerPaymentProfileResponse>`, nil)

		err := adapter.DeletePaymentProfile(context.Background(), "10001", "20001")
		assert.NoError(t, err)
	})

	t.Run("error result yields BillingError", func(t *testing.T) {
		adapter := newTestAdapter(t, `<?xml version="1.0" encoding="utf-8"?>
<deleteCustomerPaymentProfileResponse>
  <messages>
    <resultCode>Error</resultCode>
    <message><code>E00040</code><text>The record cannot be found.</text></message>
  </messages>
</deleteCustomerPaymentProfileResponse>`, nil)

		err := adapter.DeletePaymentProfile(context.Background(), "10001", "20001")
		assert.True(t, billing.IsBillingError(err))
	})
}
