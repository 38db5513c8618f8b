package authorizenet

import "encoding/xml"

// CIM request and response payloads. The API is XML over HTTP POST; every
// request carries the merchant credentials and every response carries a
// messages block whose resultCode is "Ok" or "Error".

const anetXMLNS = "AnetApi/xml/v1/schema/AnetApiSchema.xsd"

const resultCodeOk = "Ok"

type merchantAuthentication struct {
	Name           string `xml:"name"`
	TransactionKey string `xml:"transactionKey"`
}

type message struct {
	Code string `xml:"code"`
	Text string `xml:"text"`
}

type messages struct {
	ResultCode string    `xml:"resultCode"`
	Messages   []message `xml:"message"`
}

type billTo struct {
	FirstName   string `xml:"firstName,omitempty"`
	LastName    string `xml:"lastName,omitempty"`
	Company     string `xml:"company,omitempty"`
	Address     string `xml:"address,omitempty"`
	City        string `xml:"city,omitempty"`
	State       string `xml:"state,omitempty"`
	Zip         string `xml:"zip,omitempty"`
	Country     string `xml:"country,omitempty"`
	PhoneNumber string `xml:"phoneNumber,omitempty"`
	FaxNumber   string `xml:"faxNumber,omitempty"`
}

type creditCard struct {
	CardNumber     string `xml:"cardNumber"`
	ExpirationDate string `xml:"expirationDate"`
	CardCode       string `xml:"cardCode,omitempty"`
}

type paymentType struct {
	CreditCard creditCard `xml:"creditCard"`
}

type paymentProfile struct {
	BillTo  *billTo      `xml:"billTo,omitempty"`
	Payment *paymentType `xml:"payment,omitempty"`
}

type paymentProfileWithID struct {
	BillTo                   *billTo      `xml:"billTo,omitempty"`
	Payment                  *paymentType `xml:"payment,omitempty"`
	CustomerPaymentProfileID string       `xml:"customerPaymentProfileId"`
}

// createCustomerProfileRequest registers a new customer profile, optionally
// with initial payment profiles
type createCustomerProfileRequest struct {
	XMLName                xml.Name               `xml:"createCustomerProfileRequest"`
	XMLNS                  string                 `xml:"xmlns,attr"`
	MerchantAuthentication merchantAuthentication `xml:"merchantAuthentication"`
	Profile                customerProfile        `xml:"profile"`
}

type customerProfile struct {
	MerchantCustomerID string           `xml:"merchantCustomerId"`
	PaymentProfiles    []paymentProfile `xml:"paymentProfiles,omitempty"`
}

type createCustomerProfileResponse struct {
	XMLName                      xml.Name `xml:"createCustomerProfileResponse"`
	Messages                     messages `xml:"messages"`
	CustomerProfileID            string   `xml:"customerProfileId"`
	CustomerPaymentProfileIDList struct {
		NumericString []string `xml:"numericString"`
	} `xml:"customerPaymentProfileIdList"`
}

// getCustomerProfileRequest fetches the remote state of a customer profile
type getCustomerProfileRequest struct {
	XMLName                xml.Name               `xml:"getCustomerProfileRequest"`
	XMLNS                  string                 `xml:"xmlns,attr"`
	MerchantAuthentication merchantAuthentication `xml:"merchantAuthentication"`
	CustomerProfileID      string                 `xml:"customerProfileId"`
}

type getCustomerProfileResponse struct {
	XMLName  xml.Name `xml:"getCustomerProfileResponse"`
	Messages messages `xml:"messages"`
	Profile  struct {
		MerchantCustomerID string                  `xml:"merchantCustomerId"`
		CustomerProfileID  string                  `xml:"customerProfileId"`
		PaymentProfiles    []remotePaymentProfile  `xml:"paymentProfiles"`
	} `xml:"profile"`
}

type remotePaymentProfile struct {
	CustomerPaymentProfileID string       `xml:"customerPaymentProfileId"`
	BillTo                   *billTo      `xml:"billTo"`
	Payment                  *paymentType `xml:"payment"`
}

// createCustomerPaymentProfileRequest adds a payment profile to an
// existing customer profile
type createCustomerPaymentProfileRequest struct {
	XMLName                xml.Name               `xml:"createCustomerPaymentProfileRequest"`
	XMLNS                  string                 `xml:"xmlns,attr"`
	MerchantAuthentication merchantAuthentication `xml:"merchantAuthentication"`
	CustomerProfileID      string                 `xml:"customerProfileId"`
	PaymentProfile         paymentProfile         `xml:"paymentProfile"`
}

type createCustomerPaymentProfileResponse struct {
	XMLName                  xml.Name `xml:"createCustomerPaymentProfileResponse"`
	Messages                 messages `xml:"messages"`
	CustomerPaymentProfileID string   `xml:"customerPaymentProfileId"`
}

// updateCustomerPaymentProfileRequest replaces the stored card and billing
// address of a payment profile
type updateCustomerPaymentProfileRequest struct {
	XMLName                xml.Name               `xml:"updateCustomerPaymentProfileRequest"`
	XMLNS                  string                 `xml:"xmlns,attr"`
	MerchantAuthentication merchantAuthentication `xml:"merchantAuthentication"`
	CustomerProfileID      string                 `xml:"customerProfileId"`
	PaymentProfile         paymentProfileWithID   `xml:"paymentProfile"`
}

type updateCustomerPaymentProfileResponse struct {
	XMLName  xml.Name `xml:"updateCustomerPaymentProfileResponse"`
	Messages messages `xml:"messages"`
}

// deleteCustomerPaymentProfileRequest removes a payment profile from a
// customer profile
type deleteCustomerPaymentProfileRequest struct {
	XMLName                  xml.Name               `xml:"deleteCustomerPaymentProfileRequest"`
	XMLNS                    string                 `xml:"xmlns,attr"`
	MerchantAuthentication   merchantAuthentication `xml:"merchantAuthentication"`
	CustomerProfileID        string                 `xml:"customerProfileId"`
	CustomerPaymentProfileID string                 `xml:"customerPaymentProfileId"`
}

type deleteCustomerPaymentProfileResponse struct {
	XMLName  xml.Name `xml:"deleteCustomerPaymentProfileResponse"`
	Messages messages `xml:"messages"`
}
