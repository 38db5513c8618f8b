package authorizenet

import (
	"errors"
	"time"
)

const (
	// ProductionEndpoint is the live CIM API endpoint
	ProductionEndpoint = "https://api.authorize.net/xml/v1/request.api"
	// SandboxEndpoint is the test CIM API endpoint
	SandboxEndpoint = "https://apitest.authorize.net/xml/v1/request.api"
)

// Config contains credentials and connection settings for the
// Authorize.Net CIM API
type Config struct {
	// LoginID is the merchant API login ID
	LoginID string
	// TransactionKey is the merchant transaction key
	TransactionKey string
	// Sandbox selects the test endpoint when true
	Sandbox bool
	// Endpoint overrides the default endpoint when non-empty.
	// Used by tests to point at a local server.
	Endpoint string
	// Timeout bounds each HTTP round trip
	Timeout time.Duration
}

// Errors for configuration validation
var (
	ErrMissingLoginID        = errors.New("authorizenet: missing API login ID")
	ErrMissingTransactionKey = errors.New("authorizenet: missing transaction key")
)

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LoginID == "" {
		return ErrMissingLoginID
	}
	if c.TransactionKey == "" {
		return ErrMissingTransactionKey
	}
	return nil
}

// URL returns the endpoint to use for API requests
func (c *Config) URL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if c.Sandbox {
		return SandboxEndpoint
	}
	return ProductionEndpoint
}
