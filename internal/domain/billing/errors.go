package billing

import (
	"errors"
	"fmt"
)

// ErrGatewayDeclined is the sentinel wrapped by every BillingError so
// callers can match declined gateway responses with errors.Is.
var ErrGatewayDeclined = errors.New("payment gateway reported failure")

// BillingError is returned whenever the gateway response reports failure.
// It carries the gateway's result code and message for logging; callers
// only need to detect it to present a payment failure to the user.
type BillingError struct {
	Code    string
	Message string
}

// Error implements the error interface
func (e *BillingError) Error() string {
	if e.Code == "" && e.Message == "" {
		return ErrGatewayDeclined.Error()
	}
	return fmt.Sprintf("%s: %s (%s)", ErrGatewayDeclined.Error(), e.Message, e.Code)
}

// Unwrap allows errors.Is(err, ErrGatewayDeclined)
func (e *BillingError) Unwrap() error {
	return ErrGatewayDeclined
}

// NewBillingError creates a BillingError from a gateway result
func NewBillingError(code, message string) *BillingError {
	return &BillingError{Code: code, Message: message}
}

// IsBillingError reports whether err is (or wraps) a declined gateway response
func IsBillingError(err error) bool {
	return errors.Is(err, ErrGatewayDeclined)
}
