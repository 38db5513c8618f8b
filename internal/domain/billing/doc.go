// Package billing models the synchronization between local payment
// profile records and a remote payment gateway's customer information
// store.
//
// Key Aggregates:
//   - CustomerProfile: the local mirror of a gateway customer profile,
//     owned by exactly one user
//   - CustomerPaymentProfile: a stored payment method under a customer
//     profile, holding billing details and a masked card number
//
// The gateway is the source of truth. Every write goes to the gateway
// first; local rows change only after the remote side has accepted the
// change. Raw card numbers, expiration dates, and card codes pass through
// to the gateway and are never persisted.
package billing
