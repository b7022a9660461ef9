// Package domain holds the gateway's domain types and sentinel errors.
package domain

import "errors"

// Common domain errors
var (
	// ErrSessionNotFound is returned when a checkout session does not exist locally.
	ErrSessionNotFound = errors.New("checkout session not found")
	// ErrInvalidCurrencyCode is returned for currency codes the gateway does not accept.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	// ErrMixedCurrencies is returned when line items do not share a single currency.
	ErrMixedCurrencies = errors.New("line items must use a single currency")
	// ErrSessionAlreadyFinalized is returned for status updates on a session
	// that already left the pending state.
	ErrSessionAlreadyFinalized = errors.New("checkout session already finalized")
	// ErrAmountMustBePositive is returned for zero or negative unit amounts.
	ErrAmountMustBePositive = errors.New("amount must be positive")
	// ErrUserUnauthorized is returned when a user acts on another user's session.
	ErrUserUnauthorized = errors.New("user unauthorized")
)
