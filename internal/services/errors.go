// Package services defines the business logic for the storefront: catalog
// queries, the chat assistant, tile recommendations, the calculator, quote
// orders, and account registration. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Catalog-related errors.
var (
	// ErrProductNotFound indicates that the requested catalog entry does
	// not exist.
	ErrProductNotFound = errors.New("product not found")
)

// Chat-related errors.
var (
	// ErrEmptyMessage is returned when a chat or recommendation request
	// contains an empty message.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrMessageTooLong is returned when a chat message exceeds the maximum
	// configured length limit.
	ErrMessageTooLong = errors.New("message too long")
)

// Order-related errors.
var (
	// ErrInvalidOrder is returned when a quote request fails field
	// validation. The wrapped message names the offending field.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrOrderNotFound indicates that the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// User-related errors.
var (
	// ErrInvalidCredentials is returned when registration input is blank or
	// malformed.
	ErrInvalidCredentials = errors.New("username and password are required")

	// ErrUsernameTaken is returned when the requested username already
	// belongs to another account.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Calculator-related errors.
var (
	// ErrInvalidDimensions is returned when the calculator receives
	// non-positive room dimensions or an unknown tile size.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)
