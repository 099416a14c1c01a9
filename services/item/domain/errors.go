package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateEmail indicates another item already holds the same email
	// (store-level unique constraint).
	ErrDuplicateEmail = errors.New("email already in use by another item")

	// ErrInvalidItem indicates one or more fields violate domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrEmailNotDeliverable indicates the email failed the deliverability
	// check (bad format or no MX record for the domain).
	ErrEmailNotDeliverable = errors.New("email address is not deliverable")
)
