package errors

import "errors"

var (
	// ErrValidation marks malformed or missing caller input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists marks a uniqueness violation on a natural key.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials marks a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden marks an operation the caller's role does not permit.
	ErrForbidden = errors.New("forbidden")
	// ErrOrderNumberTaken marks a lost race on the order number unique index.
	// The order usecase retries on it; it never reaches HTTP directly.
	ErrOrderNumberTaken = errors.New("order number taken")
	// ErrOrderClosed marks a transition attempted on a delivered or cancelled order.
	ErrOrderClosed = errors.New("order already closed")
	// ErrInsufficientStock marks a part quantity decrease below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)
