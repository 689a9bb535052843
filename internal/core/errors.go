package core

import "errors"

// Shared error categories. Services wrap these with fmt.Errorf so handlers
// can map them to HTTP statuses with errors.Is.
var (
	// ErrNotFound: unknown item, profile or recipe id.
	ErrNotFound = errors.New("not found")

	// ErrValidation: bad input value or shape. Surfaced to the caller,
	// never silently corrected.
	ErrValidation = errors.New("validation failed")

	// ErrInvariant: an internal invariant no longer holds (e.g. a
	// saturated profile reached the markup engine). Indicates a bug
	// elsewhere, not bad user input.
	ErrInvariant = errors.New("state invariant violated")
)
