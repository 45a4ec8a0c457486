package application

import "errors"

// Domain error kinds surfaced by the services. Handlers map these to
// HTTP statuses or page behavior; the kinds are never collapsed below
// the handler boundary.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("record not found")
	ErrUserHasTasks     = errors.New("user still has tasks")
	ErrStoreUnavailable = errors.New("store unavailable")
)
