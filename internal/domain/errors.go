package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrInvalidID       = errors.New("invalid product id")
	ErrNilProduct      = errors.New("product data cannot be nil")
	ErrMissingName     = errors.New("product name is required")
	ErrInvalidPrice    = errors.New("product price must be greater than 0")
	ErrInvalidPage     = errors.New("page number cannot be negative")
	ErrInvalidPageSize = errors.New("page size must be greater than 0")
	ErrDuplicate       = errors.New("resource already exists")
)

// IsValidation reports whether err belongs to the input-validation family.
// The HTTP layer maps these to 400; not-found is signaled with nil results
// instead of errors.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrNilProduct),
		errors.Is(err, ErrMissingName),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize):
		return true
	}
	return false
}
