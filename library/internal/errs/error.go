package errs

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrInsufficientStock = errors.New("not enough copies available")
	ErrQuery             = errors.New("invalid query")
)

// Name returns the category reported to clients in the error envelope.
func Name(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, ErrNotFound):
		return "NotFoundError"
	case errors.Is(err, ErrInvalidID):
		return "InvalidIdError"
	case errors.Is(err, ErrInsufficientStock):
		return "InsufficientStockError"
	case errors.Is(err, ErrQuery):
		return "QueryError"
	}
	return "InternalError"
}

// Reason strips the sentinel suffix from a wrapped domain error.
func Reason(err error) string {
	msg := err.Error()
	for _, s := range []error{ErrValidation, ErrNotFound, ErrInvalidID, ErrInsufficientStock, ErrQuery} {
		if errors.Is(err, s) {
			if r := strings.TrimSuffix(msg, ": "+s.Error()); r != "" {
				return r
			}
		}
	}
	return msg
}

type causeError struct {
	sentinel error
	cause    error
}

// WithCause tags cause with a sentinel while keeping cause reachable through errors.As.
func WithCause(sentinel, cause error) error {
	return &causeError{sentinel: sentinel, cause: cause}
}

func (e *causeError) Error() string {
	return e.cause.Error() + ": " + e.sentinel.Error()
}

func (e *causeError) Unwrap() []error {
	return []error{e.cause, e.sentinel}
}
