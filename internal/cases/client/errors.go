package client

import (
	"errors"
	"fmt"
)

// ErrorCategory is the normalised failure taxonomy for case directory calls.
type ErrorCategory string

const (
	ErrorTimeout          ErrorCategory = "timeout"
	ErrorBadData          ErrorCategory = "bad_data"
	ErrorAuthentication   ErrorCategory = "authentication"
	ErrorOutage           ErrorCategory = "outage"
	ErrorContractMismatch ErrorCategory = "contract_mismatch"
	ErrorNotFound         ErrorCategory = "not_found"
	ErrorRateLimited      ErrorCategory = "rate_limited"
	ErrorInternal         ErrorCategory = "internal"
)

// Error wraps a directory failure with its category so callers can translate it
// without inspecting messages or status codes.
type Error struct {
	Category   ErrorCategory
	Operation  string
	Message    string
	StatusCode int
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("case directory %s [%s]: %s: %v", e.Operation, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("case directory %s [%s]: %s", e.Operation, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func newError(category ErrorCategory, op, message string, status int, underlying error) *Error {
	return &Error{
		Category:   category,
		Operation:  op,
		Message:    message,
		StatusCode: status,
		Underlying: underlying,
	}
}

// CategoryOf extracts the category from err, or ErrorInternal when err is not a directory error.
func CategoryOf(err error) ErrorCategory {
	var de *Error
	if errors.As(err, &de) {
		return de.Category
	}
	return ErrorInternal
}

// IsNotFound reports whether err is a directory not-found.
func IsNotFound(err error) bool {
	return CategoryOf(err) == ErrorNotFound
}
