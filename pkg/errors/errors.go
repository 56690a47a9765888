package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrValidation indicates a required submission field is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrSpamSuppressed marks a submission discarded by the honeypot check.
	// It is never surfaced to callers; the pipeline reports success instead.
	ErrSpamSuppressed = errors.New("spam suppressed")

	// ErrRelay indicates the transactional-mail relay rejected the message
	ErrRelay = errors.New("mail relay failed")

	// ErrBusy indicates a submission is already in flight on the same control
	ErrBusy = errors.New("submission in progress")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// ValidationError creates a validation error with field context
func ValidationError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrValidation)
}

// RelayError creates a relay error carrying the relay's diagnostic text.
// The text is for server-side logs only and must not reach end users.
func RelayError(detail string) error {
	if detail != "" {
		return fmt.Errorf("%s: %w", detail, ErrRelay)
	}
	return ErrRelay
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
