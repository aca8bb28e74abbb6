/*
errors.go - Centralized error types for the leave engine

PURPOSE:
  All error values in one place. Callers branch with errors.Is / errors.As;
  the HTTP layer maps them to status codes and surfaces the messages
  verbatim to the user.

ERROR CATEGORIES:
  1. Auth errors       - login failures (user missing, wrong password)
  2. Account errors    - signup rule violations
  3. Validation errors - leave request rule violations (structured, coded)
  4. Store errors      - unreadable backing files

The message text of each error IS the user-facing message; do not wrap these
into generic failures.
*/
package leave

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUserNotFound is returned when a username has no account.
	ErrUserNotFound = errors.New("username not found")

	// ErrWrongPassword is returned when credentials do not match.
	ErrWrongPassword = errors.New("incorrect password")

	// ErrDuplicateUsername is returned when signing up an existing username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrWeakPassword is returned when a password is under 6 characters or
	// contains no digit.
	ErrWeakPassword = errors.New("password must be at least 6 characters and include a number")

	// ErrLeaveNotFound is returned when a cancel target does not exist
	// (index out of range or unknown ID).
	ErrLeaveNotFound = errors.New("leave request not found")

	// ErrStoreCorrupt is returned when a backing file exists but cannot be
	// parsed. Fatal for the attempted operation; no repair is attempted.
	ErrStoreCorrupt = errors.New("store corrupt")
)

// =============================================================================
// VALIDATION ERRORS - Structured, with stable codes
// =============================================================================

// ValidationCode identifies which leave request rule was violated.
type ValidationCode string

const (
	CodeInvalidFormat  ValidationCode = "invalid_format"
	CodePastStartDate  ValidationCode = "past_start_date"
	CodeEndBeforeStart ValidationCode = "end_before_start"
	CodeReasonTooShort ValidationCode = "reason_too_short"
)

// ValidationError reports a rejected leave request. Message is user-facing.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(code ValidationCode, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsAuthError returns true for login credential failures.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrWrongPassword)
}

// IsClientError returns true if the error is due to invalid client input
// rather than a system failure.
func IsClientError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrDuplicateUsername) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrLeaveNotFound)
}

// corruptf wraps a parse failure in ErrStoreCorrupt with context.
func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStoreCorrupt, fmt.Sprintf(format, args...))
}
