/*
validate.go - Leave request validation rules

PURPOSE:
  Pure validation of a candidate leave request against a reference "today".
  No side effects, no store access.

RULE ORDER (first failure wins):
  1. InvalidFormat:  either date fails to parse as YYYY-MM-DD
  2. PastStartDate:  start date before today
  3. EndBeforeStart: end date before start date
  4. ReasonTooShort: reason under 10 characters after trimming

NOT CHECKED (deliberately):
  - Quota sufficiency. Remaining balance may go negative.
  - Overlap with the user's existing requests.
  Both are permissive by design; adding either check would be a behavior
  change for callers.
*/
package leave

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinReasonLength is the minimum length of a leave reason, in characters.
const MinReasonLength = 10

// Validator checks candidate leave requests. Today supplies the reference
// date and exists so tests can pin the clock; it defaults to time.Now.
type Validator struct {
	Today func() time.Time
}

// NewValidator returns a Validator using the real clock.
func NewValidator() *Validator {
	return &Validator{Today: time.Now}
}

// Validate checks (start, end, reason) and returns a *ValidationError on the
// first violated rule, nil if the request is acceptable.
func (v *Validator) Validate(start, end, reason string) error {
	startDate, err := ParseDate(start)
	if err != nil {
		return newValidationError(CodeInvalidFormat, "invalid date format")
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return newValidationError(CodeInvalidFormat, "invalid date format")
	}

	today := DateOnly(v.Today())
	if startDate.Before(today) {
		return newValidationError(CodePastStartDate, "start date cannot be in the past")
	}
	if endDate.Before(startDate) {
		return newValidationError(CodeEndBeforeStart, "end date must be after start date")
	}
	if utf8.RuneCountInString(strings.TrimSpace(reason)) < MinReasonLength {
		return newValidationError(CodeReasonTooShort, "reason must be at least 10 characters")
	}
	return nil
}
