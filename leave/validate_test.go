package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-ledger/leave"
)

// =============================================================================
// TEST SETUP
// =============================================================================

// fixedValidator pins "today" to 2025-01-15.
func fixedValidator() *leave.Validator {
	v := leave.NewValidator()
	v.Today = func() time.Time {
		return time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)
	}
	return v
}

// =============================================================================
// RULE TESTS
// =============================================================================

func TestValidator_AcceptsWellFormedRequest(t *testing.T) {
	v := fixedValidator()

	err := v.Validate("2025-02-01", "2025-02-05", "Family event travel")
	assert.NoError(t, err)
}

func TestValidator_AcceptsSingleDayStartingToday(t *testing.T) {
	// GIVEN: today is 2025-01-15
	// WHEN: start == end == today
	// THEN: the request is valid (start is not in the past, range is 1 day)
	v := fixedValidator()

	err := v.Validate("2025-01-15", "2025-01-15", "Medical appointment downtown")
	assert.NoError(t, err)
}

func TestValidator_RejectsByRule(t *testing.T) {
	v := fixedValidator()

	tests := []struct {
		name   string
		start  string
		end    string
		reason string
		code   leave.ValidationCode
	}{
		{"unparseable start", "01/02/2025", "2025-02-05", "Family event travel", leave.CodeInvalidFormat},
		{"unparseable end", "2025-02-01", "not-a-date", "Family event travel", leave.CodeInvalidFormat},
		{"start in the past", "2025-01-10", "2025-02-05", "Family event travel", leave.CodePastStartDate},
		{"end before start", "2025-02-05", "2025-02-01", "Family event travel", leave.CodeEndBeforeStart},
		{"reason too short", "2025-02-01", "2025-02-05", "short", leave.CodeReasonTooShort},
		{"reason padded with spaces", "2025-02-01", "2025-02-05", "   hi     ", leave.CodeReasonTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.start, tt.end, tt.reason)
			require.Error(t, err)

			var ve *leave.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.code, ve.Code)
		})
	}
}

func TestValidator_PastStartCheckedBeforeReasonLength(t *testing.T) {
	// GIVEN: a request that violates BOTH the past-start rule and the
	//        reason-length rule
	// WHEN: validated
	// THEN: the past-start rule fires first (branch order matters)
	v := fixedValidator()

	err := v.Validate("2020-01-01", "2020-01-02", "short")
	require.Error(t, err)

	var ve *leave.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, leave.CodePastStartDate, ve.Code)
}

func TestValidator_InvalidFormatCheckedFirst(t *testing.T) {
	// An unparseable date wins over every other violation.
	v := fixedValidator()

	err := v.Validate("garbage", "2020-01-01", "short")
	require.Error(t, err)

	var ve *leave.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, leave.CodeInvalidFormat, ve.Code)
}

func TestValidator_IsPure(t *testing.T) {
	// Same inputs, same verdict, no state between calls.
	v := fixedValidator()

	for i := 0; i < 3; i++ {
		assert.NoError(t, v.Validate("2025-02-01", "2025-02-05", "Family event travel"))
		assert.Error(t, v.Validate("2025-01-01", "2025-02-05", "Family event travel"))
	}
}
