/*
Package leave implements the leave ledger and quota engine.

PURPOSE:
  Tracks employee leave requests against a per-user annual quota. All state
  lives in two flat collections (users, leave requests) behind the Store
  interface; every component here is a pure function of those collections.

KEY CONCEPTS IN THIS FILE (types.go):
  - User: account identity, credentials and quota configuration
  - LeaveRequest: a single leave booking with an inclusive date range
  - DateFormat: the one date representation used everywhere (YYYY-MM-DD)

DESIGN PRINCIPLES:
  1. Stable identity: every request gets a generated ID at creation.
     Positional lookups ("my 2nd request") are resolved at the boundary
     against a fresh listing, never stored.
  2. On-demand arithmetic: quota consumption is recomputed from the ledger
     on every call. No cached counters to drift.
  3. Calendar dates only: no timezones, no times of day. A leave from
     2025-03-10 to 2025-03-12 is 3 days, everywhere on earth.

SEE ALSO:
  - ledger.go: the authoritative request collection
  - quota.go: used/remaining day computation
  - directory.go: user accounts
*/
package leave

import "time"

// =============================================================================
// CONSTANTS
// =============================================================================

// DateFormat is the wire and storage representation of all calendar dates.
const DateFormat = "2006-01-02"

// DefaultQuota is the leave allowance granted to new accounts, in days.
const DefaultQuota = 20

// =============================================================================
// USER - Account identity, credentials, quota configuration
// =============================================================================

// User is an account in the directory. Username is the unique, case-sensitive
// identifier and doubles as the collection key; it is immutable once created.
//
// SECURITY NOTE: Password is stored in plain text. This mirrors the system
// being reimplemented and is a documented weakness, not an oversight. Do not
// point this store at anything you care about.
type User struct {
	Username string `json:"-"`
	Password string `json:"password"`
	Email    string `json:"email"`

	// LeaveQuota is a ceiling, not a counter. It is never decremented;
	// consumption against it is computed on demand by the Calculator.
	LeaveQuota int `json:"leave_quota"`
}

// =============================================================================
// LEAVE REQUEST - One booking with an inclusive date range
// =============================================================================

// LeaveRequest is a single leave booking. StartDate and EndDate are inclusive
// calendar dates in DateFormat. Username is a foreign key into the user
// collection by value.
//
// ID is generated at creation time (see Ledger.Add). Records persisted by
// older versions of the system may have an empty ID; the ledger tolerates
// them and falls back to positional removal.
type LeaveRequest struct {
	ID        string `json:"id,omitempty"`
	Username  string `json:"username"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

// Days returns the inclusive day count of the request: (end - start) + 1.
// A one-day leave (start == end) counts as 1.
func (r LeaveRequest) Days() (int, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// =============================================================================
// DATE HELPERS
// =============================================================================

// ParseDate parses a calendar date in DateFormat (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// DateOnly truncates a time to its calendar date at UTC midnight, making it
// comparable with ParseDate results.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
