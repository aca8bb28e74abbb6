/*
quota.go - Consumed and remaining leave day computation

PURPOSE:
  Computes how many leave days a user has consumed and how many remain
  against their quota. Both values are pure functions of the current ledger
  and the user's configured quota; nothing is cached, everything is
  recomputed per call.

ARITHMETIC:
  used      = sum over the user's requests of (end - start).days + 1
  remaining = user.leave_quota - used

  Remaining may go negative: quota sufficiency is not enforced when
  requests are accepted, only reported here.
*/
package leave

import "context"

// Calculator computes quota consumption from the directory and ledger.
type Calculator struct {
	directory *Directory
	ledger    *Ledger
}

// NewCalculator creates a Calculator reading through the given components.
func NewCalculator(directory *Directory, ledger *Ledger) *Calculator {
	return &Calculator{directory: directory, ledger: ledger}
}

// UsedDays returns the summed inclusive day count of all the user's
// requests. A stored request with an unparseable date is corrupt data and
// surfaces as ErrStoreCorrupt.
func (c *Calculator) UsedDays(ctx context.Context, username string) (int, error) {
	leaves, err := c.ledger.ListFor(ctx, username)
	if err != nil {
		return 0, err
	}
	return sumDays(leaves)
}

// Remaining returns leave_quota minus UsedDays for the user. Returns
// ErrUserNotFound if the account does not exist.
func (c *Calculator) Remaining(ctx context.Context, username string) (int, error) {
	user, err := c.directory.Get(ctx, username)
	if err != nil {
		return 0, err
	}
	used, err := c.UsedDays(ctx, username)
	if err != nil {
		return 0, err
	}
	return user.LeaveQuota - used, nil
}

func sumDays(leaves []LeaveRequest) (int, error) {
	total := 0
	for _, r := range leaves {
		d, err := r.Days()
		if err != nil {
			return 0, corruptf("leave request %q has invalid dates: %v", r.ID, err)
		}
		total += d
	}
	return total, nil
}
