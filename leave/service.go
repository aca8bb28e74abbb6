/*
service.go - The facade the web layer calls

PURPOSE:
  Composes validator, ledger, directory and calculator into the three
  operations an authenticated caller needs: apply, cancel, dashboard.
  The caller supplies an already-authenticated username; ownership
  enforcement (acting identity == username) is the caller's job.
*/
package leave

import (
	"context"
	"errors"
	"strings"
)

// Service bundles the engine's components behind the external surface.
type Service struct {
	Directory  *Directory
	Ledger     *Ledger
	Validator  *Validator
	Calculator *Calculator
}

// NewService wires all components onto a single store.
func NewService(store Store) *Service {
	directory := NewDirectory(store)
	ledger := NewLedger(store)
	return &Service{
		Directory:  directory,
		Ledger:     ledger,
		Validator:  NewValidator(),
		Calculator: NewCalculator(directory, ledger),
	}
}

// Dashboard is the per-user view: all requests plus quota consumption.
type Dashboard struct {
	Username  string
	Leaves    []LeaveRequest
	Used      int
	Remaining int
}

// Dashboard returns the user's requests with used/remaining day counts.
// On a fresh store (no accounts, no requests) it returns an empty view
// against the default quota rather than an error.
func (s *Service) Dashboard(ctx context.Context, username string) (Dashboard, error) {
	quota := s.Directory.DefaultQuota
	if user, err := s.Directory.Get(ctx, username); err == nil {
		quota = user.LeaveQuota
	} else if !errors.Is(err, ErrUserNotFound) {
		return Dashboard{}, err
	}

	leaves, err := s.Ledger.ListFor(ctx, username)
	if err != nil {
		return Dashboard{}, err
	}
	used, err := sumDays(leaves)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Username:  username,
		Leaves:    leaves,
		Used:      used,
		Remaining: quota - used,
	}, nil
}

// Apply validates and records a new leave request for username. The reason
// is trimmed before validation and storage. Returns the stored request, or
// a *ValidationError describing the first violated rule.
func (s *Service) Apply(ctx context.Context, username, start, end, leaveType, reason string) (LeaveRequest, error) {
	reason = strings.TrimSpace(reason)
	if err := s.Validator.Validate(start, end, reason); err != nil {
		return LeaveRequest{}, err
	}
	return s.Ledger.Add(ctx, LeaveRequest{
		Username:  username,
		StartDate: start,
		EndDate:   end,
		LeaveType: leaveType,
		Reason:    reason,
	})
}

// Cancel removes the index-th request of the user's current listing.
func (s *Service) Cancel(ctx context.Context, username string, index int) error {
	return s.Ledger.Cancel(ctx, username, index)
}
