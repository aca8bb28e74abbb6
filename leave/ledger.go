/*
ledger.go - The authoritative ordered collection of all leave requests

PURPOSE:
  Owns the global leave list across all users. Exposes add, list-by-user and
  cancel operations on top of the Store.

INVARIANT (index correspondence):
  "Cancel index i for username" must remove exactly the i-th element of the
  per-user projection, located at its position in the global list. The
  projection is recomputed fresh inside every cancel call, under the ledger
  mutex; indices obtained from an earlier listing are not durable handles
  and become invalid as soon as any user's leave is added or cancelled.

STABLE IDENTITY:
  Every request gets a generated UUID at creation. CancelByID is the robust
  cancellation path; Cancel(username, index) is kept as the positional
  compatibility shim for callers that speak "my n-th request". Records
  persisted before IDs existed have an empty ID and are still cancellable
  positionally.

CONCURRENCY:
  Every mutation is a load-modify-save cycle over the whole collection. The
  ledger mutex serializes those cycles within this process, so two
  concurrent adds both survive instead of the second save discarding the
  first. Writers in other processes are NOT serialized; last save wins.

ACCESS CONTROL NOTE:
  The ledger performs no ownership check: it trusts the username argument.
  Callers must ensure the acting identity matches, otherwise any
  authenticated user can cancel another's leave. The HTTP layer enforces
  this at the route boundary.
*/
package leave

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// =============================================================================
// LEDGER
// =============================================================================

// Ledger owns the global leave request list.
type Ledger struct {
	mu    sync.Mutex
	store Store
	newID func() string
}

// NewLedger creates a Ledger backed by the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, newID: uuid.NewString}
}

// Add appends a new request to the global list and persists the full list.
// It assigns the request a fresh ID and returns the stored record. Add does
// not validate the request (see Validator) and does not check that the
// username exists in the directory.
func (l *Ledger) Add(ctx context.Context, req LeaveRequest) (LeaveRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	leaves, err := l.store.LoadLeaves(ctx)
	if err != nil {
		return LeaveRequest{}, err
	}
	req.ID = l.newID()
	leaves = append(leaves, req)
	if err := l.store.SaveLeaves(ctx, leaves); err != nil {
		return LeaveRequest{}, err
	}
	return req, nil
}

// ListFor returns the user's requests in insertion order (the global list
// filtered by username).
func (l *Ledger) ListFor(ctx context.Context, username string) ([]LeaveRequest, error) {
	leaves, err := l.store.LoadLeaves(ctx)
	if err != nil {
		return nil, err
	}
	var mine []LeaveRequest
	for _, r := range leaves {
		if r.Username == username {
			mine = append(mine, r)
		}
	}
	return mine, nil
}

// Cancel removes the index-th request of the user's current listing,
// resolving it to its position in the global list. Returns ErrLeaveNotFound
// if the index is out of range; the store is left untouched in that case.
func (l *Ledger) Cancel(ctx context.Context, username string, index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	leaves, err := l.store.LoadLeaves(ctx)
	if err != nil {
		return err
	}

	// Fresh per-user projection: global positions of this user's requests.
	var positions []int
	for i, r := range leaves {
		if r.Username == username {
			positions = append(positions, i)
		}
	}
	if index < 0 || index >= len(positions) {
		return ErrLeaveNotFound
	}

	at := positions[index]
	leaves = append(leaves[:at], leaves[at+1:]...)
	return l.store.SaveLeaves(ctx, leaves)
}

// CancelByID removes the user's request with the given stable ID. Returns
// ErrLeaveNotFound if no request of that user carries the ID.
func (l *Ledger) CancelByID(ctx context.Context, username, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	leaves, err := l.store.LoadLeaves(ctx)
	if err != nil {
		return err
	}
	for i, r := range leaves {
		if r.Username == username && r.ID != "" && r.ID == id {
			leaves = append(leaves[:i], leaves[i+1:]...)
			return l.store.SaveLeaves(ctx, leaves)
		}
	}
	return ErrLeaveNotFound
}
