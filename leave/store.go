/*
store.go - Persistence interface for the two flat collections

PURPOSE:
  Defines the interface between the domain logic and durable storage. The
  engine persists exactly two collections: the user directory (a mapping
  keyed by username) and the leave ledger (an ordered sequence).

CONTRACT:
  - Load* returns an empty container, not an error, if the backing file does
    not exist yet (first-run bootstrap).
  - Save* is a FULL-COLLECTION overwrite. There is no append or patch; the
    entire collection is serialized on every save.
  - A backing file that exists but cannot be parsed is fatal for the
    operation: Load* returns an error wrapping ErrStoreCorrupt.

CONCURRENCY:
  Implementations must serialize writes per collection. Higher-level
  components (Ledger, Directory) additionally hold their own mutex across
  each load-modify-save cycle so that in-process mutations serialize instead
  of losing updates. Cross-process writers can still race; that is a
  documented limit of the flat-file design, not something the interface
  pretends to solve.

IMPLEMENTATIONS:
  - store/jsonfile: flat JSON files (production)
  - leave/store:    in-memory (tests/dev)
*/
package leave

import "context"

// Store handles persistence of the user and leave collections.
type Store interface {
	// LoadUsers returns all accounts keyed by username. Empty map if the
	// backing file does not exist.
	LoadUsers(ctx context.Context) (map[string]User, error)

	// SaveUsers overwrites the entire user collection.
	SaveUsers(ctx context.Context, users map[string]User) error

	// LoadLeaves returns all leave requests in insertion order. Empty slice
	// if the backing file does not exist.
	LoadLeaves(ctx context.Context) ([]LeaveRequest, error)

	// SaveLeaves overwrites the entire leave collection.
	SaveLeaves(ctx context.Context, leaves []LeaveRequest) error
}
