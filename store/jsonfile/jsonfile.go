/*
jsonfile.go - Flat-file JSON implementation of leave.Store

PURPOSE:
  Persists the two collections as indented JSON files in a single data
  directory:

    <dir>/users.json   mapping username -> {password, email, leave_quota}
    <dir>/leaves.json  ordered array of leave requests

SEMANTICS:
  - A missing file loads as an empty collection (first-run bootstrap).
  - Every save serializes the full collection and replaces the file.
  - The data directory is created on first write.
  - An unparseable file is fatal for the operation: the load returns an
    error wrapping leave.ErrStoreCorrupt. No repair is attempted.

DURABILITY:
  Saves write to a temp file in the same directory and rename it over the
  target, so a crash mid-write never leaves a truncated file. Rename also
  makes loads safe against concurrent saves: a reader sees the old file or
  the new one, never a partial one.

CONCURRENCY LIMIT:
  A mutex per collection serializes writers within this process. Writers in
  OTHER processes are not coordinated at all; concurrent multi-process
  mutation remains last-save-wins.
*/
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/warp/leave-ledger/leave"
)

const (
	usersFile  = "users.json"
	leavesFile = "leaves.json"
)

// =============================================================================
// STORE
// =============================================================================

// Store persists the collections under a single directory.
type Store struct {
	dir string

	usersMu  sync.Mutex
	leavesMu sync.Mutex
}

// New creates a Store rooted at dir. The directory is not created until the
// first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// userRecord is the on-disk shape of a user. LeaveQuota is a pointer so a
// record written before quotas existed (field absent) loads as the default
// rather than zero.
type userRecord struct {
	Password   string `json:"password"`
	Email      string `json:"email"`
	LeaveQuota *int   `json:"leave_quota"`
}

// =============================================================================
// USERS
// =============================================================================

func (s *Store) LoadUsers(_ context.Context) (map[string]leave.User, error) {
	users := make(map[string]leave.User)

	var records map[string]userRecord
	ok, err := s.read(usersFile, &records)
	if err != nil {
		return nil, err
	}
	if !ok {
		return users, nil
	}

	for username, r := range records {
		quota := leave.DefaultQuota
		if r.LeaveQuota != nil {
			quota = *r.LeaveQuota
		}
		users[username] = leave.User{
			Username:   username,
			Password:   r.Password,
			Email:      r.Email,
			LeaveQuota: quota,
		}
	}
	return users, nil
}

func (s *Store) SaveUsers(_ context.Context, users map[string]leave.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	records := make(map[string]userRecord, len(users))
	for username, u := range users {
		quota := u.LeaveQuota
		records[username] = userRecord{
			Password:   u.Password,
			Email:      u.Email,
			LeaveQuota: &quota,
		}
	}
	return s.write(usersFile, records)
}

// =============================================================================
// LEAVES
// =============================================================================

func (s *Store) LoadLeaves(_ context.Context) ([]leave.LeaveRequest, error) {
	var leaves []leave.LeaveRequest
	if _, err := s.read(leavesFile, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (s *Store) SaveLeaves(_ context.Context, leaves []leave.LeaveRequest) error {
	s.leavesMu.Lock()
	defer s.leavesMu.Unlock()

	if leaves == nil {
		leaves = []leave.LeaveRequest{}
	}
	return s.write(leavesFile, leaves)
}

// =============================================================================
// FILE I/O
// =============================================================================

// read unmarshals the named file into v. Returns (false, nil) if the file
// does not exist, and an error wrapping leave.ErrStoreCorrupt if it exists
// but cannot be parsed.
func (s *Store) read(name string, v any) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", leave.ErrStoreCorrupt, name, err)
	}
	return true, nil
}

// write atomically replaces the named file with the serialization of v:
// temp file in the same directory, then rename.
func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// Compile-time check that Store implements leave.Store
var _ leave.Store = (*Store)(nil)
