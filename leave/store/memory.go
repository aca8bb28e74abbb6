// Package store provides an in-memory Store implementation (for testing/dev).
package store

import (
	"context"
	"sync"

	"github.com/warp/leave-ledger/leave"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory holds both collections in process memory. Saves and loads copy
// defensively so callers never share slices or maps with the store.
type Memory struct {
	mu     sync.RWMutex
	users  map[string]leave.User
	leaves []leave.LeaveRequest
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]leave.User)}
}

func (m *Memory) LoadUsers(_ context.Context) (map[string]leave.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make(map[string]leave.User, len(m.users))
	for username, u := range m.users {
		u.Username = username
		users[username] = u
	}
	return users, nil
}

func (m *Memory) SaveUsers(_ context.Context, users map[string]leave.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[string]leave.User, len(users))
	for username, u := range users {
		m.users[username] = u
	}
	return nil
}

func (m *Memory) LoadLeaves(_ context.Context) ([]leave.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	leaves := make([]leave.LeaveRequest, len(m.leaves))
	copy(leaves, m.leaves)
	return leaves, nil
}

func (m *Memory) SaveLeaves(_ context.Context, leaves []leave.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.leaves = make([]leave.LeaveRequest, len(leaves))
	copy(m.leaves, leaves)
	return nil
}

// Compile-time check that Memory implements leave.Store
var _ leave.Store = (*Memory)(nil)
