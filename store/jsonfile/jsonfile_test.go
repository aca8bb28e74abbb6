package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-ledger/leave"
	"github.com/warp/leave-ledger/store/jsonfile"
)

// =============================================================================
// BOOTSTRAP
// =============================================================================

func TestStore_FreshDirectoryLoadsEmpty(t *testing.T) {
	// GIVEN: a data directory that does not even exist yet
	// WHEN: loading both collections
	// THEN: empty containers, no error, and nothing created on disk
	dir := filepath.Join(t.TempDir(), "data")
	s := jsonfile.New(dir)
	ctx := context.Background()

	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	leaves, err := s.LoadLeaves(ctx)
	require.NoError(t, err)
	assert.Empty(t, leaves)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "loads must not create the directory")
}

func TestStore_FirstSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := jsonfile.New(dir)
	ctx := context.Background()

	require.NoError(t, s.SaveLeaves(ctx, nil))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	raw, err := os.ReadFile(filepath.Join(dir, "leaves.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)), "empty collection serializes as an array, not null")
}

// =============================================================================
// ROUND TRIPS
// =============================================================================

func TestStore_UsersRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	in := map[string]leave.User{
		"alice": {Username: "alice", Password: "secret1", Email: "alice@example.com", LeaveQuota: 20},
		"bob":   {Username: "bob", Password: "hunter2", Email: "bob@example.com", LeaveQuota: 25},
	}
	require.NoError(t, jsonfile.New(dir).SaveUsers(ctx, in))

	// A brand-new Store instance must see the same data (durability, not
	// in-process caching).
	out, err := jsonfile.New(dir).LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_LeavesRoundTripPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	in := []leave.LeaveRequest{
		{ID: "id-1", Username: "alice", StartDate: "2025-01-01", EndDate: "2025-01-02", LeaveType: "vacation", Reason: "Family event travel"},
		{ID: "id-2", Username: "bob", StartDate: "2025-01-03", EndDate: "2025-01-03", LeaveType: "sick", Reason: "Caught a nasty cold"},
		{ID: "id-3", Username: "alice", StartDate: "2025-02-01", EndDate: "2025-02-05", LeaveType: "personal", Reason: "Moving apartments again"},
	}
	require.NoError(t, jsonfile.New(dir).SaveLeaves(ctx, in))

	out, err := jsonfile.New(dir).LoadLeaves(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_SaveIsFullOverwrite(t *testing.T) {
	dir := t.TempDir()
	s := jsonfile.New(dir)
	ctx := context.Background()

	require.NoError(t, s.SaveLeaves(ctx, []leave.LeaveRequest{
		{ID: "id-1", Username: "alice", StartDate: "2025-01-01", EndDate: "2025-01-02", Reason: "Family event travel"},
		{ID: "id-2", Username: "alice", StartDate: "2025-01-03", EndDate: "2025-01-04", Reason: "Family event travel"},
	}))
	require.NoError(t, s.SaveLeaves(ctx, []leave.LeaveRequest{
		{ID: "id-2", Username: "alice", StartDate: "2025-01-03", EndDate: "2025-01-04", Reason: "Family event travel"},
	}))

	out, err := s.LoadLeaves(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "id-2", out[0].ID)
}

// =============================================================================
// LEGACY / DEFAULTS
// =============================================================================

func TestStore_MissingQuotaFieldDefaults(t *testing.T) {
	// Records written before quotas existed have no leave_quota key; they
	// load with the default allowance, not zero.
	dir := t.TempDir()
	ctx := context.Background()

	raw := `{"alice": {"password": "secret1", "email": "alice@example.com"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(raw), 0o644))

	users, err := jsonfile.New(dir).LoadUsers(ctx)
	require.NoError(t, err)
	require.Contains(t, users, "alice")
	assert.Equal(t, leave.DefaultQuota, users["alice"].LeaveQuota)
}

func TestStore_ExplicitZeroQuotaIsKept(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	raw := `{"alice": {"password": "secret1", "email": "a@x", "leave_quota": 0}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(raw), 0o644))

	users, err := jsonfile.New(dir).LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, users["alice"].LeaveQuota)
}

// =============================================================================
// CORRUPTION
// =============================================================================

func TestStore_CorruptFilesAreFatal(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leaves.json"), []byte("[{]"), 0o644))

	s := jsonfile.New(dir)

	_, err := s.LoadUsers(ctx)
	assert.ErrorIs(t, err, leave.ErrStoreCorrupt)

	_, err = s.LoadLeaves(ctx)
	assert.ErrorIs(t, err, leave.ErrStoreCorrupt)
}

// =============================================================================
// ATOMICITY
// =============================================================================

func TestStore_SaveLeavesNoTempFileDebris(t *testing.T) {
	dir := t.TempDir()
	s := jsonfile.New(dir)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.SaveLeaves(ctx, []leave.LeaveRequest{
			{ID: "id-1", Username: "alice", StartDate: "2025-01-01", EndDate: "2025-01-02", Reason: "Family event travel"},
		}))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "leaves.json", entries[0].Name())
}

func TestStore_FilesAreIndented(t *testing.T) {
	// The files double as a poor man's admin UI; keep them readable.
	dir := t.TempDir()
	ctx := context.Background()

	require.NoError(t, jsonfile.New(dir).SaveUsers(ctx, map[string]leave.User{
		"alice": {Username: "alice", Password: "secret1", Email: "alice@example.com", LeaveQuota: 20},
	}))

	raw, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n    \"alice\"")
}
