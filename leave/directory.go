/*
directory.go - User accounts: identity, credentials, quota configuration

PURPOSE:
  Owns the user collection. Handles authentication, account creation and
  lookups. Accounts are never deleted or updated after creation in this
  design.

SIGNUP RULES (first failure wins):
  1. Duplicate:     username already taken
  2. Mismatch:      password != confirmation
  3. WeakPassword:  under 6 characters, or no digit

SECURITY NOTES (reproduced behavior, documented, not fixed):
  - Passwords are compared and stored in plain text.
  - PasswordHint leaks the first two characters of the stored password.
*/
package leave

import (
	"context"
	"strings"
	"sync"
)

// Directory owns the user collection.
type Directory struct {
	mu    sync.Mutex
	store Store

	// DefaultQuota is assigned to new accounts, in days.
	DefaultQuota int
}

// NewDirectory creates a Directory backed by the given store.
func NewDirectory(store Store) *Directory {
	return &Directory{store: store, DefaultQuota: DefaultQuota}
}

// Authenticate checks credentials. Returns ErrUserNotFound for an unknown
// username and ErrWrongPassword for a bad password; both messages are safe
// to surface to the user.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (User, error) {
	users, err := d.store.LoadUsers(ctx)
	if err != nil {
		return User{}, err
	}
	user, ok := users[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	if user.Password != password {
		return User{}, ErrWrongPassword
	}
	return user, nil
}

// Create registers a new account with the default quota. Username and email
// are trimmed of surrounding whitespace; the password is taken as-is.
func (d *Directory) Create(ctx context.Context, username, password, confirm, email string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	d.mu.Lock()
	defer d.mu.Unlock()

	users, err := d.store.LoadUsers(ctx)
	if err != nil {
		return User{}, err
	}
	if _, exists := users[username]; exists {
		return User{}, ErrDuplicateUsername
	}
	if password != confirm {
		return User{}, ErrPasswordMismatch
	}
	if len(password) < 6 || !strings.ContainsAny(password, "0123456789") {
		return User{}, ErrWeakPassword
	}

	user := User{
		Username:   username,
		Password:   password,
		Email:      email,
		LeaveQuota: d.DefaultQuota,
	}
	users[username] = user
	if err := d.store.SaveUsers(ctx, users); err != nil {
		return User{}, err
	}
	return user, nil
}

// Get returns the account for username, or ErrUserNotFound.
func (d *Directory) Get(ctx context.Context, username string) (User, error) {
	users, err := d.store.LoadUsers(ctx)
	if err != nil {
		return User{}, err
	}
	user, ok := users[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// PasswordHint returns the first two characters of the stored password
// followed by "***". A real system would send a reset link instead; this
// reproduces the original recovery flow.
func (d *Directory) PasswordHint(ctx context.Context, username string) (string, error) {
	user, err := d.Get(ctx, username)
	if err != nil {
		return "", err
	}
	hint := user.Password
	if len(hint) > 2 {
		hint = hint[:2]
	}
	return hint + "***", nil
}
