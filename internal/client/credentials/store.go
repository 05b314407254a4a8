// Package credentials persists the single user record of the local session.
//
// The record is stored as a versioned JSON envelope under common.UserKey.
// Loading is decode-or-absent: missing, corrupted, unknown-version or
// invalid records all load as "no user". Only a failing storage backend is
// reported, as ErrStorageUnavailable.
package credentials

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidRecord      = errors.New("invalid user record")
)

// Store holds at most one user record.
type Store interface {
	// Load returns the stored user, or nil when there is none or it cannot
	// be decoded.
	Load(ctx context.Context) (*models.User, error)
	// Save replaces any stored user with u.
	Save(ctx context.Context, u *models.User) error
	// Clear removes the stored user. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
