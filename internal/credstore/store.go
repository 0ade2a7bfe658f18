// Package credstore persists the session token across process restarts.
// It models a single named slot: the raw token string plus an expiry set at
// write time. Reading the slot is the only way a session survives a restart.
package credstore

import (
	"context"
	"time"
)

// Store is the durable credential slot.
type Store interface {
	// Save writes the token, replacing any previous value. The slot expires
	// at expiresAt regardless of the token's own claims.
	Save(ctx context.Context, token string, expiresAt time.Time) error

	// Load returns the stored token. ok is false when the slot is empty or
	// its retention window has passed; an expired slot is erased on read.
	Load(ctx context.Context) (token string, ok bool, err error)

	// Clear erases the slot. Clearing an empty slot succeeds.
	Clear(ctx context.Context) error
}
