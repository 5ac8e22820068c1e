package storage

import (
	"context"
	"time"

	"github.com/poiesic/leadrank/core"
)

// SeenRepository persists delivered identity keys per profile so leads are
// never re-surfaced across pipeline runs.
// Implementations must be thread-safe and support concurrent access.
type SeenRepository interface {
	// AddSeen records identity keys as delivered for the profile at the
	// given time. Re-adding an existing key updates its delivery time.
	AddSeen(ctx context.Context, profileKey string, deliveredAt time.Time, ids ...core.ID) error

	// GetSeen returns every identity key recorded for the profile.
	// An unknown profile yields an empty set, not an error.
	GetSeen(ctx context.Context, profileKey string) (map[core.ID]struct{}, error)

	// PurgeSeen removes entries delivered before the cutoff and returns how
	// many were removed. A zero cutoff removes every entry for the profile.
	PurgeSeen(ctx context.Context, profileKey string, before time.Time) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
