package profile

import "context"

// Store is the persistence contract for the singleton profile row.
//
// It does not reuse the generic collection store: the profile is keyed by
// owner rather than listed, is created lazily, and is resolved by handle
// from the anonymous public surface.
type Store interface {
	// GetOrCreate returns the owner's profile, inserting the default row on
	// first access. Concurrent first accesses converge on a single row.
	GetOrCreate(ctx context.Context, ownerID string) (*Profile, error)

	// Update writes the profile's data columns back.
	Update(ctx context.Context, record *Profile) error

	// FindByHandle resolves a public handle to the profile that owns it.
	FindByHandle(ctx context.Context, handle string) (*Profile, error)

	// ExistsHandle reports whether a handle is taken, excluding one profile id.
	ExistsHandle(ctx context.Context, handle, excludeID string) (bool, error)

	// DeleteByOwner removes the owner's profile row, reporting how many rows
	// went away (0 when the profile was never created).
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
