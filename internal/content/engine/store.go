// Copyright (c) 2026 Folium. All rights reserved.

package engine

import "context"

// Store is the persistence contract each entity service depends on.
//
// The PostgreSQL implementation is [PG]; tests use the in-memory fake in
// the enginetest package. Both enforce the same ownership and soft-delete
// semantics so service tests exercise real failure modes.
type Store[T any] interface {
	// Create persists a new record for ownerID. It assigns the id and
	// timestamps; any caller-supplied values for those fields are ignored.
	Create(ctx context.Context, ownerID string, record *T) error

	// List returns one page of the owner's records plus the total count
	// matching the same predicates.
	List(ctx context.Context, ownerID string, opts ListOptions) ([]*T, int, error)

	// Get fetches a record by id and asserts ownership: absent (or
	// soft-deleted under default visibility) → NOT_FOUND; owned by someone
	// else → FORBIDDEN.
	Get(ctx context.Context, ownerID, id string) (*T, error)

	// GetDeleted fetches a soft-deleted record by id with the same
	// ownership assertion. Hard-delete collections never match.
	GetDeleted(ctx context.Context, ownerID, id string) (*T, error)

	// Save writes the record's data columns back. The record must have been
	// loaded via Get first; Save never changes id, owner, or deleted_at.
	Save(ctx context.Context, record *T) error

	// Remove deletes one record (soft or hard per config) after the same
	// fetch-and-assert sequence as Get.
	Remove(ctx context.Context, ownerID, id string) error

	// Restore clears deleted_at on a soft-deleted record.
	Restore(ctx context.Context, ownerID, id string) error

	// BulkRemove attempts an independent conditional delete per id and
	// reports per-id success or failure. It never aborts mid-batch.
	BulkRemove(ctx context.Context, ownerID string, ids []string) (BulkResult, error)

	// Reorder assigns sort_order = index for each id in the given sequence.
	// Every id must resolve to an active record owned by ownerID or the
	// whole call fails with FORBIDDEN before any write starts.
	Reorder(ctx context.Context, ownerID string, ids []string) error

	// DeleteAllByOwner removes every record of the owner (per delete mode)
	// and returns the number of rows affected.
	DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error)

	// ExistsBy reports whether any record has column = value, optionally
	// excluding one id (so a record never collides with itself).
	ExistsBy(ctx context.Context, column string, value any, excludeID string) (bool, error)

	// GetBy fetches a single active record by an exact column match without
	// an ownership assertion. Used by the public read path (e.g. blog slug).
	GetBy(ctx context.Context, column string, value any) (*T, error)
}
