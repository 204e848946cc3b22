// Copyright (c) 2026 Folium. All rights reserved.

/*
Package engine implements the shared data-access core behind every Folium
content collection.

All ten collections (projects, experience, education, skills, certifications,
blog posts, testimonials, companies, contacts, profile) obey the same
discipline, implemented here exactly once:

  - Owner scoping: every id-addressed operation fetches the record ignoring
    the owner, then asserts ownership — absence is NOT_FOUND, a foreign owner
    is FORBIDDEN. The two are never conflated and neither leaks record content.
  - Soft deletion: reads exclude deleted rows by default; the exclusion is an
    explicit, centralized predicate, never re-implemented per query.
  - Stable ordering: orderable collections carry a dense per-owner sort_order
    rewritten atomically-in-precondition by Reorder.
  - Bulk deletion: best-effort per-id batches with partial-failure reporting.
  - Owner purge: collection-wide removal used by the account-deletion fan-out.

Entity packages declare a [Config] describing their table and columns and get
the full [Store] behavior; they contribute only type-specific validation.
*/
package engine

import (
	"time"
)

// Base carries the system-managed fields shared by every content record.
// Entity structs embed it; the engine is the only writer of its fields.
type Base struct {
	ID        string     `db:"id"         json:"id"`
	OwnerID   string     `db:"owner_id"   json:"-"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

// Meta exposes the embedded Base; it is what makes a struct an [Entity].
func (b *Base) Meta() *Base { return b }

// Entity is implemented by pointers to structs that embed [Base].
type Entity interface {
	Meta() *Base
}

// Ptr constrains P to be a *T that satisfies [Entity]. It lets the generic
// store accept plain struct type parameters while still reaching Base.
type Ptr[T any] interface {
	*T
	Entity
}

// DeleteMode selects how Remove, BulkRemove, and DeleteAllByOwner behave for
// a collection. It is fixed per entity type at configuration time, never
// decided per call.
type DeleteMode int

const (
	// SoftDelete marks rows with a deleted_at timestamp and keeps them.
	SoftDelete DeleteMode = iota
	// HardDelete physically removes rows.
	HardDelete
)

// Config parameterizes the store for one entity type.
type Config[T any] struct {
	// Table is the fully-qualified table name (e.g. "content.project").
	Table string

	// Resource is the client-facing name used in NOT_FOUND messages.
	Resource string

	// Columns lists the entity-specific data columns, excluding the Base
	// columns and sort_order. Order must match the values returned by Args.
	Columns []string

	// Args extracts the values for Columns from a record, in the same order.
	Args func(record *T) []any

	// Orderable adds the sort_order column to reads and enables Reorder.
	Orderable bool

	// Delete selects soft versus hard removal for this collection.
	Delete DeleteMode

	// DefaultSort is the ORDER BY expression applied when a list request
	// does not override it (e.g. "sort_order ASC, created_at ASC").
	DefaultSort string
}

// DeletedVisibility controls how reads treat soft-deleted rows.
type DeletedVisibility int

const (
	// ActiveOnly is the default: soft-deleted rows are invisible.
	ActiveOnly DeletedVisibility = iota
	// IncludeDeleted removes the exclusion clause entirely.
	IncludeDeleted
	// DeletedOnly returns exclusively soft-deleted rows.
	DeletedOnly
)

// ParseVisibility maps the `deleted` query parameter of owner-surface list
// requests to a [DeletedVisibility]. Unknown values fall back to the default.
func ParseVisibility(value string) DeletedVisibility {
	switch value {
	case "include":
		return IncludeDeleted
	case "only":
		return DeletedOnly
	default:
		return ActiveOnly
	}
}

// Filter is a single equality predicate on an entity data column. Columns
// are always chosen by service code, never taken from request input.
type Filter struct {
	Column string
	Value  any
}

// ListOptions shapes a paginated list read.
type ListOptions struct {
	Deleted DeletedVisibility
	Filters []Filter
	Sort    string // overrides Config.DefaultSort when non-empty
	Limit   int
	Offset  int
}

// BulkResult reports the outcome of a best-effort bulk removal.
//
// FailedIDs collects every id that was not found, not owned by the caller,
// or already deleted. A failed id never aborts the rest of the batch.
type BulkResult struct {
	DeletedCount int      `json:"deleted_count"`
	FailedIDs    []string `json:"failed_ids"`
}
