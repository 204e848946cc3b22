// Copyright (c) 2026 Folium. All rights reserved.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	Base
	Title string `db:"title"`
}

func testSpec(soft, orderable bool) querySpec {
	mode := HardDelete
	if soft {
		mode = SoftDelete
	}
	return newQuerySpec(Config[fakeRecord]{
		Table:     "content.fake",
		Resource:  "Fake",
		Columns:   []string{"title"},
		Args:      func(r *fakeRecord) []any { return []any{r.Title} },
		Orderable: orderable,
		Delete:    mode,
	})
}

/*
TestQuerySpec_DeletedClause pins the centralized soft-delete exclusion:
default reads exclude, include-mode drops the clause entirely, deleted-only
inverts it, and hard-delete tables never emit it.
*/
func TestQuerySpec_DeletedClause(t *testing.T) {
	soft := testSpec(true, false)
	assert.Equal(t, "deleted_at IS NULL", soft.deletedClause(ActiveOnly))
	assert.Equal(t, "", soft.deletedClause(IncludeDeleted))
	assert.Equal(t, "deleted_at IS NOT NULL", soft.deletedClause(DeletedOnly))

	hard := testSpec(false, false)
	assert.Equal(t, "", hard.deletedClause(ActiveOnly))
	assert.Equal(t, "", hard.deletedClause(DeletedOnly))
}

/*
TestQuerySpec_BuildList verifies owner scoping, filter placeholders, and
pagination argument positions.
*/
func TestQuerySpec_BuildList(t *testing.T) {
	spec := testSpec(true, true)

	t.Run("default_visibility", func(t *testing.T) {
		query, countQuery, args, countArgs := spec.buildList("owner-1", ListOptions{Limit: 20, Offset: 40})

		assert.Contains(t, query, "owner_id = $1")
		assert.Contains(t, query, "deleted_at IS NULL")
		assert.Contains(t, query, "ORDER BY sort_order ASC, created_at ASC")
		assert.Contains(t, query, "LIMIT $2 OFFSET $3")
		assert.Equal(t, []any{"owner-1", 20, 40}, args)

		assert.Contains(t, countQuery, "count(*)")
		assert.Contains(t, countQuery, "deleted_at IS NULL")
		assert.Equal(t, []any{"owner-1"}, countArgs)
	})

	t.Run("include_deleted_removes_clause", func(t *testing.T) {
		query, countQuery, _, _ := spec.buildList("owner-1", ListOptions{Deleted: IncludeDeleted, Limit: 10})
		assert.NotContains(t, query, "deleted_at")
		assert.NotContains(t, countQuery, "deleted_at")
	})

	t.Run("filters_extend_placeholders", func(t *testing.T) {
		query, _, args, countArgs := spec.buildList("owner-1", ListOptions{
			Filters: []Filter{{Column: "published", Value: true}},
			Limit:   10,
		})
		assert.Contains(t, query, "published = $2")
		assert.Contains(t, query, "LIMIT $3 OFFSET $4")
		assert.Equal(t, []any{"owner-1", true, 10, 0}, args)
		assert.Equal(t, []any{"owner-1", true}, countArgs)
	})

	t.Run("sort_override", func(t *testing.T) {
		query, _, _, _ := spec.buildList("owner-1", ListOptions{Sort: "published_at DESC", Limit: 5})
		assert.Contains(t, query, "ORDER BY published_at DESC")
	})
}

/*
TestQuerySpec_SelectList verifies the column list tracks delete mode and
orderability.
*/
func TestQuerySpec_SelectList(t *testing.T) {
	soft := testSpec(true, true)
	assert.Equal(t, "id, owner_id, created_at, updated_at, deleted_at, sort_order, title", soft.selectList())

	hard := testSpec(false, false)
	assert.Equal(t, "id, owner_id, created_at, updated_at, title", hard.selectList())
}

/*
TestQuerySpec_BuildFetch verifies single-record lookups carry the exclusion.
*/
func TestQuerySpec_BuildFetch(t *testing.T) {
	spec := testSpec(true, false)

	fetch := spec.buildFetch("id", ActiveOnly)
	require.Contains(t, fetch, "id = $1")
	assert.Contains(t, fetch, "deleted_at IS NULL")

	deletedOnly := spec.buildFetch("id", DeletedOnly)
	assert.Contains(t, deletedOnly, "deleted_at IS NOT NULL")
}

/*
TestQuerySpec_DefaultSort pins the fallback sorts for orderable and plain
collections.
*/
func TestQuerySpec_DefaultSort(t *testing.T) {
	assert.Equal(t, "sort_order ASC, created_at ASC", testSpec(true, true).defaultSort)
	assert.Equal(t, "created_at DESC", testSpec(true, false).defaultSort)
}
