// Copyright (c) 2026 Folium. All rights reserved.

package engine

import (
	"fmt"
	"strings"
)

// querySpec is the table shape the SQL builders work from. It is derived
// once from a [Config] and contains no per-request state, which keeps the
// builders pure and unit-testable.
type querySpec struct {
	table       string
	columns     []string // full SELECT list, base columns included
	soft        bool
	orderable   bool
	defaultSort string
}

func newQuerySpec[T any](cfg Config[T]) querySpec {
	base := []string{"id", "owner_id", "created_at", "updated_at"}
	if cfg.Delete == SoftDelete {
		base = append(base, "deleted_at")
	}
	if cfg.Orderable {
		base = append(base, "sort_order")
	}

	sort := cfg.DefaultSort
	if sort == "" {
		if cfg.Orderable {
			sort = "sort_order ASC, created_at ASC"
		} else {
			sort = "created_at DESC"
		}
	}

	return querySpec{
		table:       cfg.Table,
		columns:     append(base, cfg.Columns...),
		soft:        cfg.Delete == SoftDelete,
		orderable:   cfg.Orderable,
		defaultSort: sort,
	}
}

// selectList renders the comma-joined SELECT column list.
func (s querySpec) selectList() string {
	return strings.Join(s.columns, ", ")
}

// deletedClause renders the soft-delete exclusion predicate.
//
// This is the single place the default exclusion lives: every read path
// builds its WHERE clause through here. Hard-delete tables have no
// deleted_at column, so the clause is always empty for them.
func (s querySpec) deletedClause(v DeletedVisibility) string {
	if !s.soft {
		return ""
	}

	switch v {
	case IncludeDeleted:
		return ""
	case DeletedOnly:
		return "deleted_at IS NOT NULL"
	default:
		return "deleted_at IS NULL"
	}
}

// buildList renders the page query, the matching count query, and their
// argument slices for one owner-scoped list read.
func (s querySpec) buildList(ownerID string, opts ListOptions) (query, countQuery string, args, countArgs []any) {
	where := []string{"owner_id = $1"}
	args = []any{ownerID}

	if clause := s.deletedClause(opts.Deleted); clause != "" {
		where = append(where, clause)
	}

	for _, f := range opts.Filters {
		args = append(args, f.Value)
		where = append(where, fmt.Sprintf("%s = $%d", f.Column, len(args)))
	}

	whereClause := strings.Join(where, " AND ")
	countArgs = args

	countQuery = fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", s.table, whereClause)

	sort := opts.Sort
	if sort == "" {
		sort = s.defaultSort
	}

	args = append(args, opts.Limit, opts.Offset)
	query = fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		s.selectList(), s.table, whereClause, sort, len(args)-1, len(args),
	)

	return query, countQuery, args, countArgs
}

// buildFetch renders a single-record lookup by one exact column match.
func (s querySpec) buildFetch(column string, v DeletedVisibility) string {
	where := fmt.Sprintf("%s = $1", column)
	if clause := s.deletedClause(v); clause != "" {
		where += " AND " + clause
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s", s.selectList(), s.table, where)
}
