// Copyright (c) 2026 Folium. All rights reserved.

package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/internal/platform/dberr"
	"github.com/foliumhq/folium/pkg/uuidv7"
)

// PG is the PostgreSQL-backed [Store] implementation.
//
// The second type parameter ties the plain struct type T to its pointer form
// so the store can reach the embedded [Base] without reflection. Records are
// scanned generically via pgx.RowToAddrOfStructByNameLax, so entity structs
// only need db tags; Lax matching lets hard-delete tables omit deleted_at
// and non-orderable tables omit sort_order.
type PG[T any, P Ptr[T]] struct {
	db   *pgxpool.Pool
	cfg  Config[T]
	spec querySpec
}

// NewPG constructs the PostgreSQL store for one entity configuration.
func NewPG[T any, P Ptr[T]](db *pgxpool.Pool, cfg Config[T]) *PG[T, P] {
	return &PG[T, P]{
		db:   db,
		cfg:  cfg,
		spec: newQuerySpec(cfg),
	}
}

// meta reaches the embedded Base of a record.
func (s *PG[T, P]) meta(record *T) *Base {
	return P(record).Meta()
}

// action builds the dberr action tag for logging context.
func (s *PG[T, P]) action(verb string) string {
	return verb + "_" + strings.ToLower(s.cfg.Resource)
}

// assertOwned applies the ownership guard to a fetched record.
//
// The record was fetched by id alone, so "missing" and "foreign" stay
// distinguishable. The Forbidden message names only the resource type.
func (s *PG[T, P]) assertOwned(record *T, ownerID string) (*T, error) {
	if record == nil {
		return nil, apperr.NotFound(s.cfg.Resource)
	}
	if s.meta(record).OwnerID != ownerID {
		return nil, apperr.Forbidden("You do not have access to this " + strings.ToLower(s.cfg.Resource))
	}
	return record, nil
}

// Create implements [Store].
func (s *PG[T, P]) Create(ctx context.Context, ownerID string, record *T) error {
	m := s.meta(record)
	m.ID = uuidv7.New()
	m.OwnerID = ownerID
	m.DeletedAt = nil

	columns := append([]string{"id", "owner_id"}, s.cfg.Columns...)
	args := append([]any{m.ID, ownerID}, s.cfg.Args(record)...)

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, created_at, updated_at) VALUES (%s, NOW(), NOW()) RETURNING created_at, updated_at",
		s.cfg.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
	)

	err := s.db.QueryRow(ctx, query, args...).Scan(&m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, s.action("create"))
}

// List implements [Store].
func (s *PG[T, P]) List(ctx context.Context, ownerID string, opts ListOptions) ([]*T, int, error) {
	query, countQuery, args, countArgs := s.spec.buildList(ownerID, opts)

	var total int
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, s.action("count"))
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, s.action("list"))
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, 0, dberr.Wrap(err, s.action("scan"))
	}

	return records, total, nil
}

// fetch loads one record by id without any ownership filtering.
func (s *PG[T, P]) fetch(ctx context.Context, id string, visibility DeletedVisibility) (*T, error) {
	rows, err := s.db.Query(ctx, s.spec.buildFetch("id", visibility), id)
	if err != nil {
		return nil, dberr.Wrap(err, s.action("fetch"))
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(s.cfg.Resource)
		}
		return nil, dberr.Wrap(err, s.action("fetch"))
	}

	return record, nil
}

// Get implements [Store].
func (s *PG[T, P]) Get(ctx context.Context, ownerID, id string) (*T, error) {
	record, err := s.fetch(ctx, id, ActiveOnly)
	if err != nil {
		return nil, err
	}
	return s.assertOwned(record, ownerID)
}

// GetDeleted implements [Store].
func (s *PG[T, P]) GetDeleted(ctx context.Context, ownerID, id string) (*T, error) {
	if s.cfg.Delete != SoftDelete {
		return nil, apperr.NotFound(s.cfg.Resource)
	}

	record, err := s.fetch(ctx, id, DeletedOnly)
	if err != nil {
		return nil, err
	}
	return s.assertOwned(record, ownerID)
}

// Save implements [Store].
func (s *PG[T, P]) Save(ctx context.Context, record *T) error {
	m := s.meta(record)

	assignments := make([]string, len(s.cfg.Columns))
	for i, column := range s.cfg.Columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	where := "id = $1"
	if clause := s.spec.deletedClause(ActiveOnly); clause != "" {
		where += " AND " + clause
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE %s RETURNING updated_at",
		s.cfg.Table, strings.Join(assignments, ", "), where,
	)

	args := append([]any{m.ID}, s.cfg.Args(record)...)
	err := s.db.QueryRow(ctx, query, args...).Scan(&m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(s.cfg.Resource)
	}
	return dberr.Wrap(err, s.action("update"))
}

// Remove implements [Store].
func (s *PG[T, P]) Remove(ctx context.Context, ownerID, id string) error {
	// Fetch-and-assert first so a foreign id fails with FORBIDDEN, not a
	// silent zero-row write.
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}

	var query string
	switch s.cfg.Delete {
	case SoftDelete:
		query = fmt.Sprintf("UPDATE %s SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL", s.cfg.Table)
	default:
		query = fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.cfg.Table)
	}

	cmd, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, s.action("delete"))
	}
	if cmd.RowsAffected() == 0 {
		// Lost a race with a concurrent delete.
		return apperr.NotFound(s.cfg.Resource)
	}
	return nil
}

// Restore implements [Store].
func (s *PG[T, P]) Restore(ctx context.Context, ownerID, id string) error {
	record, err := s.GetDeleted(ctx, ownerID, id)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("UPDATE %s SET deleted_at = NULL WHERE id = $1", s.cfg.Table)
	if _, err := s.db.Exec(ctx, query, s.meta(record).ID); err != nil {
		return dberr.Wrap(err, s.action("restore"))
	}
	return nil
}

// BulkRemove implements [Store].
//
// Each id is an independent conditional write pipelined through one
// pgx.Batch round-trip. An id that does not match (missing, foreign, or
// already deleted) lands in FailedIDs without disturbing the rest.
func (s *PG[T, P]) BulkRemove(ctx context.Context, ownerID string, ids []string) (BulkResult, error) {
	result := BulkResult{FailedIDs: []string{}}
	if len(ids) == 0 {
		return result, nil
	}

	var query string
	switch s.cfg.Delete {
	case SoftDelete:
		query = fmt.Sprintf(
			"UPDATE %s SET deleted_at = NOW() WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL",
			s.cfg.Table,
		)
	default:
		query = fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND owner_id = $2", s.cfg.Table)
	}

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(query, id, ownerID)
	}

	results := s.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for _, id := range ids {
		cmd, err := results.Exec()
		if err != nil || cmd.RowsAffected() == 0 {
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		result.DeletedCount++
	}

	return result, nil
}

// Reorder implements [Store].
func (s *PG[T, P]) Reorder(ctx context.Context, ownerID string, ids []string) error {
	if !s.cfg.Orderable {
		return apperr.Internal(fmt.Errorf("engine: %s is not orderable", s.cfg.Table))
	}
	if len(ids) == 0 {
		return nil
	}

	// Resolve the whole sequence before the first write: every id must be an
	// active record of this owner. Duplicates shrink the resolved set and
	// fail the same check.
	where := "id = ANY($1) AND owner_id = $2"
	if clause := s.spec.deletedClause(ActiveOnly); clause != "" {
		where += " AND " + clause
	}
	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", s.cfg.Table, where)

	var resolved int
	if err := s.db.QueryRow(ctx, countQuery, ids, ownerID).Scan(&resolved); err != nil {
		return dberr.Wrap(err, s.action("reorder"))
	}
	if resolved != len(ids) {
		return apperr.Forbidden("Some items were not found or are not yours")
	}

	update := fmt.Sprintf(
		"UPDATE %s SET sort_order = $3, updated_at = NOW() WHERE id = $1 AND owner_id = $2",
		s.cfg.Table,
	)

	batch := &pgx.Batch{}
	for index, id := range ids {
		batch.Queue(update, id, ownerID, index)
	}

	results := s.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for range ids {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(err, s.action("reorder"))
		}
	}

	return nil
}

// DeleteAllByOwner implements [Store].
func (s *PG[T, P]) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	var query string
	switch s.cfg.Delete {
	case SoftDelete:
		query = fmt.Sprintf("UPDATE %s SET deleted_at = NOW() WHERE owner_id = $1 AND deleted_at IS NULL", s.cfg.Table)
	default:
		query = fmt.Sprintf("DELETE FROM %s WHERE owner_id = $1", s.cfg.Table)
	}

	cmd, err := s.db.Exec(ctx, query, ownerID)
	if err != nil {
		return 0, dberr.Wrap(err, s.action("purge"))
	}
	return cmd.RowsAffected(), nil
}

// ExistsBy implements [Store].
func (s *PG[T, P]) ExistsBy(ctx context.Context, column string, value any, excludeID string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1", s.cfg.Table, column)
	args := []any{value}

	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	query += ")"

	var exists bool
	if err := s.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, s.action("exists"))
	}
	return exists, nil
}

// GetBy implements [Store].
func (s *PG[T, P]) GetBy(ctx context.Context, column string, value any) (*T, error) {
	rows, err := s.db.Query(ctx, s.spec.buildFetch(column, ActiveOnly), value)
	if err != nil {
		return nil, dberr.Wrap(err, s.action("fetch"))
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(s.cfg.Resource)
		}
		return nil, dberr.Wrap(err, s.action("fetch"))
	}

	return record, nil
}
