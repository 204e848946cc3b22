// Copyright (c) 2026 Folium. All rights reserved.

/*
Package enginetest provides an in-memory [engine.Store] used by service tests.

It mirrors the PostgreSQL store's semantics — ownership guard, default
soft-delete exclusion, bulk partial failure, reorder precondition — so that
service-level tests exercise real failure modes without a database.
*/
package enginetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/pkg/uuidv7"
)

// Store is a thread-safe in-memory [engine.Store] implementation.
type Store[T any, P engine.Ptr[T]] struct {
	mu sync.Mutex

	// Resource feeds NOT_FOUND messages, matching the real store.
	Resource string
	// Soft selects soft versus hard delete behavior.
	Soft bool
	// Orderable enables Reorder.
	Orderable bool

	// FailWith, when set, makes every operation fail with this error.
	// Used to simulate an unavailable persistence layer.
	FailWith error

	records  map[string]*T
	orders   map[string]int
	seq      []string // insertion order, stands in for created_at ties
	existsFn func(column string, value any, excludeID string) bool
	getByFn  func(column string, value any) *T
}

// New constructs an empty in-memory store.
func New[T any, P engine.Ptr[T]](resource string, soft, orderable bool) *Store[T, P] {
	return &Store[T, P]{
		Resource:  resource,
		Soft:      soft,
		Orderable: orderable,
		records:   make(map[string]*T),
		orders:    make(map[string]int),
	}
}

func (s *Store[T, P]) meta(record *T) *engine.Base {
	return P(record).Meta()
}

// Seed inserts a record directly, bypassing Create's id assignment.
// The record must already carry an ID and OwnerID.
func (s *Store[T, P]) Seed(record *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.meta(record)
	s.records[m.ID] = record
	s.seq = append(s.seq, m.ID)
}

// Order reports the current sort position of a record id.
func (s *Store[T, P]) Order(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

// Len reports the number of stored records, deleted ones included.
func (s *Store[T, P]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Store[T, P]) Create(ctx context.Context, ownerID string, record *T) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.meta(record)
	m.ID = uuidv7.New()
	m.OwnerID = ownerID
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	m.DeletedAt = nil

	s.records[m.ID] = record
	s.seq = append(s.seq, m.ID)
	return nil
}

func (s *Store[T, P]) List(ctx context.Context, ownerID string, opts engine.ListOptions) ([]*T, int, error) {
	if s.FailWith != nil {
		return nil, 0, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*T
	for _, id := range s.seq {
		record, ok := s.records[id]
		if !ok {
			continue
		}
		m := s.meta(record)
		if m.OwnerID != ownerID {
			continue
		}
		if !s.visible(m, opts.Deleted) {
			continue
		}
		matched = append(matched, record)
	}

	if s.Orderable {
		sort.SliceStable(matched, func(i, j int) bool {
			return s.orders[s.meta(matched[i]).ID] < s.orders[s.meta(matched[j]).ID]
		})
	}

	total := len(matched)
	if opts.Offset > 0 {
		if opts.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[opts.Offset:]
		}
	}
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}

	return matched, total, nil
}

func (s *Store[T, P]) visible(m *engine.Base, v engine.DeletedVisibility) bool {
	if !s.Soft {
		return v != engine.DeletedOnly
	}
	switch v {
	case engine.IncludeDeleted:
		return true
	case engine.DeletedOnly:
		return m.DeletedAt != nil
	default:
		return m.DeletedAt == nil
	}
}

func (s *Store[T, P]) get(ownerID, id string, v engine.DeletedVisibility) (*T, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, apperr.NotFound(s.Resource)
	}
	m := s.meta(record)
	if !s.visible(m, v) {
		return nil, apperr.NotFound(s.Resource)
	}
	if m.OwnerID != ownerID {
		return nil, apperr.Forbidden("You do not have access to this " + s.Resource)
	}
	return record, nil
}

func (s *Store[T, P]) Get(ctx context.Context, ownerID, id string) (*T, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(ownerID, id, engine.ActiveOnly)
}

func (s *Store[T, P]) GetDeleted(ctx context.Context, ownerID, id string) (*T, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Soft {
		return nil, apperr.NotFound(s.Resource)
	}
	return s.get(ownerID, id, engine.DeletedOnly)
}

func (s *Store[T, P]) Save(ctx context.Context, record *T) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.meta(record)
	stored, ok := s.records[m.ID]
	if !ok || (s.Soft && s.meta(stored).DeletedAt != nil) {
		return apperr.NotFound(s.Resource)
	}
	m.UpdatedAt = time.Now()
	s.records[m.ID] = record
	return nil
}

func (s *Store[T, P]) Remove(ctx context.Context, ownerID, id string) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.get(ownerID, id, engine.ActiveOnly)
	if err != nil {
		return err
	}

	if s.Soft {
		now := time.Now()
		s.meta(record).DeletedAt = &now
		return nil
	}

	delete(s.records, id)
	return nil
}

func (s *Store[T, P]) Restore(ctx context.Context, ownerID, id string) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Soft {
		return apperr.NotFound(s.Resource)
	}
	record, err := s.get(ownerID, id, engine.DeletedOnly)
	if err != nil {
		return err
	}
	s.meta(record).DeletedAt = nil
	return nil
}

func (s *Store[T, P]) BulkRemove(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	if s.FailWith != nil {
		return engine.BulkResult{}, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	result := engine.BulkResult{FailedIDs: []string{}}
	for _, id := range ids {
		record, ok := s.records[id]
		if !ok {
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		m := s.meta(record)
		if m.OwnerID != ownerID || (s.Soft && m.DeletedAt != nil) {
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		if s.Soft {
			now := time.Now()
			m.DeletedAt = &now
		} else {
			delete(s.records, id)
		}
		result.DeletedCount++
	}

	return result, nil
}

func (s *Store[T, P]) Reorder(ctx context.Context, ownerID string, ids []string) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Orderable {
		return apperr.Internal(fmt.Errorf("enginetest: %s is not orderable", s.Resource))
	}

	// All-or-nothing precondition before any write, as in the real store.
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		record, ok := s.records[id]
		if !ok || seen[id] {
			return apperr.Forbidden("Some items were not found or are not yours")
		}
		m := s.meta(record)
		if m.OwnerID != ownerID || (s.Soft && m.DeletedAt != nil) {
			return apperr.Forbidden("Some items were not found or are not yours")
		}
		seen[id] = true
	}

	for index, id := range ids {
		s.orders[id] = index
	}
	return nil
}

func (s *Store[T, P]) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	if s.FailWith != nil {
		return 0, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, record := range s.records {
		m := s.meta(record)
		if m.OwnerID != ownerID {
			continue
		}
		if s.Soft {
			if m.DeletedAt == nil {
				now := time.Now()
				m.DeletedAt = &now
				removed++
			}
			continue
		}
		delete(s.records, id)
		removed++
	}
	return removed, nil
}

// ExistsBy supports only the columns service tests register via OnExists.
func (s *Store[T, P]) ExistsBy(ctx context.Context, column string, value any, excludeID string) (bool, error) {
	if s.FailWith != nil {
		return false, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.existsFn == nil {
		return false, nil
	}
	return s.existsFn(column, value, excludeID), nil
}

// OnExists registers the predicate backing ExistsBy. The in-memory store has
// no column index, so tests declare collisions explicitly.
func (s *Store[T, P]) OnExists(fn func(column string, value any, excludeID string) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.existsFn = fn
}

func (s *Store[T, P]) GetBy(ctx context.Context, column string, value any) (*T, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getByFn == nil {
		return nil, apperr.NotFound(s.Resource)
	}
	record := s.getByFn(column, value)
	if record == nil {
		return nil, apperr.NotFound(s.Resource)
	}
	return record, nil
}

// OnGetBy registers the lookup backing GetBy.
func (s *Store[T, P]) OnGetBy(fn func(column string, value any) *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getByFn = fn
}
