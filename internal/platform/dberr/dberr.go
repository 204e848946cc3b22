// Copyright (c) 2026 Folium. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/foliumhq/folium/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows          → NOT_FOUND
//   - SQLSTATE 23505         → CONFLICT (unique constraint, e.g. duplicate slug or handle)
//   - SQLSTATE 23503         → CONFLICT (foreign key violation)
//   - cancelled / timed out  → UNAVAILABLE (safe to retry)
//   - anything else          → INTERNAL_ERROR
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same unique value already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.Conflict("The record is referenced by or references another record")
		}
	}

	// Connectivity and deadline failures are retryable.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.Timeout(err) {
		return apperr.Unavailable(err)
	}

	return apperr.Internal(err)
}
