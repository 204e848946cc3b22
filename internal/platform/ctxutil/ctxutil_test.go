// Copyright (c) 2026 Folium. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foliumhq/folium/internal/platform/ctxutil"
	"github.com/foliumhq/folium/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Owner verifies that owner claims can be stored in context.
*/
func TestContext_Owner(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		OwnerID: "owner-123",
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetOwner(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithOwner(ctx, claims)
	retrieved := ctxutil.GetOwner(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "owner-123", retrieved.OwnerID)
}
