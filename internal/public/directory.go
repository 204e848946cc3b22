// Copyright (c) 2026 Folium. All rights reserved.

/*
Package public serves the anonymous read surface.

Every route hangs off a profile handle. The directory resolves the handle to
its profile through Redis so that portfolio traffic, which is overwhelmingly
anonymous reads, rarely touches PostgreSQL. Owner mutations invalidate the
affected handle; entries otherwise age out at their TTL.
*/
package public

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/foliumhq/folium/internal/content/profile"
	"github.com/foliumhq/folium/internal/platform/constants"
)

// Directory resolves public handles to profiles with a Redis cache in front
// of the profile store. It implements [profile.CacheInvalidator].
type Directory struct {
	profiles profile.Store
	cache    *redis.Client
	logger   *slog.Logger
}

func NewDirectory(profiles profile.Store, cache *redis.Client, logger *slog.Logger) *Directory {
	return &Directory{
		profiles: profiles,
		cache:    cache,
		logger:   logger,
	}
}

// directoryEntry is the cached form of a resolved handle. The owner id is
// carried explicitly because the profile's JSON rendering hides it.
type directoryEntry struct {
	OwnerID string          `json:"owner_id"`
	Profile profile.Profile `json:"profile"`
}

// Resolve returns the profile behind a handle. A handle that does not exist
// is NOT_FOUND; cache failures fall through to the store.
func (d *Directory) Resolve(ctx context.Context, handle string) (*profile.Profile, error) {
	key := constants.RedisPrefixHandle + handle

	raw, err := d.cache.Get(ctx, key).Result()
	if err == nil {
		var entry directoryEntry
		if unmarshalErr := json.Unmarshal([]byte(raw), &entry); unmarshalErr == nil {
			entry.Profile.OwnerID = entry.OwnerID
			return &entry.Profile, nil
		}
		// A corrupt entry is dropped and re-resolved.
		d.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		d.logger.Warn("public_directory_cache_read_failed",
			slog.String("handle", handle),
			slog.String("error", err.Error()),
		)
	}

	record, err := d.profiles.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	if payload, marshalErr := json.Marshal(directoryEntry{OwnerID: record.OwnerID, Profile: *record}); marshalErr == nil {
		if setErr := d.cache.Set(ctx, key, payload, constants.PublicHandleTTL).Err(); setErr != nil {
			d.logger.Warn("public_directory_cache_write_failed",
				slog.String("handle", handle),
				slog.String("error", setErr.Error()),
			)
		}
	}

	return record, nil
}

// CachedProfilePayload returns the rendered public profile response for a
// handle if one is cached, or nil on a miss.
func (d *Directory) CachedProfilePayload(ctx context.Context, handle string) []byte {
	raw, err := d.cache.Get(ctx, constants.RedisPrefixProfile+handle).Bytes()
	if err != nil {
		return nil
	}
	return raw
}

// StoreProfilePayload caches a rendered public profile response.
func (d *Directory) StoreProfilePayload(ctx context.Context, handle string, payload []byte) {
	err := d.cache.Set(ctx, constants.RedisPrefixProfile+handle, payload, constants.PublicProfileTTL).Err()
	if err != nil {
		d.logger.Warn("public_profile_cache_write_failed",
			slog.String("handle", handle),
			slog.String("error", err.Error()),
		)
	}
}

// InvalidateHandle implements [profile.CacheInvalidator].
func (d *Directory) InvalidateHandle(ctx context.Context, handle string) error {
	return d.cache.Del(ctx,
		constants.RedisPrefixHandle+handle,
		constants.RedisPrefixProfile+handle,
	).Err()
}
