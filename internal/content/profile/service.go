package profile

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/internal/platform/validate"
)

// CacheInvalidator drops cached public lookups for a handle after the
// profile behind it changes. Invalidation failures are logged, not returned:
// the cache heals itself at TTL expiry.
type CacheInvalidator interface {
	InvalidateHandle(ctx context.Context, handle string) error
}

type Service struct {
	store  Store
	cache  CacheInvalidator
	logger *slog.Logger
}

func NewService(store Store, cache CacheInvalidator, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// GetProfile returns the owner's profile, creating the default row on first
// access.
func (service *Service) GetProfile(ctx context.Context, ownerID string) (*Profile, error) {
	return service.store.GetOrCreate(ctx, ownerID)
}

func (service *Service) UpdateProfile(ctx context.Context, ownerID string, input *Profile) (*Profile, error) {
	existing, err := service.store.GetOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Handle == "" {
		input.Handle = existing.Handle
	}

	if err := validateProfile(input); err != nil {
		return nil, err
	}

	if input.Handle != existing.Handle {
		taken, err := service.store.ExistsHandle(ctx, input.Handle, existing.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("This handle is already taken")
		}
	}

	input.Base = existing.Base
	if err := service.store.Update(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("profile_updated",
		slog.String("owner_id", ownerID),
		slog.String("handle", input.Handle),
	)

	service.invalidate(ctx, existing.Handle)
	if input.Handle != existing.Handle {
		service.invalidate(ctx, input.Handle)
	}
	return input, nil
}

// DeleteByOwner removes the profile row during account purge.
func (service *Service) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	existing, err := service.store.GetOrCreate(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	removed, err := service.store.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	service.invalidate(ctx, existing.Handle)
	return removed, nil
}

func (service *Service) invalidate(ctx context.Context, handle string) {
	if service.cache == nil || handle == "" {
		return
	}
	if err := service.cache.InvalidateHandle(ctx, handle); err != nil {
		service.logger.Warn("profile_cache_invalidation_failed",
			slog.String("handle", handle),
			slog.String("error", err.Error()),
		)
	}
}

func validateProfile(input *Profile) error {
	validator := &validate.Validator{}

	validator.Required(FieldHandle, input.Handle).
		Slug(FieldHandle, input.Handle).
		MinLen(FieldHandle, input.Handle, 3).
		MaxLen(FieldHandle, input.Handle, 50)

	if input.DisplayName != nil {
		validator.MaxLen(FieldDisplayName, *input.DisplayName, 100)
	}
	if input.Headline != nil {
		validator.MaxLen(FieldHeadline, *input.Headline, 200)
	}
	if input.Bio != nil {
		validator.MaxLen(FieldBio, *input.Bio, 2000)
	}
	if input.Location != nil {
		validator.MaxLen(FieldLocation, *input.Location, 200)
	}
	if input.AvatarURL != nil {
		validator.URL(FieldAvatarURL, *input.AvatarURL)
	}
	if input.ResumeURL != nil {
		validator.URL(FieldResumeURL, *input.ResumeURL)
	}
	if input.WebsiteURL != nil {
		validator.URL(FieldWebsiteURL, *input.WebsiteURL)
	}
	if input.GithubURL != nil {
		validator.URL(FieldGithubURL, *input.GithubURL)
	}
	if input.LinkedinURL != nil {
		validator.URL(FieldLinkedinURL, *input.LinkedinURL)
	}

	return validator.Err()
}
