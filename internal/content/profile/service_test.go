package profile_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/profile"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/pkg/pointer"
	"github.com/foliumhq/folium/pkg/uuidv7"
)

const (
	ownerAlice = "11111111-1111-1111-1111-111111111111"
	ownerBob   = "22222222-2222-2222-2222-222222222222"
)

// memStore is an in-memory profile.Store mirroring the lazy-create and
// handle-uniqueness semantics of the PostgreSQL implementation.
type memStore struct {
	mu      sync.Mutex
	byOwner map[string]*profile.Profile
}

func newMemStore() *memStore {
	return &memStore{byOwner: make(map[string]*profile.Profile)}
}

func (s *memStore) GetOrCreate(ctx context.Context, ownerID string) (*profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byOwner[ownerID]; ok {
		return existing, nil
	}

	record := &profile.Profile{Handle: profile.DefaultHandle(ownerID), Visibility: profile.DefaultVisibility}
	record.ID = uuidv7.New()
	record.OwnerID = ownerID
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	s.byOwner[ownerID] = record
	return record, nil
}

func (s *memStore) Update(ctx context.Context, record *profile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ownerID, existing := range s.byOwner {
		if existing.ID == record.ID {
			record.UpdatedAt = time.Now()
			s.byOwner[ownerID] = record
			return nil
		}
	}
	return apperr.NotFound("Profile")
}

func (s *memStore) FindByHandle(ctx context.Context, handle string) (*profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.byOwner {
		if record.Handle == handle {
			return record, nil
		}
	}
	return nil, apperr.NotFound("Profile")
}

func (s *memStore) ExistsHandle(ctx context.Context, handle, excludeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.byOwner {
		if record.Handle == handle && record.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byOwner[ownerID]; !ok {
		return 0, nil
	}
	delete(s.byOwner, ownerID)
	return 1, nil
}

type recordingInvalidator struct {
	handles []string
}

func (r *recordingInvalidator) InvalidateHandle(ctx context.Context, handle string) error {
	r.handles = append(r.handles, handle)
	return nil
}

func newService() (*profile.Service, *memStore, *recordingInvalidator) {
	store := newMemStore()
	cache := &recordingInvalidator{}
	return profile.NewService(store, cache, slog.Default()), store, cache
}

func TestGetProfile_LazyCreatesOnce(t *testing.T) {
	service, _, _ := newService()

	ctx := context.Background()
	first, err := service.GetProfile(ctx, ownerAlice)
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultHandle(ownerAlice), first.Handle)
	assert.True(t, first.ShowProjects)
	assert.True(t, first.ShowBlog)

	second, err := service.GetProfile(ctx, ownerAlice)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpdateProfile_ChangesHandle(t *testing.T) {
	service, _, cache := newService()

	ctx := context.Background()
	created, err := service.GetProfile(ctx, ownerAlice)
	require.NoError(t, err)

	updated, err := service.UpdateProfile(ctx, ownerAlice, &profile.Profile{
		Handle:      "alice",
		DisplayName: pointer.To("Alice"),
		Visibility:  profile.DefaultVisibility,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Handle)
	assert.Equal(t, created.ID, updated.ID)

	// Both the old and the new handle were dropped from the cache.
	assert.Contains(t, cache.handles, created.Handle)
	assert.Contains(t, cache.handles, "alice")
}

func TestUpdateProfile_HandleConflict(t *testing.T) {
	service, _, _ := newService()

	ctx := context.Background()
	_, err := service.UpdateProfile(ctx, ownerAlice, &profile.Profile{Handle: "taken", Visibility: profile.DefaultVisibility})
	require.NoError(t, err)

	_, err = service.UpdateProfile(ctx, ownerBob, &profile.Profile{Handle: "taken", Visibility: profile.DefaultVisibility})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
}

func TestUpdateProfile_HandleFormat(t *testing.T) {
	service, _, _ := newService()

	tests := []string{"Has Spaces", "UPPER", "ab", "-leading"}
	for _, handle := range tests {
		t.Run(handle, func(t *testing.T) {
			_, err := service.UpdateProfile(context.Background(), ownerAlice, &profile.Profile{Handle: handle, Visibility: profile.DefaultVisibility})
			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
		})
	}
}

func TestUpdateProfile_TogglesVisibility(t *testing.T) {
	service, _, _ := newService()

	ctx := context.Background()
	visibility := profile.DefaultVisibility
	visibility.ShowBlog = false
	visibility.ShowContacts = false

	updated, err := service.UpdateProfile(ctx, ownerAlice, &profile.Profile{Handle: "alice", Visibility: visibility})
	require.NoError(t, err)
	assert.False(t, updated.ShowBlog)
	assert.False(t, updated.ShowContacts)
	assert.True(t, updated.ShowProjects)
}

func TestDeleteByOwner_InvalidatesHandle(t *testing.T) {
	service, store, cache := newService()

	ctx := context.Background()
	created, err := service.GetProfile(ctx, ownerAlice)
	require.NoError(t, err)

	removed, err := service.DeleteByOwner(ctx, ownerAlice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Contains(t, cache.handles, created.Handle)

	_, err = store.FindByHandle(ctx, created.Handle)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}
