package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisthub/artisthub-server/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFollowing_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	refs := []domain.ArtistRef{
		{ID: domain.RemoteID(uuid.New()), Name: "Ada", Specialty: "Ceramics"},
		{ID: domain.StaticID(2), Name: "Theo"},
	}
	require.NoError(t, s.SaveFollowing(ctx, "user-1", refs))

	got, err := s.LoadFollowing(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, refs, got)
}

func TestFollowing_MissingUserIsEmpty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LoadFollowing(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFollowing_WholesaleOverwrite(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFollowing(ctx, "user-1", []domain.ArtistRef{
		{ID: domain.StaticID(1), Name: "Ada"},
		{ID: domain.StaticID(2), Name: "Theo"},
	}))
	require.NoError(t, s.SaveFollowing(ctx, "user-1", []domain.ArtistRef{
		{ID: domain.StaticID(2), Name: "Theo"},
	}))

	got, err := s.LoadFollowing(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Theo", got[0].Name)
}

func TestFavorites_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	favs := []domain.Favorite{
		{
			ArtistRef: domain.ArtistRef{ID: domain.StaticID(3), Name: "June"},
			SavedAt:   time.Now().UTC().Truncate(time.Second),
		},
	}
	require.NoError(t, s.SaveFavorites(ctx, "user-1", favs))

	got, err := s.LoadFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, favs, got)
}

func TestUsersAreIsolated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFollowing(ctx, "user-1", []domain.ArtistRef{
		{ID: domain.StaticID(1), Name: "Ada"},
	}))

	got, err := s.LoadFollowing(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveNilPersistsEmptyList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveFollowing(ctx, "user-1", []domain.ArtistRef{
		{ID: domain.StaticID(1), Name: "Ada"},
	}))
	require.NoError(t, s.SaveFollowing(ctx, "user-1", nil))

	got, err := s.LoadFollowing(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
