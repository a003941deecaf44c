package graph

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisthub/artisthub-server/internal/domain"
)

func remoteRef(t *testing.T, name string) domain.ArtistRef {
	t.Helper()
	return domain.ArtistRef{
		ID:   domain.RemoteID(uuid.New()),
		Name: name,
	}
}

func TestGraph_FollowingAddRemove(t *testing.T) {
	g := New()
	a := remoteRef(t, "Maya")
	b := remoteRef(t, "Theo")

	assert.True(t, g.AddFollowing(a))
	assert.True(t, g.AddFollowing(b))
	assert.False(t, g.AddFollowing(a), "duplicate follow should be a no-op")

	assert.Equal(t, 2, g.FollowingCount())
	assert.True(t, g.IsFollowing(a.ID))

	require.True(t, g.RemoveFollowing(a.ID))
	assert.False(t, g.RemoveFollowing(a.ID), "second remove should report absent")
	assert.Equal(t, 1, g.FollowingCount())
	assert.False(t, g.IsFollowing(a.ID))

	got := g.Following()
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestGraph_FollowingPreservesInsertionOrder(t *testing.T) {
	g := New()
	refs := []domain.ArtistRef{
		remoteRef(t, "first"),
		{ID: domain.StaticID(3), Name: "second"},
		remoteRef(t, "third"),
	}
	for _, ref := range refs {
		g.AddFollowing(ref)
	}

	got := g.Following()
	require.Len(t, got, 3)
	for i, ref := range refs {
		assert.Equal(t, ref.ID, got[i].ID)
	}
}

func TestGraph_SetFollowingDeduplicates(t *testing.T) {
	g := New()
	a := remoteRef(t, "Maya")
	g.SetFollowing([]domain.ArtistRef{a, a, remoteRef(t, "Theo")})

	assert.Equal(t, 2, g.FollowingCount())
	assert.True(t, g.IsFollowing(a.ID))
}

func TestGraph_CountMatchesMembership(t *testing.T) {
	g := New()
	ids := make([]domain.ArtistID, 0, 10)
	for i := 0; i < 10; i++ {
		ref := remoteRef(t, "artist")
		ids = append(ids, ref.ID)
		g.AddFollowing(ref)
	}
	for i, id := range ids {
		if i%2 == 0 {
			g.RemoveFollowing(id)
		}
	}

	count := 0
	for _, id := range ids {
		if g.IsFollowing(id) {
			count++
		}
	}
	assert.Equal(t, count, g.FollowingCount())
	assert.Len(t, g.Following(), g.FollowingCount())
}

func TestGraph_Favorites(t *testing.T) {
	g := New()
	fav := domain.Favorite{
		ArtistRef: domain.ArtistRef{ID: domain.StaticID(2), Name: "Theo"},
		SavedAt:   time.Now(),
	}

	assert.True(t, g.AddFavorite(fav))
	assert.False(t, g.AddFavorite(fav), "saving twice should be a no-op")
	assert.True(t, g.IsFavorite(fav.ID))

	require.True(t, g.RemoveFavorite(fav.ID))
	assert.False(t, g.RemoveFavorite(fav.ID))
	assert.Empty(t, g.Favorites())
}

func TestGraph_SetFollowersReplacesWholesale(t *testing.T) {
	g := New()
	g.SetFollowers([]domain.FollowEdge{
		{ID: "flw-1", FollowerName: "old"},
		{ID: "flw-2", FollowerName: "old"},
	})
	require.Equal(t, 2, g.FollowersCount())

	g.SetFollowers([]domain.FollowEdge{{ID: "flw-3", FollowerName: "new"}})
	got := g.Followers()
	require.Len(t, got, 1)
	assert.Equal(t, "flw-3", got[0].ID)
}

func TestGraph_SnapshotIsACopy(t *testing.T) {
	g := New()
	a := remoteRef(t, "Maya")
	g.AddFollowing(a)
	g.SetFollowers([]domain.FollowEdge{{ID: "flw-1"}})

	snap := g.Snapshot()
	assert.Equal(t, 1, snap.FollowingCount)
	assert.Equal(t, 1, snap.FollowersCount)

	snap.Following[0].Name = "mutated"
	assert.Equal(t, "Maya", g.Following()[0].Name)
}

func TestGraph_ConcurrentMutation(t *testing.T) {
	g := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ref := domain.ArtistRef{ID: domain.RemoteID(uuid.New())}
				g.AddFollowing(ref)
				g.IsFollowing(ref.ID)
				g.RemoveFollowing(ref.ID)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, g.FollowingCount())
}
