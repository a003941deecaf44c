package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisthub/artisthub-server/internal/domain"
)

type fakeRemoteGraph struct {
	mu        sync.Mutex
	available bool
	followers []domain.FollowEdge
	loadErr   error
	insertErr error
	deleteErr error
	inserted  []domain.FollowEdge
	deleted   [][2]string
}

func (f *fakeRemoteGraph) Available() bool { return f.available }

func (f *fakeRemoteGraph) FollowersOf(ctx context.Context, userID string) ([]domain.FollowEdge, error) {
	return f.followers, f.loadErr
}

func (f *fakeRemoteGraph) InsertFollow(ctx context.Context, edge domain.FollowEdge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, edge)
	return nil
}

func (f *fakeRemoteGraph) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, [2]string{followerID, followingID})
	return nil
}

func (f *fakeRemoteGraph) insertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted)
}

func (f *fakeRemoteGraph) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deleted)
}

type fakeGraphStore struct {
	mu        sync.Mutex
	following map[string][]domain.ArtistRef
	favorites map[string][]domain.Favorite
	saveErr   error
}

func newFakeGraphStore() *fakeGraphStore {
	return &fakeGraphStore{
		following: map[string][]domain.ArtistRef{},
		favorites: map[string][]domain.Favorite{},
	}
}

func (f *fakeGraphStore) SaveFollowing(ctx context.Context, userID string, following []domain.ArtistRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.following[userID] = following
	return nil
}

func (f *fakeGraphStore) LoadFollowing(ctx context.Context, userID string) ([]domain.ArtistRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.following[userID], nil
}

func (f *fakeGraphStore) SaveFavorites(ctx context.Context, userID string, favorites []domain.Favorite) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.favorites[userID] = favorites
	return nil
}

func (f *fakeGraphStore) LoadFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.favorites[userID], nil
}

var testSession = domain.Session{
	UserID:      "user-1",
	DisplayName: "Avery Quinn",
	Specialty:   "Printmaking",
	Location:    "Portland, OR",
}

func newFollow(t *testing.T, remote *fakeRemoteGraph, store *fakeGraphStore, session domain.Session) *FollowService {
	t.Helper()
	return NewFollowService(remote, store, session, slog.New(slog.DiscardHandler))
}

func artistRef(name string) domain.ArtistRef {
	return domain.ArtistRef{ID: domain.RemoteID(uuid.New()), Name: name}
}

func TestFollow_OptimisticAndPublished(t *testing.T) {
	remote := &fakeRemoteGraph{available: true}
	store := newFakeGraphStore()
	svc := newFollow(t, remote, store, testSession)

	artist := artistRef("Maya")
	require.NoError(t, svc.Follow(context.Background(), artist))

	// Local state changes synchronously.
	assert.True(t, svc.IsFollowing(artist.ID))
	assert.Equal(t, 1, svc.Snapshot().FollowingCount)
	require.Len(t, store.following["user-1"], 1)

	svc.Wait()
	require.Equal(t, 1, remote.insertCount())
	edge := remote.inserted[0]
	assert.Equal(t, "user-1", edge.FollowerID)
	assert.Equal(t, artist.ID.String(), edge.FollowingID)
	assert.Equal(t, "Avery Quinn", edge.FollowerName)
	assert.Equal(t, "Printmaking", edge.FollowerSpecialty)
	assert.NotEmpty(t, edge.ID)
	assert.False(t, edge.CreatedAt.IsZero())
}

func TestFollow_IdempotentBeforeIO(t *testing.T) {
	remote := &fakeRemoteGraph{available: true}
	store := newFakeGraphStore()
	svc := newFollow(t, remote, store, testSession)

	artist := artistRef("Maya")
	require.NoError(t, svc.Follow(context.Background(), artist))
	require.NoError(t, svc.Follow(context.Background(), artist))
	svc.Wait()

	assert.Equal(t, 1, svc.Snapshot().FollowingCount)
	assert.Equal(t, 1, remote.insertCount(), "duplicate follow must not write again")
}

func TestFollow_RemoteFailureKeepsLocalState(t *testing.T) {
	remote := &fakeRemoteGraph{available: true, insertErr: errors.New("conflict storm")}
	store := newFakeGraphStore()
	svc := newFollow(t, remote, store, testSession)

	artist := artistRef("Maya")
	require.NoError(t, svc.Follow(context.Background(), artist))
	svc.Wait()

	assert.True(t, svc.IsFollowing(artist.ID), "no rollback on remote failure")
	status := svc.Status()
	assert.Zero(t, status.PendingWrites)
	assert.Contains(t, status.LastError, "conflict storm")
}

func TestFollow_AnonymousSessionStaysLocal(t *testing.T) {
	remote := &fakeRemoteGraph{available: true}
	store := newFakeGraphStore()
	svc := newFollow(t, remote, store, domain.Session{UserID: "user-1"})

	artist := artistRef("Maya")
	require.NoError(t, svc.Follow(context.Background(), artist))
	svc.Wait()

	assert.True(t, svc.IsFollowing(artist.ID))
	assert.Zero(t, remote.insertCount(), "no display name means no published edge")
}

func TestUnfollow_RemovesAndDeletesEdge(t *testing.T) {
	remote := &fakeRemoteGraph{available: true}
	store := newFakeGraphStore()
	svc := newFollow(t, remote, store, testSession)

	artist := artistRef("Maya")
	require.NoError(t, svc.Follow(context.Background(), artist))
	require.NoError(t, svc.Unfollow(context.Background(), artist.ID))
	svc.Wait()

	assert.False(t, svc.IsFollowing(artist.ID))
	assert.Zero(t, svc.Snapshot().FollowingCount)
	assert.Empty(t, store.following["user-1"])
	require.Equal(t, 1, remote.deleteCount())
	assert.Equal(t, [2]string{"user-1", artist.ID.String()}, remote.deleted[0])
}

func TestUnfollow_NotFollowingIsNoop(t *testing.T) {
	remote := &fakeRemoteGraph{available: true}
	svc := newFollow(t, remote, newFakeGraphStore(), testSession)

	require.NoError(t, svc.Unfollow(context.Background(), domain.StaticID(1)))
	svc.Wait()
	assert.Zero(t, remote.deleteCount())
}

func TestFavorites_LocalOnlyAndIdempotent(t *testing.T) {
	remote := &fakeRemoteGraph{available: true}
	store := newFakeGraphStore()
	svc := newFollow(t, remote, store, testSession)

	artist := domain.ArtistRef{ID: domain.StaticID(2), Name: "Theo"}
	require.NoError(t, svc.AddToFavorites(context.Background(), artist))
	require.NoError(t, svc.AddToFavorites(context.Background(), artist))

	assert.True(t, svc.IsFavorite(artist.ID))
	require.Len(t, store.favorites["user-1"], 1)

	require.NoError(t, svc.RemoveFromFavorites(context.Background(), artist.ID))
	assert.False(t, svc.IsFavorite(artist.ID))
	assert.Empty(t, store.favorites["user-1"])

	svc.Wait()
	assert.Zero(t, remote.insertCount(), "favorites never touch the remote store")
	assert.Zero(t, remote.deleteCount())
}

func TestBootstrap_RehydratesFromStoreAndRemote(t *testing.T) {
	following := []domain.ArtistRef{artistRef("Maya"), artistRef("Theo")}
	favorites := []domain.Favorite{{ArtistRef: domain.ArtistRef{ID: domain.StaticID(3), Name: "June"}}}
	edges := []domain.FollowEdge{
		{ID: "flw-2", FollowerName: "newest"},
		{ID: "flw-1", FollowerName: "older"},
	}

	store := newFakeGraphStore()
	store.following["user-1"] = following
	store.favorites["user-1"] = favorites
	remote := &fakeRemoteGraph{available: true, followers: edges}

	svc := newFollow(t, remote, store, testSession)
	require.NoError(t, svc.Bootstrap(context.Background()))

	snap := svc.Snapshot()
	assert.Equal(t, 2, snap.FollowingCount)
	assert.True(t, svc.IsFollowing(following[0].ID))
	assert.True(t, svc.IsFavorite(domain.StaticID(3)))
	require.Len(t, snap.Followers, 2)
	assert.Equal(t, "flw-2", snap.Followers[0].ID, "remote order preserved")
}

func TestBootstrap_FollowerFailureMeansEmptyList(t *testing.T) {
	remote := &fakeRemoteGraph{available: true, loadErr: errors.New("timeout")}
	svc := newFollow(t, remote, newFakeGraphStore(), testSession)

	require.NoError(t, svc.Bootstrap(context.Background()), "follower load failure is not fatal")
	assert.Empty(t, svc.Snapshot().Followers)
}

func TestBootstrap_UnavailableRemote(t *testing.T) {
	remote := &fakeRemoteGraph{available: false}
	svc := newFollow(t, remote, newFakeGraphStore(), testSession)

	require.NoError(t, svc.Bootstrap(context.Background()))
	assert.Empty(t, svc.Snapshot().Followers)
}

func TestFollow_ValidationErrors(t *testing.T) {
	svc := newFollow(t, &fakeRemoteGraph{}, newFakeGraphStore(), testSession)

	assert.Error(t, svc.Follow(context.Background(), domain.ArtistRef{}))
	assert.Error(t, svc.Unfollow(context.Background(), domain.ArtistID{}))
	assert.Error(t, svc.AddToFavorites(context.Background(), domain.ArtistRef{}))
	assert.Error(t, svc.RemoveFromFavorites(context.Background(), domain.ArtistID{}))
}

func TestFollow_PersistFailureSurfaces(t *testing.T) {
	store := newFakeGraphStore()
	store.saveErr = errors.New("disk full")
	svc := newFollow(t, &fakeRemoteGraph{}, store, testSession)

	err := svc.Follow(context.Background(), artistRef("Maya"))
	assert.Error(t, err)
}
