package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/artisthub/artisthub-server/internal/domain"
	domainerrors "github.com/artisthub/artisthub-server/internal/errors"
	"github.com/artisthub/artisthub-server/internal/graph"
	"github.com/artisthub/artisthub-server/internal/id"
)

// remoteWriteTimeout bounds the background remote writes so an abandoned
// request context can't leave them hanging.
const remoteWriteTimeout = 15 * time.Second

// RemoteGraph is the slice of the remote gateway the follow service uses.
// A nil *gateway.Client satisfies it and reports unavailable.
type RemoteGraph interface {
	Available() bool
	FollowersOf(ctx context.Context, userID string) ([]domain.FollowEdge, error)
	InsertFollow(ctx context.Context, edge domain.FollowEdge) error
	DeleteFollow(ctx context.Context, followerID, followingID string) error
}

// GraphStore is the local durable store for the session's following and
// favorites lists.
type GraphStore interface {
	SaveFollowing(ctx context.Context, userID string, following []domain.ArtistRef) error
	LoadFollowing(ctx context.Context, userID string) ([]domain.ArtistRef, error)
	SaveFavorites(ctx context.Context, userID string, favorites []domain.Favorite) error
	LoadFavorites(ctx context.Context, userID string) ([]domain.Favorite, error)
}

// SyncStatus reports how far the optimistic cache may have drifted from
// the remote store. Optimistic mutations are never rolled back, so a
// failed remote write shows up here instead.
type SyncStatus struct {
	PendingWrites int    `json:"pending_writes"`
	LastError     string `json:"last_error,omitempty"`
	LastErrorAt   string `json:"last_error_at,omitempty"`
}

// FollowService keeps the session's follow graph: the optimistic local
// cache mutates synchronously, the durable store persists on every
// mutation, and remote edge writes settle in the background.
type FollowService struct {
	graph   *graph.Graph
	remote  RemoteGraph
	store   GraphStore
	session domain.Session
	logger  *slog.Logger

	// mu serializes mutations so the cache and its persisted copy can't
	// interleave. Reads go straight to the graph.
	mu sync.Mutex

	statusMu sync.Mutex
	status   SyncStatus

	writes sync.WaitGroup
}

// NewFollowService creates a follow service for the given session.
func NewFollowService(remote RemoteGraph, store GraphStore, session domain.Session, logger *slog.Logger) *FollowService {
	return &FollowService{
		graph:   graph.New(),
		remote:  remote,
		store:   store,
		session: session,
		logger:  logger,
	}
}

// Bootstrap hydrates the session graph: following and favorites come from
// the local durable store, followers from the remote store. A remote
// failure leaves the followers list empty and is logged, not returned;
// there is no static fallback for followers.
func (s *FollowService) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	following, err := s.store.LoadFollowing(ctx, s.session.UserID)
	if err != nil {
		return fmt.Errorf("load following: %w", err)
	}
	s.graph.SetFollowing(following)

	favorites, err := s.store.LoadFavorites(ctx, s.session.UserID)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	s.graph.SetFavorites(favorites)

	s.graph.SetFollowers(s.loadFollowers(ctx))
	return nil
}

// RefreshFollowers re-fetches the followers list and replaces the cache.
func (s *FollowService) RefreshFollowers(ctx context.Context) []domain.FollowEdge {
	edges := s.loadFollowers(ctx)
	s.graph.SetFollowers(edges)
	return edges
}

func (s *FollowService) loadFollowers(ctx context.Context) []domain.FollowEdge {
	if !s.remote.Available() {
		return nil
	}
	edges, err := s.remote.FollowersOf(ctx, s.session.UserID)
	if err != nil {
		s.logger.Warn("failed to load followers, starting with empty list",
			"user_id", s.session.UserID,
			"error", err,
		)
		return nil
	}
	return edges
}

// Follow adds the artist to the following cache and persists the list,
// then publishes the edge to the remote store in the background. Already
// following is a no-op checked before any I/O.
func (s *FollowService) Follow(ctx context.Context, artist domain.ArtistRef) error {
	if artist.ID.IsZero() {
		return domainerrors.Validation("artist id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.AddFollowing(artist) {
		return nil
	}
	if err := s.store.SaveFollowing(ctx, s.session.UserID, s.graph.Following()); err != nil {
		return fmt.Errorf("persist following: %w", err)
	}

	s.logger.Info("followed artist",
		"user_id", s.session.UserID,
		"artist_id", artist.ID.String(),
		"following_count", s.graph.FollowingCount(),
	)

	if s.remote.Available() && s.session.CanPublish() {
		edge := domain.FollowEdge{
			ID:                id.MustGenerate("flw"),
			FollowerID:        s.session.UserID,
			FollowingID:       artist.ID.String(),
			FollowerName:      s.session.DisplayName,
			FollowerImage:     s.session.ProfileImage,
			FollowerSpecialty: s.session.Specialty,
			FollowerLocation:  s.session.Location,
			CreatedAt:         time.Now().UTC(),
		}
		s.publish("insert follow edge", artist.ID, func(ctx context.Context) error {
			return s.remote.InsertFollow(ctx, edge)
		})
	}
	return nil
}

// Unfollow removes the artist from the following cache and persists the
// list, then deletes the remote edge in the background. Not following is a
// no-op.
func (s *FollowService) Unfollow(ctx context.Context, artistID domain.ArtistID) error {
	if artistID.IsZero() {
		return domainerrors.Validation("artist id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.RemoveFollowing(artistID) {
		return nil
	}
	if err := s.store.SaveFollowing(ctx, s.session.UserID, s.graph.Following()); err != nil {
		return fmt.Errorf("persist following: %w", err)
	}

	s.logger.Info("unfollowed artist",
		"user_id", s.session.UserID,
		"artist_id", artistID.String(),
		"following_count", s.graph.FollowingCount(),
	)

	if s.remote.Available() && s.session.CanPublish() {
		s.publish("delete follow edge", artistID, func(ctx context.Context) error {
			return s.remote.DeleteFollow(ctx, s.session.UserID, artistID.String())
		})
	}
	return nil
}

// AddToFavorites saves the artist locally. Favorites never touch the
// remote store. Already saved is a no-op.
func (s *FollowService) AddToFavorites(ctx context.Context, artist domain.ArtistRef) error {
	if artist.ID.IsZero() {
		return domainerrors.Validation("artist id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fav := domain.Favorite{ArtistRef: artist, SavedAt: time.Now().UTC()}
	if !s.graph.AddFavorite(fav) {
		return nil
	}
	if err := s.store.SaveFavorites(ctx, s.session.UserID, s.graph.Favorites()); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}

// RemoveFromFavorites removes a saved artist. Not saved is a no-op.
func (s *FollowService) RemoveFromFavorites(ctx context.Context, artistID domain.ArtistID) error {
	if artistID.IsZero() {
		return domainerrors.Validation("artist id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.graph.RemoveFavorite(artistID) {
		return nil
	}
	if err := s.store.SaveFavorites(ctx, s.session.UserID, s.graph.Favorites()); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}

// IsFollowing reports local cache membership.
func (s *FollowService) IsFollowing(artistID domain.ArtistID) bool {
	return s.graph.IsFollowing(artistID)
}

// IsFavorite reports local cache membership.
func (s *FollowService) IsFavorite(artistID domain.ArtistID) bool {
	return s.graph.IsFavorite(artistID)
}

// Snapshot returns the current graph state.
func (s *FollowService) Snapshot() graph.Snapshot {
	return s.graph.Snapshot()
}

// Status reports the remote sync state.
func (s *FollowService) Status() SyncStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.status
}

// Wait blocks until all background remote writes have settled. Used at
// shutdown and in tests.
func (s *FollowService) Wait() {
	s.writes.Wait()
}

// publish runs a remote write in the background. Failures never roll back
// the optimistic cache; they are logged and surfaced through Status.
func (s *FollowService) publish(op string, artistID domain.ArtistID, write func(context.Context) error) {
	s.statusMu.Lock()
	s.status.PendingWrites++
	s.statusMu.Unlock()

	s.writes.Add(1)
	go func() {
		defer s.writes.Done()

		ctx, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()

		err := write(ctx)

		s.statusMu.Lock()
		s.status.PendingWrites--
		if err != nil {
			s.status.LastError = fmt.Sprintf("%s: %v", op, err)
			s.status.LastErrorAt = time.Now().UTC().Format(time.RFC3339)
		}
		s.statusMu.Unlock()

		if err != nil {
			s.logger.Warn("remote graph write failed, local state kept",
				"op", op,
				"user_id", s.session.UserID,
				"artist_id", artistID.String(),
				"error", err,
			)
		}
	}()
}
