// Package graph keeps the session's in-memory view of the follow graph:
// who the user follows, who follows them, and which artists they saved.
// It is the optimistic cache: mutations land here synchronously, before
// any remote write settles, and the counts the UI shows come from here.
package graph

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/artisthub/artisthub-server/internal/domain"
)

// Graph is safe for concurrent use. Id sets are kept alongside the ordered
// lists so membership checks stay O(1); by construction a set's cardinality
// always equals its list's length.
type Graph struct {
	mu sync.RWMutex

	following    []domain.ArtistRef
	followingIDs mapset.Set[string]

	favorites   []domain.Favorite
	favoriteIDs mapset.Set[string]

	followers []domain.FollowEdge
}

// Snapshot is a point-in-time copy of all three relationship views.
type Snapshot struct {
	Following      []domain.ArtistRef  `json:"following"`
	Followers      []domain.FollowEdge `json:"followers"`
	Favorites      []domain.Favorite   `json:"favorites"`
	FollowingCount int                 `json:"following_count"`
	FollowersCount int                 `json:"followers_count"`
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		followingIDs: mapset.NewSet[string](),
		favoriteIDs:  mapset.NewSet[string](),
	}
}

// IsFollowing reports whether the artist is in the following cache.
func (g *Graph) IsFollowing(id domain.ArtistID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.followingIDs.Contains(id.String())
}

// AddFollowing adds an artist to the following cache. Returns false if the
// artist was already present (no change).
func (g *Graph) AddFollowing(ref domain.ArtistRef) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.followingIDs.Add(ref.ID.String()) {
		return false
	}
	g.following = append(g.following, ref)
	return true
}

// RemoveFollowing removes an artist from the following cache. Returns
// false if the artist was not present.
func (g *Graph) RemoveFollowing(id domain.ArtistID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := id.String()
	if !g.followingIDs.Contains(key) {
		return false
	}
	g.followingIDs.Remove(key)
	for i, ref := range g.following {
		if ref.ID == id {
			g.following = append(g.following[:i], g.following[i+1:]...)
			break
		}
	}
	return true
}

// SetFollowing replaces the following cache, deduplicating by id while
// preserving first-seen order. Used at session bootstrap.
func (g *Graph) SetFollowing(refs []domain.ArtistRef) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.followingIDs = mapset.NewSet[string]()
	g.following = g.following[:0]
	for _, ref := range refs {
		if g.followingIDs.Add(ref.ID.String()) {
			g.following = append(g.following, ref)
		}
	}
}

// Following returns a copy of the following list in insertion order.
func (g *Graph) Following() []domain.ArtistRef {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]domain.ArtistRef, len(g.following))
	copy(out, g.following)
	return out
}

// FollowingCount returns the number of followed artists.
func (g *Graph) FollowingCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.following)
}

// IsFavorite reports whether the artist is in the favorites cache.
func (g *Graph) IsFavorite(id domain.ArtistID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.favoriteIDs.Contains(id.String())
}

// AddFavorite adds an artist to the favorites cache. Returns false if the
// artist was already saved.
func (g *Graph) AddFavorite(fav domain.Favorite) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.favoriteIDs.Add(fav.ID.String()) {
		return false
	}
	g.favorites = append(g.favorites, fav)
	return true
}

// RemoveFavorite removes an artist from the favorites cache. Returns false
// if the artist was not saved.
func (g *Graph) RemoveFavorite(id domain.ArtistID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := id.String()
	if !g.favoriteIDs.Contains(key) {
		return false
	}
	g.favoriteIDs.Remove(key)
	for i, fav := range g.favorites {
		if fav.ID == id {
			g.favorites = append(g.favorites[:i], g.favorites[i+1:]...)
			break
		}
	}
	return true
}

// SetFavorites replaces the favorites cache, deduplicating by id.
func (g *Graph) SetFavorites(favs []domain.Favorite) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.favoriteIDs = mapset.NewSet[string]()
	g.favorites = g.favorites[:0]
	for _, fav := range favs {
		if g.favoriteIDs.Add(fav.ID.String()) {
			g.favorites = append(g.favorites, fav)
		}
	}
}

// Favorites returns a copy of the favorites list in insertion order.
func (g *Graph) Favorites() []domain.Favorite {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]domain.Favorite, len(g.favorites))
	copy(out, g.favorites)
	return out
}

// SetFollowers replaces the followers cache wholesale. The order given
// (newest first from the remote store) is preserved.
func (g *Graph) SetFollowers(edges []domain.FollowEdge) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.followers = make([]domain.FollowEdge, len(edges))
	copy(g.followers, edges)
}

// Followers returns a copy of the followers list.
func (g *Graph) Followers() []domain.FollowEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]domain.FollowEdge, len(g.followers))
	copy(out, g.followers)
	return out
}

// FollowersCount returns the number of followers.
func (g *Graph) FollowersCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.followers)
}

// Snapshot returns a consistent copy of all three views.
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{
		Following:      make([]domain.ArtistRef, len(g.following)),
		Followers:      make([]domain.FollowEdge, len(g.followers)),
		Favorites:      make([]domain.Favorite, len(g.favorites)),
		FollowingCount: len(g.following),
		FollowersCount: len(g.followers),
	}
	copy(snap.Following, g.following)
	copy(snap.Followers, g.followers)
	copy(snap.Favorites, g.favorites)
	return snap
}
