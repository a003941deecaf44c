package api

import (
	"context"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisthub/artisthub-server/internal/catalog"
	"github.com/artisthub/artisthub-server/internal/domain"
	"github.com/artisthub/artisthub-server/internal/gateway"
	"github.com/artisthub/artisthub-server/internal/search"
	"github.com/artisthub/artisthub-server/internal/service"
	"github.com/artisthub/artisthub-server/internal/store"
)

type stubRemote struct {
	available bool
	rows      []gateway.ArtistRow
	edges     []domain.FollowEdge
}

func (f *stubRemote) Available() bool { return f.available }

func (f *stubRemote) DiscoverableArtists(ctx context.Context) ([]gateway.ArtistRow, error) {
	return f.rows, nil
}

func (f *stubRemote) BoothsFor(ctx context.Context, artistIDs []string) ([]gateway.BoothRow, error) {
	return nil, nil
}

func (f *stubRemote) FollowersOf(ctx context.Context, userID string) ([]domain.FollowEdge, error) {
	return f.edges, nil
}

func (f *stubRemote) InsertFollow(ctx context.Context, edge domain.FollowEdge) error { return nil }

func (f *stubRemote) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	return nil
}

func newTestServer(t *testing.T, remote *stubRemote) *Server {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	idx, err := search.NewArtistIndex()
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })

	st, err := store.Open(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	discovery := service.NewDiscoveryService(remote, idx, logger)
	follows := service.NewFollowRegistry(remote, st, logger)
	return NewServer(discovery, follows, logger)
}

func doRequest(t *testing.T, srv *Server, method, path, body string, withSession bool) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if withSession {
		req.Header.Set("X-Session-User-Id", "user-1")
		req.Header.Set("X-Session-Display-Name", "Avery Quinn")
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	res := rec.Result()
	t.Cleanup(func() { res.Body.Close() })

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var envelope map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope))
	}
	return res, envelope
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, &stubRemote{})

	res, envelope := doRequest(t, srv, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "healthy", data["status"])
}

func TestGetFeed_StartsWithStaticCatalog(t *testing.T) {
	srv := newTestServer(t, &stubRemote{})

	res, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/discover/", "", false)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	data := envelope["data"].(map[string]any)
	artists := data["artists"].([]any)
	assert.Len(t, artists, catalog.Size())
	assert.Equal(t, false, data["is_loading"])
}

func TestRefreshFeed_IncludesRemoteArtists(t *testing.T) {
	remote := &stubRemote{
		available: true,
		rows:      []gateway.ArtistRow{{ID: uuid.NewString(), Name: "Remote A"}},
	}
	srv := newTestServer(t, remote)

	res, envelope := doRequest(t, srv, http.MethodPost, "/api/v1/discover/refresh", "", false)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	data := envelope["data"].(map[string]any)
	artists := data["artists"].([]any)
	require.Len(t, artists, 1+catalog.Size())
	first := artists[0].(map[string]any)
	assert.Equal(t, "Remote A", first["name"])
}

func TestSearchFeed(t *testing.T) {
	srv := newTestServer(t, &stubRemote{})

	res, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/discover/search?q=maya", "", false)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	data := envelope["data"].(map[string]any)
	hits := data["hits"].([]any)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Maya Linden", hits[0].(map[string]any)["name"])
}

func TestSearchFeed_BadLimit(t *testing.T) {
	srv := newTestServer(t, &stubRemote{})

	res, _ := doRequest(t, srv, http.MethodGet, "/api/v1/discover/search?q=maya&limit=boom", "", false)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGraph_RequiresSession(t *testing.T) {
	srv := newTestServer(t, &stubRemote{})

	res, _ := doRequest(t, srv, http.MethodGet, "/api/v1/graph/", "", false)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestFollowUnfollowFlow(t *testing.T) {
	srv := newTestServer(t, &stubRemote{available: true})
	artistID := uuid.NewString()

	res, envelope := doRequest(t, srv, http.MethodPost, "/api/v1/graph/follow",
		`{"artist_id":"`+artistID+`","name":"Remote A"}`, true)
	require.Equal(t, http.StatusOK, res.StatusCode)

	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(1), data["following_count"])

	res, envelope = doRequest(t, srv, http.MethodDelete, "/api/v1/graph/follow/"+artistID, "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	data = envelope["data"].(map[string]any)
	assert.Equal(t, float64(0), data["following_count"])
}

func TestFollow_InvalidBody(t *testing.T) {
	srv := newTestServer(t, &stubRemote{})

	res, _ := doRequest(t, srv, http.MethodPost, "/api/v1/graph/follow", `{`, true)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = doRequest(t, srv, http.MethodPost, "/api/v1/graph/follow", `{"name":"no id"}`, true)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = doRequest(t, srv, http.MethodPost, "/api/v1/graph/follow", `{"artist_id":"static-x"}`, true)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestFavoritesFlow(t *testing.T) {
	srv := newTestServer(t, &stubRemote{})

	res, envelope := doRequest(t, srv, http.MethodPost, "/api/v1/graph/favorites",
		`{"artist_id":"static-2","name":"Theo Marchetti"}`, true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	favorites := envelope["data"].([]any)
	require.Len(t, favorites, 1)

	res, envelope = doRequest(t, srv, http.MethodDelete, "/api/v1/graph/favorites/static-2", "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Nil(t, envelope["data"], "empty favorites list is omitted from the envelope")
}

func TestGraphMutations_RateLimited(t *testing.T) {
	srv := newTestServer(t, &stubRemote{})

	var last int
	for range 12 {
		res, _ := doRequest(t, srv, http.MethodPost, "/api/v1/graph/favorites",
			`{"artist_id":"static-1"}`, true)
		last = res.StatusCode
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestGetGraph_BootstrapsFollowers(t *testing.T) {
	remote := &stubRemote{
		available: true,
		edges: []domain.FollowEdge{
			{ID: "flw-1", FollowerID: "user-2", FollowingID: "user-1", FollowerName: "Riko"},
		},
	}
	srv := newTestServer(t, remote)

	res, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/graph/", "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)

	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(1), data["followers_count"])
	followers := data["followers"].([]any)
	require.Len(t, followers, 1)
	assert.Equal(t, "Riko", followers[0].(map[string]any)["follower_name"])
}
