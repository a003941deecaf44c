package api

import (
	"net/http"
	"strconv"

	"github.com/artisthub/artisthub-server/internal/http/response"
	"github.com/artisthub/artisthub-server/internal/service"
)

// feedResponse is the discovery feed plus its loading flag.
type feedResponse struct {
	service.Feed
	IsLoading bool `json:"is_loading"`
}

// handleGetFeed returns the current feed snapshot without touching the
// remote store.
func (s *Server) handleGetFeed(w http.ResponseWriter, r *http.Request) {
	response.Success(w, feedResponse{
		Feed:      s.discovery.Feed(),
		IsLoading: s.discovery.IsLoading(),
	}, s.logger)
}

// handleRefreshFeed rebuilds the feed from the remote store and returns
// the new snapshot. Refreshing never fails; a remote problem is reported
// on the snapshot itself.
func (s *Server) handleRefreshFeed(w http.ResponseWriter, r *http.Request) {
	feed := s.discovery.Refresh(r.Context())
	response.Success(w, feedResponse{Feed: feed}, s.logger)
}

// handleSearchFeed queries the indexed feed.
func (s *Server) handleSearchFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			response.BadRequest(w, "limit must be an integer between 1 and 100", s.logger)
			return
		}
		limit = parsed
	}

	hits, err := s.discovery.Search(r.Context(), q, limit)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, map[string]any{
		"query": q,
		"hits":  hits,
	}, s.logger)
}
