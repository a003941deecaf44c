package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artisthub/artisthub-server/internal/domain"
	domainerrors "github.com/artisthub/artisthub-server/internal/errors"
	"github.com/artisthub/artisthub-server/internal/graph"
	"github.com/artisthub/artisthub-server/internal/http/response"
	"github.com/artisthub/artisthub-server/internal/service"
)

// artistPayload identifies an artist in follow and favorite requests. The
// display fields ride along so the local caches can render without another
// lookup.
type artistPayload struct {
	ArtistID     string `json:"artist_id" validate:"required"`
	Name         string `json:"name" validate:"omitempty,max=200"`
	ProfileImage string `json:"profile_image"`
	Specialty    string `json:"specialty"`
	Location     string `json:"location"`
}

func (p artistPayload) ref() (domain.ArtistRef, error) {
	artistID, err := domain.ParseArtistID(p.ArtistID)
	if err != nil {
		return domain.ArtistRef{}, domainerrors.Validationf("invalid artist id %q", p.ArtistID)
	}
	return domain.ArtistRef{
		ID:           artistID,
		Name:         p.Name,
		ProfileImage: p.ProfileImage,
		Specialty:    p.Specialty,
		Location:     p.Location,
	}, nil
}

// graphResponse is the session's graph snapshot plus remote sync state.
type graphResponse struct {
	graph.Snapshot
	Sync service.SyncStatus `json:"sync"`
}

// sessionService resolves the follow service for the request's session.
func (s *Server) sessionService(w http.ResponseWriter, r *http.Request) (*service.FollowService, bool) {
	svc, err := s.follows.For(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return nil, false
	}
	return svc, true
}

// decodeArtistPayload reads and validates the request body, resolving the
// artist reference.
func (s *Server) decodeArtistPayload(w http.ResponseWriter, r *http.Request) (domain.ArtistRef, bool) {
	var payload artistPayload
	if err := json.UnmarshalRead(r.Body, &payload); err != nil {
		response.BadRequest(w, "invalid JSON body", s.logger)
		return domain.ArtistRef{}, false
	}
	if err := s.validator.Validate(payload); err != nil {
		response.HandleError(w, err, s.logger)
		return domain.ArtistRef{}, false
	}
	ref, err := payload.ref()
	if err != nil {
		response.HandleError(w, err, s.logger)
		return domain.ArtistRef{}, false
	}
	return ref, true
}

// pathArtistID resolves the {artistID} URL parameter.
func (s *Server) pathArtistID(w http.ResponseWriter, r *http.Request) (domain.ArtistID, bool) {
	raw := chi.URLParam(r, "artistID")
	artistID, err := domain.ParseArtistID(raw)
	if err != nil {
		response.BadRequest(w, "invalid artist id", s.logger)
		return domain.ArtistID{}, false
	}
	return artistID, true
}

// handleGetGraph returns the session's following, followers and favorites.
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	svc, ok := s.sessionService(w, r)
	if !ok {
		return
	}
	response.Success(w, graphResponse{
		Snapshot: svc.Snapshot(),
		Sync:     svc.Status(),
	}, s.logger)
}

// handleFollow follows an artist. Following is optimistic: the response
// reflects the local state, not the remote write.
func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	svc, ok := s.sessionService(w, r)
	if !ok {
		return
	}
	ref, ok := s.decodeArtistPayload(w, r)
	if !ok {
		return
	}
	if err := svc.Follow(r.Context(), ref); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, graphResponse{
		Snapshot: svc.Snapshot(),
		Sync:     svc.Status(),
	}, s.logger)
}

// handleUnfollow unfollows an artist.
func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	svc, ok := s.sessionService(w, r)
	if !ok {
		return
	}
	artistID, ok := s.pathArtistID(w, r)
	if !ok {
		return
	}
	if err := svc.Unfollow(r.Context(), artistID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, graphResponse{
		Snapshot: svc.Snapshot(),
		Sync:     svc.Status(),
	}, s.logger)
}

// handleAddFavorite saves an artist locally.
func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	svc, ok := s.sessionService(w, r)
	if !ok {
		return
	}
	ref, ok := s.decodeArtistPayload(w, r)
	if !ok {
		return
	}
	if err := svc.AddToFavorites(r.Context(), ref); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, svc.Snapshot().Favorites, s.logger)
}

// handleRemoveFavorite removes a saved artist.
func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	svc, ok := s.sessionService(w, r)
	if !ok {
		return
	}
	artistID, ok := s.pathArtistID(w, r)
	if !ok {
		return
	}
	if err := svc.RemoveFromFavorites(r.Context(), artistID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, svc.Snapshot().Favorites, s.logger)
}
