package api

import (
	"context"
	"net/http"

	"github.com/artisthub/artisthub-server/internal/domain"
	"github.com/artisthub/artisthub-server/internal/http/response"
)

// Session headers. The mobile and web clients resolve their identity
// elsewhere and pass it through on every graph request; the server trusts
// these headers within its deployment boundary.
const (
	headerUserID       = "X-Session-User-Id"
	headerDisplayName  = "X-Session-Display-Name"
	headerProfileImage = "X-Session-Profile-Image"
	headerSpecialty    = "X-Session-Specialty"
	headerLocation     = "X-Session-Location"
)

type contextKey string

const sessionContextKey contextKey = "session"

// sessionFromRequest builds the session from request headers.
func sessionFromRequest(r *http.Request) domain.Session {
	return domain.Session{
		UserID:       r.Header.Get(headerUserID),
		DisplayName:  r.Header.Get(headerDisplayName),
		ProfileImage: r.Header.Get(headerProfileImage),
		Specialty:    r.Header.Get(headerSpecialty),
		Location:     r.Header.Get(headerLocation),
	}
}

// requireSession rejects graph requests that carry no user id.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromRequest(r)
		if session.UserID == "" {
			response.Unauthorized(w, "session user id is required", s.logger)
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromContext returns the session stored by requireSession.
func sessionFromContext(ctx context.Context) domain.Session {
	session, _ := ctx.Value(sessionContextKey).(domain.Session)
	return session
}

// limitMutations throttles graph writes per session user.
func (s *Server) limitMutations(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromContext(r.Context())
		if !s.mutations.Allow(session.UserID) {
			response.Error(w, http.StatusTooManyRequests, "too many graph mutations, slow down", s.logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}
