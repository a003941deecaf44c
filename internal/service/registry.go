package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/artisthub/artisthub-server/internal/domain"
	domainerrors "github.com/artisthub/artisthub-server/internal/errors"
)

// FollowRegistry hands out one FollowService per user. The first request
// for a user bootstraps the service (local rehydration plus one followers
// fetch); later requests reuse it. The session's display fields are
// captured at first sight.
type FollowRegistry struct {
	remote RemoteGraph
	store  GraphStore
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*FollowService
}

// NewFollowRegistry creates an empty registry.
func NewFollowRegistry(remote RemoteGraph, store GraphStore, logger *slog.Logger) *FollowRegistry {
	return &FollowRegistry{
		remote:   remote,
		store:    store,
		logger:   logger,
		sessions: make(map[string]*FollowService),
	}
}

// For returns the follow service for the session's user, creating and
// bootstrapping it on first use.
func (r *FollowRegistry) For(ctx context.Context, session domain.Session) (*FollowService, error) {
	if session.UserID == "" {
		return nil, domainerrors.Validation("user id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if svc, ok := r.sessions[session.UserID]; ok {
		return svc, nil
	}

	svc := NewFollowService(r.remote, r.store, session, r.logger)
	if err := svc.Bootstrap(ctx); err != nil {
		return nil, err
	}
	r.sessions[session.UserID] = svc
	return svc, nil
}

// Wait blocks until every session's background remote writes have
// settled. Called at shutdown.
func (r *FollowRegistry) Wait() {
	r.mu.Lock()
	sessions := make([]*FollowService, 0, len(r.sessions))
	for _, svc := range r.sessions {
		sessions = append(sessions, svc)
	}
	r.mu.Unlock()

	for _, svc := range sessions {
		svc.Wait()
	}
}
