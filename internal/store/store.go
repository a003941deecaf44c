// Package store is the client-local durable store for the follow graph.
// It persists the session's "following" and "favorites" lists to an
// embedded Badger database so they survive restarts without touching the
// remote store. Lists are written wholesale on every mutation and read
// once at session bootstrap.
package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/artisthub/artisthub-server/internal/domain"
)

// Key prefixes. Each user's lists live under their own keys so one store
// can serve multiple sessions.
const (
	followingPrefix = "graph:following:"
	favoritesPrefix = "graph:favorites:"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (or creates) the local graph database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	logger.Info("local graph database opened", "path", path)

	return &Store{db: db, logger: logger}, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	s.logger.Info("closing local graph database")
	return s.db.Close()
}

// SaveFollowing overwrites the user's persisted following list.
func (s *Store) SaveFollowing(ctx context.Context, userID string, following []domain.ArtistRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if following == nil {
		following = []domain.ArtistRef{}
	}
	return s.set([]byte(followingPrefix+userID), following)
}

// LoadFollowing returns the user's persisted following list. A user with
// no persisted list gets an empty one, not an error.
func (s *Store) LoadFollowing(ctx context.Context, userID string) ([]domain.ArtistRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var following []domain.ArtistRef
	if err := s.get([]byte(followingPrefix+userID), &following); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return []domain.ArtistRef{}, nil
		}
		return nil, fmt.Errorf("load following: %w", err)
	}
	return following, nil
}

// SaveFavorites overwrites the user's persisted favorites list.
func (s *Store) SaveFavorites(ctx context.Context, userID string, favorites []domain.Favorite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	return s.set([]byte(favoritesPrefix+userID), favorites)
}

// LoadFavorites returns the user's persisted favorites list.
func (s *Store) LoadFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var favorites []domain.Favorite
	if err := s.get([]byte(favoritesPrefix+userID), &favorites); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return []domain.Favorite{}, nil
		}
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	return favorites, nil
}

// get retrieves a value by key.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set stores a value by key.
func (s *Store) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}
