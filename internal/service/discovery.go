package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/artisthub/artisthub-server/internal/catalog"
	"github.com/artisthub/artisthub-server/internal/domain"
	"github.com/artisthub/artisthub-server/internal/gateway"
	"github.com/artisthub/artisthub-server/internal/images"
	"github.com/artisthub/artisthub-server/internal/search"
)

// galleryCap limits how many featured artworks feed an artist's gallery.
const galleryCap = 4

// RemoteCatalog is the slice of the remote gateway the discovery service
// reads from. A nil *gateway.Client satisfies it and reports unavailable.
type RemoteCatalog interface {
	Available() bool
	DiscoverableArtists(ctx context.Context) ([]gateway.ArtistRow, error)
	BoothsFor(ctx context.Context, artistIDs []string) ([]gateway.BoothRow, error)
}

// Feed is a point-in-time snapshot of the discovery feed. Remote artists
// come first in the remote store's response order, then the whole static
// catalog. RemoteErr is set when the last refresh fell back to the static
// catalog because of a remote failure; an unconfigured remote is not a
// failure and leaves it empty.
type Feed struct {
	Artists     []domain.ArtistRecord `json:"artists"`
	RemoteCount int                   `json:"remote_count"`
	FetchedAt   time.Time             `json:"fetched_at"`
	RemoteErr   string                `json:"remote_error,omitempty"`
}

// DiscoveryService aggregates the remote discoverable artists with the
// static catalog and keeps the result searchable.
type DiscoveryService struct {
	remote RemoteCatalog
	index  *search.ArtistIndex
	logger *slog.Logger

	group   singleflight.Group
	loading atomic.Bool

	mu   sync.RWMutex
	feed Feed
}

// NewDiscoveryService creates a discovery service. The feed starts as the
// static catalog so the first read never sees an empty feed.
func NewDiscoveryService(remote RemoteCatalog, index *search.ArtistIndex, logger *slog.Logger) *DiscoveryService {
	s := &DiscoveryService{
		remote: remote,
		index:  index,
		logger: logger,
	}
	s.setFeed(Feed{
		Artists:   catalog.Artists(),
		FetchedAt: time.Now(),
	})
	return s
}

// Feed returns the current snapshot without touching the remote store.
func (s *DiscoveryService) Feed() Feed {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feed
}

// IsLoading reports whether a refresh is in flight.
func (s *DiscoveryService) IsLoading() bool {
	return s.loading.Load()
}

// Refresh rebuilds the feed from the remote store. Concurrent callers are
// coalesced into a single remote fetch and all receive the same snapshot.
// The refresh never fails outright: any remote problem degrades to the
// static catalog with the error recorded on the snapshot.
func (s *DiscoveryService) Refresh(ctx context.Context) Feed {
	v, _, _ := s.group.Do("refresh", func() (interface{}, error) {
		s.loading.Store(true)
		defer s.loading.Store(false)

		feed := s.aggregate(ctx)
		s.setFeed(feed)
		return feed, nil
	})
	return v.(Feed)
}

// Search queries the indexed feed.
func (s *DiscoveryService) Search(ctx context.Context, q string, limit int) ([]search.Hit, error) {
	return s.index.Search(ctx, q, limit)
}

func (s *DiscoveryService) setFeed(feed Feed) {
	s.mu.Lock()
	s.feed = feed
	s.mu.Unlock()

	if s.index == nil {
		return
	}
	docs := make([]*search.ArtistDocument, 0, len(feed.Artists))
	for i := range feed.Artists {
		docs = append(docs, search.ArtistToDocument(&feed.Artists[i]))
	}
	if err := s.index.Replace(docs); err != nil {
		s.logger.Warn("failed to reindex discovery feed", "error", err)
	}
}

// aggregate produces the next feed snapshot. It recovers from panics in
// the aggregation path so a malformed remote payload can never take the
// feed down; the static catalog is the floor.
func (s *DiscoveryService) aggregate(ctx context.Context) (feed Feed) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("discovery aggregation panicked, serving static catalog", "panic", r)
			feed = Feed{
				Artists:   catalog.Artists(),
				FetchedAt: time.Now(),
				RemoteErr: "aggregation failure",
			}
		}
	}()

	if !s.remote.Available() {
		return Feed{
			Artists:   catalog.Artists(),
			FetchedAt: time.Now(),
		}
	}

	rows, err := s.remote.DiscoverableArtists(ctx)
	if err != nil {
		s.logger.Warn("remote artist query failed, serving static catalog", "error", err)
		return Feed{
			Artists:   catalog.Artists(),
			FetchedAt: time.Now(),
			RemoteErr: err.Error(),
		}
	}

	boothsByArtist := s.fetchBooths(ctx, rows)

	artists := make([]domain.ArtistRecord, 0, len(rows)+catalog.Size())
	for _, row := range rows {
		rec, ok := s.buildRecord(row, boothsByArtist[row.ID])
		if !ok {
			continue
		}
		artists = append(artists, rec)
	}
	remoteCount := len(artists)
	artists = append(artists, catalog.Artists()...)

	return Feed{
		Artists:     artists,
		RemoteCount: remoteCount,
		FetchedAt:   time.Now(),
	}
}

// fetchBooths is best effort: booth display degrades on failure but the
// aggregation continues.
func (s *DiscoveryService) fetchBooths(ctx context.Context, rows []gateway.ArtistRow) map[string]gateway.BoothRow {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	booths, err := s.remote.BoothsFor(ctx, ids)
	if err != nil {
		s.logger.Warn("booth query failed, feed continues without booths", "error", err)
		return nil
	}

	// First booth per artist wins.
	byArtist := make(map[string]gateway.BoothRow, len(booths))
	for _, booth := range booths {
		if _, ok := byArtist[booth.ArtistID]; !ok {
			byArtist[booth.ArtistID] = booth
		}
	}
	return byArtist
}

func (s *DiscoveryService) buildRecord(row gateway.ArtistRow, booth gateway.BoothRow) (domain.ArtistRecord, bool) {
	remoteID, err := uuid.Parse(row.ID)
	if err != nil {
		s.logger.Warn("skipping remote artist with malformed id", "artist_id", row.ID)
		return domain.ArtistRecord{}, false
	}

	rec := domain.ArtistRecord{
		ID:        domain.RemoteID(remoteID),
		Name:      row.Name,
		Location:  row.Location,
		Specialty: row.Specialty,
		Bio:       row.Bio,
		ProfileImage: images.Resolve(row.ID, images.Source{
			ProfileImage: row.ProfileImage,
		}),
		ArtworkImages: galleryImages(row),
		Featured:      row.Featured,
		IsRealUser:    true,
	}

	if booth.ID != "" {
		rec.Booth = &domain.BoothInfo{
			Name:        booth.Name,
			Operator:    booth.Operator,
			Location:    booth.Location,
			Description: booth.Description,
			Image:       booth.Image,
		}
	}
	return rec, true
}

// galleryImages builds the public gallery from featured artworks only,
// capped at galleryCap. Artworks whose image fields are all empty are
// skipped; when nothing usable remains the fixed placeholder gallery is
// substituted, the same as having no featured artworks at all.
func galleryImages(row gateway.ArtistRow) []string {
	gallery := make([]string, 0, galleryCap)
	for _, artwork := range row.Artworks {
		if !artwork.Featured {
			continue
		}
		photos := make([]images.Photo, 0, len(artwork.Photos))
		for _, p := range artwork.Photos {
			photos = append(photos, images.Photo{URL: p.URL, Primary: p.IsPrimary})
		}
		url := images.Candidate(images.Source{
			Photos:       photos,
			LegacyImage:  artwork.ArtworkImage,
			ProfileImage: row.ProfileImage,
		})
		if url == "" {
			continue
		}
		gallery = append(gallery, url)
		if len(gallery) == galleryCap {
			break
		}
	}

	if len(gallery) == 0 {
		return images.GalleryPlaceholders()
	}
	return gallery
}
