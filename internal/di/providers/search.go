package providers

import (
	"github.com/samber/do/v2"

	"github.com/artisthub/artisthub-server/internal/logger"
	"github.com/artisthub/artisthub-server/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.ArtistIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the in-memory feed index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewArtistIndex()
	if err != nil {
		return nil, err
	}

	log.Info("Feed search index ready")
	return &SearchIndexHandle{ArtistIndex: index}, nil
}
