package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/artisthub/artisthub-server/internal/config"
	"github.com/artisthub/artisthub-server/internal/logger"
	"github.com/artisthub/artisthub-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the local graph database.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.Open(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Local graph database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}
