package providers

import (
	"github.com/samber/do/v2"

	"github.com/artisthub/artisthub-server/internal/gateway"
	"github.com/artisthub/artisthub-server/internal/logger"
	"github.com/artisthub/artisthub-server/internal/service"
)

// ProvideDiscoveryService provides the discovery feed aggregator.
func ProvideDiscoveryService(i do.Injector) (*service.DiscoveryService, error) {
	client := do.MustInvoke[*gateway.Client](i)
	searchHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewDiscoveryService(client, searchHandle.ArtistIndex, log.Logger), nil
}

// ProvideFollowRegistry provides the per-user follow graph services.
func ProvideFollowRegistry(i do.Injector) (*service.FollowRegistry, error) {
	client := do.MustInvoke[*gateway.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFollowRegistry(client, storeHandle.Store, log.Logger), nil
}
