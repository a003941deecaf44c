// Package di provides dependency injection configuration for the ArtistHub server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/artisthub/artisthub-server/internal/config"
	"github.com/artisthub/artisthub-server/internal/di/providers"
	"github.com/artisthub/artisthub-server/internal/gateway"
	"github.com/artisthub/artisthub-server/internal/logger"
	"github.com/artisthub/artisthub-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage and remote access
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideGateway)
	do.Provide(injector, providers.ProvideSearchIndex)

	// Business services
	do.Provide(injector, providers.ProvideDiscoveryService)
	do.Provide(injector, providers.ProvideFollowRegistry)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle
// management. This triggers lazy initialization of the whole graph.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*gateway.Client](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.SearchIndexHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.DiscoveryService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.FollowRegistry](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
