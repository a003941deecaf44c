package providers

import (
	"github.com/samber/do/v2"

	"github.com/artisthub/artisthub-server/internal/config"
	"github.com/artisthub/artisthub-server/internal/gateway"
	"github.com/artisthub/artisthub-server/internal/logger"
)

// ProvideGateway provides the remote store client. When no remote store is
// configured the provider returns a nil client, which every gateway method
// treats as "not configured", so the server runs in static-only mode.
func ProvideGateway(i do.Injector) (*gateway.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Supabase.Configured() {
		log.Info("No remote store configured, running in static-only mode")
		return nil, nil
	}

	client, err := gateway.New(gateway.Config{
		URL:            cfg.Supabase.URL,
		APIKey:         cfg.Supabase.AnonKey,
		RequestTimeout: cfg.Supabase.RequestTimeout,
		MaxRetries:     cfg.Supabase.MaxRetries,
		RateLimit:      cfg.Supabase.RateLimit,
		Logger:         log.Logger,
	})
	if err != nil {
		return nil, err
	}

	log.Info("Remote store client ready", "url", cfg.Supabase.URL)
	return client, nil
}
