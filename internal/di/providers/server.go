package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/artisthub/artisthub-server/internal/api"
	"github.com/artisthub/artisthub-server/internal/config"
	"github.com/artisthub/artisthub-server/internal/logger"
	"github.com/artisthub/artisthub-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	follows *service.FollowRegistry
}

// Shutdown implements do.Shutdownable. It stops accepting requests, then
// waits for in-flight remote graph writes to settle.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := h.Server.Shutdown(ctx)
	h.follows.Wait()
	return err
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	discovery := do.MustInvoke[*service.DiscoveryService](i)
	follows := do.MustInvoke[*service.FollowRegistry](i)

	handler := api.NewServer(discovery, follows, log.Logger)

	// Warm the feed so the first request after boot sees remote artists.
	go func() {
		feed := discovery.Refresh(context.Background())
		log.Info("Discovery feed warmed",
			"artists", len(feed.Artists),
			"remote_count", feed.RemoteCount,
		)
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv, follows: follows}, nil
}
