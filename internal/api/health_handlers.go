package api

import (
	"net/http"
	"time"

	"github.com/artisthub/artisthub-server/internal/http/response"
)

// healthResponse reports overall server health and per-component detail.
type healthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
	Time       string            `json:"time"`
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	components := map[string]string{
		"feed": "healthy",
	}
	status := "healthy"

	feed := s.discovery.Feed()
	if len(feed.Artists) == 0 {
		components["feed"] = "unhealthy"
		status = "unhealthy"
	} else if feed.RemoteErr != "" {
		components["feed"] = "degraded"
		status = "degraded"
	}

	response.Success(w, healthResponse{
		Status:     status,
		Components: components,
		Time:       time.Now().UTC().Format(time.RFC3339),
	}, s.logger)
}
