package http

import (
	"net/http"
	"time"

	"github.com/hirewire/hirewire/pkg/httpx"
)

// LivezHandler serves GET /livez. Alive means the process is serving.
type LivezHandler struct {
	StartTime time.Time
}

func (h *LivezHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.StartTime).Seconds()),
	})
}
