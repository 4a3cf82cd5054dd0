package http

import (
	"net/http"

	"github.com/hirewire/hirewire/internal/auth/store"
	"github.com/hirewire/hirewire/pkg/httpx"
	"github.com/hirewire/hirewire/pkg/slogx"
)

// ReadyzHandler serves GET /readyz. Ready means the store answers.
type ReadyzHandler struct {
	Store store.Store
}

func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		slogx.FromContext(r.Context()).Error("readiness check failed", "err", err)
		httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
