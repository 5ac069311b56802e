package handlers

import (
	"net/http"

	"github.com/gotnoskillz412/option22/internal/cache"
)

type healthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}

// NewHealthHandler maneja GET /health. Liveness simple; el ping al
// cache reporta readiness sin tumbar el status general.
func NewHealthHandler(c cache.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok"}
		if c != nil {
			if err := c.Ping(r.Context()); err != nil {
				resp.Cache = "unreachable"
			} else {
				resp.Cache = "ok"
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
