package handlers

import (
	"net/http"
	"time"
)

// Health returns a liveness handler that also reports process uptime.
func Health(started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		res := map[string]string{
			"status": "ok",
			"uptime": time.Since(started).Round(time.Second).String(),
		}
		writeJSON(w, r, http.StatusOK, res)
	}
}
