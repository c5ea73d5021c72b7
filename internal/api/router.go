package api

import (
	"net/http"
	"time"

	"city-explorer/internal/api/handlers"
	"city-explorer/internal/platform/loop"
)

// NewRouter wires the inspector handlers. Reads go straight to the view and
// map snapshots; searches are posted to the event loop.
func NewRouter(view handlers.SnapshotSource, m handlers.MapSource, ctrl handlers.Searcher, l loop.Scheduler) http.Handler {
	mux := http.NewServeMux()

	stateHandler := &handlers.StateHandler{View: view, Map: m}
	searchHandler := &handlers.SearchHandler{Ctrl: ctrl, Loop: l}

	mux.HandleFunc("/health", handlers.Health(time.Now()))
	mux.HandleFunc("/state", stateHandler.State)
	mux.HandleFunc("/markers", stateHandler.Markers)
	mux.HandleFunc("/search", searchHandler.Search)

	return loggingMiddleware(mux)
}
