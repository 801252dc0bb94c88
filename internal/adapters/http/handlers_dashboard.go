package web

import (
	"net/http"
	"strconv"
	"time"

	"lifeskills/internal/adapters/http/middleware"
	"lifeskills/internal/application/projections"
)

// handleDashboard handles GET /
func (a *app) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := projections.QueryGetDashboard(r.Context(), projections.GetDashboardQuery{
		ClientID: middleware.ClientIDFromContext(r.Context()),
		Filter:   q.Get("filter"),
		Month:    q.Get("month"),
		Year:     q.Get("year"),
	}, projections.GetDashboardDeps{CheckIns: a.deps.State, Now: a.now})
	a.renderView(w, r, "dashboard.html", view)
}

// defaultPerfWindow is how far back /api/perf looks without ?window=.
const defaultPerfWindow = 5 * time.Minute

// handlePerf handles GET /api/perf
func (a *app) handlePerf(w http.ResponseWriter, r *http.Request) {
	if a.collector == nil {
		http.Error(w, "perf collector disabled", http.StatusNotFound)
		return
	}
	window := defaultPerfWindow
	if v := r.URL.Query().Get("window"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			http.Error(w, "window must be a positive duration", http.StatusBadRequest)
			return
		}
		window = d
	}
	topN := 10
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "top must be a positive integer", http.StatusBadRequest)
			return
		}
		topN = n
	}
	writeJSON(w, http.StatusOK, a.collector.Snapshot(a.now().Add(-window), topN))
}

// handleHealthz handles GET /healthz
func (a *app) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if a.deps.Ping != nil {
		if err := a.deps.Ping(r.Context()); err != nil {
			internalError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
