package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lifeskills/internal/adapters/http/middleware"
	"lifeskills/internal/adapters/http/perf"
	"lifeskills/internal/application/orchestrators"
	"lifeskills/internal/config"
)

// ClientState is the typed persisted key space the handlers read and write.
type ClientState interface {
	orchestrators.CheckInStateStore
	orchestrators.ParticipantNameStore
	orchestrators.SubmissionStore
	orchestrators.ClientStateResetter
}

// Sessions is the per-client in-memory state the handlers run events against.
type Sessions interface {
	orchestrators.SessionRunner
	orchestrators.SessionResetter
}

// Deps holds everything the handlers need.
type Deps struct {
	State    ClientState
	Sessions Sessions
	Ping     func(ctx context.Context) error // optional health check
	Now      func() time.Time
}

// app carries handler dependencies. One app serves the whole mux.
type app struct {
	deps         Deps
	collector    *perf.Collector
	templatesDir string
	now          func() time.Time
}

// NewMux wires HTTP handlers for the app.
// PRE: cfg has passed Validate
// POST: the rate limiter evicts idle visitors until ctx is done
func NewMux(ctx context.Context, cfg config.Config, deps Deps, collector *perf.Collector) (http.Handler, error) {
	csrfKey, err := cfg.CSRFKey()
	if err != nil {
		return nil, fmt.Errorf("csrf key: %w", err)
	}
	a := &app{
		deps:         deps,
		collector:    collector,
		templatesDir: cfg.TemplatesDir,
		now:          time.Now,
	}
	if deps.Now != nil {
		a.now = deps.Now
	}

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	a.registerRoutes(mux)

	secure := cfg.IsProduction()
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, time.Second)
	go limiter.Run(ctx)

	// Request order: Timing -> Recover -> RateLimit -> Client -> CSRF -> SecurityHeaders -> Mux
	handler := middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, cfg.TrustedOrigins, secure),
		middleware.Client(secure),
		middleware.RateLimit(limiter),
		middleware.Recover,
		middleware.Timing(collector, cfg.SlowRequestThreshold()),
	)
	return handler, nil
}
