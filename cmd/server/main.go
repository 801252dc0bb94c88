package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifeskills/internal/adapters/email"
	web "lifeskills/internal/adapters/http"
	"lifeskills/internal/adapters/http/perf"
	"lifeskills/internal/adapters/storage"
	"lifeskills/internal/adapters/storage/localstate"
	"lifeskills/internal/application/clientstate"
	"lifeskills/internal/application/orchestrators"
	"lifeskills/internal/application/session"
	"lifeskills/internal/config"
	"lifeskills/internal/domain/survey"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// notifyTimeout bounds one staff notification send.
const notifyTimeout = 30 * time.Second

// pruneInterval is how often idle sessions and stale rows are swept.
const pruneInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector, cfg.SlowQueryThreshold())

	stateStore := localstate.NewSQLiteStore(timedDB)
	state := clientstate.NewRepository(stateStore)
	sessions := session.NewStore()

	sender := email.NewSender(cfg.ResendAPIKey, cfg.EmailFrom)
	switch {
	case cfg.ResendAPIKey != "":
		log.Println("Email sender configured (Resend)")
	case cfg.IsProduction():
		log.Println("WARNING: LIFESKILLS_RESEND_API_KEY is not set; staff notifications are DISABLED in production")
	default:
		log.Println("Email sender configured (noop; set LIFESKILLS_RESEND_API_KEY for real delivery)")
	}
	unsubscribe := state.SubscribeLastSubmission(notifyStaff(ctx, sender, cfg))
	defer unsubscribe()

	go orchestrators.RunPruneLoop(ctx, pruneInterval, orchestrators.PruneIdleStateDeps{
		Sessions:       sessions,
		State:          stateStore,
		SessionIdle:    cfg.SessionIdleTimeout,
		StateRetention: cfg.StateRetention,
	})

	handler, err := web.NewMux(ctx, cfg, web.Deps{
		State:    state,
		Sessions: sessions,
		Ping:     db.PingContext,
	}, collector)
	if err != nil {
		log.Fatalf("failed to build handlers: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		log.Printf("Life Skills %s starting on %s (env=%s, schema=%d)", version, cfg.Addr, cfg.Env, storage.LatestSchemaVersion())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

// setupLogging installs the default slog handler: text at debug level in development, JSON at info in production.
func setupLogging(cfg config.Config) {
	if cfg.IsProduction() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// notifyStaff returns a submission listener that emails staff off the request goroutine.
// The listener runs inside the client's session lock, so the send must not block it.
func notifyStaff(ctx context.Context, sender email.Sender, cfg config.Config) func(clientID string, s survey.Submission) {
	deps := orchestrators.NotifyStaffDeps{Sender: sender, To: cfg.StaffEmails, From: cfg.EmailFrom}
	return func(clientID string, s survey.Submission) {
		if len(deps.To) == 0 {
			return
		}
		go func() {
			sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
			defer cancel()
			if _, err := orchestrators.ExecuteNotifyStaff(sendCtx, orchestrators.NotifyStaffInput{ClientID: clientID, Submission: s}, deps); err != nil {
				slog.Error("notify_staff_failed", "client_id", clientID, "error", err)
			}
		}()
	}
}
