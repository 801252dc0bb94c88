package config

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/hkdf"
)

// EnvProduction is the LIFESKILLS_ENV value that enables strict checks.
const EnvProduction = "production"

// csrfKeyInfo binds the derived key to its purpose.
const csrfKeyInfo = "lifeskills:csrf"

// ErrMissingCSRFSecret is returned when production runs without a CSRF secret.
var ErrMissingCSRFSecret = errors.New("LIFESKILLS_CSRF_SECRET is required in production")

// Config holds process configuration read from LIFESKILLS_* environment variables.
type Config struct {
	Addr               string        `env:"LIFESKILLS_ADDR"                  envDefault:":8080"`
	DBPath             string        `env:"LIFESKILLS_DB_PATH"               envDefault:"lifeskills.db"`
	Env                string        `env:"LIFESKILLS_ENV"                   envDefault:"development"`
	CSRFSecret         string        `env:"LIFESKILLS_CSRF_SECRET"`
	TrustedOrigins     []string      `env:"LIFESKILLS_TRUSTED_ORIGINS"       envDefault:"localhost:8080,127.0.0.1:8080" envSeparator:","`
	SlowRequestMs      int           `env:"LIFESKILLS_SLOW_REQUEST_MS"       envDefault:"200"`
	SlowQueryMs        int           `env:"LIFESKILLS_SLOW_QUERY_MS"         envDefault:"50"`
	RateLimitPerSecond int           `env:"LIFESKILLS_RATE_LIMIT_PER_SECOND" envDefault:"10"`
	SessionIdleTimeout time.Duration `env:"LIFESKILLS_SESSION_IDLE_TIMEOUT"  envDefault:"12h"`
	StateRetention     time.Duration `env:"LIFESKILLS_STATE_RETENTION"       envDefault:"0s"`
	ResendAPIKey       string        `env:"LIFESKILLS_RESEND_API_KEY"`
	EmailFrom          string        `env:"LIFESKILLS_EMAIL_FROM"            envDefault:"Life Skills <noreply@lifeskills.local>"`
	StaffEmails        []string      `env:"LIFESKILLS_STAFF_EMAILS"          envSeparator:","`
	TemplatesDir       string        `env:"LIFESKILLS_TEMPLATES_DIR"         envDefault:"internal/adapters/http/templates"`
	StaticDir          string        `env:"LIFESKILLS_STATIC_DIR"            envDefault:"static"`
}

// Load parses the environment into a Config.
// PRE: none
// POST: returns a Config with defaults applied, or a parse error
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// IsProduction reports whether strict production checks apply.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Validate checks cross-field rules.
// POST: returns ErrMissingCSRFSecret when production has no secret
func (c Config) Validate() error {
	if c.IsProduction() && c.CSRFSecret == "" {
		return ErrMissingCSRFSecret
	}
	if c.RateLimitPerSecond <= 0 {
		return fmt.Errorf("LIFESKILLS_RATE_LIMIT_PER_SECOND must be positive, got %d", c.RateLimitPerSecond)
	}
	return nil
}

// SlowRequestThreshold returns the slow-request threshold as a duration.
func (c Config) SlowRequestThreshold() time.Duration {
	return time.Duration(c.SlowRequestMs) * time.Millisecond
}

// SlowQueryThreshold returns the slow-query threshold as a duration.
func (c Config) SlowQueryThreshold() time.Duration {
	return time.Duration(c.SlowQueryMs) * time.Millisecond
}

// CSRFKey derives the 32-byte gorilla/csrf auth key from the configured secret.
// PRE: Validate has passed
// POST: same secret yields the same key; an empty secret yields a random key per call
func (c Config) CSRFKey() ([]byte, error) {
	key := make([]byte, 32)
	if c.CSRFSecret == "" {
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate csrf key: %w", err)
		}
		slog.Warn("csrf_key_random", "reason", "LIFESKILLS_CSRF_SECRET unset; forms will not survive restart")
		return key, nil
	}
	r := hkdf.New(sha256.New, []byte(c.CSRFSecret), nil, []byte(csrfKeyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive csrf key: %w", err)
	}
	return key, nil
}
