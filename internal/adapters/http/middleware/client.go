package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ClientCookieName holds the browser's client id. Persisted and session state are both keyed by it.
const ClientCookieName = "lifeskills_client"

// clientCookieMaxAge keeps the client id for a year.
const clientCookieMaxAge = 365 * 24 * 60 * 60

type contextKey string

const clientContextKey contextKey = "client_id"

// WithClientID returns ctx carrying clientID.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientContextKey, clientID)
}

// ClientIDFromContext returns the client id set by Client, or "" outside it.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientContextKey).(string)
	return id
}

// Client ensures every request carries a client id.
// POST: a missing or malformed cookie is replaced by a fresh uuid cookie
func Client(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(ClientCookieName); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   clientCookieMaxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), id)))
		})
	}
}
