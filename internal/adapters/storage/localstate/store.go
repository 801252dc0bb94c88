package localstate

import "context"

// Store persists opaque string values per (client, key), one key space per client.
type Store interface {
	// Get returns the stored value; ok is false when the key has never been set.
	Get(ctx context.Context, clientID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, clientID, key, value string) error
	Delete(ctx context.Context, clientID, key string) error
	// Keys lists the keys a client has set, sorted.
	Keys(ctx context.Context, clientID string) ([]string, error)
}
