package localstate

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lifeskills/internal/adapters/storage"
)

// updatedAtLayout is fixed-width so updated_at compares correctly as text.
const updatedAtLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore implements Store on the local_state table.
type SQLiteStore struct {
	db  storage.SQLDB
	now func() time.Time
}

// NewSQLiteStore creates a store over a migrated database.
// PRE: storage.MigrateDB has been applied to db
// POST: store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// Get retrieves a value.
// PRE: clientID and key are non-empty
// POST: ok is false and err nil when no row exists
func (s *SQLiteStore) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM local_state WHERE client_id = ? AND key = ?`, clientID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set inserts or replaces a value.
// PRE: clientID and key are non-empty
// POST: a subsequent Get returns value (last write wins)
func (s *SQLiteStore) Set(ctx context.Context, clientID, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO local_state (client_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(client_id, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		clientID, key, value, s.now().UTC().Format(updatedAtLayout),
	)
	return err
}

// Delete removes a value. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, clientID, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local_state WHERE client_id = ? AND key = ?`, clientID, key)
	return err
}

// Keys lists a client's keys in ascending order.
func (s *SQLiteStore) Keys(ctx context.Context, clientID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM local_state WHERE client_id = ? ORDER BY key`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// PruneBefore removes rows not written since cutoff and returns how many went.
// PRE: none
// POST: rows with updated_at < cutoff are deleted for every client
func (s *SQLiteStore) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM local_state WHERE updated_at < ?`, cutoff.UTC().Format(updatedAtLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
