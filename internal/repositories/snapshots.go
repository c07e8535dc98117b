package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SnapshotRepository implements [Gateway] over a SQLite snapshots table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a SnapshotRepository with the given database connection
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Get retrieves the value stored under key.
//
// A missing key is not an error; ok reports presence.
func (r *SnapshotRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM snapshots WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}

	return value, true, nil
}

// Set stores or replaces the value under key.
func (r *SnapshotRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}

	return nil
}
