package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/todoey/internal/storage"
)

// RecordRepo stores opaque records in the records table.
// Each write is a single upsert statement and commits on its own.
type RecordRepo struct {
	db *sql.DB
}

var _ storage.Medium = (*RecordRepo)(nil)

// NewRecordRepo wraps an initialized database connection
func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// Open initializes the database at path and returns a repo that owns the connection
func Open(ctx context.Context, path string) (*RecordRepo, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewRecordRepo(db), nil
}

// Read retrieves the value stored under key
func (r *RecordRepo) Read(ctx context.Context, key string) ([]byte, error) {
	if err := storage.ValidateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	return value, nil
}

// Write inserts or replaces the value stored under key
func (r *RecordRepo) Write(ctx context.Context, key string, data []byte) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, data)
	if err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

// Delete removes the record stored under key, if any
func (r *RecordRepo) Delete(ctx context.Context, key string) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}
	return nil
}

// Count returns the number of stored records
func (r *RecordRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// Close closes the underlying connection
func (r *RecordRepo) Close() error {
	return r.db.Close()
}
