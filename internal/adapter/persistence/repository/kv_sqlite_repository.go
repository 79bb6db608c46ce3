package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contract_tracker/internal/usecase/interfaces"
)

// SQLiteKVRepository keeps key-value pairs in a local SQLite file opened by
// database.OpenSQLite.

type SQLiteKVRepository struct {
	db *sql.DB
}

var _ interfaces.IKeyValueStore = (*SQLiteKVRepository)(nil)

func NewSQLiteKVRepository(db *sql.DB) *SQLiteKVRepository {
	return &SQLiteKVRepository{db: db}
}

func (r *SQLiteKVRepository) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_items WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteKVRepository) SetItem(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	const stmt = `
INSERT INTO kv_items (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, stmt, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
