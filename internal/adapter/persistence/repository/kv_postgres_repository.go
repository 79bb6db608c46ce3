package repository

import (
	"context"
	"errors"
	"fmt"

	"contract_tracker/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKVRepository keeps key-value pairs in the kv_items table.

type PostgresKVRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IKeyValueStore = (*PostgresKVRepository)(nil)

func NewPostgresKVRepository(pool *pgxpool.Pool) *PostgresKVRepository {
	return &PostgresKVRepository{pool: pool}
}

func (r *PostgresKVRepository) GetItem(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM kv_items WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

func (r *PostgresKVRepository) SetItem(ctx context.Context, key string, value []byte) error {
	const stmt = `
INSERT INTO kv_items (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.pool.Exec(ctx, stmt, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
