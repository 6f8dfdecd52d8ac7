package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBackend stores each collection as a single jsonb row in a
// kv_collections table, keyed by "<prefix>:<name>". Semantics match the
// other backends: one key, one serialized record sequence.
type PgBackend struct {
	pool   *pgxpool.Pool
	prefix string
}

// NewPgBackend connects to Postgres and ensures the kv_collections table
// exists.
func NewPgBackend(ctx context.Context, databaseURL, prefix string) (*PgBackend, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_collections (
			key        text PRIMARY KEY,
			value      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: init kv_collections: %w", err)
	}

	return &PgBackend{pool: pool, prefix: prefix}, nil
}

var _ Backend = (*PgBackend)(nil)

func (b *PgBackend) Get(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := b.pool.QueryRow(ctx,
		`SELECT value::text FROM kv_collections WHERE key = $1`,
		b.key(name),
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: postgres get %s: %w", name, err)
	}
	return data, nil
}

func (b *PgBackend) Set(ctx context.Context, name string, data []byte) error {
	_, err := b.pool.Exec(ctx,
		`INSERT INTO kv_collections (key, value) VALUES ($1, $2::jsonb)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		b.key(name), string(data),
	)
	if err != nil {
		return fmt.Errorf("store: postgres set %s: %w", name, err)
	}
	return nil
}

func (b *PgBackend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

func (b *PgBackend) Name() string { return "postgres" }

// Close releases the connection pool.
func (b *PgBackend) Close() {
	b.pool.Close()
}

func (b *PgBackend) key(name string) string {
	return b.prefix + ":" + name
}
