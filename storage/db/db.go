package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes checked by the query layer.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type DB struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *DB {
	return &DB{pool: pool}
}

// Init creates the schema if it does not exist yet.
func (d *DB) Init(ctx context.Context) error {
	_, err := d.pool.Exec(ctx, schema)
	return err
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
