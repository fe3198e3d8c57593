package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const txKey contextKey = "db_tx"

// TxFromContext retrieves the active transaction from context, if any.
// Repositories use this to join a unit of work started by WithTx.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey).(pgx.Tx)
	return tx
}

// Runner runs a function inside a single database transaction. The transaction
// is placed in the context passed to fn so that repository calls join it.
type Runner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type poolRunner struct {
	pool *pgxpool.Pool
}

func NewRunner(pool *pgxpool.Pool) Runner {
	return &poolRunner{pool: pool}
}

func (r *poolRunner) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
