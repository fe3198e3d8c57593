package codes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recordbook/recordbook/internal/platform/api"
	"github.com/recordbook/recordbook/internal/platform/db"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const optionCols = `id, category, code, name, description, display_order, is_active, created_at, updated_at`

func (r *repoPG) ListByCategory(ctx context.Context, category string) ([]*Option, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+optionCols+` FROM code_option
		 WHERE category = $1 AND is_active
		 ORDER BY display_order ASC, code ASC`, category)
	if err != nil {
		return nil, fmt.Errorf("code options list: %w", err)
	}
	defer rows.Close()

	var options []*Option
	for rows.Next() {
		o, err := scanOption(rows)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

func (r *repoPG) GetActive(ctx context.Context, category, code string) (*Option, error) {
	o, err := scanOption(r.conn(ctx).QueryRow(ctx,
		`SELECT `+optionCols+` FROM code_option
		 WHERE category = $1 AND code = $2 AND is_active`, category, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("code option %s/%s: %w", category, code, api.ErrNotFound)
		}
		return nil, fmt.Errorf("code option get: %w", err)
	}
	return o, nil
}

func (r *repoPG) Upsert(ctx context.Context, o *Option) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO code_option (category, code, name, description, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (category, code) DO UPDATE
		SET name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    display_order = EXCLUDED.display_order,
		    is_active = EXCLUDED.is_active,
		    updated_at = NOW()
		RETURNING id`,
		o.Category, o.Code, o.Name, o.Description, o.DisplayOrder, o.IsActive,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("code option upsert: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOption(row rowScanner) (*Option, error) {
	var o Option
	if err := row.Scan(&o.ID, &o.Category, &o.Code, &o.Name, &o.Description,
		&o.DisplayOrder, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}
