package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/recordbook/recordbook/internal/platform/api"
	"github.com/recordbook/recordbook/internal/platform/db"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// storePG is the single child-row store serving every attribute type of both
// domains; table and column names come from the ListSpec descriptors, which
// are compile-time constants.
type storePG struct {
	pool *pgxpool.Pool
}

func NewStorePG(pool *pgxpool.Pool) Store {
	return &storePG{pool: pool}
}

func (s *storePG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return s.pool
}

func selectColumns(spec ListSpec) string {
	cols := []string{"id", spec.KeyColumn, spec.CodeColumn}
	if spec.ExtraColumn != "" {
		cols = append(cols, spec.ExtraColumn)
	}
	cols = append(cols, "is_primary", "created_at", "updated_at")
	return strings.Join(cols, ", ")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRow(spec ListSpec, scanner rowScanner) (*Row, error) {
	var r Row
	dest := []interface{}{&r.ID, &r.Key, &r.Code}
	if spec.ExtraColumn != "" {
		dest = append(dest, &r.Extra)
	}
	dest = append(dest, &r.IsPrimary, &r.CreatedAt, &r.UpdatedAt)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *storePG) List(ctx context.Context, spec ListSpec, key string) ([]Row, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY id ASC`,
		selectColumns(spec), spec.Table, spec.KeyColumn)

	rows, err := s.conn(ctx).Query(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("%s list: %w", spec.Table, err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		r, err := scanRow(spec, rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *r)
	}
	return result, rows.Err()
}

func (s *storePG) Get(ctx context.Context, spec ListSpec, id int64) (*Row, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, selectColumns(spec), spec.Table)

	r, err := scanRow(spec, s.conn(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", spec.Table, id, api.ErrNotFound)
		}
		return nil, fmt.Errorf("%s get: %w", spec.Table, err)
	}
	return r, nil
}

func (s *storePG) DeleteExcept(ctx context.Context, spec ListSpec, key string, keep []int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND NOT (id = ANY($2))`,
		spec.Table, spec.KeyColumn)

	if _, err := s.conn(ctx).Exec(ctx, query, key, keep); err != nil {
		return fmt.Errorf("%s delete removed rows: %w", spec.Table, err)
	}
	return nil
}

func (s *storePG) Update(ctx context.Context, spec ListSpec, id int64, item Item) error {
	var query string
	var args []interface{}
	if spec.ExtraColumn != "" {
		query = fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, is_primary = $3, updated_at = NOW() WHERE id = $4`,
			spec.Table, spec.CodeColumn, spec.ExtraColumn)
		args = []interface{}{item.Code, item.Extra, item.IsPrimary, id}
	} else {
		query = fmt.Sprintf(`UPDATE %s SET %s = $1, is_primary = $2, updated_at = NOW() WHERE id = $3`,
			spec.Table, spec.CodeColumn)
		args = []interface{}{item.Code, item.IsPrimary, id}
	}

	tag, err := s.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s update: %w", spec.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", spec.Table, id, api.ErrNotFound)
	}
	return nil
}

func (s *storePG) Insert(ctx context.Context, spec ListSpec, key string, item Item) (int64, error) {
	var query string
	var args []interface{}
	if spec.ExtraColumn != "" {
		query = fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, is_primary) VALUES ($1, $2, $3, $4) RETURNING id`,
			spec.Table, spec.KeyColumn, spec.CodeColumn, spec.ExtraColumn)
		args = []interface{}{key, item.Code, item.Extra, item.IsPrimary}
	} else {
		query = fmt.Sprintf(`INSERT INTO %s (%s, %s, is_primary) VALUES ($1, $2, $3) RETURNING id`,
			spec.Table, spec.KeyColumn, spec.CodeColumn)
		args = []interface{}{key, item.Code, item.IsPrimary}
	}

	var id int64
	if err := s.conn(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s insert: %w", spec.Table, err)
	}
	return id, nil
}

func (s *storePG) Delete(ctx context.Context, spec ListSpec, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, spec.Table)

	tag, err := s.conn(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s delete: %w", spec.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", spec.Table, id, api.ErrNotFound)
	}
	return nil
}
