package artist

import (
	"context"
	"errors"
	"fmt"
	"sort"
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

const basicInfoCols = `id, artist_id, stage_name, real_name, birth_date,
	gender, gender_name, marital_status, marital_status_name, email,
	education_no, education_no_name, low_income, low_income_name,
	nationality_code, nationality_code_name, main_lang, main_lang_name,
	religion, religion_name, id_type, id_type_name, id_no,
	created_at, updated_at`

const detailCols = `id, artist_id, stage_name, full_name, birth_date, biological_gender,
	marital_status, blood_type_abo, blood_type_rh, email, education_level,
	income_level, created_at, updated_at`

func (r *repoPG) CreateBasicInfo(ctx context.Context, artistID, stageName string) (*BasicInfo, error) {
	b, err := scanBasicInfo(r.conn(ctx).QueryRow(ctx,
		`INSERT INTO artist_basic_info (artist_id, stage_name) VALUES ($1, $2)
		 RETURNING `+basicInfoCols, artistID, stageName))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, api.Invalid(fmt.Sprintf("artist %s already exists", artistID))
		}
		return nil, fmt.Errorf("artist create: %w", err)
	}
	return b, nil
}

func (r *repoPG) GetBasicInfo(ctx context.Context, artistID string) (*BasicInfo, error) {
	b, err := scanBasicInfo(r.conn(ctx).QueryRow(ctx,
		`SELECT `+basicInfoCols+` FROM artist_basic_info WHERE artist_id = $1`, artistID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("artist %s: %w", artistID, api.ErrNotFound)
		}
		return nil, fmt.Errorf("artist get: %w", err)
	}
	return b, nil
}

func (r *repoPG) ListBasicInfo(ctx context.Context, q string, limit, offset int) ([]*BasicInfo, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+basicInfoCols+` FROM artist_basic_info
		 WHERE $1 = '' OR artist_id ILIKE '%' || $1 || '%' OR stage_name ILIKE '%' || $1 || '%'
		 ORDER BY artist_id ASC
		 LIMIT $2 OFFSET $3`, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("artist list: %w", err)
	}
	defer rows.Close()

	var list []*BasicInfo
	for rows.Next() {
		b, err := scanBasicInfo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *repoPG) UpdateBasicInfoColumns(ctx context.Context, artistID string, cols map[string]*string) error {
	if len(cols) == 0 {
		return nil
	}
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, 0, len(names)+1)
	args := []interface{}{artistID}
	for _, name := range names {
		args = append(args, cols[name])
		sets = append(sets, fmt.Sprintf("%s = $%d", name, len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	tag, err := r.conn(ctx).Exec(ctx,
		fmt.Sprintf(`UPDATE artist_basic_info SET %s WHERE artist_id = $1`, strings.Join(sets, ", ")),
		args...)
	if err != nil {
		return fmt.Errorf("artist display update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("artist %s: %w", artistID, api.ErrNotFound)
	}
	return nil
}

func (r *repoPG) GetDetail(ctx context.Context, artistID string) (*Detail, error) {
	d, err := scanDetail(r.conn(ctx).QueryRow(ctx,
		`SELECT `+detailCols+` FROM artist_detail WHERE artist_id = $1`, artistID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("artist detail %s: %w", artistID, api.ErrNotFound)
		}
		return nil, fmt.Errorf("artist detail get: %w", err)
	}
	return d, nil
}

func (r *repoPG) UpsertDetail(ctx context.Context, artistID string, fields map[string]*string) (*Detail, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	insertCols := []string{"artist_id"}
	placeholders := []string{"$1"}
	args := []interface{}{artistID}
	sets := []string{"updated_at = NOW()"}
	for _, name := range names {
		args = append(args, fields[name])
		insertCols = append(insertCols, name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", name, name))
	}

	d, err := scanDetail(r.conn(ctx).QueryRow(ctx, fmt.Sprintf(
		`INSERT INTO artist_detail (%s) VALUES (%s)
		 ON CONFLICT (artist_id) DO UPDATE SET %s
		 RETURNING %s`,
		strings.Join(insertCols, ", "), strings.Join(placeholders, ", "),
		strings.Join(sets, ", "), detailCols),
		args...))
	if err != nil {
		return nil, fmt.Errorf("artist detail upsert: %w", err)
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBasicInfo(row rowScanner) (*BasicInfo, error) {
	var b BasicInfo
	if err := row.Scan(&b.ID, &b.ArtistID, &b.StageName, &b.RealName, &b.BirthDate,
		&b.Gender, &b.GenderName, &b.MaritalStatus, &b.MaritalStatusName, &b.Email,
		&b.EducationNo, &b.EducationNoName, &b.LowIncome, &b.LowIncomeName,
		&b.NationalityCode, &b.NationalityCodeName, &b.MainLang, &b.MainLangName,
		&b.Religion, &b.ReligionName, &b.IDType, &b.IDTypeName, &b.IDNo,
		&b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanDetail(row rowScanner) (*Detail, error) {
	var d Detail
	if err := row.Scan(&d.ID, &d.ArtistID, &d.StageName, &d.FullName, &d.BirthDate,
		&d.BiologicalGender, &d.MaritalStatus, &d.BloodTypeABO, &d.BloodTypeRH,
		&d.Email, &d.EducationLevel, &d.IncomeLevel,
		&d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
