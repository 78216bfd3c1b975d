package theatre

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/theatreops/tom/internal/platform/db"
	"github.com/theatreops/tom/internal/platform/query"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const theatreCols = `id, name, specialty, status, features, next_case_id, note, created_at, updated_at`

func (r *repoPG) scanTheatre(row pgx.Row) (*Theatre, error) {
	var t Theatre
	err := row.Scan(&t.ID, &t.Name, &t.Specialty, &t.Status, &t.Features,
		&t.NextCaseID, &t.Note, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *repoPG) Create(ctx context.Context, t *Theatre) error {
	t.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO theatre (id, name, specialty, status, features, next_case_id, note)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		t.ID, t.Name, t.Specialty, t.Status, t.Features, t.NextCaseID, t.Note)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Theatre, error) {
	t, err := r.scanTheatre(r.conn(ctx).QueryRow(ctx, `SELECT `+theatreCols+` FROM theatre WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, db.ErrNotFound
	}
	return t, err
}

func (r *repoPG) Update(ctx context.Context, t *Theatre) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE theatre SET name=$2, specialty=$3, status=$4, features=$5, note=$6, updated_at=NOW()
		WHERE id = $1`,
		t.ID, t.Name, t.Specialty, t.Status, t.Features, t.Note)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM theatre WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Theatre, int, error) {
	return r.Search(ctx, nil, limit, offset)
}

var theatreSearchParams = map[string]query.ParamConfig{
	"status":    {Type: query.ParamToken, Column: "status"},
	"specialty": {Type: query.ParamToken, Column: "specialty"},
	"name":      {Type: query.ParamString, Column: "name"},
}

func (r *repoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Theatre, int, error) {
	qb := query.New("theatre", theatreCols)
	qb.ApplyParams(params, theatreSearchParams)
	qb.OrderBy("name")

	var total int
	if err := r.conn(ctx).QueryRow(ctx, qb.CountSQL(), qb.CountArgs()...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, qb.DataSQL(limit, offset), qb.DataArgs(limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Theatre
	for rows.Next() {
		t, err := r.scanTheatre(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}

func (r *repoPG) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE theatre SET status=$2, updated_at=NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) SetNextCase(ctx context.Context, id uuid.UUID, caseID *uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE theatre SET next_case_id=$2, updated_at=NOW() WHERE id = $1`, id, caseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
