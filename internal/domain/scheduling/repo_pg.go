package scheduling

import (
	"context"
	"time"

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

const caseCols = `id, theatre_id, procedure_id, date, scheduled_start, scheduled_end, status, note, created_at, updated_at`

func (r *repoPG) scanCase(row pgx.Row) (*Case, error) {
	var c Case
	err := row.Scan(&c.ID, &c.TheatreID, &c.ProcedureID, &c.Date,
		&c.ScheduledStart, &c.ScheduledEnd, &c.Status, &c.Note, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *repoPG) loadTeam(ctx context.Context, c *Case) error {
	rows, err := r.conn(ctx).Query(ctx, `SELECT staff_id FROM case_team WHERE case_id = $1`, c.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	c.TeamIDs = []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return err
		}
		c.TeamIDs = append(c.TeamIDs, id)
	}
	return rows.Err()
}

// Create inserts the case and its team assignments in one transaction.
func (r *repoPG) Create(ctx context.Context, c *Case) error {
	c.ID = uuid.New()
	return db.WithTx(ctx, r.pool, func(ctx context.Context) error {
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO theatre_case (id, theatre_id, procedure_id, date, scheduled_start, scheduled_end, status, note)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			c.ID, c.TheatreID, c.ProcedureID, c.Date, c.ScheduledStart, c.ScheduledEnd, c.Status, c.Note)
		if err != nil {
			return err
		}
		for _, staffID := range c.TeamIDs {
			if _, err := r.conn(ctx).Exec(ctx, `
				INSERT INTO case_team (case_id, staff_id) VALUES ($1,$2)`, c.ID, staffID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Case, error) {
	c, err := r.scanCase(r.conn(ctx).QueryRow(ctx, `SELECT `+caseCols+` FROM theatre_case WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadTeam(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repoPG) Update(ctx context.Context, c *Case) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE theatre_case SET theatre_id=$2, procedure_id=$3, date=$4, scheduled_start=$5,
			scheduled_end=$6, status=$7, note=$8, updated_at=NOW()
		WHERE id = $1`,
		c.ID, c.TheatreID, c.ProcedureID, c.Date, c.ScheduledStart, c.ScheduledEnd, c.Status, c.Note)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM theatre_case WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Case, int, error) {
	return r.Search(ctx, nil, limit, offset)
}

func (r *repoPG) ListByTheatre(ctx context.Context, theatreID uuid.UUID, limit, offset int) ([]*Case, int, error) {
	return r.listWhere(ctx, `theatre_id = $1`, []interface{}{theatreID}, limit, offset)
}

func (r *repoPG) ListByDate(ctx context.Context, date time.Time, limit, offset int) ([]*Case, int, error) {
	return r.listWhere(ctx, `date = $1`, []interface{}{date}, limit, offset)
}

func (r *repoPG) listWhere(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*Case, int, error) {
	qb := query.New("theatre_case", caseCols)
	qb.Add(where, args...)
	qb.OrderBy("date, scheduled_start")
	return r.runQuery(ctx, qb, limit, offset)
}

var caseSearchParams = map[string]query.ParamConfig{
	"status":     {Type: query.ParamToken, Column: "status"},
	"theatre_id": {Type: query.ParamToken, Column: "theatre_id"},
	"date":       {Type: query.ParamDate, Column: "date"},
}

func (r *repoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Case, int, error) {
	qb := query.New("theatre_case", caseCols)
	qb.ApplyParams(params, caseSearchParams)
	qb.OrderBy("date, scheduled_start")
	return r.runQuery(ctx, qb, limit, offset)
}

func (r *repoPG) runQuery(ctx context.Context, qb *query.Builder, limit, offset int) ([]*Case, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, qb.CountSQL(), qb.CountArgs()...).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, qb.DataSQL(limit, offset), qb.DataArgs(limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Case
	for rows.Next() {
		c, err := r.scanCase(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	rows.Close()
	for _, c := range items {
		if err := r.loadTeam(ctx, c); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *repoPG) AddTeamMember(ctx context.Context, caseID, staffID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO case_team (case_id, staff_id) VALUES ($1,$2)
		ON CONFLICT DO NOTHING`, caseID, staffID)
	return err
}

func (r *repoPG) RemoveTeamMember(ctx context.Context, caseID, staffID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM case_team WHERE case_id = $1 AND staff_id = $2`, caseID, staffID)
	return err
}
