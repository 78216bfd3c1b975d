package staffing

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

// =========== Staff Repository ===========

type staffRepoPG struct{ pool *pgxpool.Pool }

func NewStaffRepoPG(pool *pgxpool.Pool) StaffRepository { return &staffRepoPG{pool: pool} }

func (r *staffRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const staffCols = `id, name, role, created_at, updated_at`

func (r *staffRepoPG) scanStaff(row pgx.Row) (*Staff, error) {
	var s Staff
	err := row.Scan(&s.ID, &s.Name, &s.Role, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *staffRepoPG) loadCompetencies(ctx context.Context, s *Staff) error {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, staff_id, procedure, level
		FROM staff_competency WHERE staff_id = $1 ORDER BY procedure`, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	s.Competencies = []Competency{}
	for rows.Next() {
		var c Competency
		if err := rows.Scan(&c.ID, &c.StaffID, &c.Procedure, &c.Level); err != nil {
			return err
		}
		s.Competencies = append(s.Competencies, c)
	}
	return rows.Err()
}

func (r *staffRepoPG) Create(ctx context.Context, s *Staff) error {
	s.ID = uuid.New()
	return db.WithTx(ctx, r.pool, func(ctx context.Context) error {
		_, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO staff (id, name, role) VALUES ($1,$2,$3)`, s.ID, s.Name, s.Role)
		if err != nil {
			return err
		}
		for i := range s.Competencies {
			c := &s.Competencies[i]
			c.ID = uuid.New()
			c.StaffID = s.ID
			if _, err := r.conn(ctx).Exec(ctx, `
				INSERT INTO staff_competency (id, staff_id, procedure, level)
				VALUES ($1,$2,$3,$4)`, c.ID, c.StaffID, c.Procedure, c.Level); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *staffRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	s, err := r.scanStaff(r.conn(ctx).QueryRow(ctx, `SELECT `+staffCols+` FROM staff WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadCompetencies(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *staffRepoPG) Update(ctx context.Context, s *Staff) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE staff SET name=$2, role=$3, updated_at=NOW() WHERE id = $1`, s.ID, s.Name, s.Role)
	return err
}

func (r *staffRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	return err
}

func (r *staffRepoPG) List(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	return r.Search(ctx, nil, limit, offset)
}

var staffSearchParams = map[string]query.ParamConfig{
	"role": {Type: query.ParamToken, Column: "role"},
	"name": {Type: query.ParamString, Column: "name"},
}

func (r *staffRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Staff, int, error) {
	qb := query.New("staff", staffCols)
	qb.ApplyParams(params, staffSearchParams)
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
	var items []*Staff
	for rows.Next() {
		s, err := r.scanStaff(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	rows.Close()
	for _, s := range items {
		if err := r.loadCompetencies(ctx, s); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *staffRepoPG) AddCompetency(ctx context.Context, c *Competency) error {
	c.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO staff_competency (id, staff_id, procedure, level)
		VALUES ($1,$2,$3,$4)`, c.ID, c.StaffID, c.Procedure, c.Level)
	return err
}

func (r *staffRepoPG) RemoveCompetency(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM staff_competency WHERE id = $1`, id)
	return err
}

// =========== Shift Repository ===========

type shiftRepoPG struct{ pool *pgxpool.Pool }

func NewShiftRepoPG(pool *pgxpool.Pool) ShiftRepository { return &shiftRepoPG{pool: pool} }

func (r *shiftRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const shiftCols = `id, staff_id, date, status, created_at, updated_at`

func (r *shiftRepoPG) scanShift(row pgx.Row) (*Shift, error) {
	var sh Shift
	err := row.Scan(&sh.ID, &sh.StaffID, &sh.Date, &sh.Status, &sh.CreatedAt, &sh.UpdatedAt)
	return &sh, err
}

func (r *shiftRepoPG) Create(ctx context.Context, sh *Shift) error {
	sh.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO shift (id, staff_id, date, status) VALUES ($1,$2,$3,$4)`,
		sh.ID, sh.StaffID, sh.Date, sh.Status)
	return err
}

func (r *shiftRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Shift, error) {
	sh, err := r.scanShift(r.conn(ctx).QueryRow(ctx, `SELECT `+shiftCols+` FROM shift WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, db.ErrNotFound
	}
	return sh, err
}

func (r *shiftRepoPG) Update(ctx context.Context, sh *Shift) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE shift SET staff_id=$2, date=$3, status=$4, updated_at=NOW() WHERE id = $1`,
		sh.ID, sh.StaffID, sh.Date, sh.Status)
	return err
}

func (r *shiftRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM shift WHERE id = $1`, id)
	return err
}

func (r *shiftRepoPG) ListByDate(ctx context.Context, date time.Time) ([]*Shift, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+shiftCols+` FROM shift WHERE date = $1`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Shift
	for rows.Next() {
		sh, err := r.scanShift(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, sh)
	}
	return items, rows.Err()
}

func (r *shiftRepoPG) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE shift SET status=$2, updated_at=NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
