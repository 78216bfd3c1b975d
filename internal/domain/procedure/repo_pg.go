package procedure

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

const cardCols = `id, name, specialty, special_requirements, note, created_at, updated_at`

func (r *repoPG) scanCard(row pgx.Row) (*Card, error) {
	var c Card
	err := row.Scan(&c.ID, &c.Name, &c.Specialty, &c.SpecialRequirements, &c.Note, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, c *Card) error {
	c.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO procedure_card (id, name, specialty, special_requirements, note)
		VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.Name, c.Specialty, c.SpecialRequirements, c.Note)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Card, error) {
	c, err := r.scanCard(r.conn(ctx).QueryRow(ctx, `SELECT `+cardCols+` FROM procedure_card WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, db.ErrNotFound
	}
	return c, err
}

func (r *repoPG) GetDetail(ctx context.Context, id uuid.UUID) (*CardDetail, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	staff, err := r.GetStaffRequirements(ctx, id)
	if err != nil {
		return nil, err
	}
	equipment, err := r.GetEquipmentRequirements(ctx, id)
	if err != nil {
		return nil, err
	}
	consumables, err := r.GetConsumableRequirements(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CardDetail{Card: *c, Staff: staff, Equipment: equipment, Consumables: consumables}, nil
}

func (r *repoPG) Update(ctx context.Context, c *Card) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE procedure_card SET name=$2, specialty=$3, special_requirements=$4, note=$5, updated_at=NOW()
		WHERE id = $1`,
		c.ID, c.Name, c.Specialty, c.SpecialRequirements, c.Note)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM procedure_card WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Card, int, error) {
	return r.Search(ctx, nil, limit, offset)
}

var cardSearchParams = map[string]query.ParamConfig{
	"specialty": {Type: query.ParamToken, Column: "specialty"},
	"name":      {Type: query.ParamString, Column: "name"},
}

func (r *repoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Card, int, error) {
	qb := query.New("procedure_card", cardCols)
	qb.ApplyParams(params, cardSearchParams)
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
	var items []*Card
	for rows.Next() {
		c, err := r.scanCard(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, nil
}

// -- Staff requirements --

func (r *repoPG) AddStaffRequirement(ctx context.Context, sr *StaffRequirement) error {
	sr.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO staff_requirement (id, card_id, role, count, grade, competency)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		sr.ID, sr.CardID, sr.Role, sr.Count, sr.Grade, sr.Competency)
	return err
}

func (r *repoPG) GetStaffRequirements(ctx context.Context, cardID uuid.UUID) ([]StaffRequirement, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, card_id, role, count, grade, competency
		FROM staff_requirement WHERE card_id = $1 ORDER BY role`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StaffRequirement
	for rows.Next() {
		var sr StaffRequirement
		if err := rows.Scan(&sr.ID, &sr.CardID, &sr.Role, &sr.Count, &sr.Grade, &sr.Competency); err != nil {
			return nil, err
		}
		items = append(items, sr)
	}
	return items, rows.Err()
}

func (r *repoPG) RemoveStaffRequirement(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM staff_requirement WHERE id = $1`, id)
	return err
}

// -- Equipment requirements --

func (r *repoPG) AddEquipmentRequirement(ctx context.Context, er *EquipmentRequirement) error {
	er.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO equipment_requirement (id, card_id, item_name, quantity, is_critical)
		VALUES ($1,$2,$3,$4,$5)`,
		er.ID, er.CardID, er.ItemName, er.Quantity, er.IsCritical)
	return err
}

func (r *repoPG) GetEquipmentRequirements(ctx context.Context, cardID uuid.UUID) ([]EquipmentRequirement, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, card_id, item_name, quantity, is_critical
		FROM equipment_requirement WHERE card_id = $1 ORDER BY item_name`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EquipmentRequirement
	for rows.Next() {
		var er EquipmentRequirement
		if err := rows.Scan(&er.ID, &er.CardID, &er.ItemName, &er.Quantity, &er.IsCritical); err != nil {
			return nil, err
		}
		items = append(items, er)
	}
	return items, rows.Err()
}

func (r *repoPG) RemoveEquipmentRequirement(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM equipment_requirement WHERE id = $1`, id)
	return err
}

// -- Consumable requirements --

func (r *repoPG) AddConsumableRequirement(ctx context.Context, cr *ConsumableRequirement) error {
	cr.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO consumable_requirement (id, card_id, item_name, quantity, is_critical)
		VALUES ($1,$2,$3,$4,$5)`,
		cr.ID, cr.CardID, cr.ItemName, cr.Quantity, cr.IsCritical)
	return err
}

func (r *repoPG) GetConsumableRequirements(ctx context.Context, cardID uuid.UUID) ([]ConsumableRequirement, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, card_id, item_name, quantity, is_critical
		FROM consumable_requirement WHERE card_id = $1 ORDER BY item_name`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ConsumableRequirement
	for rows.Next() {
		var cr ConsumableRequirement
		if err := rows.Scan(&cr.ID, &cr.CardID, &cr.ItemName, &cr.Quantity, &cr.IsCritical); err != nil {
			return nil, err
		}
		items = append(items, cr)
	}
	return items, rows.Err()
}

func (r *repoPG) RemoveConsumableRequirement(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM consumable_requirement WHERE id = $1`, id)
	return err
}
