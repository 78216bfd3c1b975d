package inventory

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

const itemCols = `id, name, category, quantity, min_quantity, location, created_at, updated_at`

func (r *repoPG) scanItem(row pgx.Row) (*Item, error) {
	var i Item
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.Quantity, &i.MinQuantity,
		&i.Location, &i.CreatedAt, &i.UpdatedAt)
	return &i, err
}

func (r *repoPG) Create(ctx context.Context, i *Item) error {
	i.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO inventory_item (id, name, category, quantity, min_quantity, location)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		i.ID, i.Name, i.Category, i.Quantity, i.MinQuantity, i.Location)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	i, err := r.scanItem(r.conn(ctx).QueryRow(ctx, `SELECT `+itemCols+` FROM inventory_item WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, db.ErrNotFound
	}
	return i, err
}

func (r *repoPG) Update(ctx context.Context, i *Item) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE inventory_item SET name=$2, category=$3, quantity=$4, min_quantity=$5, location=$6, updated_at=NOW()
		WHERE id = $1`,
		i.ID, i.Name, i.Category, i.Quantity, i.MinQuantity, i.Location)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM inventory_item WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Item, int, error) {
	return r.Search(ctx, nil, limit, offset)
}

var itemSearchParams = map[string]query.ParamConfig{
	"category": {Type: query.ParamToken, Column: "category"},
	"name":     {Type: query.ParamString, Column: "name"},
	"location": {Type: query.ParamString, Column: "location"},
}

func (r *repoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Item, int, error) {
	qb := query.New("inventory_item", itemCols)
	qb.ApplyParams(params, itemSearchParams)
	if params["below_min"] == "true" {
		qb.Add("quantity < min_quantity")
	}
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
	var items []*Item
	for rows.Next() {
		i, err := r.scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, i)
	}
	return items, total, nil
}

// Adjust applies a stock movement atomically and returns the updated row.
// The quantity never drops below zero.
func (r *repoPG) Adjust(ctx context.Context, id uuid.UUID, delta int) (*Item, error) {
	i, err := r.scanItem(r.conn(ctx).QueryRow(ctx, `
		UPDATE inventory_item SET quantity = GREATEST(quantity + $2, 0), updated_at = NOW()
		WHERE id = $1
		RETURNING `+itemCols, id, delta))
	if err == pgx.ErrNoRows {
		return nil, db.ErrNotFound
	}
	return i, err
}
