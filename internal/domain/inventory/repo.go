package inventory

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Update(ctx context.Context, i *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Item, int, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Item, int, error)
	Adjust(ctx context.Context, id uuid.UUID, delta int) (*Item, error)
}
