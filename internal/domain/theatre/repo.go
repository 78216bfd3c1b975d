package theatre

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Theatre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Theatre, error)
	Update(ctx context.Context, t *Theatre) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Theatre, int, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Theatre, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	SetNextCase(ctx context.Context, id uuid.UUID, caseID *uuid.UUID) error
}
