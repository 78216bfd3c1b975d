package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*Case, error)
	Update(ctx context.Context, c *Case) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Case, int, error)
	ListByTheatre(ctx context.Context, theatreID uuid.UUID, limit, offset int) ([]*Case, int, error)
	ListByDate(ctx context.Context, date time.Time, limit, offset int) ([]*Case, int, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Case, int, error)
	AddTeamMember(ctx context.Context, caseID, staffID uuid.UUID) error
	RemoveTeamMember(ctx context.Context, caseID, staffID uuid.UUID) error
}
