package staffing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type StaffRepository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*Staff, error)
	Update(ctx context.Context, s *Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Staff, int, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Staff, int, error)
	AddCompetency(ctx context.Context, c *Competency) error
	RemoveCompetency(ctx context.Context, id uuid.UUID) error
}

type ShiftRepository interface {
	Create(ctx context.Context, sh *Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*Shift, error)
	Update(ctx context.Context, sh *Shift) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDate(ctx context.Context, date time.Time) ([]*Shift, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}
