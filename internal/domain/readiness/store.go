package readiness

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/theatreops/tom/internal/domain/inventory"
	"github.com/theatreops/tom/internal/domain/procedure"
	"github.com/theatreops/tom/internal/domain/scheduling"
	"github.com/theatreops/tom/internal/domain/staffing"
	"github.com/theatreops/tom/internal/domain/theatre"
	"github.com/theatreops/tom/internal/platform/db"
)

// ErrNotFound is returned by Store implementations when a document does
// not exist. The evaluator treats it as degraded data everywhere except
// the theatre read.
var ErrNotFound = errors.New("not found")

// Store is the read-only view the evaluator needs. Implementations must
// be safe for concurrent use.
type Store interface {
	GetTheatre(ctx context.Context, id uuid.UUID) (*theatre.Theatre, error)
	GetCase(ctx context.Context, id uuid.UUID) (*scheduling.Case, error)
	GetProcedureCard(ctx context.Context, id uuid.UUID) (*procedure.CardDetail, error)
	ListStaff(ctx context.Context) ([]*staffing.Staff, error)
	ListShifts(ctx context.Context, date time.Time) ([]*staffing.Shift, error)
	ListInventory(ctx context.Context) ([]*inventory.Item, error)
}

// listPageSize bounds the page reads the repo-backed store issues when
// draining the staff and inventory lists.
const listPageSize = 200

// repoStore adapts the domain repositories to the Store interface.
type repoStore struct {
	theatres   theatre.Repository
	cases      scheduling.Repository
	procedures procedure.Repository
	staff      staffing.StaffRepository
	shifts     staffing.ShiftRepository
	items      inventory.Repository
}

// NewRepoStore builds a Store backed by the domain repositories.
func NewRepoStore(
	theatres theatre.Repository,
	cases scheduling.Repository,
	procedures procedure.Repository,
	staff staffing.StaffRepository,
	shifts staffing.ShiftRepository,
	items inventory.Repository,
) Store {
	return &repoStore{
		theatres:   theatres,
		cases:      cases,
		procedures: procedures,
		staff:      staff,
		shifts:     shifts,
		items:      items,
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *repoStore) GetTheatre(ctx context.Context, id uuid.UUID) (*theatre.Theatre, error) {
	t, err := s.theatres.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return t, nil
}

func (s *repoStore) GetCase(ctx context.Context, id uuid.UUID) (*scheduling.Case, error) {
	c, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (s *repoStore) GetProcedureCard(ctx context.Context, id uuid.UUID) (*procedure.CardDetail, error) {
	d, err := s.procedures.GetDetail(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return d, nil
}

func (s *repoStore) ListStaff(ctx context.Context) ([]*staffing.Staff, error) {
	var all []*staffing.Staff
	for offset := 0; ; offset += listPageSize {
		page, total, err := s.staff.List(ctx, listPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(all) >= total || len(page) == 0 {
			return all, nil
		}
	}
}

func (s *repoStore) ListShifts(ctx context.Context, date time.Time) ([]*staffing.Shift, error) {
	return s.shifts.ListByDate(ctx, date)
}

func (s *repoStore) ListInventory(ctx context.Context) ([]*inventory.Item, error) {
	var all []*inventory.Item
	for offset := 0; ; offset += listPageSize {
		page, total, err := s.items.List(ctx, listPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(all) >= total || len(page) == 0 {
			return all, nil
		}
	}
}
