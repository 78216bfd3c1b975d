package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusInProgress: true,
	StatusCompleted: true, StatusCancelled: true,
}

func (s *Service) Create(ctx context.Context, c *Case) error {
	if c.TheatreID == uuid.Nil {
		return fmt.Errorf("theatre_id is required")
	}
	if c.ProcedureID == uuid.Nil {
		return fmt.Errorf("procedure_id is required")
	}
	if c.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if c.Status == "" {
		c.Status = StatusScheduled
	}
	if !validStatuses[c.Status] {
		return fmt.Errorf("invalid status: %s", c.Status)
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, c *Case) error {
	if c.Status != "" && !validStatuses[c.Status] {
		return fmt.Errorf("invalid status: %s", c.Status)
	}
	return s.repo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Case, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByTheatre(ctx context.Context, theatreID uuid.UUID, limit, offset int) ([]*Case, int, error) {
	return s.repo.ListByTheatre(ctx, theatreID, limit, offset)
}

func (s *Service) ListByDate(ctx context.Context, date time.Time, limit, offset int) ([]*Case, int, error) {
	return s.repo.ListByDate(ctx, date, limit, offset)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Case, int, error) {
	return s.repo.Search(ctx, params, limit, offset)
}

func (s *Service) AddTeamMember(ctx context.Context, caseID, staffID uuid.UUID) error {
	if staffID == uuid.Nil {
		return fmt.Errorf("staff_id is required")
	}
	if _, err := s.repo.GetByID(ctx, caseID); err != nil {
		return err
	}
	return s.repo.AddTeamMember(ctx, caseID, staffID)
}

func (s *Service) RemoveTeamMember(ctx context.Context, caseID, staffID uuid.UUID) error {
	return s.repo.RemoveTeamMember(ctx, caseID, staffID)
}
