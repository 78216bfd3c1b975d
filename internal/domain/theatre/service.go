package theatre

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validStatuses = map[string]bool{
	StatusReady: true, StatusInUse: true, StatusCleaning: true,
	StatusMaintenance: true, StatusEmergency: true,
}

func (s *Service) Create(ctx context.Context, t *Theatre) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.Status == "" {
		t.Status = StatusReady
	}
	if !validStatuses[t.Status] {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	if t.Features == nil {
		t.Features = []string{}
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Theatre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, t *Theatre) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.Status != "" && !validStatuses[t.Status] {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	return s.repo.Update(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Theatre, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Theatre, int, error) {
	return s.repo.Search(ctx, params, limit, offset)
}

// SetStatus transitions a theatre to a new operational status.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid status: %s", status)
	}
	return s.repo.SetStatus(ctx, id, status)
}

// AssignNextCase points the theatre at the case to be evaluated for readiness.
func (s *Service) AssignNextCase(ctx context.Context, id, caseID uuid.UUID) error {
	if caseID == uuid.Nil {
		return fmt.Errorf("case_id is required")
	}
	return s.repo.SetNextCase(ctx, id, &caseID)
}

// ClearNextCase removes the theatre's next-case assignment.
func (s *Service) ClearNextCase(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetNextCase(ctx, id, nil)
}
