package inventory

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

func (s *Service) Create(ctx context.Context, i *Item) error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if i.MinQuantity < 0 {
		return fmt.Errorf("min_quantity must not be negative")
	}
	return s.repo.Create(ctx, i)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, i *Item) error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	return s.repo.Update(ctx, i)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Item, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Item, int, error) {
	return s.repo.Search(ctx, params, limit, offset)
}

// Adjust applies a stock movement (positive delta receives, negative issues).
func (s *Service) Adjust(ctx context.Context, id uuid.UUID, delta int) (*Item, error) {
	if delta == 0 {
		return nil, fmt.Errorf("delta must not be zero")
	}
	return s.repo.Adjust(ctx, id, delta)
}
