package procedure

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

func (s *Service) CreateCard(ctx context.Context, c *Card) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.SpecialRequirements == nil {
		c.SpecialRequirements = []string{}
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) GetCard(ctx context.Context, id uuid.UUID) (*Card, error) {
	return s.repo.GetByID(ctx, id)
}

// GetDetail returns the card with all three requirement lists.
func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*CardDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

func (s *Service) UpdateCard(ctx context.Context, c *Card) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Update(ctx, c)
}

func (s *Service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListCards(ctx context.Context, limit, offset int) ([]*Card, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) SearchCards(ctx context.Context, params map[string]string, limit, offset int) ([]*Card, int, error) {
	return s.repo.Search(ctx, params, limit, offset)
}

// -- Staff requirements --

func (s *Service) AddStaffRequirement(ctx context.Context, sr *StaffRequirement) error {
	if sr.CardID == uuid.Nil {
		return fmt.Errorf("card_id is required")
	}
	if sr.Role == "" {
		return fmt.Errorf("role is required")
	}
	if sr.Count <= 0 {
		sr.Count = 1
	}
	return s.repo.AddStaffRequirement(ctx, sr)
}

func (s *Service) GetStaffRequirements(ctx context.Context, cardID uuid.UUID) ([]StaffRequirement, error) {
	return s.repo.GetStaffRequirements(ctx, cardID)
}

func (s *Service) RemoveStaffRequirement(ctx context.Context, id uuid.UUID) error {
	return s.repo.RemoveStaffRequirement(ctx, id)
}

// -- Equipment requirements --

func (s *Service) AddEquipmentRequirement(ctx context.Context, er *EquipmentRequirement) error {
	if er.CardID == uuid.Nil {
		return fmt.Errorf("card_id is required")
	}
	if er.ItemName == "" {
		return fmt.Errorf("item_name is required")
	}
	if er.Quantity <= 0 {
		er.Quantity = 1
	}
	return s.repo.AddEquipmentRequirement(ctx, er)
}

func (s *Service) GetEquipmentRequirements(ctx context.Context, cardID uuid.UUID) ([]EquipmentRequirement, error) {
	return s.repo.GetEquipmentRequirements(ctx, cardID)
}

func (s *Service) RemoveEquipmentRequirement(ctx context.Context, id uuid.UUID) error {
	return s.repo.RemoveEquipmentRequirement(ctx, id)
}

// -- Consumable requirements --

func (s *Service) AddConsumableRequirement(ctx context.Context, cr *ConsumableRequirement) error {
	if cr.CardID == uuid.Nil {
		return fmt.Errorf("card_id is required")
	}
	if cr.ItemName == "" {
		return fmt.Errorf("item_name is required")
	}
	if cr.Quantity <= 0 {
		cr.Quantity = 1
	}
	return s.repo.AddConsumableRequirement(ctx, cr)
}

func (s *Service) GetConsumableRequirements(ctx context.Context, cardID uuid.UUID) ([]ConsumableRequirement, error) {
	return s.repo.GetConsumableRequirements(ctx, cardID)
}

func (s *Service) RemoveConsumableRequirement(ctx context.Context, id uuid.UUID) error {
	return s.repo.RemoveConsumableRequirement(ctx, id)
}
