package procedure

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*Card, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*CardDetail, error)
	Update(ctx context.Context, c *Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Card, int, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Card, int, error)
	// Staff requirements
	AddStaffRequirement(ctx context.Context, r *StaffRequirement) error
	GetStaffRequirements(ctx context.Context, cardID uuid.UUID) ([]StaffRequirement, error)
	RemoveStaffRequirement(ctx context.Context, id uuid.UUID) error
	// Equipment requirements
	AddEquipmentRequirement(ctx context.Context, r *EquipmentRequirement) error
	GetEquipmentRequirements(ctx context.Context, cardID uuid.UUID) ([]EquipmentRequirement, error)
	RemoveEquipmentRequirement(ctx context.Context, id uuid.UUID) error
	// Consumable requirements
	AddConsumableRequirement(ctx context.Context, r *ConsumableRequirement) error
	GetConsumableRequirements(ctx context.Context, cardID uuid.UUID) ([]ConsumableRequirement, error)
	RemoveConsumableRequirement(ctx context.Context, id uuid.UUID) error
}
