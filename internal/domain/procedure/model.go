package procedure

import (
	"time"

	"github.com/google/uuid"
)

// Card maps to the procedure_card table. SpecialRequirements carries
// free-form environment needs ("laminar flow", "C-arm imaging") that
// readiness evaluation matches against theatre features.
type Card struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Specialty           *string   `db:"specialty" json:"specialty,omitempty"`
	SpecialRequirements []string  `db:"special_requirements" json:"special_requirements"`
	Note                *string   `db:"note" json:"note,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// StaffRequirement maps to the staff_requirement table. Competency, when
// set, names the competency a team member must hold for this procedure.
type StaffRequirement struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CardID     uuid.UUID `db:"card_id" json:"card_id"`
	Role       string    `db:"role" json:"role"`
	Count      int       `db:"count" json:"count"`
	Grade      *string   `db:"grade" json:"grade,omitempty"`
	Competency *string   `db:"competency" json:"competency,omitempty"`
}

// EquipmentRequirement maps to the equipment_requirement table.
type EquipmentRequirement struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CardID     uuid.UUID `db:"card_id" json:"card_id"`
	ItemName   string    `db:"item_name" json:"item_name"`
	Quantity   int       `db:"quantity" json:"quantity"`
	IsCritical bool      `db:"is_critical" json:"is_critical"`
}

// ConsumableRequirement maps to the consumable_requirement table.
type ConsumableRequirement struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CardID     uuid.UUID `db:"card_id" json:"card_id"`
	ItemName   string    `db:"item_name" json:"item_name"`
	Quantity   int       `db:"quantity" json:"quantity"`
	IsCritical bool      `db:"is_critical" json:"is_critical"`
}

// CardDetail is a card with all of its requirement lists. This is what
// readiness evaluation consumes.
type CardDetail struct {
	Card        Card                    `json:"card"`
	Staff       []StaffRequirement      `json:"staff_requirements"`
	Equipment   []EquipmentRequirement  `json:"equipment_requirements"`
	Consumables []ConsumableRequirement `json:"consumable_requirements"`
}
