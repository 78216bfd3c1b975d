package theatre

import (
	"time"

	"github.com/google/uuid"
)

// Theatre statuses.
const (
	StatusReady       = "ready"
	StatusInUse       = "in-use"
	StatusCleaning    = "cleaning"
	StatusMaintenance = "maintenance"
	StatusEmergency   = "emergency"
)

// Theatre maps to the theatre table. Features is a free-form list of
// capability tags ("laminar flow", "imaging", "c-arm") that readiness
// evaluation matches procedure requirements against.
type Theatre struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Specialty  *string    `db:"specialty" json:"specialty,omitempty"`
	Status     string     `db:"status" json:"status"`
	Features   []string   `db:"features" json:"features"`
	NextCaseID *uuid.UUID `db:"next_case_id" json:"next_case_id,omitempty"`
	Note       *string    `db:"note" json:"note,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
