package staffing

import (
	"time"

	"github.com/google/uuid"
)

// Competency levels.
const (
	LevelNovice    = "novice"
	LevelCompetent = "competent"
	LevelExpert    = "expert"
)

// Shift statuses.
const (
	ShiftScheduled = "scheduled"
	ShiftConfirmed = "confirmed"
	ShiftCancelled = "cancelled"
	ShiftCompleted = "completed"
)

// Staff maps to the staff table. Role is free-form ("Scrub N/P", "ODP",
// "Surgeon") so requirement matching stays a plain string comparison.
type Staff struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	Role         string       `db:"role" json:"role"`
	Competencies []Competency `db:"-" json:"competencies"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}

// Competency maps to the staff_competency table. Procedure is the
// procedure card name the level applies to.
type Competency struct {
	ID        uuid.UUID `db:"id" json:"id"`
	StaffID   uuid.UUID `db:"staff_id" json:"staff_id"`
	Procedure string    `db:"procedure" json:"procedure"`
	Level     string    `db:"level" json:"level"`
}

// Shift maps to the shift table.
type Shift struct {
	ID        uuid.UUID `db:"id" json:"id"`
	StaffID   uuid.UUID `db:"staff_id" json:"staff_id"`
	Date      time.Time `db:"date" json:"date"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
