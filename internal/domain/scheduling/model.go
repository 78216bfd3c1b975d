package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Case statuses.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Case maps to the theatre_case table. TeamIDs holds the assigned staff,
// stored in the case_team join table.
type Case struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	TheatreID      uuid.UUID   `db:"theatre_id" json:"theatre_id"`
	ProcedureID    uuid.UUID   `db:"procedure_id" json:"procedure_id"`
	TeamIDs        []uuid.UUID `db:"-" json:"team_ids"`
	Date           time.Time   `db:"date" json:"date"`
	ScheduledStart *time.Time  `db:"scheduled_start" json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time  `db:"scheduled_end" json:"scheduled_end,omitempty"`
	Status         string      `db:"status" json:"status"`
	Note           *string     `db:"note" json:"note,omitempty"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}
