package staffing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	staff  StaffRepository
	shifts ShiftRepository
}

func NewService(staff StaffRepository, shifts ShiftRepository) *Service {
	return &Service{staff: staff, shifts: shifts}
}

var validLevels = map[string]bool{
	LevelNovice: true, LevelCompetent: true, LevelExpert: true,
}

var validShiftStatuses = map[string]bool{
	ShiftScheduled: true, ShiftConfirmed: true,
	ShiftCancelled: true, ShiftCompleted: true,
}

// -- Staff --

func (s *Service) CreateStaff(ctx context.Context, st *Staff) error {
	if st.Name == "" {
		return fmt.Errorf("name is required")
	}
	if st.Role == "" {
		return fmt.Errorf("role is required")
	}
	for _, c := range st.Competencies {
		if c.Procedure == "" {
			return fmt.Errorf("competency procedure is required")
		}
		if !validLevels[c.Level] {
			return fmt.Errorf("invalid competency level: %s", c.Level)
		}
	}
	return s.staff.Create(ctx, st)
}

func (s *Service) GetStaff(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *Service) UpdateStaff(ctx context.Context, st *Staff) error {
	if st.Name == "" {
		return fmt.Errorf("name is required")
	}
	if st.Role == "" {
		return fmt.Errorf("role is required")
	}
	return s.staff.Update(ctx, st)
}

func (s *Service) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	return s.staff.Delete(ctx, id)
}

func (s *Service) ListStaff(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	return s.staff.List(ctx, limit, offset)
}

func (s *Service) SearchStaff(ctx context.Context, params map[string]string, limit, offset int) ([]*Staff, int, error) {
	return s.staff.Search(ctx, params, limit, offset)
}

func (s *Service) AddCompetency(ctx context.Context, c *Competency) error {
	if c.StaffID == uuid.Nil {
		return fmt.Errorf("staff_id is required")
	}
	if c.Procedure == "" {
		return fmt.Errorf("procedure is required")
	}
	if !validLevels[c.Level] {
		return fmt.Errorf("invalid competency level: %s", c.Level)
	}
	return s.staff.AddCompetency(ctx, c)
}

func (s *Service) RemoveCompetency(ctx context.Context, id uuid.UUID) error {
	return s.staff.RemoveCompetency(ctx, id)
}

// -- Shifts --

func (s *Service) CreateShift(ctx context.Context, sh *Shift) error {
	if sh.StaffID == uuid.Nil {
		return fmt.Errorf("staff_id is required")
	}
	if sh.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if sh.Status == "" {
		sh.Status = ShiftScheduled
	}
	if !validShiftStatuses[sh.Status] {
		return fmt.Errorf("invalid status: %s", sh.Status)
	}
	return s.shifts.Create(ctx, sh)
}

func (s *Service) GetShift(ctx context.Context, id uuid.UUID) (*Shift, error) {
	return s.shifts.GetByID(ctx, id)
}

func (s *Service) UpdateShift(ctx context.Context, sh *Shift) error {
	if sh.Status != "" && !validShiftStatuses[sh.Status] {
		return fmt.Errorf("invalid status: %s", sh.Status)
	}
	return s.shifts.Update(ctx, sh)
}

func (s *Service) DeleteShift(ctx context.Context, id uuid.UUID) error {
	return s.shifts.Delete(ctx, id)
}

func (s *Service) ListShiftsByDate(ctx context.Context, date time.Time) ([]*Shift, error) {
	return s.shifts.ListByDate(ctx, date)
}

// ConfirmShift marks a scheduled shift as confirmed.
func (s *Service) ConfirmShift(ctx context.Context, id uuid.UUID) error {
	return s.shifts.SetStatus(ctx, id, ShiftConfirmed)
}
