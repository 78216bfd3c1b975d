package staffing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/theatreops/tom/internal/platform/db"
)

// -- Mock Repositories --

type mockStaffRepo struct {
	staff        map[uuid.UUID]*Staff
	competencies map[uuid.UUID]*Competency
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{
		staff:        make(map[uuid.UUID]*Staff),
		competencies: make(map[uuid.UUID]*Competency),
	}
}

func (m *mockStaffRepo) Create(_ context.Context, s *Staff) error {
	s.ID = uuid.New()
	for i := range s.Competencies {
		s.Competencies[i].ID = uuid.New()
		s.Competencies[i].StaffID = s.ID
		m.competencies[s.Competencies[i].ID] = &s.Competencies[i]
	}
	m.staff[s.ID] = s
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*Staff, error) {
	s, ok := m.staff[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	s.Competencies = nil
	for _, c := range m.competencies {
		if c.StaffID == id {
			s.Competencies = append(s.Competencies, *c)
		}
	}
	return s, nil
}

func (m *mockStaffRepo) Update(_ context.Context, s *Staff) error {
	m.staff[s.ID] = s
	return nil
}

func (m *mockStaffRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.staff, id)
	return nil
}

func (m *mockStaffRepo) List(_ context.Context, limit, offset int) ([]*Staff, int, error) {
	var result []*Staff
	for _, s := range m.staff {
		result = append(result, s)
	}
	return result, len(result), nil
}

func (m *mockStaffRepo) Search(_ context.Context, _ map[string]string, limit, offset int) ([]*Staff, int, error) {
	return m.List(context.Background(), limit, offset)
}

func (m *mockStaffRepo) AddCompetency(_ context.Context, c *Competency) error {
	c.ID = uuid.New()
	m.competencies[c.ID] = c
	return nil
}

func (m *mockStaffRepo) RemoveCompetency(_ context.Context, id uuid.UUID) error {
	delete(m.competencies, id)
	return nil
}

type mockShiftRepo struct {
	shifts map[uuid.UUID]*Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[uuid.UUID]*Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, sh *Shift) error {
	sh.ID = uuid.New()
	m.shifts[sh.ID] = sh
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id uuid.UUID) (*Shift, error) {
	sh, ok := m.shifts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return sh, nil
}

func (m *mockShiftRepo) Update(_ context.Context, sh *Shift) error {
	m.shifts[sh.ID] = sh
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.shifts, id)
	return nil
}

func (m *mockShiftRepo) ListByDate(_ context.Context, date time.Time) ([]*Shift, error) {
	var result []*Shift
	for _, sh := range m.shifts {
		if sh.Date.Equal(date) {
			result = append(result, sh)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	sh, ok := m.shifts[id]
	if !ok {
		return db.ErrNotFound
	}
	sh.Status = status
	return nil
}

func newTestService() *Service {
	return NewService(newMockStaffRepo(), newMockShiftRepo())
}

// -- Tests --

func TestCreateStaff(t *testing.T) {
	svc := newTestService()
	st := &Staff{
		Name: "J. Okafor",
		Role: "Scrub N/P",
		Competencies: []Competency{
			{Procedure: "Total Hip Replacement", Level: LevelExpert},
		},
	}
	if err := svc.CreateStaff(context.Background(), st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.GetStaff(context.Background(), st.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Competencies) != 1 {
		t.Errorf("expected 1 competency, got %d", len(got.Competencies))
	}
}

func TestCreateStaff_Validation(t *testing.T) {
	svc := newTestService()
	tests := []struct {
		name string
		s    *Staff
	}{
		{"missing name", &Staff{Role: "ODP"}},
		{"missing role", &Staff{Name: "A. Smith"}},
		{"bad competency level", &Staff{Name: "A. Smith", Role: "ODP",
			Competencies: []Competency{{Procedure: "Appendectomy", Level: "master"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.CreateStaff(context.Background(), tt.s); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAddCompetency(t *testing.T) {
	svc := newTestService()
	st := &Staff{Name: "A. Smith", Role: "ODP"}
	if err := svc.CreateStaff(context.Background(), st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := &Competency{StaffID: st.ID, Procedure: "Appendectomy", Level: LevelCompetent}
	if err := svc.AddCompetency(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := svc.GetStaff(context.Background(), st.ID)
	if len(got.Competencies) != 1 {
		t.Errorf("expected 1 competency, got %d", len(got.Competencies))
	}
}

func TestAddCompetency_InvalidLevel(t *testing.T) {
	svc := newTestService()
	c := &Competency{StaffID: uuid.New(), Procedure: "Appendectomy", Level: "guru"}
	if err := svc.AddCompetency(context.Background(), c); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestCreateShift_DefaultsStatus(t *testing.T) {
	svc := newTestService()
	sh := &Shift{StaffID: uuid.New(), Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}
	if err := svc.CreateShift(context.Background(), sh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sh.Status != ShiftScheduled {
		t.Errorf("expected default status scheduled, got %s", sh.Status)
	}
}

func TestConfirmShift(t *testing.T) {
	svc := newTestService()
	sh := &Shift{StaffID: uuid.New(), Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}
	if err := svc.CreateShift(context.Background(), sh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.ConfirmShift(context.Background(), sh.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := svc.GetShift(context.Background(), sh.ID)
	if got.Status != ShiftConfirmed {
		t.Errorf("expected confirmed, got %s", got.Status)
	}
}

func TestConfirmShift_NotFound(t *testing.T) {
	svc := newTestService()
	if err := svc.ConfirmShift(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown shift")
	}
}

func TestListShiftsByDate(t *testing.T) {
	svc := newTestService()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		sh := &Shift{StaffID: uuid.New(), Date: date}
		if err := svc.CreateShift(context.Background(), sh); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	other := &Shift{StaffID: uuid.New(), Date: date.AddDate(0, 0, 1)}
	if err := svc.CreateShift(context.Background(), other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.ListShiftsByDate(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 shifts, got %d", len(items))
	}
}
