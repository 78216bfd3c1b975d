package procedure

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/theatreops/tom/internal/platform/db"
)

// -- Mock Repository --

type mockRepo struct {
	cards       map[uuid.UUID]*Card
	staff       map[uuid.UUID]*StaffRequirement
	equipment   map[uuid.UUID]*EquipmentRequirement
	consumables map[uuid.UUID]*ConsumableRequirement
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		cards:       make(map[uuid.UUID]*Card),
		staff:       make(map[uuid.UUID]*StaffRequirement),
		equipment:   make(map[uuid.UUID]*EquipmentRequirement),
		consumables: make(map[uuid.UUID]*ConsumableRequirement),
	}
}

func (m *mockRepo) Create(_ context.Context, c *Card) error {
	c.ID = uuid.New()
	m.cards[c.ID] = c
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Card, error) {
	c, ok := m.cards[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return c, nil
}

func (m *mockRepo) GetDetail(ctx context.Context, id uuid.UUID) (*CardDetail, error) {
	c, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	staff, _ := m.GetStaffRequirements(ctx, id)
	equipment, _ := m.GetEquipmentRequirements(ctx, id)
	consumables, _ := m.GetConsumableRequirements(ctx, id)
	return &CardDetail{Card: *c, Staff: staff, Equipment: equipment, Consumables: consumables}, nil
}

func (m *mockRepo) Update(_ context.Context, c *Card) error {
	m.cards[c.ID] = c
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.cards, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Card, int, error) {
	var result []*Card
	for _, c := range m.cards {
		result = append(result, c)
	}
	return result, len(result), nil
}

func (m *mockRepo) Search(_ context.Context, _ map[string]string, limit, offset int) ([]*Card, int, error) {
	return m.List(context.Background(), limit, offset)
}

func (m *mockRepo) AddStaffRequirement(_ context.Context, sr *StaffRequirement) error {
	sr.ID = uuid.New()
	m.staff[sr.ID] = sr
	return nil
}

func (m *mockRepo) GetStaffRequirements(_ context.Context, cardID uuid.UUID) ([]StaffRequirement, error) {
	var result []StaffRequirement
	for _, sr := range m.staff {
		if sr.CardID == cardID {
			result = append(result, *sr)
		}
	}
	return result, nil
}

func (m *mockRepo) RemoveStaffRequirement(_ context.Context, id uuid.UUID) error {
	delete(m.staff, id)
	return nil
}

func (m *mockRepo) AddEquipmentRequirement(_ context.Context, er *EquipmentRequirement) error {
	er.ID = uuid.New()
	m.equipment[er.ID] = er
	return nil
}

func (m *mockRepo) GetEquipmentRequirements(_ context.Context, cardID uuid.UUID) ([]EquipmentRequirement, error) {
	var result []EquipmentRequirement
	for _, er := range m.equipment {
		if er.CardID == cardID {
			result = append(result, *er)
		}
	}
	return result, nil
}

func (m *mockRepo) RemoveEquipmentRequirement(_ context.Context, id uuid.UUID) error {
	delete(m.equipment, id)
	return nil
}

func (m *mockRepo) AddConsumableRequirement(_ context.Context, cr *ConsumableRequirement) error {
	cr.ID = uuid.New()
	m.consumables[cr.ID] = cr
	return nil
}

func (m *mockRepo) GetConsumableRequirements(_ context.Context, cardID uuid.UUID) ([]ConsumableRequirement, error) {
	var result []ConsumableRequirement
	for _, cr := range m.consumables {
		if cr.CardID == cardID {
			result = append(result, *cr)
		}
	}
	return result, nil
}

func (m *mockRepo) RemoveConsumableRequirement(_ context.Context, id uuid.UUID) error {
	delete(m.consumables, id)
	return nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

// -- Tests --

func TestCreateCard(t *testing.T) {
	svc := newTestService()
	c := &Card{Name: "Total Hip Replacement"}
	if err := svc.CreateCard(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
	if c.SpecialRequirements == nil {
		t.Error("expected special requirements to default to empty slice")
	}
}

func TestCreateCard_RequiresName(t *testing.T) {
	svc := newTestService()
	if err := svc.CreateCard(context.Background(), &Card{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestAddStaffRequirement_DefaultsCount(t *testing.T) {
	svc := newTestService()
	c := &Card{Name: "Appendectomy"}
	if err := svc.CreateCard(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sr := &StaffRequirement{CardID: c.ID, Role: "Scrub N/P"}
	if err := svc.AddStaffRequirement(context.Background(), sr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.Count != 1 {
		t.Errorf("expected count to default to 1, got %d", sr.Count)
	}
}

func TestAddStaffRequirement_RequiresRole(t *testing.T) {
	svc := newTestService()
	sr := &StaffRequirement{CardID: uuid.New()}
	if err := svc.AddStaffRequirement(context.Background(), sr); err == nil {
		t.Error("expected error for missing role")
	}
}

func TestGetDetail(t *testing.T) {
	svc := newTestService()
	c := &Card{Name: "Total Hip Replacement"}
	if err := svc.CreateCard(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	grade := "Senior"
	if err := svc.AddStaffRequirement(context.Background(), &StaffRequirement{CardID: c.ID, Role: "Surgeon", Count: 1, Grade: &grade}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AddEquipmentRequirement(context.Background(), &EquipmentRequirement{CardID: c.ID, ItemName: "Retractor Set", Quantity: 1, IsCritical: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AddConsumableRequirement(context.Background(), &ConsumableRequirement{CardID: c.ID, ItemName: "Sutures", Quantity: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := svc.GetDetail(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Card.Name != "Total Hip Replacement" {
		t.Errorf("unexpected card name: %s", detail.Card.Name)
	}
	if len(detail.Staff) != 1 || len(detail.Equipment) != 1 || len(detail.Consumables) != 1 {
		t.Errorf("expected one requirement of each kind, got %d/%d/%d",
			len(detail.Staff), len(detail.Equipment), len(detail.Consumables))
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.GetDetail(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for unknown card")
	}
}
