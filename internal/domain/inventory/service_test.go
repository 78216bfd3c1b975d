package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/theatreops/tom/internal/platform/db"
)

// -- Mock Repository --

type mockRepo struct {
	items map[uuid.UUID]*Item
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Item)}
}

func (m *mockRepo) Create(_ context.Context, i *Item) error {
	i.ID = uuid.New()
	m.items[i.ID] = i
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Item, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return i, nil
}

func (m *mockRepo) Update(_ context.Context, i *Item) error {
	m.items[i.ID] = i
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Item, int, error) {
	var result []*Item
	for _, i := range m.items {
		result = append(result, i)
	}
	return result, len(result), nil
}

func (m *mockRepo) Search(_ context.Context, _ map[string]string, limit, offset int) ([]*Item, int, error) {
	return m.List(context.Background(), limit, offset)
}

func (m *mockRepo) Adjust(_ context.Context, id uuid.UUID, delta int) (*Item, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	i.Quantity += delta
	if i.Quantity < 0 {
		i.Quantity = 0
	}
	return i, nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

// -- Tests --

func TestCreateItem(t *testing.T) {
	svc := newTestService()
	i := &Item{Name: "Retractor Set", Quantity: 3, MinQuantity: 1}
	if err := svc.Create(context.Background(), i); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreateItem_Validation(t *testing.T) {
	svc := newTestService()
	tests := []struct {
		name string
		i    *Item
	}{
		{"missing name", &Item{Quantity: 1}},
		{"negative quantity", &Item{Name: "Sutures", Quantity: -1}},
		{"negative min quantity", &Item{Name: "Sutures", MinQuantity: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Create(context.Background(), tt.i); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAdjust(t *testing.T) {
	svc := newTestService()
	i := &Item{Name: "Sutures", Quantity: 10}
	if err := svc.Create(context.Background(), i); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Adjust(context.Background(), i.ID, -4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", got.Quantity)
	}
}

func TestAdjust_FloorsAtZero(t *testing.T) {
	svc := newTestService()
	i := &Item{Name: "Sutures", Quantity: 2}
	if err := svc.Create(context.Background(), i); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Adjust(context.Background(), i.ID, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", got.Quantity)
	}
}

func TestAdjust_RejectsZeroDelta(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Adjust(context.Background(), uuid.New(), 0); err == nil {
		t.Error("expected error for zero delta")
	}
}

func TestAdjust_NotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Adjust(context.Background(), uuid.New(), 1); err == nil {
		t.Error("expected error for unknown item")
	}
}
