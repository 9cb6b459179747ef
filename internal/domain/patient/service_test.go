package patient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct{ store map[uuid.UUID]*Patient }

func newMockRepo() *mockRepo { return &mockRepo{store: make(map[uuid.UUID]*Patient)} }
func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New(); m.store[p.ID] = p; return nil
}
func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.store[id]; if !ok { return nil, fmt.Errorf("not found") }; return p, nil
}
func (m *mockRepo) GetBySSNHash(_ context.Context, hash string) (*Patient, error) {
	for _, p := range m.store { if p.SSNHash == hash { return p, nil } }; return nil, fmt.Errorf("not found")
}
func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.store[p.ID]; !ok { return fmt.Errorf("not found") }; m.store[p.ID] = p; return nil
}
func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error { delete(m.store, id); return nil }
func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var r []*Patient; for _, p := range m.store { r = append(r, p) }; return r, len(r), nil
}

func newTestService() *Service { return NewService(newMockRepo()) }

func TestRegister_Success(t *testing.T) {
	svc := newTestService()
	p := &Patient{FirstName: "Maya", LastName: "Lindqvist", BirthDate: time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)}
	if err := svc.Register(context.Background(), p, "123-45-6789"); err != nil { t.Fatalf("unexpected error: %v", err) }
	if p.SSNHash == "" || p.SSNHash == "123-45-6789" { t.Errorf("SSN must be hashed, got %q", p.SSNHash) }
	if p.Gender != "unknown" { t.Errorf("expected default gender 'unknown', got %q", p.Gender) }
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService()
	if err := svc.Register(context.Background(), &Patient{LastName: "Lindqvist"}, "123"); err == nil { t.Error("expected error for missing first_name") }
	if err := svc.Register(context.Background(), &Patient{FirstName: "Maya"}, "123"); err == nil { t.Error("expected error for missing last_name") }
	if err := svc.Register(context.Background(), &Patient{FirstName: "Maya", LastName: "Lindqvist"}, ""); err == nil { t.Error("expected error for missing ssn") }
}

func TestRegister_InvalidGender(t *testing.T) {
	svc := newTestService()
	p := &Patient{FirstName: "Maya", LastName: "Lindqvist", Gender: "bogus"}
	if err := svc.Register(context.Background(), p, "123"); err == nil { t.Fatal("expected error") }
}

func TestRegister_DuplicateSSN(t *testing.T) {
	svc := newTestService()
	if err := svc.Register(context.Background(), &Patient{FirstName: "Maya", LastName: "Lindqvist"}, "123-45-6789"); err != nil { t.Fatalf("unexpected error: %v", err) }
	err := svc.Register(context.Background(), &Patient{FirstName: "May", LastName: "Lind"}, "123-45-6789")
	if err == nil { t.Fatal("expected duplicate registration to fail") }
}

func TestLookupBySSN(t *testing.T) {
	svc := newTestService()
	p := &Patient{FirstName: "Maya", LastName: "Lindqvist"}
	svc.Register(context.Background(), p, "123-45-6789")
	got, err := svc.LookupBySSN(context.Background(), "123-45-6789")
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if got.ID != p.ID { t.Error("lookup returned wrong patient") }
	if _, err := svc.LookupBySSN(context.Background(), "000-00-0000"); err == nil { t.Error("expected not found") }
}

func TestUpdate_Validation(t *testing.T) {
	svc := newTestService()
	p := &Patient{FirstName: "Maya", LastName: "Lindqvist"}
	svc.Register(context.Background(), p, "123-45-6789")
	p.FirstName = ""
	if err := svc.Update(context.Background(), p); err == nil { t.Fatal("expected error") }
}
