package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validGenders = map[string]bool{
	"male": true, "female": true, "other": true, "unknown": true,
}

type Service struct {
	patients Repository
}

func NewService(r Repository) *Service {
	return &Service{patients: r}
}

// Register creates a patient record. The clear-text SSN is hashed before
// it ever reaches the repository.
func (s *Service) Register(ctx context.Context, p *Patient, ssn string) error {
	if p.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if ssn == "" {
		return fmt.Errorf("ssn is required")
	}
	if p.Gender == "" {
		p.Gender = "unknown"
	}
	if !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	p.SetSSN(ssn)
	if existing, err := s.patients.GetBySSNHash(ctx, p.SSNHash); err == nil && existing != nil {
		return fmt.Errorf("patient already registered")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// LookupBySSN finds a patient by clear-text SSN.
func (s *Service) LookupBySSN(ctx context.Context, ssn string) (*Patient, error) {
	return s.patients.GetBySSNHash(ctx, HashSSN(ssn))
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if p.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if p.Gender != "" && !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}
