package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	specialities SpecialityRepository
	clinics      ClinicRepository
	doctors      DoctorRepository
}

func NewService(s SpecialityRepository, c ClinicRepository, d DoctorRepository) *Service {
	return &Service{specialities: s, clinics: c, doctors: d}
}

// -- Speciality --

func (s *Service) CreateSpeciality(ctx context.Context, sp *Speciality) error {
	if sp.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.specialities.Create(ctx, sp)
}

func (s *Service) GetSpeciality(ctx context.Context, id uuid.UUID) (*Speciality, error) {
	return s.specialities.GetByID(ctx, id)
}

func (s *Service) UpdateSpeciality(ctx context.Context, sp *Speciality) error {
	if sp.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.specialities.Update(ctx, sp)
}

func (s *Service) DeleteSpeciality(ctx context.Context, id uuid.UUID) error {
	return s.specialities.Delete(ctx, id)
}

func (s *Service) ListSpecialities(ctx context.Context, limit, offset int) ([]*Speciality, int, error) {
	return s.specialities.List(ctx, limit, offset)
}

// -- Clinic --

func (s *Service) CreateClinic(ctx context.Context, cl *Clinic) error {
	if cl.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.clinics.Create(ctx, cl)
}

func (s *Service) GetClinic(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return s.clinics.GetByID(ctx, id)
}

func (s *Service) UpdateClinic(ctx context.Context, cl *Clinic) error {
	if cl.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.clinics.Update(ctx, cl)
}

func (s *Service) DeleteClinic(ctx context.Context, id uuid.UUID) error {
	return s.clinics.Delete(ctx, id)
}

func (s *Service) ListClinics(ctx context.Context, limit, offset int) ([]*Clinic, int, error) {
	return s.clinics.List(ctx, limit, offset)
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if d.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if d.ClinicID == uuid.Nil {
		return fmt.Errorf("clinic_id is required")
	}
	if d.SpecialityID == uuid.Nil {
		return fmt.Errorf("speciality_id is required")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	if d.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if d.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	return s.doctors.Update(ctx, d)
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

func (s *Service) ListDoctorsByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.ListByClinic(ctx, clinicID, limit, offset)
}

// SearchDoctors matches the name fragment against first and last names,
// case-insensitively, and returns each hit with its clinic.
func (s *Service) SearchDoctors(ctx context.Context, name string, limit, offset int) ([]*DoctorWithClinic, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, 0, fmt.Errorf("name is required")
	}
	return s.doctors.SearchByName(ctx, name, limit, offset)
}
