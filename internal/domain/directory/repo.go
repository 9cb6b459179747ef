package directory

import (
	"context"

	"github.com/google/uuid"
)

type SpecialityRepository interface {
	Create(ctx context.Context, s *Speciality) error
	GetByID(ctx context.Context, id uuid.UUID) (*Speciality, error)
	Update(ctx context.Context, s *Speciality) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Speciality, int, error)
}

type ClinicRepository interface {
	Create(ctx context.Context, cl *Clinic) error
	GetByID(ctx context.Context, id uuid.UUID) (*Clinic, error)
	Update(ctx context.Context, cl *Clinic) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Clinic, int, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
	ListByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*Doctor, int, error)
	SearchByName(ctx context.Context, name string, limit, offset int) ([]*DoctorWithClinic, int, error)
}
