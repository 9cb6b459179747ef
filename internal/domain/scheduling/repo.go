package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the engine's view of durable appointment state. Insert must be
// atomic per (doctor, start time): of two concurrent inserts for the same
// key, exactly one succeeds and the other returns ErrSlotConflict.
type Store interface {
	ListDoctors(ctx context.Context, clinicID uuid.UUID) ([]*Doctor, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*Doctor, error)
	ListAppointments(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]*Appointment, error)
	AppointmentExists(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error)
	Insert(ctx context.Context, a *Appointment) error
	GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	ListByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*AppointmentDetail, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
