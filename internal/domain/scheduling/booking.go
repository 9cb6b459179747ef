package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingRequest carries one slot selection.
type BookingRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	ClinicID  uuid.UUID `json:"clinic_id"`
	StartAt   time.Time `json:"start_at"`
	Note      string    `json:"note"`
}

// Book validates the request and commits the reservation. Checks run in a
// fixed order and stop at the first failure: missing fields, closed day,
// slot conflict, outside working hours, in the past. The conflict check
// here is advisory only; the store's unique key decides races, so two
// concurrent calls for one slot produce exactly one winner and one
// ErrSlotConflict.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*Appointment, error) {
	if req.StartAt.IsZero() || req.PatientID == uuid.Nil || req.DoctorID == uuid.Nil || req.ClinicID == uuid.Nil {
		return nil, ErrInvalidRequest
	}
	at := req.StartAt.UTC()
	if IsClosedDay(at) {
		return nil, ErrClosedDay
	}
	taken, err := s.store.AppointmentExists(ctx, req.DoctorID, at)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotConflict
	}
	if !InWorkingWindow(at) {
		return nil, ErrOutsideWorkingHours
	}
	if !at.After(s.now()) {
		return nil, ErrInThePast
	}
	a := &Appointment{
		StartAt:   at,
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		ClinicID:  req.ClinicID,
		Note:      req.Note,
	}
	if err := s.store.Insert(ctx, a); err != nil {
		return nil, err
	}
	s.slots.Invalidate(ctx, req.DoctorID, at)
	return a, nil
}

// GetAppointment returns one appointment by id.
func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.store.GetAppointment(ctx, id)
}

// ListPatientAppointments lists a patient's appointments in start order.
func (s *Service) ListPatientAppointments(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.store.ListByPatient(ctx, patientID, limit, offset)
}

// ListClinicAppointments lists a clinic's appointments in start order, with
// the doctor and patient each one involves.
func (s *Service) ListClinicAppointments(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*AppointmentDetail, int, error) {
	return s.store.ListByClinic(ctx, clinicID, limit, offset)
}

// Cancel deletes an appointment and frees its slot for rebooking.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	a, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.slots.Invalidate(ctx, a.DoctorID, a.StartAt)
	return nil
}
