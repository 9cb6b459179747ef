package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a reservation of one slot with one doctor. At most one
// appointment may exist per (doctor, start time); the store enforces it.
type Appointment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StartAt   time.Time `json:"start_at" db:"start_at"`
	DoctorID  uuid.UUID `json:"doctor_id" db:"doctor_id"`
	PatientID uuid.UUID `json:"patient_id" db:"patient_id"`
	ClinicID  uuid.UUID `json:"clinic_id" db:"clinic_id"`
	Note      string    `json:"note" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Doctor is the read-only view of a doctor the engine needs. The directory
// package owns the full record.
type Doctor struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Speciality string    `json:"speciality" db:"speciality"`
	ClinicID   uuid.UUID `json:"clinic_id" db:"clinic_id"`
}

// AppointmentDetail is an appointment joined with the names of the doctor
// and patient it involves, for clinic staff schedules.
type AppointmentDetail struct {
	Appointment
	DoctorName  string `json:"doctor_name" db:"doctor_name"`
	PatientName string `json:"patient_name" db:"patient_name"`
}

// DoctorAvailability pairs a doctor with their open slots for one day.
type DoctorAvailability struct {
	Doctor    *Doctor     `json:"doctor"`
	OpenSlots []time.Time `json:"open_slots"`
}
