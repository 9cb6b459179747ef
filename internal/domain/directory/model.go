// Package directory holds the clinic directory: clinics, the doctors who work
// in them, and their specialities. The scheduling engine reads these records
// by id and never mutates them.
package directory

import (
	"time"

	"github.com/google/uuid"
)

// Speciality maps to the speciality table.
type Speciality struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Clinic maps to the clinic table.
type Clinic struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Doctor maps to the doctor table. Clinic and speciality are plain foreign
// keys resolved through the repositories, not embedded object graphs.
type Doctor struct {
	ID           uuid.UUID `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	ClinicID     uuid.UUID `db:"clinic_id" json:"clinic_id"`
	SpecialityID uuid.UUID `db:"speciality_id" json:"speciality_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FullName returns the doctor's display name.
func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// DoctorWithClinic is a doctor joined with the clinic they practice at, for
// name search results.
type DoctorWithClinic struct {
	Doctor
	ClinicName    string `db:"clinic_name" json:"clinic_name"`
	ClinicAddress string `db:"clinic_address" json:"clinic_address"`
}
