package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type storePG struct{ pool querier }

// NewStorePG returns a Store backed by Postgres. Slot exclusivity rides on
// the UNIQUE (doctor_id, start_at) constraint on the appointment table.
func NewStorePG(pool *pgxpool.Pool) Store { return &storePG{pool: pool} }

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

const doctorCols = `d.id, d.first_name, d.last_name, s.name, d.clinic_id`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Speciality, &d.ClinicID)
	return &d, err
}

func (s *storePG) ListDoctors(ctx context.Context, clinicID uuid.UUID) ([]*Doctor, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+doctorCols+`
		FROM doctor d
		JOIN speciality s ON s.id = d.speciality_id
		WHERE d.clinic_id = $1
		ORDER BY d.last_name ASC, d.first_name ASC`, clinicID)
	if err != nil {
		return nil, storeErr("list doctors", err)
	}
	defer rows.Close()
	var out []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, storeErr("list doctors", err)
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *storePG) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*Doctor, error) {
	d, err := scanDoctor(s.pool.QueryRow(ctx, `
		SELECT `+doctorCols+`
		FROM doctor d
		JOIN speciality s ON s.id = d.speciality_id
		WHERE d.id = $1`, doctorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get doctor", err)
	}
	return d, nil
}

const apptCols = `id, start_at, doctor_id, patient_id, clinic_id, note, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.StartAt, &a.DoctorID, &a.PatientID, &a.ClinicID, &a.Note, &a.CreatedAt)
	return &a, err
}

func (s *storePG) ListAppointments(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]*Appointment, error) {
	dayStart := day.UTC().Truncate(24 * time.Hour)
	rows, err := s.pool.Query(ctx, `
		SELECT `+apptCols+`
		FROM appointment
		WHERE doctor_id = $1 AND start_at >= $2 AND start_at < $3
		ORDER BY start_at ASC`, doctorID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, storeErr("list appointments", err)
	}
	defer rows.Close()
	var out []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, storeErr("list appointments", err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *storePG) AppointmentExists(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM appointment WHERE doctor_id = $1 AND start_at = $2)`,
		doctorID, at.UTC()).Scan(&exists)
	if err != nil {
		return false, storeErr("appointment exists", err)
	}
	return exists, nil
}

// Insert commits the reservation. A unique violation means another booking
// holds the slot; a foreign key violation means a referenced entity is gone.
func (s *storePG) Insert(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO appointment (id, start_at, doctor_id, patient_id, clinic_id, note)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.StartAt.UTC(), a.DoctorID, a.PatientID, a.ClinicID, a.Note)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrSlotConflict
		case pgForeignKeyViolation:
			return ErrInvalidRequest
		}
	}
	if err != nil {
		return storeErr("insert appointment", err)
	}
	return nil
}

func (s *storePG) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(s.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get appointment", err)
	}
	return a, nil
}

func (s *storePG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, storeErr("count appointments", err)
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+apptCols+`
		FROM appointment
		WHERE patient_id = $1
		ORDER BY start_at ASC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, storeErr("list appointments", err)
	}
	defer rows.Close()
	var out []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, storeErr("list appointments", err)
		}
		out = append(out, a)
	}
	return out, total, nil
}

func (s *storePG) ListByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*AppointmentDetail, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointment WHERE clinic_id = $1`, clinicID).Scan(&total); err != nil {
		return nil, 0, storeErr("count appointments", err)
	}
	rows, err := s.pool.Query(ctx, `
		SELECT a.id, a.start_at, a.doctor_id, a.patient_id, a.clinic_id, a.note, a.created_at,
		       d.first_name || ' ' || d.last_name AS doctor_name,
		       p.first_name || ' ' || p.last_name AS patient_name
		FROM appointment a
		JOIN doctor d ON d.id = a.doctor_id
		JOIN patient p ON p.id = a.patient_id
		WHERE a.clinic_id = $1
		ORDER BY a.start_at ASC LIMIT $2 OFFSET $3`, clinicID, limit, offset)
	if err != nil {
		return nil, 0, storeErr("list clinic appointments", err)
	}
	defer rows.Close()
	var out []*AppointmentDetail
	for rows.Next() {
		var ad AppointmentDetail
		if err := rows.Scan(&ad.ID, &ad.StartAt, &ad.DoctorID, &ad.PatientID, &ad.ClinicID,
			&ad.Note, &ad.CreatedAt, &ad.DoctorName, &ad.PatientName); err != nil {
			return nil, 0, storeErr("list clinic appointments", err)
		}
		out = append(out, &ad)
	}
	return out, total, nil
}

func (s *storePG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
