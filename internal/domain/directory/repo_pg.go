package directory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Speciality Repository ===========

type specialityRepoPG struct{ pool *pgxpool.Pool }

func NewSpecialityRepoPG(pool *pgxpool.Pool) SpecialityRepository {
	return &specialityRepoPG{pool: pool}
}

const specCols = `id, name, created_at, updated_at`

func (r *specialityRepoPG) scanSpeciality(row pgx.Row) (*Speciality, error) {
	var s Speciality
	err := row.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *specialityRepoPG) Create(ctx context.Context, s *Speciality) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `INSERT INTO speciality (id, name) VALUES ($1, $2)`, s.ID, s.Name)
	return err
}

func (r *specialityRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Speciality, error) {
	return r.scanSpeciality(r.pool.QueryRow(ctx, `SELECT `+specCols+` FROM speciality WHERE id = $1`, id))
}

func (r *specialityRepoPG) Update(ctx context.Context, s *Speciality) error {
	_, err := r.pool.Exec(ctx, `UPDATE speciality SET name=$2, updated_at=NOW() WHERE id = $1`, s.ID, s.Name)
	return err
}

func (r *specialityRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM speciality WHERE id = $1`, id)
	return err
}

func (r *specialityRepoPG) List(ctx context.Context, limit, offset int) ([]*Speciality, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM speciality`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+specCols+` FROM speciality ORDER BY name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Speciality
	for rows.Next() {
		s, err := r.scanSpeciality(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, nil
}

// =========== Clinic Repository ===========

type clinicRepoPG struct{ pool *pgxpool.Pool }

func NewClinicRepoPG(pool *pgxpool.Pool) ClinicRepository { return &clinicRepoPG{pool: pool} }

const clinicCols = `id, name, address, created_at, updated_at`

func (r *clinicRepoPG) scanClinic(row pgx.Row) (*Clinic, error) {
	var cl Clinic
	err := row.Scan(&cl.ID, &cl.Name, &cl.Address, &cl.CreatedAt, &cl.UpdatedAt)
	return &cl, err
}

func (r *clinicRepoPG) Create(ctx context.Context, cl *Clinic) error {
	cl.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `INSERT INTO clinic (id, name, address) VALUES ($1, $2, $3)`,
		cl.ID, cl.Name, cl.Address)
	return err
}

func (r *clinicRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return r.scanClinic(r.pool.QueryRow(ctx, `SELECT `+clinicCols+` FROM clinic WHERE id = $1`, id))
}

func (r *clinicRepoPG) Update(ctx context.Context, cl *Clinic) error {
	_, err := r.pool.Exec(ctx, `UPDATE clinic SET name=$2, address=$3, updated_at=NOW() WHERE id = $1`,
		cl.ID, cl.Name, cl.Address)
	return err
}

func (r *clinicRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM clinic WHERE id = $1`, id)
	return err
}

func (r *clinicRepoPG) List(ctx context.Context, limit, offset int) ([]*Clinic, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clinic`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+clinicCols+` FROM clinic ORDER BY name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Clinic
	for rows.Next() {
		cl, err := r.scanClinic(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, cl)
	}
	return items, total, nil
}

// =========== Doctor Repository ===========

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository { return &doctorRepoPG{pool: pool} }

const doctorCols = `id, first_name, last_name, clinic_id, speciality_id, created_at, updated_at`

func (r *doctorRepoPG) scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.ClinicID, &d.SpecialityID, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO doctor (id, first_name, last_name, clinic_id, speciality_id)
		VALUES ($1, $2, $3, $4, $5)`,
		d.ID, d.FirstName, d.LastName, d.ClinicID, d.SpecialityID)
	return err
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return r.scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE doctor SET first_name=$2, last_name=$3, clinic_id=$4, speciality_id=$5, updated_at=NOW()
		WHERE id = $1`,
		d.ID, d.FirstName, d.LastName, d.ClinicID, d.SpecialityID)
	return err
}

func (r *doctorRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM doctor WHERE id = $1`, id)
	return err
}

func (r *doctorRepoPG) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctor`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctor ORDER BY last_name ASC, first_name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, nil
}

func (r *doctorRepoPG) SearchByName(ctx context.Context, name string, limit, offset int) ([]*DoctorWithClinic, int, error) {
	pattern := "%" + name + "%"
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM doctor WHERE first_name ILIKE $1 OR last_name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.first_name, d.last_name, d.clinic_id, d.speciality_id, d.created_at, d.updated_at,
		       c.name AS clinic_name, c.address AS clinic_address
		FROM doctor d
		JOIN clinic c ON c.id = d.clinic_id
		WHERE d.first_name ILIKE $1 OR d.last_name ILIKE $1
		ORDER BY d.last_name ASC, d.first_name ASC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*DoctorWithClinic
	for rows.Next() {
		var d DoctorWithClinic
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.ClinicID, &d.SpecialityID,
			&d.CreatedAt, &d.UpdatedAt, &d.ClinicName, &d.ClinicAddress); err != nil {
			return nil, 0, err
		}
		items = append(items, &d)
	}
	return items, total, nil
}

func (r *doctorRepoPG) ListByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctor WHERE clinic_id = $1`, clinicID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctor WHERE clinic_id = $1 ORDER BY last_name ASC, first_name ASC LIMIT $2 OFFSET $3`, clinicID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, nil
}
