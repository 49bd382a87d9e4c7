package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pettrackr/internal/domain/vaccinations"
)

// pet_id referencia a pets(id), pero la tabla pets vive en otro archivo:
// la relación y su cascada se garantizan a nivel aplicación.
const vaccinationsSchema = `
CREATE TABLE IF NOT EXISTS vaccinations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    pet_id INTEGER NOT NULL,
    vaccine_name TEXT,
    date_administered TEXT,
    next_due TEXT,
    price INTEGER,
    notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_vaccinations_pet_id ON vaccinations(pet_id);
`

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO vaccinations (pet_id, vaccine_name, date_administered, next_due, price, notes)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, v.PetID, v.VaccineName, v.DateAdministered, v.NextDue, v.Price, v.Notes).Scan(&id)
	return id, err
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id int64) (vaccinations.Vaccination, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, vaccine_name, date_administered, next_due, price, notes
		FROM vaccinations
		WHERE id = ?
	`, id)

	v, err := scanVaccination(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vaccinations.Vaccination{}, vaccinations.ErrNotFound
		}
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccinations
		SET pet_id = ?, vaccine_name = ?, date_administered = ?, next_due = ?, price = ?, notes = ?
		WHERE id = ?
	`, v.PetID, v.VaccineName, v.DateAdministered, v.NextDue, v.Price, v.Notes, v.ID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return vaccinations.ErrNotFound
	}
	return nil
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vaccinations WHERE id = ?`, id)
	return err
}

func (r *VaccinationsRepo) ListByPet(ctx context.Context, petID int64) ([]vaccinations.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, vaccine_name, date_administered, next_due, price, notes
		FROM vaccinations
		WHERE pet_id = ?
		ORDER BY date_administered DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVaccinations(rows)
}

func (r *VaccinationsRepo) ListAll(ctx context.Context) ([]vaccinations.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, vaccine_name, date_administered, next_due, price, notes
		FROM vaccinations
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVaccinations(rows)
}

func (r *VaccinationsRepo) DeleteByPet(ctx context.Context, petID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vaccinations WHERE pet_id = ?`, petID)
	return err
}

func scanVaccination(row rowScanner) (vaccinations.Vaccination, error) {
	var v vaccinations.Vaccination
	var name, date, due, notes sql.NullString
	var price sql.NullInt64

	err := row.Scan(&v.ID, &v.PetID, &name, &date, &due, &price, &notes)
	if err != nil {
		return vaccinations.Vaccination{}, err
	}

	v.VaccineName = fromNull(name)
	v.DateAdministered = fromNull(date)
	v.NextDue = fromNull(due)
	v.Price = int(price.Int64)
	v.Notes = fromNull(notes)
	return v, nil
}

func collectVaccinations(rows *sql.Rows) ([]vaccinations.Vaccination, error) {
	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
