package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pettrackr/internal/domain/vetvisits"
)

// pet_id referencia a pets(id) en otro archivo; cascada a nivel aplicación.
const vetVisitsSchema = `
CREATE TABLE IF NOT EXISTS vet_visits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    pet_id INTEGER NOT NULL,
    visit_date TEXT,
    reason TEXT,
    notes TEXT,
    cost REAL
);

CREATE INDEX IF NOT EXISTS idx_vet_visits_pet_id ON vet_visits(pet_id);
`

type VetVisitsRepo struct {
	db *sql.DB
}

func NewVetVisitsRepo(db *sql.DB) *VetVisitsRepo {
	return &VetVisitsRepo{db: db}
}

func (r *VetVisitsRepo) Create(ctx context.Context, v vetvisits.VetVisit) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO vet_visits (pet_id, visit_date, reason, notes, cost)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, v.PetID, v.VisitDate, v.Reason, v.Notes, v.Cost).Scan(&id)
	return id, err
}

func (r *VetVisitsRepo) GetByID(ctx context.Context, id int64) (vetvisits.VetVisit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, visit_date, reason, notes, cost
		FROM vet_visits
		WHERE id = ?
	`, id)

	v, err := scanVetVisit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vetvisits.VetVisit{}, vetvisits.ErrNotFound
		}
		return vetvisits.VetVisit{}, err
	}
	return v, nil
}

func (r *VetVisitsRepo) Update(ctx context.Context, v vetvisits.VetVisit) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vet_visits
		SET pet_id = ?, visit_date = ?, reason = ?, notes = ?, cost = ?
		WHERE id = ?
	`, v.PetID, v.VisitDate, v.Reason, v.Notes, v.Cost, v.ID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return vetvisits.ErrNotFound
	}
	return nil
}

func (r *VetVisitsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vet_visits WHERE id = ?`, id)
	return err
}

func (r *VetVisitsRepo) ListByPet(ctx context.Context, petID int64) ([]vetvisits.VetVisit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, visit_date, reason, notes, cost
		FROM vet_visits
		WHERE pet_id = ?
		ORDER BY visit_date DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVetVisits(rows)
}

func (r *VetVisitsRepo) ListAll(ctx context.Context) ([]vetvisits.VetVisit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, visit_date, reason, notes, cost
		FROM vet_visits
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVetVisits(rows)
}

func (r *VetVisitsRepo) DeleteByPet(ctx context.Context, petID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vet_visits WHERE pet_id = ?`, petID)
	return err
}

func scanVetVisit(row rowScanner) (vetvisits.VetVisit, error) {
	var v vetvisits.VetVisit
	var date, reason, notes sql.NullString
	var cost sql.NullFloat64

	err := row.Scan(&v.ID, &v.PetID, &date, &reason, &notes, &cost)
	if err != nil {
		return vetvisits.VetVisit{}, err
	}

	v.VisitDate = fromNull(date)
	v.Reason = fromNull(reason)
	v.Notes = fromNull(notes)
	v.Cost = cost.Float64
	return v, nil
}

func collectVetVisits(rows *sql.Rows) ([]vetvisits.VetVisit, error) {
	out := make([]vetvisits.VetVisit, 0)
	for rows.Next() {
		v, err := scanVetVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
