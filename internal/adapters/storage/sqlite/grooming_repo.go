package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pettrackr/internal/domain/grooming"
)

// pet_id referencia a pets(id) en otro archivo; cascada a nivel aplicación.
const groomingSchema = `
CREATE TABLE IF NOT EXISTS grooming_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    pet_id INTEGER NOT NULL,
    groom_date TEXT DEFAULT (datetime('now')),
    groom_type TEXT,
    price REAL,
    groomer_name TEXT,
    notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_grooming_logs_pet_id ON grooming_logs(pet_id);
`

type GroomingRepo struct {
	db *sql.DB
}

func NewGroomingRepo(db *sql.DB) *GroomingRepo {
	return &GroomingRepo{db: db}
}

func (r *GroomingRepo) Create(ctx context.Context, g grooming.GroomingLog) (int64, error) {
	var id int64
	// groom_date vacío = reloj del store
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO grooming_logs (pet_id, groom_date, groom_type, price, groomer_name, notes)
		VALUES (?, COALESCE(NULLIF(?, ''), datetime('now')), ?, ?, ?, ?)
		RETURNING id
	`, g.PetID, g.GroomDate, g.GroomType, g.Price, g.GroomerName, g.Notes).Scan(&id)
	return id, err
}

func (r *GroomingRepo) GetByID(ctx context.Context, id int64) (grooming.GroomingLog, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, groom_date, groom_type, price, groomer_name, notes
		FROM grooming_logs
		WHERE id = ?
	`, id)

	g, err := scanGroomingLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return grooming.GroomingLog{}, grooming.ErrNotFound
		}
		return grooming.GroomingLog{}, err
	}
	return g, nil
}

func (r *GroomingRepo) Update(ctx context.Context, g grooming.GroomingLog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE grooming_logs
		SET pet_id = ?, groom_date = COALESCE(NULLIF(?, ''), groom_date), groom_type = ?, price = ?, groomer_name = ?, notes = ?
		WHERE id = ?
	`, g.PetID, g.GroomDate, g.GroomType, g.Price, g.GroomerName, g.Notes, g.ID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return grooming.ErrNotFound
	}
	return nil
}

func (r *GroomingRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM grooming_logs WHERE id = ?`, id)
	return err
}

func (r *GroomingRepo) ListByPet(ctx context.Context, petID int64) ([]grooming.GroomingLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, groom_date, groom_type, price, groomer_name, notes
		FROM grooming_logs
		WHERE pet_id = ?
		ORDER BY groom_date DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGroomingLogs(rows)
}

func (r *GroomingRepo) ListAll(ctx context.Context) ([]grooming.GroomingLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, groom_date, groom_type, price, groomer_name, notes
		FROM grooming_logs
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGroomingLogs(rows)
}

func (r *GroomingRepo) DeleteByPet(ctx context.Context, petID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM grooming_logs WHERE pet_id = ?`, petID)
	return err
}

func scanGroomingLog(row rowScanner) (grooming.GroomingLog, error) {
	var g grooming.GroomingLog
	var date, groomType, groomer, notes sql.NullString
	var price sql.NullFloat64

	err := row.Scan(&g.ID, &g.PetID, &date, &groomType, &price, &groomer, &notes)
	if err != nil {
		return grooming.GroomingLog{}, err
	}

	g.GroomDate = fromNull(date)
	g.GroomType = fromNull(groomType)
	g.Price = price.Float64
	g.GroomerName = fromNull(groomer)
	g.Notes = fromNull(notes)
	return g, nil
}

func collectGroomingLogs(rows *sql.Rows) ([]grooming.GroomingLog, error) {
	out := make([]grooming.GroomingLog, 0)
	for rows.Next() {
		g, err := scanGroomingLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
