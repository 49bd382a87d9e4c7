package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pettrackr/internal/domain/daycare"
)

// pet_id referencia a pets(id) en otro archivo; cascada a nivel aplicación.
const daycareSchema = `
CREATE TABLE IF NOT EXISTS daycare_enrollments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    pet_id INTEGER NOT NULL,
    start_date TEXT,
    num_days INTEGER,
    feed_once INTEGER,
    feed_twice INTEGER,
    feed_thrice INTEGER,
    notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_daycare_enrollments_pet_id ON daycare_enrollments(pet_id);
`

type DaycareRepo struct {
	db *sql.DB
}

func NewDaycareRepo(db *sql.DB) *DaycareRepo {
	return &DaycareRepo{db: db}
}

func (r *DaycareRepo) Create(ctx context.Context, e daycare.Enrollment) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO daycare_enrollments (pet_id, start_date, num_days, feed_once, feed_twice, feed_thrice, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, e.PetID, e.StartDate, e.NumDays, boolInt(e.FeedOnce), boolInt(e.FeedTwice), boolInt(e.FeedThrice), e.Notes).Scan(&id)
	return id, err
}

func (r *DaycareRepo) GetByID(ctx context.Context, id int64) (daycare.Enrollment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, start_date, num_days, feed_once, feed_twice, feed_thrice, notes
		FROM daycare_enrollments
		WHERE id = ?
	`, id)

	e, err := scanEnrollment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return daycare.Enrollment{}, daycare.ErrNotFound
		}
		return daycare.Enrollment{}, err
	}
	return e, nil
}

func (r *DaycareRepo) Update(ctx context.Context, e daycare.Enrollment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE daycare_enrollments
		SET pet_id = ?, start_date = ?, num_days = ?, feed_once = ?, feed_twice = ?, feed_thrice = ?, notes = ?
		WHERE id = ?
	`, e.PetID, e.StartDate, e.NumDays, boolInt(e.FeedOnce), boolInt(e.FeedTwice), boolInt(e.FeedThrice), e.Notes, e.ID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return daycare.ErrNotFound
	}
	return nil
}

func (r *DaycareRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM daycare_enrollments WHERE id = ?`, id)
	return err
}

// ListByPet no ordena: las inscripciones no tienen orden definido.
func (r *DaycareRepo) ListByPet(ctx context.Context, petID int64) ([]daycare.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, start_date, num_days, feed_once, feed_twice, feed_thrice, notes
		FROM daycare_enrollments
		WHERE pet_id = ?
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEnrollments(rows)
}

func (r *DaycareRepo) ListAll(ctx context.Context) ([]daycare.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, start_date, num_days, feed_once, feed_twice, feed_thrice, notes
		FROM daycare_enrollments
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEnrollments(rows)
}

func (r *DaycareRepo) DeleteByPet(ctx context.Context, petID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM daycare_enrollments WHERE pet_id = ?`, petID)
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func scanEnrollment(row rowScanner) (daycare.Enrollment, error) {
	var e daycare.Enrollment
	var start, notes sql.NullString
	var days, once, twice, thrice sql.NullInt64

	err := row.Scan(&e.ID, &e.PetID, &start, &days, &once, &twice, &thrice, &notes)
	if err != nil {
		return daycare.Enrollment{}, err
	}

	e.StartDate = fromNull(start)
	e.NumDays = int(days.Int64)
	e.FeedOnce = once.Int64 != 0
	e.FeedTwice = twice.Int64 != 0
	e.FeedThrice = thrice.Int64 != 0
	e.Notes = fromNull(notes)
	return e, nil
}

func collectEnrollments(rows *sql.Rows) ([]daycare.Enrollment, error) {
	out := make([]daycare.Enrollment, 0)
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
