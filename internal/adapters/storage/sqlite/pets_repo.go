package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pettrackr/internal/domain/pets"
)

const petsSchema = `
CREATE TABLE IF NOT EXISTS owner (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    contact_number TEXT,
    address TEXT,
    UNIQUE(name, contact_number)
);

CREATE TABLE IF NOT EXISTS pets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    breed TEXT,
    birthdate TEXT,
    image_path TEXT,
    owner_id INTEGER NOT NULL,
    FOREIGN KEY (owner_id) REFERENCES owner(id) ON DELETE CASCADE
);
`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// AttachRecordStores adjunta los stores de vacunaciones y visitas a la
// conexión de pets. Siguen siendo archivos separados, pero quedan en la
// misma región de esquema y la consulta AND sale en un solo join.
func (r *PetsRepo) AttachRecordStores(vaccinationsPath, vetVisitsPath string) error {
	if _, err := r.db.Exec(`ATTACH DATABASE ? AS vax`, vaccinationsPath); err != nil {
		return err
	}
	if _, err := r.db.Exec(`ATTACH DATABASE ? AS visits`, vetVisitsPath); err != nil {
		return err
	}
	return nil
}

func (r *PetsRepo) AddPetWithOwner(ctx context.Context, p pets.Pet, o pets.Owner, materialize pets.ImageFunc) (petID, ownerID int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// upsert por (name, contact_number): un duplicado actualiza la
	// dirección en vez de crear otro dueño
	err = tx.QueryRowContext(ctx, `
		INSERT INTO owner (name, contact_number, address)
		VALUES (?, ?, ?)
		ON CONFLICT(name, contact_number) DO UPDATE SET
			address = excluded.address
		RETURNING id
	`, o.Name, nullString(o.ContactNumber), nullString(o.Address)).Scan(&ownerID)
	if err != nil {
		return 0, 0, err
	}

	petID, err = insertPetTx(ctx, tx, p, ownerID, materialize)
	if err != nil {
		return 0, 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, err
	}
	return petID, ownerID, nil
}

// AddPetToOwner inserta una mascota bajo un dueño ya resuelto. Lo usa
// la importación por lote, que resuelve el dueño una sola vez con
// EnsureOwner en vez de pasar por el upsert en cada alta.
func (r *PetsRepo) AddPetToOwner(ctx context.Context, p pets.Pet, ownerID int64, materialize pets.ImageFunc) (petID int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	petID, err = insertPetTx(ctx, tx, p, ownerID, materialize)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return petID, nil
}

// EnsureOwner resuelve un dueño a un id estable. Con contacto aplica el
// mismo upsert que AddPetWithOwner; sin contacto el UNIQUE no dispara
// (NULL nunca colisiona), así que primero se busca por nombre para no
// acumular filas duplicadas.
func (r *PetsRepo) EnsureOwner(ctx context.Context, o pets.Owner) (int64, error) {
	var id int64

	if o.ContactNumber == "" {
		err := r.db.QueryRowContext(ctx, `
			SELECT id FROM owner
			WHERE name = ? AND contact_number IS NULL
			ORDER BY id ASC
			LIMIT 1
		`, o.Name).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
		err = r.db.QueryRowContext(ctx, `
			INSERT INTO owner (name, contact_number, address)
			VALUES (?, NULL, ?)
			RETURNING id
		`, o.Name, nullString(o.Address)).Scan(&id)
		return id, err
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owner (name, contact_number, address)
		VALUES (?, ?, ?)
		ON CONFLICT(name, contact_number) DO UPDATE SET
			address = excluded.address
		RETURNING id
	`, o.Name, nullString(o.ContactNumber), nullString(o.Address)).Scan(&id)
	return id, err
}

func insertPetTx(ctx context.Context, tx *sql.Tx, p pets.Pet, ownerID int64, materialize pets.ImageFunc) (int64, error) {
	var petID int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO pets (name, breed, birthdate, owner_id)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, p.Name, nullString(p.Breed), p.Birthdate, ownerID).Scan(&petID)
	if err != nil {
		return 0, err
	}

	if materialize != nil {
		rel, err := materialize(petID)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE pets SET image_path = ? WHERE id = ?`, rel, petID); err != nil {
			return 0, err
		}
	}
	return petID, nil
}

const petWithOwnerSelect = `
	SELECT
		p.id, p.name, p.breed, p.birthdate, p.image_path, p.owner_id,
		o.id, o.name, o.contact_number, o.address
	FROM pets p
	LEFT JOIN owner o ON o.id = p.owner_id
`

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.PetWithOwner, error) {
	row := r.db.QueryRowContext(ctx, petWithOwnerSelect+` WHERE p.id = ?`, id)

	pw, err := scanPetWithOwner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.PetWithOwner{}, pets.ErrNotFound
		}
		return pets.PetWithOwner{}, err
	}
	return pw, nil
}

func (r *PetsRepo) ListWithOwners(ctx context.Context) ([]pets.PetWithOwner, error) {
	rows, err := r.db.QueryContext(ctx, petWithOwnerSelect+` ORDER BY p.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.PetWithOwner, 0)
	for rows.Next() {
		pw, err := scanPetWithOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, rows.Err()
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, breed, birthdate, image_path, owner_id
		FROM pets
		WHERE owner_id = ?
		ORDER BY id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = ?, breed = ?, birthdate = ?
		WHERE id = ?
	`, p.Name, nullString(p.Breed), p.Birthdate, p.ID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id)
	return err
}

func (r *PetsRepo) GetOwner(ctx context.Context, id int64) (pets.Owner, error) {
	var o pets.Owner
	var contact, address sql.NullString

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, contact_number, address
		FROM owner
		WHERE id = ?
	`, id).Scan(&o.ID, &o.Name, &contact, &address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Owner{}, pets.ErrNotFound
		}
		return pets.Owner{}, err
	}

	o.ContactNumber = fromNull(contact)
	o.Address = fromNull(address)
	return o, nil
}

func (r *PetsRepo) ListOwners(ctx context.Context) ([]pets.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, contact_number, address
		FROM owner
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Owner, 0)
	for rows.Next() {
		var o pets.Owner
		var contact, address sql.NullString
		if err := rows.Scan(&o.ID, &o.Name, &contact, &address); err != nil {
			return nil, err
		}
		o.ContactNumber = fromNull(contact)
		o.Address = fromNull(address)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PetsRepo) DeleteOwner(ctx context.Context, id int64) error {
	// las mascotas del dueño caen por el FK ON DELETE CASCADE
	_, err := r.db.ExecContext(ctx, `DELETE FROM owner WHERE id = ?`, id)
	return err
}

func (r *PetsRepo) ListWithVaccAndVetRecords(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT p.id, p.name, p.breed, p.birthdate, p.image_path, p.owner_id
		FROM pets p
		INNER JOIN vax.vaccinations v ON v.pet_id = p.id
		INNER JOIN visits.vet_visits vv ON vv.pet_id = p.id
		ORDER BY p.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPetWithOwner(row rowScanner) (pets.PetWithOwner, error) {
	var pw pets.PetWithOwner
	var breed, birthdate, imagePath sql.NullString
	var oID sql.NullInt64
	var oName, oContact, oAddress sql.NullString

	err := row.Scan(
		&pw.Pet.ID, &pw.Pet.Name, &breed, &birthdate, &imagePath, &pw.Pet.OwnerID,
		&oID, &oName, &oContact, &oAddress,
	)
	if err != nil {
		return pets.PetWithOwner{}, err
	}

	pw.Pet.Breed = fromNull(breed)
	pw.Pet.Birthdate = fromNull(birthdate)
	pw.Pet.ImagePath = fromNull(imagePath)

	if oID.Valid {
		pw.Owner = &pets.Owner{
			ID:            oID.Int64,
			Name:          fromNull(oName),
			ContactNumber: fromNull(oContact),
			Address:       fromNull(oAddress),
		}
	}
	return pw, nil
}

func collectPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		var breed, birthdate, imagePath sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &breed, &birthdate, &imagePath, &p.OwnerID); err != nil {
			return nil, err
		}
		p.Breed = fromNull(breed)
		p.Birthdate = fromNull(birthdate)
		p.ImagePath = fromNull(imagePath)
		out = append(out, p)
	}
	return out, rows.Err()
}
