package pets

import "context"

// ImageFunc materializa la imagen de una mascota dentro de la transacción
// de alta: recibe el id recién asignado y devuelve el path relativo guardado.
type ImageFunc func(petID int64) (string, error)

type Repository interface {
	// AddPetWithOwner ejecuta upsert de dueño + alta de mascota + imagen
	// opcional en una sola transacción. materialize puede ser nil.
	AddPetWithOwner(ctx context.Context, p Pet, o Owner, materialize ImageFunc) (petID, ownerID int64, err error)

	GetByID(ctx context.Context, id int64) (PetWithOwner, error)
	ListWithOwners(ctx context.Context) ([]PetWithOwner, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error

	GetOwner(ctx context.Context, id int64) (Owner, error)
	ListOwners(ctx context.Context) ([]Owner, error)
	// DeleteOwner borra al dueño; sus mascotas caen por el FK en cascada.
	DeleteOwner(ctx context.Context, id int64) error

	// ListWithVaccAndVetRecords resuelve la variante AND como un solo join:
	// vacunaciones y visitas son alcanzables desde la región de esquema
	// del store de pets.
	ListWithVaccAndVetRecords(ctx context.Context) ([]Pet, error)
}
