package grooming

import "context"

type Repository interface {
	// Create asigna groom_date con el reloj del store si viene vacío.
	Create(ctx context.Context, g GroomingLog) (int64, error)
	GetByID(ctx context.Context, id int64) (GroomingLog, error)
	Update(ctx context.Context, g GroomingLog) error
	Delete(ctx context.Context, id int64) error

	// ListByPet ordena por groom_date descendente.
	ListByPet(ctx context.Context, petID int64) ([]GroomingLog, error)
	ListAll(ctx context.Context) ([]GroomingLog, error)
	DeleteByPet(ctx context.Context, petID int64) error
}
