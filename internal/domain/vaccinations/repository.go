package vaccinations

import "context"

type Repository interface {
	Create(ctx context.Context, v Vaccination) (int64, error)
	GetByID(ctx context.Context, id int64) (Vaccination, error)
	Update(ctx context.Context, v Vaccination) error
	Delete(ctx context.Context, id int64) error

	// ListByPet ordena por date_administered descendente.
	ListByPet(ctx context.Context, petID int64) ([]Vaccination, error)
	ListAll(ctx context.Context) ([]Vaccination, error)
	DeleteByPet(ctx context.Context, petID int64) error
}
