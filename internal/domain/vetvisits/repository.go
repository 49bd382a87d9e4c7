package vetvisits

import "context"

type Repository interface {
	Create(ctx context.Context, v VetVisit) (int64, error)
	GetByID(ctx context.Context, id int64) (VetVisit, error)
	Update(ctx context.Context, v VetVisit) error
	Delete(ctx context.Context, id int64) error

	// ListByPet ordena por visit_date descendente.
	ListByPet(ctx context.Context, petID int64) ([]VetVisit, error)
	ListAll(ctx context.Context) ([]VetVisit, error)
	DeleteByPet(ctx context.Context, petID int64) error
}
