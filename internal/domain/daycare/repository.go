package daycare

import "context"

type Repository interface {
	Create(ctx context.Context, e Enrollment) (int64, error)
	GetByID(ctx context.Context, id int64) (Enrollment, error)
	Update(ctx context.Context, e Enrollment) error
	Delete(ctx context.Context, id int64) error

	// ListByPet no tiene orden definido (las inscripciones no lo tenían).
	ListByPet(ctx context.Context, petID int64) ([]Enrollment, error)
	ListAll(ctx context.Context) ([]Enrollment, error)
	DeleteByPet(ctx context.Context, petID int64) error
}
