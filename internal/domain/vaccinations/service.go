package vaccinations

import (
	"context"
	"strings"
	"time"

	"pettrackr/internal/platform/logger"
	"pettrackr/internal/pricing"
)

type Service struct {
	repo    Repository
	catalog pricing.VaccineCatalog
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, catalog pricing.VaccineCatalog, log logger.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		log:     log,
		now:     time.Now,
	}
}

type Input struct {
	VaccineName      string
	DateAdministered string
	NextDue          string
	Price            int
	Notes            string
}

// build aplica los defaults de catálogo: next_due derivado del intervalo
// de la vacuna y precio de lista, cuando no vienen informados.
func (s *Service) build(petID int64, in Input) (Vaccination, error) {
	name := strings.TrimSpace(in.VaccineName)
	if petID <= 0 || name == "" {
		return Vaccination{}, ErrInvalidInput
	}

	v := Vaccination{
		PetID:            petID,
		VaccineName:      name,
		DateAdministered: strings.TrimSpace(in.DateAdministered),
		NextDue:          strings.TrimSpace(in.NextDue),
		Price:            in.Price,
		Notes:            strings.TrimSpace(in.Notes),
	}

	if v.NextDue == "" {
		if due, ok := NextDueFrom(v.DateAdministered, s.catalog.IntervalDays(name)); ok {
			v.NextDue = due
		}
	}
	if v.Price == 0 {
		v.Price = s.catalog.Price(name)
	}
	return v, nil
}

func (s *Service) Create(ctx context.Context, petID int64, in Input) (Vaccination, error) {
	v, err := s.build(petID, in)
	if err != nil {
		return Vaccination{}, err
	}

	id, err := s.repo.Create(ctx, v)
	if err != nil {
		return Vaccination{}, err
	}
	v.ID = id
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Vaccination, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id, petID int64, in Input) (Vaccination, error) {
	v, err := s.build(petID, in)
	if err != nil {
		return Vaccination{}, err
	}
	v.ID = id

	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListByPet degrada a lista vacía ante errores de storage: un registro
// roto no debe bloquear el resto del perfil de la mascota.
func (s *Service) ListByPet(ctx context.Context, petID int64) []Vaccination {
	out, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		s.log.Error("list vaccinations", "pet_id", petID, "err", err)
		return []Vaccination{}
	}
	return out
}

func (s *Service) ListAll(ctx context.Context) ([]Vaccination, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) HasForPet(ctx context.Context, petID int64) bool {
	return len(s.ListByPet(ctx, petID)) > 0
}

func (s *Service) DeleteByPet(ctx context.Context, petID int64) error {
	return s.repo.DeleteByPet(ctx, petID)
}
