package vetvisits

import (
	"context"
	"strings"

	"pettrackr/internal/platform/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

type Input struct {
	VisitDate string
	Reason    string
	Notes     string
	Cost      float64
}

func (s *Service) build(petID int64, in Input) (VetVisit, error) {
	date := strings.TrimSpace(in.VisitDate)
	if petID <= 0 || date == "" {
		return VetVisit{}, ErrInvalidInput
	}

	return VetVisit{
		PetID:     petID,
		VisitDate: date,
		Reason:    strings.TrimSpace(in.Reason),
		Notes:     strings.TrimSpace(in.Notes),
		Cost:      in.Cost,
	}, nil
}

func (s *Service) Create(ctx context.Context, petID int64, in Input) (VetVisit, error) {
	v, err := s.build(petID, in)
	if err != nil {
		return VetVisit{}, err
	}

	id, err := s.repo.Create(ctx, v)
	if err != nil {
		return VetVisit{}, err
	}
	v.ID = id
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (VetVisit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id, petID int64, in Input) (VetVisit, error) {
	v, err := s.build(petID, in)
	if err != nil {
		return VetVisit{}, err
	}
	v.ID = id

	if err := s.repo.Update(ctx, v); err != nil {
		return VetVisit{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListByPet degrada a lista vacía ante errores de storage; el perfil
// de la mascota se renderiza con lo que haya.
func (s *Service) ListByPet(ctx context.Context, petID int64) []VetVisit {
	out, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		s.log.Error("list vet visits", "pet_id", petID, "err", err)
		return []VetVisit{}
	}
	return out
}

func (s *Service) ListAll(ctx context.Context) ([]VetVisit, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) HasForPet(ctx context.Context, petID int64) bool {
	return len(s.ListByPet(ctx, petID)) > 0
}

func (s *Service) DeleteByPet(ctx context.Context, petID int64) error {
	return s.repo.DeleteByPet(ctx, petID)
}
