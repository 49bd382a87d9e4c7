package daycare

import (
	"context"
	"strings"

	"pettrackr/internal/platform/logger"
	"pettrackr/internal/pricing"
)

type Service struct {
	repo  Repository
	rates pricing.DaycareRates
	log   logger.Logger
}

func NewService(repo Repository, rates pricing.DaycareRates, log logger.Logger) *Service {
	return &Service{repo: repo, rates: rates, log: log}
}

type Input struct {
	StartDate  string
	NumDays    int
	FeedOnce   bool
	FeedTwice  bool
	FeedThrice bool
	Notes      string
}

func (s *Service) build(petID int64, in Input) (Enrollment, error) {
	if petID <= 0 || in.NumDays <= 0 {
		return Enrollment{}, ErrInvalidInput
	}

	return Enrollment{
		PetID:      petID,
		StartDate:  strings.TrimSpace(in.StartDate),
		NumDays:    in.NumDays,
		FeedOnce:   in.FeedOnce,
		FeedTwice:  in.FeedTwice,
		FeedThrice: in.FeedThrice,
		Notes:      strings.TrimSpace(in.Notes),
	}, nil
}

func (s *Service) Create(ctx context.Context, petID int64, in Input) (Enrollment, error) {
	e, err := s.build(petID, in)
	if err != nil {
		return Enrollment{}, err
	}

	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return Enrollment{}, err
	}
	e.ID = id
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Enrollment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id, petID int64, in Input) (Enrollment, error) {
	e, err := s.build(petID, in)
	if err != nil {
		return Enrollment{}, err
	}
	e.ID = id

	if err := s.repo.Update(ctx, e); err != nil {
		return Enrollment{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Fee es el costo total derivado de la inscripción; no se persiste.
func (s *Service) Fee(e Enrollment) int {
	return s.rates.TotalFee(e.NumDays, e.FeedOnce, e.FeedTwice, e.FeedThrice)
}

// ListByPet degrada a lista vacía ante errores de storage.
func (s *Service) ListByPet(ctx context.Context, petID int64) []Enrollment {
	out, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		s.log.Error("list daycare enrollments", "pet_id", petID, "err", err)
		return []Enrollment{}
	}
	return out
}

func (s *Service) ListAll(ctx context.Context) ([]Enrollment, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) HasForPet(ctx context.Context, petID int64) bool {
	return len(s.ListByPet(ctx, petID)) > 0
}

func (s *Service) DeleteByPet(ctx context.Context, petID int64) error {
	return s.repo.DeleteByPet(ctx, petID)
}
