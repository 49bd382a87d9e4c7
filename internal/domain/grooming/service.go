package grooming

import (
	"context"
	"strings"

	"pettrackr/internal/platform/logger"
	"pettrackr/internal/pricing"
)

type Service struct {
	repo   Repository
	tariff pricing.GroomTariff
	log    logger.Logger
}

func NewService(repo Repository, tariff pricing.GroomTariff, log logger.Logger) *Service {
	return &Service{repo: repo, tariff: tariff, log: log}
}

// Input no lleva precio a propósito: el precio guardado es siempre el
// de la tarifa para el tipo de groom, venga lo que venga del caller.
type Input struct {
	GroomDate   string
	GroomType   string
	GroomerName string
	Notes       string
}

func (s *Service) build(petID int64, in Input) (GroomingLog, error) {
	groomType := strings.TrimSpace(in.GroomType)
	if petID <= 0 || groomType == "" {
		return GroomingLog{}, ErrInvalidInput
	}

	return GroomingLog{
		PetID:       petID,
		GroomDate:   strings.TrimSpace(in.GroomDate),
		GroomType:   groomType,
		Price:       s.tariff.Price(groomType),
		GroomerName: strings.TrimSpace(in.GroomerName),
		Notes:       strings.TrimSpace(in.Notes),
	}, nil
}

func (s *Service) Create(ctx context.Context, petID int64, in Input) (GroomingLog, error) {
	g, err := s.build(petID, in)
	if err != nil {
		return GroomingLog{}, err
	}

	id, err := s.repo.Create(ctx, g)
	if err != nil {
		return GroomingLog{}, err
	}

	// el store pudo asignar groom_date; releer para devolverlo completo
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		g.ID = id
		return g, nil
	}
	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (GroomingLog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id, petID int64, in Input) (GroomingLog, error) {
	g, err := s.build(petID, in)
	if err != nil {
		return GroomingLog{}, err
	}
	g.ID = id

	if err := s.repo.Update(ctx, g); err != nil {
		return GroomingLog{}, err
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListByPet degrada a lista vacía ante errores de storage.
func (s *Service) ListByPet(ctx context.Context, petID int64) []GroomingLog {
	out, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		s.log.Error("list grooming logs", "pet_id", petID, "err", err)
		return []GroomingLog{}
	}
	return out
}

func (s *Service) ListAll(ctx context.Context) ([]GroomingLog, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) HasForPet(ctx context.Context, petID int64) bool {
	return len(s.ListByPet(ctx, petID)) > 0
}

func (s *Service) DeleteByPet(ctx context.Context, petID int64) error {
	return s.repo.DeleteByPet(ctx, petID)
}
