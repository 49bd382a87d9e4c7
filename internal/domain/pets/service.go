package pets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pettrackr/internal/platform/logger"
)

// Records es lo mínimo que pets necesita de cada familia de registros:
// saber si una mascota tiene filas y poder borrarlas en cascada. Las
// familias viven en stores físicos separados, así que los cruces se
// resuelven acá por fan-out y no con un join.
type Records interface {
	HasForPet(ctx context.Context, petID int64) bool
	DeleteByPet(ctx context.Context, petID int64) error
}

// ImageStore materializa imágenes en el directorio administrado.
type ImageStore interface {
	Save(petName string, petID int64, srcPath string) (string, error)
	Remove(rel string) error
}

// Deps son las familias de registros dependientes de una mascota.
type Deps struct {
	Vaccinations Records
	VetVisits    Records
	Daycare      Records
	Grooming     Records
}

type Service struct {
	repo   Repository
	images ImageStore
	deps   Deps
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, images ImageStore, deps Deps, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		images: images,
		deps:   deps,
		log:    log,
		now:    time.Now,
	}
}

type OwnerInput struct {
	Name          string
	ContactNumber string
	Address       string
}

type AddPetInput struct {
	Name      string
	Breed     string
	Birthdate string

	Owner OwnerInput

	// ImageSourcePath es el archivo origen a copiar (no mover) al
	// directorio de imágenes. Vacío = sin imagen.
	ImageSourcePath string
}

// AddPetWithOwner da de alta mascota + dueño + imagen opcional en una
// transacción. A diferencia de las lecturas por mascota, acá los errores
// no se degradan: un alta parcial es inaceptable, se revierte y se
// devuelve un único error de dominio.
func (s *Service) AddPetWithOwner(ctx context.Context, in AddPetInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	ownerName := strings.TrimSpace(in.Owner.Name)
	if name == "" || ownerName == "" {
		return 0, ErrInvalidInput
	}

	contact, err := NormalizeContact(in.Owner.ContactNumber)
	if err != nil {
		return 0, err
	}

	p := Pet{
		Name:      name,
		Breed:     strings.TrimSpace(in.Breed),
		Birthdate: strings.TrimSpace(in.Birthdate),
	}
	o := Owner{
		Name:          ownerName,
		ContactNumber: contact,
		Address:       strings.TrimSpace(in.Owner.Address),
	}

	var materialize ImageFunc
	var storedRel string
	if src := strings.TrimSpace(in.ImageSourcePath); src != "" {
		if s.images == nil {
			return 0, fmt.Errorf("add pet: image store not configured")
		}
		materialize = func(petID int64) (string, error) {
			rel, err := s.images.Save(name, petID, src)
			if err != nil {
				return "", err
			}
			storedRel = rel
			return rel, nil
		}
	}

	petID, _, err := s.repo.AddPetWithOwner(ctx, p, o, materialize)
	if err != nil {
		if storedRel != "" {
			// la transacción no llegó a commit, la copia no debe quedar
			_ = s.images.Remove(storedRel)
		}
		return 0, fmt.Errorf("add pet: %w", err)
	}

	s.log.Info("pet created", "pet_id", petID, "name", name)
	return petID, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (PetWithOwner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListWithOwners(ctx context.Context) ([]PetWithOwner, error) {
	return s.repo.ListWithOwners(ctx)
}

type UpdateInput struct {
	Name      string
	Breed     string
	Birthdate string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ErrInvalidInput
	}
	return s.repo.Update(ctx, Pet{
		ID:        id,
		Name:      name,
		Breed:     strings.TrimSpace(in.Breed),
		Birthdate: strings.TrimSpace(in.Birthdate),
	})
}

// Delete borra la mascota y todos sus registros dependientes. Las
// familias viven en stores separados, la cascada cruzada es de aplicación.
func (s *Service) Delete(ctx context.Context, petID int64) error {
	for _, rec := range s.records() {
		if err := rec.DeleteByPet(ctx, petID); err != nil {
			return fmt.Errorf("delete pet %d: %w", petID, err)
		}
	}
	return s.repo.Delete(ctx, petID)
}

func (s *Service) GetOwner(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetOwner(ctx, id)
}

func (s *Service) ListOwners(ctx context.Context) ([]Owner, error) {
	return s.repo.ListOwners(ctx)
}

// DeleteOwner borra al dueño, sus mascotas (FK en cascada dentro del
// store de pets) y los registros de cada mascota en los demás stores.
func (s *Service) DeleteOwner(ctx context.Context, ownerID int64) error {
	owned, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, p := range owned {
		for _, rec := range s.records() {
			if err := rec.DeleteByPet(ctx, p.ID); err != nil {
				return fmt.Errorf("delete owner %d: %w", ownerID, err)
			}
		}
	}
	return s.repo.DeleteOwner(ctx, ownerID)
}

// WithVaccAndVetRecords: mascotas con al menos una vacunación Y una
// visita veterinaria. Variante AND, un solo join en el store.
func (s *Service) WithVaccAndVetRecords(ctx context.Context) ([]Pet, error) {
	return s.repo.ListWithVaccAndVetRecords(ctx)
}

// WithVaccOrVetRecords: mascotas con al menos una vacunación O una
// visita. Variante OR por fan-out: los stores no se pueden joinear,
// se recorren todas las mascotas y se pregunta a cada familia.
func (s *Service) WithVaccOrVetRecords(ctx context.Context) ([]PetWithOwner, error) {
	all, err := s.repo.ListWithOwners(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PetWithOwner, 0)
	for _, pw := range all {
		if s.deps.Vaccinations.HasForPet(ctx, pw.Pet.ID) || s.deps.VetVisits.HasForPet(ctx, pw.Pet.ID) {
			out = append(out, pw)
		}
	}
	return out, nil
}

// WithDaycare: mascotas con al menos una inscripción de guardería.
// Mismo fan-out que la variante OR.
func (s *Service) WithDaycare(ctx context.Context) ([]PetWithOwner, error) {
	all, err := s.repo.ListWithOwners(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PetWithOwner, 0)
	for _, pw := range all {
		if s.deps.Daycare.HasForPet(ctx, pw.Pet.ID) {
			out = append(out, pw)
		}
	}
	return out, nil
}

func (s *Service) records() []Records {
	all := []Records{s.deps.Vaccinations, s.deps.VetVisits, s.deps.Daycare, s.deps.Grooming}
	out := make([]Records, 0, len(all))
	for _, r := range all {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
