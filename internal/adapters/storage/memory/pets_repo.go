package memory

import (
	"context"
	"sync"

	"pettrackr/internal/domain/pets"
)

// PetRepo guarda mascotas y dueños en maps; solo para dev y tests.
// Recibe los repos de registros para poder resolver la variante AND
// igual que hace el join en sqlite.
type PetRepo struct {
	mu          sync.RWMutex
	pets        map[int64]pets.Pet
	owners      map[int64]pets.Owner
	nextPetID   int64
	nextOwnerID int64

	vax    *VaccinationsRepo
	visits *VetVisitsRepo
}

func NewPetRepo(vax *VaccinationsRepo, visits *VetVisitsRepo) *PetRepo {
	return &PetRepo{
		pets:        make(map[int64]pets.Pet),
		owners:      make(map[int64]pets.Owner),
		nextPetID:   1,
		nextOwnerID: 1,
		vax:         vax,
		visits:      visits,
	}
}

func (r *PetRepo) AddPetWithOwner(ctx context.Context, p pets.Pet, o pets.Owner, materialize pets.ImageFunc) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ownerID := r.upsertOwnerLocked(o)

	petID := r.nextPetID
	p.ID = petID
	p.OwnerID = ownerID

	if materialize != nil {
		rel, err := materialize(petID)
		if err != nil {
			// Sin alta a medias: ni la mascota ni el avance de id.
			return 0, 0, err
		}
		p.ImagePath = rel
	}

	r.nextPetID++
	r.pets[petID] = p
	return petID, ownerID, nil
}

// upsertOwnerLocked emula el ON CONFLICT(name, contact_number) del store
// sqlite: contacto vacío equivale a NULL y nunca colisiona.
func (r *PetRepo) upsertOwnerLocked(o pets.Owner) int64 {
	if o.ContactNumber != "" {
		for id, existing := range r.owners {
			if existing.Name == o.Name && existing.ContactNumber == o.ContactNumber {
				existing.Address = o.Address
				r.owners[id] = existing
				return id
			}
		}
	}

	id := r.nextOwnerID
	r.nextOwnerID++
	o.ID = id
	r.owners[id] = o
	return id
}

func (r *PetRepo) GetByID(ctx context.Context, id int64) (pets.PetWithOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pets[id]
	if !ok {
		return pets.PetWithOwner{}, pets.ErrNotFound
	}
	return r.withOwnerLocked(p), nil
}

func (r *PetRepo) ListWithOwners(ctx context.Context) ([]pets.PetWithOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.PetWithOwner, 0, len(r.pets))
	for _, id := range sortedKeys(r.pets) {
		out = append(out, r.withOwnerLocked(r.pets[id]))
	}
	return out, nil
}

func (r *PetRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, id := range sortedKeys(r.pets) {
		if p := r.pets[id]; p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PetRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.pets[p.ID]
	if !ok {
		return pets.ErrNotFound
	}

	existing.Name = p.Name
	existing.Breed = p.Breed
	existing.Birthdate = p.Birthdate
	r.pets[p.ID] = existing
	return nil
}

func (r *PetRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pets, id)
	return nil
}

func (r *PetRepo) GetOwner(ctx context.Context, id int64) (pets.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.owners[id]
	if !ok {
		return pets.Owner{}, pets.ErrNotFound
	}
	return o, nil
}

func (r *PetRepo) ListOwners(ctx context.Context) ([]pets.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Owner, 0, len(r.owners))
	for _, id := range sortedKeys(r.owners) {
		out = append(out, r.owners[id])
	}
	return out, nil
}

func (r *PetRepo) DeleteOwner(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Cascada equivalente al FK ON DELETE CASCADE del store sqlite.
	for petID, p := range r.pets {
		if p.OwnerID == id {
			delete(r.pets, petID)
		}
	}
	delete(r.owners, id)
	return nil
}

func (r *PetRepo) ListWithVaccAndVetRecords(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, id := range sortedKeys(r.pets) {
		if r.vax != nil && r.visits != nil && r.vax.hasForPet(id) && r.visits.hasForPet(id) {
			out = append(out, r.pets[id])
		}
	}
	return out, nil
}

func (r *PetRepo) withOwnerLocked(p pets.Pet) pets.PetWithOwner {
	pw := pets.PetWithOwner{Pet: p}
	if o, ok := r.owners[p.OwnerID]; ok {
		pw.Owner = &o
	}
	return pw
}
