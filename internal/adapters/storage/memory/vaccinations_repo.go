package memory

import (
	"context"
	"sort"
	"sync"

	"pettrackr/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]vaccinations.Vaccination
	nextID int64
}

func NewVaccinationsRepo() *VaccinationsRepo {
	return &VaccinationsRepo{
		byID:   make(map[int64]vaccinations.Vaccination),
		nextID: 1,
	}
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	v.ID = id
	r.byID[id] = v
	return id, nil
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id int64) (vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccinations.Vaccination{}, vaccinations.ErrNotFound
	}
	return v, nil
}

func (r *VaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[v.ID]; !ok {
		return vaccinations.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *VaccinationsRepo) ListByPet(ctx context.Context, petID int64) ([]vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vaccinations.Vaccination, 0)
	for _, id := range sortedKeys(r.byID) {
		if v := r.byID[id]; v.PetID == petID {
			out = append(out, v)
		}
	}
	// Fechas ISO: el orden lexicográfico coincide con el cronológico.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateAdministered > out[j].DateAdministered
	})
	return out, nil
}

func (r *VaccinationsRepo) ListAll(ctx context.Context) ([]vaccinations.Vaccination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vaccinations.Vaccination, 0, len(r.byID))
	for _, id := range sortedKeys(r.byID) {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *VaccinationsRepo) DeleteByPet(ctx context.Context, petID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, v := range r.byID {
		if v.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *VaccinationsRepo) hasForPet(petID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.byID {
		if v.PetID == petID {
			return true
		}
	}
	return false
}
