package memory

import (
	"context"
	"sort"
	"sync"

	"pettrackr/internal/domain/vetvisits"
)

type VetVisitsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]vetvisits.VetVisit
	nextID int64
}

func NewVetVisitsRepo() *VetVisitsRepo {
	return &VetVisitsRepo{
		byID:   make(map[int64]vetvisits.VetVisit),
		nextID: 1,
	}
}

func (r *VetVisitsRepo) Create(ctx context.Context, v vetvisits.VetVisit) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	v.ID = id
	r.byID[id] = v
	return id, nil
}

func (r *VetVisitsRepo) GetByID(ctx context.Context, id int64) (vetvisits.VetVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vetvisits.VetVisit{}, vetvisits.ErrNotFound
	}
	return v, nil
}

func (r *VetVisitsRepo) Update(ctx context.Context, v vetvisits.VetVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[v.ID]; !ok {
		return vetvisits.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VetVisitsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *VetVisitsRepo) ListByPet(ctx context.Context, petID int64) ([]vetvisits.VetVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vetvisits.VetVisit, 0)
	for _, id := range sortedKeys(r.byID) {
		if v := r.byID[id]; v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].VisitDate > out[j].VisitDate
	})
	return out, nil
}

func (r *VetVisitsRepo) ListAll(ctx context.Context) ([]vetvisits.VetVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vetvisits.VetVisit, 0, len(r.byID))
	for _, id := range sortedKeys(r.byID) {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *VetVisitsRepo) DeleteByPet(ctx context.Context, petID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, v := range r.byID {
		if v.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *VetVisitsRepo) hasForPet(petID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.byID {
		if v.PetID == petID {
			return true
		}
	}
	return false
}
