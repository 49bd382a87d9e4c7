package memory

import (
	"context"
	"sync"

	"pettrackr/internal/domain/daycare"
)

type DaycareRepo struct {
	mu     sync.RWMutex
	byID   map[int64]daycare.Enrollment
	nextID int64
}

func NewDaycareRepo() *DaycareRepo {
	return &DaycareRepo{
		byID:   make(map[int64]daycare.Enrollment),
		nextID: 1,
	}
}

func (r *DaycareRepo) Create(ctx context.Context, e daycare.Enrollment) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	e.ID = id
	r.byID[id] = e
	return id, nil
}

func (r *DaycareRepo) GetByID(ctx context.Context, id int64) (daycare.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return daycare.Enrollment{}, daycare.ErrNotFound
	}
	return e, nil
}

func (r *DaycareRepo) Update(ctx context.Context, e daycare.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; !ok {
		return daycare.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *DaycareRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *DaycareRepo) ListByPet(ctx context.Context, petID int64) ([]daycare.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]daycare.Enrollment, 0)
	for _, id := range sortedKeys(r.byID) {
		if e := r.byID[id]; e.PetID == petID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *DaycareRepo) ListAll(ctx context.Context) ([]daycare.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]daycare.Enrollment, 0, len(r.byID))
	for _, id := range sortedKeys(r.byID) {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *DaycareRepo) DeleteByPet(ctx context.Context, petID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.byID {
		if e.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}
