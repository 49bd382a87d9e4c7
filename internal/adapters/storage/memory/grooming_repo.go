package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pettrackr/internal/domain/grooming"
)

type GroomingRepo struct {
	mu     sync.RWMutex
	byID   map[int64]grooming.GroomingLog
	nextID int64
	now    func() time.Time
}

func NewGroomingRepo() *GroomingRepo {
	return &GroomingRepo{
		byID:   make(map[int64]grooming.GroomingLog),
		nextID: 1,
		now:    time.Now,
	}
}

// NewGroomingRepoWithClock fija el reloj del store, para tests.
func NewGroomingRepoWithClock(now func() time.Time) *GroomingRepo {
	r := NewGroomingRepo()
	r.now = now
	return r
}

func (r *GroomingRepo) Create(ctx context.Context, g grooming.GroomingLog) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.GroomDate == "" {
		// Mismo formato que datetime('now') en sqlite.
		g.GroomDate = r.now().UTC().Format("2006-01-02 15:04:05")
	}

	id := r.nextID
	r.nextID++
	g.ID = id
	r.byID[id] = g
	return id, nil
}

func (r *GroomingRepo) GetByID(ctx context.Context, id int64) (grooming.GroomingLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return grooming.GroomingLog{}, grooming.ErrNotFound
	}
	return g, nil
}

func (r *GroomingRepo) Update(ctx context.Context, g grooming.GroomingLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[g.ID]
	if !ok {
		return grooming.ErrNotFound
	}
	if g.GroomDate == "" {
		g.GroomDate = existing.GroomDate
	}
	r.byID[g.ID] = g
	return nil
}

func (r *GroomingRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *GroomingRepo) ListByPet(ctx context.Context, petID int64) ([]grooming.GroomingLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]grooming.GroomingLog, 0)
	for _, id := range sortedKeys(r.byID) {
		if g := r.byID[id]; g.PetID == petID {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GroomDate > out[j].GroomDate
	})
	return out, nil
}

func (r *GroomingRepo) ListAll(ctx context.Context) ([]grooming.GroomingLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]grooming.GroomingLog, 0, len(r.byID))
	for _, id := range sortedKeys(r.byID) {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *GroomingRepo) DeleteByPet(ctx context.Context, petID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, g := range r.byID {
		if g.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}
