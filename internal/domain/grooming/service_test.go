package grooming

import (
	"context"
	"errors"
	"testing"
	"time"

	"pettrackr/internal/platform/logger"
	"pettrackr/internal/pricing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]GroomingLog
	nextID int64
	now    func() time.Time
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:   map[int64]GroomingLog{},
		nextID: 1,
		now:    func() time.Time { return time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC) },
	}
}

func (r *testRepo) Create(ctx context.Context, g GroomingLog) (int64, error) {
	if g.GroomDate == "" {
		g.GroomDate = r.now().Format("2006-01-02 15:04:05")
	}
	id := r.nextID
	r.nextID++
	g.ID = id
	r.byID[id] = g
	return id, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (GroomingLog, error) {
	g, ok := r.byID[id]
	if !ok {
		return GroomingLog{}, ErrNotFound
	}
	return g, nil
}

func (r *testRepo) Update(ctx context.Context, g GroomingLog) error {
	if _, ok := r.byID[g.ID]; !ok {
		return ErrNotFound
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]GroomingLog, error) {
	out := make([]GroomingLog, 0)
	for id := int64(1); id < r.nextID; id++ {
		if g, ok := r.byID[id]; ok && g.PetID == petID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]GroomingLog, error) {
	out := make([]GroomingLog, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if g, ok := r.byID[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *testRepo) DeleteByPet(ctx context.Context, petID int64) error {
	for id, g := range r.byID {
		if g.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, pricing.DefaultGroomTariff(), logger.Nop())
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_PriceComesFromTariff(t *testing.T) {
	svc := newTestService(newTestRepo())

	cases := []struct {
		groomType string
		want      float64
	}{
		{"basic", 1000},
		{"custom", 1500},
		{"premium", 1800},
		{"deluxe", 0}, // fuera de tarifa
	}
	for _, c := range cases {
		g, err := svc.Create(context.Background(), 1, Input{GroomType: c.groomType, GroomDate: "2026-01-10"})
		if err != nil {
			t.Fatalf("Create(%s): %v", c.groomType, err)
		}
		if g.Price != c.want {
			t.Fatalf("Create(%s): expected price %.0f, got %.0f", c.groomType, c.want, g.Price)
		}
	}
}

func TestService_Create_EmptyDateGetsStoreTimestamp(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	g, err := svc.Create(context.Background(), 1, Input{GroomType: "basic"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.GroomDate != "2026-02-01 09:30:00" {
		t.Fatalf("expected store timestamp, got %q", g.GroomDate)
	}
}

func TestService_Create_RejectsMissingType(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.Create(context.Background(), 1, Input{GroomType: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 0, Input{GroomType: "basic"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pet 0, got %v", err)
	}
}

func TestService_Update_RepricesOnTypeChange(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), 1, Input{GroomType: "basic", GroomDate: "2026-01-10"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, 1, Input{GroomType: "premium", GroomDate: "2026-01-10"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 1800 {
		t.Fatalf("expected repriced 1800, got %.0f", updated.Price)
	}
}
