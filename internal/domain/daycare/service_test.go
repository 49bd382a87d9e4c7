package daycare

import (
	"context"
	"errors"
	"testing"

	"pettrackr/internal/platform/logger"
	"pettrackr/internal/pricing"
)

type testRepo struct {
	byID   map[int64]Enrollment
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Enrollment{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, e Enrollment) (int64, error) {
	id := r.nextID
	r.nextID++
	e.ID = id
	r.byID[id] = e
	return id, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Enrollment, error) {
	e, ok := r.byID[id]
	if !ok {
		return Enrollment{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) Update(ctx context.Context, e Enrollment) error {
	if _, ok := r.byID[e.ID]; !ok {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]Enrollment, error) {
	out := make([]Enrollment, 0)
	for id := int64(1); id < r.nextID; id++ {
		if e, ok := r.byID[id]; ok && e.PetID == petID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Enrollment, error) {
	out := make([]Enrollment, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if e, ok := r.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) DeleteByPet(ctx context.Context, petID int64) error {
	for id, e := range r.byID {
		if e.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, pricing.DefaultDaycareRates(), logger.Nop())
}

func TestService_Create_RejectsNonPositiveDays(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.Create(context.Background(), 1, Input{NumDays: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 1, Input{NumDays: -3}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Fee_DerivedNotStored(t *testing.T) {
	svc := newTestService(newTestRepo())

	e, err := svc.Create(context.Background(), 1, Input{
		StartDate: "2026-02-01",
		NumDays:   4,
		FeedTwice: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 4 * (350 + 170)
	if got := svc.Fee(e); got != 2080 {
		t.Fatalf("expected fee 2080, got %d", got)
	}
}

func TestService_Fee_FeedOnceWinsOverOtherFlags(t *testing.T) {
	svc := newTestService(newTestRepo())

	e := Enrollment{NumDays: 2, FeedOnce: true, FeedThrice: true}
	// 2 * (350 + 85); thrice no se acumula
	if got := svc.Fee(e); got != 870 {
		t.Fatalf("expected fee 870, got %d", got)
	}
}
