package vetvisits

import (
	"context"
	"errors"
	"testing"

	"pettrackr/internal/platform/logger"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]VetVisit
	nextID int64

	failList error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]VetVisit{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, v VetVisit) (int64, error) {
	id := r.nextID
	r.nextID++
	v.ID = id
	r.byID[id] = v
	return id, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (VetVisit, error) {
	v, ok := r.byID[id]
	if !ok {
		return VetVisit{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) Update(ctx context.Context, v VetVisit) error {
	if _, ok := r.byID[v.ID]; !ok {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]VetVisit, error) {
	if r.failList != nil {
		return nil, r.failList
	}
	out := make([]VetVisit, 0)
	for id := int64(1); id < r.nextID; id++ {
		if v, ok := r.byID[id]; ok && v.PetID == petID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]VetVisit, error) {
	out := make([]VetVisit, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if v, ok := r.byID[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) DeleteByPet(ctx context.Context, petID int64) error {
	for id, v := range r.byID {
		if v.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, logger.Nop())
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_RejectsMissingDate(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.Create(context.Background(), 1, Input{VisitDate: "  ", Reason: "control"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 0, Input{VisitDate: "2026-01-01"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pet 0, got %v", err)
	}
}

func TestService_Create_TrimsFields(t *testing.T) {
	svc := newTestService(newTestRepo())

	v, err := svc.Create(context.Background(), 1, Input{
		VisitDate: " 2026-01-01 ",
		Reason:    " control anual ",
		Notes:     " todo bien ",
		Cost:      500,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.VisitDate != "2026-01-01" || v.Reason != "control anual" || v.Notes != "todo bien" {
		t.Fatalf("fields not trimmed: %#v", v)
	}
	if v.Cost != 500 {
		t.Fatalf("expected cost 500, got %v", v.Cost)
	}
}

func TestService_Update_RevalidatesInput(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), 1, Input{VisitDate: "2026-01-01", Reason: "control"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, 1, Input{VisitDate: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, 1, Input{VisitDate: "2026-02-01", Reason: "vacunación"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.VisitDate != "2026-02-01" || updated.Reason != "vacunación" {
		t.Fatalf("update not applied: %#v", updated)
	}
}

func TestService_ListByPet_DegradesToEmptyOnStorageError(t *testing.T) {
	repo := newTestRepo()
	repo.failList = errors.New("store caído")
	svc := newTestService(repo)

	got := svc.ListByPet(context.Background(), 1)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestService_HasForPet(t *testing.T) {
	svc := newTestService(newTestRepo())

	if svc.HasForPet(context.Background(), 1) {
		t.Fatalf("expected no records yet")
	}
	if _, err := svc.Create(context.Background(), 1, Input{VisitDate: "2026-01-01", Reason: "control"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !svc.HasForPet(context.Background(), 1) {
		t.Fatalf("expected records for pet 1")
	}
	if svc.HasForPet(context.Background(), 2) {
		t.Fatalf("expected no records for pet 2")
	}
}
