package vaccinations

import (
	"context"
	"errors"
	"testing"

	"pettrackr/internal/platform/logger"
	"pettrackr/internal/pricing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Vaccination
	nextID int64

	failList error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Vaccination{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, v Vaccination) (int64, error) {
	id := r.nextID
	r.nextID++
	v.ID = id
	r.byID[id] = v
	return id, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Vaccination, error) {
	v, ok := r.byID[id]
	if !ok {
		return Vaccination{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) Update(ctx context.Context, v Vaccination) error {
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

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]Vaccination, error) {
	if r.failList != nil {
		return nil, r.failList
	}
	out := make([]Vaccination, 0)
	for id := int64(1); id < r.nextID; id++ {
		if v, ok := r.byID[id]; ok && v.PetID == petID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Vaccination, error) {
	out := make([]Vaccination, 0, len(r.byID))
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
	return NewService(repo, pricing.DefaultVaccineCatalog(), logger.Nop())
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DerivesNextDueFromCatalogInterval(t *testing.T) {
	svc := newTestService(newTestRepo())

	// Bordetella refuerza a los 180 días
	v, err := svc.Create(context.Background(), 1, Input{
		VaccineName:      "Bordetella",
		DateAdministered: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.NextDue != "2024-06-29" {
		t.Fatalf("expected next_due 2024-06-29, got %s", v.NextDue)
	}
}

func TestService_Create_UnknownVaccineGetsYearInterval(t *testing.T) {
	svc := newTestService(newTestRepo())

	v, err := svc.Create(context.Background(), 1, Input{
		VaccineName:      "Leptospirosis",
		DateAdministered: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.NextDue != "2025-01-01" {
		t.Fatalf("expected next_due 2025-01-01, got %s", v.NextDue)
	}
	if v.Price != 0 {
		t.Fatalf("unknown vaccine has no list price, got %d", v.Price)
	}
}

func TestService_Create_DefaultsPriceFromCatalog(t *testing.T) {
	svc := newTestService(newTestRepo())

	v, err := svc.Create(context.Background(), 1, Input{
		VaccineName:      "Rabies",
		DateAdministered: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.Price != 400 {
		t.Fatalf("expected catalog price 400, got %d", v.Price)
	}
}

func TestService_Create_ExplicitValuesWin(t *testing.T) {
	svc := newTestService(newTestRepo())

	v, err := svc.Create(context.Background(), 1, Input{
		VaccineName:      "Rabies",
		DateAdministered: "2024-01-01",
		NextDue:          "2024-02-01",
		Price:            999,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.NextDue != "2024-02-01" || v.Price != 999 {
		t.Fatalf("explicit values overridden: %#v", v)
	}
}

func TestService_Create_BadDateLeavesNextDueEmpty(t *testing.T) {
	svc := newTestService(newTestRepo())

	v, err := svc.Create(context.Background(), 1, Input{
		VaccineName:      "Rabies",
		DateAdministered: "no recuerdo",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if v.NextDue != "" {
		t.Fatalf("expected empty next_due, got %s", v.NextDue)
	}
}

func TestService_Create_RejectsMissingName(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.Create(context.Background(), 1, Input{VaccineName: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 0, Input{VaccineName: "Rabies"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pet 0, got %v", err)
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
	repo := newTestRepo()
	svc := newTestService(repo)

	if svc.HasForPet(context.Background(), 1) {
		t.Fatalf("expected no records yet")
	}
	if _, err := svc.Create(context.Background(), 1, Input{VaccineName: "Parvo", DateAdministered: "2024-01-01"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !svc.HasForPet(context.Background(), 1) {
		t.Fatalf("expected records for pet 1")
	}
	if svc.HasForPet(context.Background(), 2) {
		t.Fatalf("expected no records for pet 2")
	}
}

func TestService_Update_ReappliesCatalogDefaults(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), 1, Input{VaccineName: "Rabies", DateAdministered: "2024-01-01"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, 1, Input{
		VaccineName:      "Bordetella",
		DateAdministered: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.NextDue != "2024-06-29" || updated.Price != 300 {
		t.Fatalf("catalog defaults not reapplied: %#v", updated)
	}
}
