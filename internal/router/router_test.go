package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pettrackr/internal/config"
	"pettrackr/internal/platform/logger"
	"pettrackr/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.New(router.Options{
		Cfg: config.Defaults(),
		Log: logger.Nop(),
	})
	if err != nil {
		t.Fatalf("router.New: %v", err)
	}

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func createPet(t *testing.T, baseURL, name string, extra map[string]any) int64 {
	t.Helper()

	payload := map[string]any{
		"name": name,
		"owner": map[string]any{
			"name": "Ana",
		},
	}
	for k, v := range extra {
		payload[k] = v
	}

	st, body := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("create pet: expected 201, got %d body=%s", st, string(body))
	}

	var out struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return out.ID
}

func TestHTTP_PetLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Alta con dueño y fecha de nacimiento
	createPet(t, ts.URL, "Milo", map[string]any{
		"breed":     "mixed",
		"birthdate": "2020-01-01",
	})

	// 2) El perfil trae mascota + dueño y la edad derivada
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var out struct {
			Pet struct {
				Name string `json:"name"`
				Age  *int   `json:"age"`
			} `json:"pet"`
			Owner *struct {
				Name string `json:"name"`
			} `json:"owner"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Pet.Name != "Milo" {
			t.Fatalf("expected Milo, got %q", out.Pet.Name)
		}
		if out.Pet.Age == nil {
			t.Fatalf("expected derived age, got null")
		}
		if out.Owner == nil || out.Owner.Name != "Ana" {
			t.Fatalf("expected owner Ana, got %#v", out.Owner)
		}
	}

	// 3) Actualizar
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/1", map[string]any{
			"name":      "Milo Jr",
			"breed":     "mixed",
			"birthdate": "2020-01-01",
		})
		if st != http.StatusNoContent {
			t.Fatalf("expected 204, got %d body=%s", st, string(body))
		}
	}

	// 4) Borrar y verificar el 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/1", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 on delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/1", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_CreatePet_RejectsBadContact(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/pets", map[string]any{
		"name": "Milo",
		"owner": map[string]any{
			"name":           "Ana",
			"contact_number": "123",
		},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", st, string(body))
	}
}

func TestHTTP_VaccinationDefaultsFromCatalog(t *testing.T) {
	ts := newTestServer(t)
	createPet(t, ts.URL, "Milo", nil)

	st, body := doReq(t, ts.URL, "POST", "/pets/1/vaccinations", map[string]any{
		"vaccine_name":      "Rabies",
		"date_administered": "2020-01-01",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	var out struct {
		NextDue string `json:"next_due"`
		Price   int    `json:"price"`
		IsDue   bool   `json:"is_due"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.NextDue != "2020-12-31" {
		t.Fatalf("expected next_due 2020-12-31, got %s", out.NextDue)
	}
	if out.Price != 400 {
		t.Fatalf("expected catalog price 400, got %d", out.Price)
	}
	if !out.IsDue {
		t.Fatalf("a 2020 booster should be due by now")
	}
}

func TestHTTP_DaycareResponseCarriesDerivedFee(t *testing.T) {
	ts := newTestServer(t)
	createPet(t, ts.URL, "Milo", nil)

	st, body := doReq(t, ts.URL, "POST", "/pets/1/daycare", map[string]any{
		"start_date": "2026-02-01",
		"num_days":   3,
		"feed_once":  true,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	var out struct {
		TotalFee int `json:"total_fee"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 3 * (350 + 85)
	if out.TotalFee != 1305 {
		t.Fatalf("expected total_fee 1305, got %d", out.TotalFee)
	}
}

func TestHTTP_GroomingPriceIgnoresCallerInput(t *testing.T) {
	ts := newTestServer(t)
	createPet(t, ts.URL, "Milo", nil)

	// el campo price del request no existe; mandarlo no cambia nada
	st, body := doReq(t, ts.URL, "POST", "/pets/1/grooming", map[string]any{
		"groom_type": "premium",
		"price":      1,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	var out struct {
		Price     float64 `json:"price"`
		GroomDate string  `json:"groom_date"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Price != 1800 {
		t.Fatalf("expected tariff price 1800, got %.0f", out.Price)
	}
	if out.GroomDate == "" {
		t.Fatalf("expected store-assigned groom_date")
	}
}

func TestHTTP_Reports(t *testing.T) {
	ts := newTestServer(t)

	createPet(t, ts.URL, "SoloVacuna", nil)  // pet 1
	createPet(t, ts.URL, "SoloVisita", nil)  // pet 2
	createPet(t, ts.URL, "Ambos", nil)       // pet 3
	createPet(t, ts.URL, "SinRegistro", nil) // pet 4

	mustPost := func(path string, payload map[string]any) {
		t.Helper()
		st, body := doReq(t, ts.URL, "POST", path, payload)
		if st != http.StatusCreated {
			t.Fatalf("POST %s: expected 201, got %d body=%s", path, st, string(body))
		}
	}

	mustPost("/pets/1/vaccinations", map[string]any{"vaccine_name": "Parvo", "date_administered": "2026-01-01"})
	mustPost("/pets/2/vet-visits", map[string]any{"visit_date": "2026-01-02", "reason": "control"})
	mustPost("/pets/3/vaccinations", map[string]any{"vaccine_name": "Rabies", "date_administered": "2026-01-03"})
	mustPost("/pets/3/vet-visits", map[string]any{"visit_date": "2026-01-04", "reason": "control"})
	mustPost("/pets/4/daycare", map[string]any{"start_date": "2026-02-01", "num_days": 2})

	// OR: pets 1, 2 y 3
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/pets-with-records", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var out []struct {
			Pet struct {
				ID int64 `json:"id"`
			} `json:"pet"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("OR report: expected 3 pets, got %d (%s)", len(out), string(body))
		}
	}

	// AND: solo pet 3
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/pets-with-records?mode=and", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var out []struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(out) != 1 || out[0].ID != 3 {
			t.Fatalf("AND report: expected only pet 3, got %s", string(body))
		}
	}

	// Daycare: solo pet 4
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/pets-with-daycare", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var out []struct {
			Pet struct {
				ID int64 `json:"id"`
			} `json:"pet"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(out) != 1 || out[0].Pet.ID != 4 {
			t.Fatalf("daycare report: expected only pet 4, got %s", string(body))
		}
	}
}

func TestHTTP_DeleteOwnerCascades(t *testing.T) {
	ts := newTestServer(t)
	createPet(t, ts.URL, "Milo", nil) // owner 1, pet 1

	st, body := doReq(t, ts.URL, "POST", "/pets/1/vaccinations", map[string]any{
		"vaccine_name": "Parvo", "date_administered": "2026-01-01",
	})
	if st != http.StatusCreated {
		t.Fatalf("seed vaccination: %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "DELETE", "/owners/1", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/pets/1", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected pet gone with owner, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/pets/1/vaccinations", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected records cascaded away, got %s", string(body))
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if string(body) != "ok" {
		t.Fatalf("expected ok, got %q", string(body))
	}
}
