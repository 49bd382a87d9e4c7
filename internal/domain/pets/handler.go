package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})

	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})

	// Reportes cross-entidad (fan-out sobre los demás stores)
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/pets-with-records", petsWithRecordsHandler(svc))
		rr.Get("/pets-with-daycare", petsWithDaycareHandler(svc))
	})
}

type ownerRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

type createPetRequest struct {
	Name      string       `json:"name"`
	Breed     string       `json:"breed"`
	Birthdate string       `json:"birthdate"` // YYYY-MM-DD opcional
	Owner     ownerRequest `json:"owner"`

	// Path de un archivo local a copiar al directorio de imágenes.
	ImageSourcePath string `json:"image_source_path"`
}

type updatePetRequest struct {
	Name      string `json:"name"`
	Breed     string `json:"breed"`
	Birthdate string `json:"birthdate"`
}

type petResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Breed     string `json:"breed,omitempty"`
	Birthdate string `json:"birthdate,omitempty"`
	Age       *int   `json:"age"` // null cuando la fecha no parsea
	ImagePath string `json:"image_path,omitempty"`
	OwnerID   int64  `json:"owner_id"`
}

type ownerResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number,omitempty"`
	Address       string `json:"address,omitempty"`
}

type petWithOwnerResponse struct {
	Pet   petResponse    `json:"pet"`
	Owner *ownerResponse `json:"owner"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, err := svc.AddPetWithOwner(r.Context(), AddPetInput{
			Name:      req.Name,
			Breed:     req.Breed,
			Birthdate: req.Birthdate,
			Owner: OwnerInput{
				Name:          req.Owner.Name,
				ContactNumber: req.Owner.ContactNumber,
				Address:       req.Owner.Address,
			},
			ImageSourcePath: req.ImageSourcePath,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidContact):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListWithOwners(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetWithOwnerResponses(items))
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		pw, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetWithOwnerResponse(pw))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		err := svc.Update(r.Context(), id, UpdateInput{
			Name:      req.Name,
			Breed:     req.Breed,
			Birthdate: req.Birthdate,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListOwners(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}

		o, err := svc.GetOwner(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "owner not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}

		if err := svc.DeleteOwner(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// petsWithRecordsHandler: ?mode=and (join en el store) | or (fan-out, default)
func petsWithRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("mode") == "and" {
			items, err := svc.WithVaccAndVetRecords(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			out := make([]petResponse, 0, len(items))
			for _, p := range items {
				out = append(out, toPetResponse(p))
			}
			writeJSON(w, http.StatusOK, out)
			return
		}

		items, err := svc.WithVaccOrVetRecords(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetWithOwnerResponses(items))
	}
}

func petsWithDaycareHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.WithDaycare(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetWithOwnerResponses(items))
	}
}

func toPetResponse(p Pet) petResponse {
	resp := petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Breed:     p.Breed,
		Birthdate: p.Birthdate,
		ImagePath: p.ImagePath,
		OwnerID:   p.OwnerID,
	}
	if age, ok := p.Age(time.Now()); ok {
		resp.Age = &age
	}
	return resp
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:            o.ID,
		Name:          o.Name,
		ContactNumber: o.ContactNumber,
		Address:       o.Address,
	}
}

func toPetWithOwnerResponse(pw PetWithOwner) petWithOwnerResponse {
	out := petWithOwnerResponse{Pet: toPetResponse(pw.Pet)}
	if pw.Owner != nil {
		o := toOwnerResponse(*pw.Owner)
		out.Owner = &o
	}
	return out
}

func toPetWithOwnerResponses(items []PetWithOwner) []petWithOwnerResponse {
	out := make([]petWithOwnerResponse, 0, len(items))
	for _, pw := range items {
		out = append(out, toPetWithOwnerResponse(pw))
	}
	return out
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
