package vaccinations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/vaccinations", func(vr chi.Router) {
		vr.Post("/", createHandler(svc))
		vr.Get("/", listByPetHandler(svc))
	})

	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Get("/", listAllHandler(svc))
		vr.Get("/{vaccinationID}", getHandler(svc))
		vr.Put("/{vaccinationID}", updateHandler(svc))
		vr.Delete("/{vaccinationID}", deleteHandler(svc))
	})
}

type vaccinationRequest struct {
	PetID            int64  `json:"pet_id"` // solo para update; en create viene de la URL
	VaccineName      string `json:"vaccine_name"`
	DateAdministered string `json:"date_administered"`
	NextDue          string `json:"next_due"`
	Price            int    `json:"price"`
	Notes            string `json:"notes"`
}

type vaccinationResponse struct {
	ID               int64  `json:"id"`
	PetID            int64  `json:"pet_id"`
	VaccineName      string `json:"vaccine_name"`
	DateAdministered string `json:"date_administered"`
	NextDue          string `json:"next_due"`
	Price            int    `json:"price"`
	Notes            string `json:"notes,omitempty"`
	IsDue            bool   `json:"is_due"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		var req vaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Create(r.Context(), petID, toInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(v))
	}
}

func listByPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		items := svc.ListByPet(r.Context(), petID)
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "vaccinationID")
		if !ok {
			return
		}

		v, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(v))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "vaccinationID")
		if !ok {
			return
		}

		var req vaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Update(r.Context(), id, req.PetID, toInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(v))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "vaccinationID")
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

func toInput(req vaccinationRequest) Input {
	return Input{
		VaccineName:      req.VaccineName,
		DateAdministered: req.DateAdministered,
		NextDue:          req.NextDue,
		Price:            req.Price,
		Notes:            req.Notes,
	}
}

func toResponse(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:               v.ID,
		PetID:            v.PetID,
		VaccineName:      v.VaccineName,
		DateAdministered: v.DateAdministered,
		NextDue:          v.NextDue,
		Price:            v.Price,
		Notes:            v.Notes,
		IsDue:            v.IsDue(time.Now()),
	}
}

func toResponses(items []Vaccination) []vaccinationResponse {
	out := make([]vaccinationResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toResponse(v))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "vaccination not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
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
