package vetvisits

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/vet-visits", func(vr chi.Router) {
		vr.Post("/", createHandler(svc))
		vr.Get("/", listByPetHandler(svc))
	})

	r.Route("/vet-visits", func(vr chi.Router) {
		vr.Get("/", listAllHandler(svc))
		vr.Get("/{visitID}", getHandler(svc))
		vr.Put("/{visitID}", updateHandler(svc))
		vr.Delete("/{visitID}", deleteHandler(svc))
	})
}

type visitRequest struct {
	PetID     int64   `json:"pet_id"` // solo para update
	VisitDate string  `json:"visit_date"`
	Reason    string  `json:"reason"`
	Notes     string  `json:"notes"`
	Cost      float64 `json:"cost"`
}

type visitResponse struct {
	ID        int64   `json:"id"`
	PetID     int64   `json:"pet_id"`
	VisitDate string  `json:"visit_date"`
	Reason    string  `json:"reason"`
	Notes     string  `json:"notes,omitempty"`
	Cost      float64 `json:"cost"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		var req visitRequest
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
		id, ok := pathID(w, r, "visitID")
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
		id, ok := pathID(w, r, "visitID")
		if !ok {
			return
		}

		var req visitRequest
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
		id, ok := pathID(w, r, "visitID")
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

func toInput(req visitRequest) Input {
	return Input{
		VisitDate: req.VisitDate,
		Reason:    req.Reason,
		Notes:     req.Notes,
		Cost:      req.Cost,
	}
}

func toResponse(v VetVisit) visitResponse {
	return visitResponse{
		ID:        v.ID,
		PetID:     v.PetID,
		VisitDate: v.VisitDate,
		Reason:    v.Reason,
		Notes:     v.Notes,
		Cost:      v.Cost,
	}
}

func toResponses(items []VetVisit) []visitResponse {
	out := make([]visitResponse, 0, len(items))
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
		http.Error(w, "vet visit not found", http.StatusNotFound)
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
