package grooming

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/grooming", func(gr chi.Router) {
		gr.Post("/", createHandler(svc))
		gr.Get("/", listByPetHandler(svc))
	})

	r.Route("/grooming", func(gr chi.Router) {
		gr.Get("/", listAllHandler(svc))
		gr.Get("/{groomingID}", getHandler(svc))
		gr.Put("/{groomingID}", updateHandler(svc))
		gr.Delete("/{groomingID}", deleteHandler(svc))
	})
}

// Sin campo price: el precio lo fija la tarifa por tipo, siempre.
type groomingRequest struct {
	PetID       int64  `json:"pet_id"` // solo para update
	GroomDate   string `json:"groom_date"`
	GroomType   string `json:"groom_type"`
	GroomerName string `json:"groomer_name"`
	Notes       string `json:"notes"`
}

type groomingResponse struct {
	ID          int64   `json:"id"`
	PetID       int64   `json:"pet_id"`
	GroomDate   string  `json:"groom_date"`
	GroomType   string  `json:"groom_type"`
	Price       float64 `json:"price"`
	GroomerName string  `json:"groomer_name"`
	Notes       string  `json:"notes,omitempty"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		var req groomingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		g, err := svc.Create(r.Context(), petID, toInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(g))
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
		id, ok := pathID(w, r, "groomingID")
		if !ok {
			return
		}

		g, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(g))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "groomingID")
		if !ok {
			return
		}

		var req groomingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		g, err := svc.Update(r.Context(), id, req.PetID, toInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(g))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "groomingID")
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

func toInput(req groomingRequest) Input {
	return Input{
		GroomDate:   req.GroomDate,
		GroomType:   req.GroomType,
		GroomerName: req.GroomerName,
		Notes:       req.Notes,
	}
}

func toResponse(g GroomingLog) groomingResponse {
	return groomingResponse{
		ID:          g.ID,
		PetID:       g.PetID,
		GroomDate:   g.GroomDate,
		GroomType:   g.GroomType,
		Price:       g.Price,
		GroomerName: g.GroomerName,
		Notes:       g.Notes,
	}
}

func toResponses(items []GroomingLog) []groomingResponse {
	out := make([]groomingResponse, 0, len(items))
	for _, g := range items {
		out = append(out, toResponse(g))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "grooming log not found", http.StatusNotFound)
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
