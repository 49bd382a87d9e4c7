package daycare

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/daycare", func(dr chi.Router) {
		dr.Post("/", createHandler(svc))
		dr.Get("/", listByPetHandler(svc))
	})

	r.Route("/daycare", func(dr chi.Router) {
		dr.Get("/", listAllHandler(svc))
		dr.Get("/{enrollmentID}", getHandler(svc))
		dr.Put("/{enrollmentID}", updateHandler(svc))
		dr.Delete("/{enrollmentID}", deleteHandler(svc))
	})
}

type enrollmentRequest struct {
	PetID      int64  `json:"pet_id"` // solo para update
	StartDate  string `json:"start_date"`
	NumDays    int    `json:"num_days"`
	FeedOnce   bool   `json:"feed_once"`
	FeedTwice  bool   `json:"feed_twice"`
	FeedThrice bool   `json:"feed_thrice"`
	Notes      string `json:"notes"`
}

type enrollmentResponse struct {
	ID         int64  `json:"id"`
	PetID      int64  `json:"pet_id"`
	StartDate  string `json:"start_date"`
	NumDays    int    `json:"num_days"`
	FeedOnce   bool   `json:"feed_once"`
	FeedTwice  bool   `json:"feed_twice"`
	FeedThrice bool   `json:"feed_thrice"`
	Notes      string `json:"notes,omitempty"`

	// TotalFee es derivado de la tarifa vigente, no persistido.
	TotalFee int `json:"total_fee"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		var req enrollmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), petID, toInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(svc, e))
	}
}

func listByPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		items := svc.ListByPet(r.Context(), petID)
		writeJSON(w, http.StatusOK, toResponses(svc, items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(svc, items))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "enrollmentID")
		if !ok {
			return
		}

		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(svc, e))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "enrollmentID")
		if !ok {
			return
		}

		var req enrollmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Update(r.Context(), id, req.PetID, toInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(svc, e))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "enrollmentID")
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

func toInput(req enrollmentRequest) Input {
	return Input{
		StartDate:  req.StartDate,
		NumDays:    req.NumDays,
		FeedOnce:   req.FeedOnce,
		FeedTwice:  req.FeedTwice,
		FeedThrice: req.FeedThrice,
		Notes:      req.Notes,
	}
}

func toResponse(svc *Service, e Enrollment) enrollmentResponse {
	return enrollmentResponse{
		ID:         e.ID,
		PetID:      e.PetID,
		StartDate:  e.StartDate,
		NumDays:    e.NumDays,
		FeedOnce:   e.FeedOnce,
		FeedTwice:  e.FeedTwice,
		FeedThrice: e.FeedThrice,
		Notes:      e.Notes,
		TotalFee:   svc.Fee(e),
	}
}

func toResponses(svc *Service, items []Enrollment) []enrollmentResponse {
	out := make([]enrollmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toResponse(svc, e))
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "enrollment not found", http.StatusNotFound)
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
