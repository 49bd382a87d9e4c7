package vetvisits

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// VetVisit es un registro de visita veterinaria de una mascota.
type VetVisit struct {
	ID    int64
	PetID int64

	VisitDate string // YYYY-MM-DD
	Reason    string
	Notes     string
	Cost      float64
}
