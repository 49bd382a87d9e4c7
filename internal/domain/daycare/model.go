package daycare

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Enrollment es una inscripción de guardería (feeding log) de una mascota.
// Los flags de alimentación no son excluyentes en los datos; la tarifa
// resuelve la prioridad (ver pricing.DaycareRates).
type Enrollment struct {
	ID    int64
	PetID int64

	StartDate string // YYYY-MM-DD
	NumDays   int

	FeedOnce   bool
	FeedTwice  bool
	FeedThrice bool

	Notes string
}
