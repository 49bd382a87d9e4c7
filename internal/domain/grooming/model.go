package grooming

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// GroomingLog es una sesión de grooming registrada para una mascota.
// El precio siempre sale de la tarifa por tipo al momento de guardar;
// el caller no lo elige.
type GroomingLog struct {
	ID    int64
	PetID int64

	GroomDate   string // vacío al crear = timestamp del store
	GroomType   string // basic | custom | premium; otro valor tarifa 0
	Price       float64
	GroomerName string
	Notes       string
}
