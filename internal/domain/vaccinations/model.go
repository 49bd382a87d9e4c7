package vaccinations

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Vaccination es un registro de vacunación de una mascota.
type Vaccination struct {
	ID    int64
	PetID int64

	VaccineName      string
	DateAdministered string // YYYY-MM-DD
	NextDue          string // YYYY-MM-DD; vacío si no se pudo derivar
	Price            int
	Notes            string
}

// NextDueFrom suma días de intervalo a la fecha administrada.
// ok = false si la fecha no parsea; el caller deja next_due vacío.
func NextDueFrom(dateAdministered string, intervalDays int) (string, bool) {
	base, err := time.Parse(dateLayout, dateAdministered)
	if err != nil {
		return "", false
	}
	return base.AddDate(0, 0, intervalDays).Format(dateLayout), true
}

// IsDue informa si la vacuna está vencida: hoy >= next_due.
// Un next_due ilegible nunca está vencido.
func (v Vaccination) IsDue(today time.Time) bool {
	due, err := time.Parse(dateLayout, v.NextDue)
	if err != nil {
		return false
	}
	return !today.Before(due)
}
