package pets

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// DateLayout es el formato de fechas persistidas (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidContact = errors.New("contact number must contain 7 to 15 digits")
	ErrNotFound       = errors.New("not found")
)

// Pet representa una mascota registrada en el sistema.
type Pet struct {
	ID   int64
	Name string

	Breed     string
	Birthdate string // YYYY-MM-DD; puede venir mal formada, ver Age

	// ImagePath es relativo a la raíz de datos, nunca absoluto.
	ImagePath string

	OwnerID int64
}

// Age calcula la edad en años enteros (días / 365) al momento now.
// ok = false cuando la fecha de nacimiento no parsea; nunca negativa.
func (p Pet) Age(now time.Time) (int, bool) {
	birth, err := time.Parse(DateLayout, strings.TrimSpace(p.Birthdate))
	if err != nil {
		return 0, false
	}

	days := int(now.Sub(birth).Hours() / 24)
	age := days / 365
	if age < 0 {
		age = 0
	}
	return age, true
}

// Owner representa al dueño de una o más mascotas.
// El par (Name, ContactNumber) es único en el conjunto de dueños.
type Owner struct {
	ID            int64
	Name          string
	ContactNumber string // solo dígitos; vacío = sin teléfono
	Address       string
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizeContact limpia un teléfono dejando solo dígitos.
// Vacío es ausente y válido; tras limpiar deben quedar 7 a 15 dígitos.
func NormalizeContact(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) < 7 || len(digits) > 15 {
		return "", ErrInvalidContact
	}
	return digits, nil
}

// PetWithOwner es una fila del left join pets-owner.
// Owner nil = mascota sin dueño resoluble; la mascota igual se muestra.
type PetWithOwner struct {
	Pet   Pet
	Owner *Owner
}
