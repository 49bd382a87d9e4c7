// Package pricing contiene las reglas de precios del negocio: tarifa de
// guardería, tarifa de grooming y catálogo de vacunas. Son funciones puras
// sobre valores que vienen de la configuración, no constantes enterradas
// en los modelos.
package pricing

// DaycareRates define la tarifa diaria de guardería y los adicionales
// por frecuencia de alimentación.
type DaycareRates struct {
	BasePerDay int `mapstructure:"base_per_day"`
	FeedOnce   int `mapstructure:"feed_once"`
	FeedTwice  int `mapstructure:"feed_twice"`
	FeedThrice int `mapstructure:"feed_thrice"`
}

func DefaultDaycareRates() DaycareRates {
	return DaycareRates{
		BasePerDay: 350,
		FeedOnce:   85,
		FeedTwice:  170,
		FeedThrice: 255,
	}
}

// TotalFee calcula el costo total de una inscripción de guardería.
// Los flags no son excluyentes en los datos; manda el primero en
// el orden once > twice > thrice (no se acumulan).
func (r DaycareRates) TotalFee(numDays int, once, twice, thrice bool) int {
	addon := 0
	switch {
	case once:
		addon = r.FeedOnce
	case twice:
		addon = r.FeedTwice
	case thrice:
		addon = r.FeedThrice
	}
	return numDays * (r.BasePerDay + addon)
}

// GroomTariff mapea tipo de groom a precio. Tipo desconocido vale 0.
type GroomTariff map[string]float64

func DefaultGroomTariff() GroomTariff {
	return GroomTariff{
		"basic":   1000.0,
		"custom":  1500.0,
		"premium": 1800.0,
	}
}

func (t GroomTariff) Price(groomType string) float64 {
	return t[groomType]
}

// VaccineEntry son los parámetros de una vacuna del catálogo.
type VaccineEntry struct {
	Price        int `mapstructure:"price"`
	IntervalDays int `mapstructure:"interval_days"`
}

// VaccineCatalog mapea nombre de vacuna a precio e intervalo de refuerzo.
type VaccineCatalog map[string]VaccineEntry

// DefaultIntervalDays aplica a vacunas fuera del catálogo.
const DefaultIntervalDays = 365

func DefaultVaccineCatalog() VaccineCatalog {
	return VaccineCatalog{
		"Rabies":     {Price: 400, IntervalDays: 365},
		"Distemper":  {Price: 350, IntervalDays: 365},
		"Bordetella": {Price: 300, IntervalDays: 180},
		"Parvo":      {Price: 350, IntervalDays: 365},
	}
}

// Price devuelve el precio de catálogo, 0 si la vacuna no está.
func (c VaccineCatalog) Price(vaccineName string) int {
	return c[vaccineName].Price
}

// IntervalDays devuelve el intervalo de refuerzo, 365 por defecto.
func (c VaccineCatalog) IntervalDays(vaccineName string) int {
	if e, ok := c[vaccineName]; ok {
		return e.IntervalDays
	}
	return DefaultIntervalDays
}
