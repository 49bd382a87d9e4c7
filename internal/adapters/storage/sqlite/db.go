// Package sqlite implementa los repositorios sobre archivos sqlite
// locales, un store físico por familia de entidades.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Archivos de store, uno por familia.
const (
	PetsDBFile         = "pets.db"
	VaccinationsDBFile = "vaccinations.db"
	VetVisitsDBFile    = "vet_visits.db"
	FeedingLogsDBFile  = "feeding_logs.db"
	GroomingLogsDBFile = "grooming_logs.db"
)

// Open abre (o crea) un store y aplica su esquema. El enforcement de
// FKs es por conexión y no viene activado por defecto en sqlite, así
// que se fija por DSN para que aplique a cada conexión.
func Open(dataDir, file, schema string) (*sql.DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: data dir: %w", err)
	}

	path := filepath.Join(dataDir, file)
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", file, err)
	}

	// una sola conexión por store: sqlite serializa las escrituras y
	// los ATTACH del store de pets viven por conexión
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", file, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: schema %s: %w", file, err)
	}

	return db, nil
}

// Stores agrupa los cinco stores físicos y sus repositorios.
type Stores struct {
	Pets         *PetsRepo
	Vaccinations *VaccinationsRepo
	VetVisits    *VetVisitsRepo
	Daycare      *DaycareRepo
	Grooming     *GroomingRepo

	dbs map[string]*sql.DB
}

// OpenStores abre todos los stores bajo dataDir. Los stores de registros
// se abren primero para que sus esquemas existan cuando el store de pets
// los adjunte para la consulta AND.
func OpenStores(dataDir string) (*Stores, error) {
	s := &Stores{dbs: map[string]*sql.DB{}}

	open := func(file, schema string) (*sql.DB, error) {
		db, err := Open(dataDir, file, schema)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.dbs[file] = db
		return db, nil
	}

	vaxDB, err := open(VaccinationsDBFile, vaccinationsSchema)
	if err != nil {
		return nil, err
	}
	visitsDB, err := open(VetVisitsDBFile, vetVisitsSchema)
	if err != nil {
		return nil, err
	}
	careDB, err := open(FeedingLogsDBFile, daycareSchema)
	if err != nil {
		return nil, err
	}
	groomDB, err := open(GroomingLogsDBFile, groomingSchema)
	if err != nil {
		return nil, err
	}
	petsDB, err := open(PetsDBFile, petsSchema)
	if err != nil {
		return nil, err
	}

	s.Vaccinations = NewVaccinationsRepo(vaxDB)
	s.VetVisits = NewVetVisitsRepo(visitsDB)
	s.Daycare = NewDaycareRepo(careDB)
	s.Grooming = NewGroomingRepo(groomDB)

	pets := NewPetsRepo(petsDB)
	err = pets.AttachRecordStores(
		filepath.Join(dataDir, VaccinationsDBFile),
		filepath.Join(dataDir, VetVisitsDBFile),
	)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.Pets = pets

	return s, nil
}

// Ping verifica la conectividad de cada store. Devuelve el error por
// archivo; nil = store sano.
func (s *Stores) Ping(ctx context.Context) map[string]error {
	out := make(map[string]error, len(s.dbs))
	for file, db := range s.dbs {
		out[file] = db.PingContext(ctx)
	}
	return out
}

func (s *Stores) Close() error {
	var first error
	for _, db := range s.dbs {
		if err := db.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNull(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
